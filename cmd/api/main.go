package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/roshni-energy/crm-service/internal/api/http"
	"github.com/roshni-energy/crm-service/internal/api/http/handlers"
	"github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/config"
	"github.com/roshni-energy/crm-service/internal/domain"
	"github.com/roshni-energy/crm-service/internal/events"
	"github.com/roshni-energy/crm-service/internal/feed"
	"github.com/roshni-energy/crm-service/internal/observability"
	"github.com/roshni-energy/crm-service/internal/persistence"
	"github.com/roshni-energy/crm-service/internal/repository"
	"github.com/roshni-energy/crm-service/internal/service"
	"github.com/roshni-energy/crm-service/internal/session"
	"github.com/roshni-energy/crm-service/internal/store"
	"github.com/roshni-energy/crm-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	leadRepo := repository.NewLeadRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	changeFeed := feed.New(redis.Client, cfg.Redis.FeedChannel, logger)

	pipeline := store.New(store.Dependencies{
		LeadRepo:   leadRepo,
		TicketRepo: ticketRepo,
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
		Notifier:   changeFeed,
		Logger:     logger,
	})
	if pool != nil {
		if err := seedUsers(ctx, cfg, pipeline); err != nil {
			logger.Fatal("user seeding failed", zap.Error(err))
		}
		if err := pipeline.Reload(ctx); err != nil {
			logger.Fatal("initial load failed", zap.Error(err))
		}
	} else {
		logger.Warn("starting with empty in-memory state; no postgres pool")
	}

	// Any change published on the feed, including by other instances,
	// triggers a full reload of all three collections.
	go changeFeed.Listen(ctx, func(ctx context.Context, table string) {
		if err := pipeline.Reload(ctx); err != nil {
			logger.Warn("feed-triggered reload failed", zap.String("table", table), zap.Error(err))
		}
	})

	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notifications)

	sessions := session.NewService(*cfg, userRepo)
	authMiddleware := auth.NewAuthMiddleware(sessions.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Auth:           handlers.NewAuthHandler(sessions),
		Leads:          handlers.NewLeadsHandler(pipeline),
		Tickets:        handlers.NewTicketsHandler(pipeline),
		Users:          handlers.NewUsersHandler(pipeline, cfg.Auth.BcryptCost),
		Analytics:      handlers.NewAnalyticsHandler(pipeline),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// seedUsers populates an empty users table so login is possible on a fresh
// database: the fixed demo account set in shared-secret mode, or a single
// bootstrap super-admin when bcrypt credentials are configured.
func seedUsers(ctx context.Context, cfg *config.Config, pipeline *store.Store) error {
	if cfg.Auth.DemoSharedSecret != "" {
		return pipeline.SeedUsers(ctx, store.DemoUsers())
	}
	if cfg.Auth.BootstrapAdminEmail != "" && cfg.Auth.BootstrapAdminPassword != "" {
		hash, err := auth.HashPassword(cfg.Auth.BootstrapAdminPassword, cfg.Auth.BcryptCost)
		if err != nil {
			return err
		}
		return pipeline.SeedUsers(ctx, []store.NewUserInput{{
			Name:         "Admin User",
			Email:        cfg.Auth.BootstrapAdminEmail,
			Role:         domain.RoleSuperAdmin,
			PasswordHash: &hash,
		}})
	}
	return nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
