package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roshni-energy/crm-service/internal/api/http/handlers"
	"github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Leads          *handlers.LeadsHandler
	Tickets        *handlers.TicketsHandler
	Users          *handlers.UsersHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Post("/auth/password/change", cfg.Auth.ChangePassword)

	leads := protected.Group("/leads")
	leads.Get("", cfg.Leads.List)
	leads.Post("", auth.RequireRole(domain.RoleSalesman, domain.RoleSuperAdmin), cfg.Leads.Create)
	leads.Patch("/:id/status", cfg.Leads.UpdateStatus)
	leads.Patch("/:id/technician", cfg.Leads.AssignTechnician)

	tickets := protected.Group("/tickets")
	tickets.Get("", cfg.Tickets.List)
	tickets.Post("", auth.RequireRole(domain.RoleCallOperator, domain.RoleSuperAdmin), cfg.Tickets.Create)
	tickets.Patch("/:id/status", cfg.Tickets.UpdateStatus)
	tickets.Patch("/:id/technician", cfg.Tickets.AssignTechnician)

	users := protected.Group("/users")
	users.Get("/technicians", cfg.Users.Technicians)
	users.Get("/call-operators", cfg.Users.CallOperators)
	users.Get("/salesmen", cfg.Users.Salesmen)

	admin := users.Group("", auth.RequireRole(domain.RoleSuperAdmin))
	admin.Get("", cfg.Users.List)
	admin.Post("", cfg.Users.Create)
	admin.Patch("/:id", cfg.Users.Update)
	admin.Delete("/:id", cfg.Users.Delete)

	protected.Get("/analytics", auth.RequireRole(domain.RoleSuperAdmin), cfg.Analytics.Get)
	protected.Post("/refresh", cfg.Analytics.Refresh)
}
