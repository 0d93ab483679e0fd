package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger checks a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	postgres Pinger
	redis    Pinger
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(postgres, redis Pinger) *HealthHandler {
	return &HealthHandler{postgres: postgres, redis: redis}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready. Both backing stores must answer: Postgres
// is the source of truth, Redis carries the change feed.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	body := fiber.Map{"status": "ok"}
	degraded := false

	if h.postgres != nil {
		if err := h.postgres.Ping(c.Context()); err != nil {
			degraded = true
			body["postgres"] = err.Error()
		}
	}
	if h.redis != nil {
		if err := h.redis.Ping(c.Context()); err != nil {
			degraded = true
			body["redis"] = err.Error()
		}
	}

	if degraded {
		body["status"] = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.JSON(body)
}
