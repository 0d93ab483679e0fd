package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roshni-energy/crm-service/internal/store"
)

// AnalyticsHandler exposes dashboard numbers and the manual refresh hook.
type AnalyticsHandler struct {
	store *store.Store
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(st *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: st}
}

// Get handles GET /analytics.
func (h *AnalyticsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Analytics()})
}

// Refresh handles POST /refresh, forcing a full reload of all collections.
func (h *AnalyticsHandler) Refresh(c *fiber.Ctx) error {
	if err := h.store.Reload(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"refreshed": true}})
}
