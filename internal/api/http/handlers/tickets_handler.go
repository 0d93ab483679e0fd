package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/roshni-energy/crm-service/internal/api/dto"
	"github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/store"
)

// TicketsHandler exposes the support-ticket endpoints.
type TicketsHandler struct {
	store *store.Store
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(st *store.Store) *TicketsHandler {
	return &TicketsHandler{store: st}
}

// List handles GET /tickets, returning the role-scoped slice for the caller.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	tickets := h.store.TicketsFor(principal.User)
	return c.JSON(fiber.Map{"data": dto.NewTicketList(tickets)})
}

// Create handles POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.CustomerName == "" {
		return fiber.NewError(http.StatusBadRequest, "title and customer_name required")
	}

	ticket, err := h.store.CreateTicket(c.Context(), principal.User, store.NewTicketInput{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
	})
	if err != nil {
		return err
	}
	if ticket == nil {
		return fiber.NewError(http.StatusUnauthorized, "authenticated actor required")
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(*ticket)})
}

// UpdateStatus handles PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	if err := h.store.SetTicketStatus(c.Context(), c.Params("id"), req.Status, req.Notes); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// AssignTechnician handles PATCH /tickets/:id/technician.
func (h *TicketsHandler) AssignTechnician(c *fiber.Ctx) error {
	var req dto.AssignTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.TechnicianID == "" {
		return fiber.NewError(http.StatusBadRequest, "technician_id required")
	}

	if err := h.store.AssignTicketTechnician(c.Context(), c.Params("id"), req.TechnicianID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"assigned": true}})
}
