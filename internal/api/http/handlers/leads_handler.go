package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/roshni-energy/crm-service/internal/api/dto"
	"github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/store"
)

// LeadsHandler exposes the lead pipeline endpoints.
type LeadsHandler struct {
	store *store.Store
}

// NewLeadsHandler constructs the handler.
func NewLeadsHandler(st *store.Store) *LeadsHandler {
	return &LeadsHandler{store: st}
}

// List handles GET /leads, returning the role-scoped slice for the caller.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	leads := h.store.LeadsFor(principal.User)
	return c.JSON(fiber.Map{"data": dto.NewLeadList(leads)})
}

// Create handles POST /leads.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CustomerName == "" || req.PhoneNumber == "" || req.Address == "" {
		return fiber.NewError(http.StatusBadRequest, "customer_name, phone_number, address required")
	}

	lead, err := h.store.CreateLead(c.Context(), principal.User, store.NewLeadInput{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Address:      req.Address,
		PropertyType: req.PropertyType,
		Likelihood:   req.Likelihood,
		FollowUpDate: req.FollowUpDate,
	})
	if err != nil {
		return err
	}
	if lead == nil {
		return fiber.NewError(http.StatusUnauthorized, "authenticated actor required")
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewLeadResponse(*lead)})
}

// UpdateStatus handles PATCH /leads/:id/status.
func (h *LeadsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	if err := h.store.SetLeadStatus(c.Context(), principal.User, c.Params("id"), req.Status, req.Notes); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// AssignTechnician handles PATCH /leads/:id/technician.
func (h *LeadsHandler) AssignTechnician(c *fiber.Ctx) error {
	var req dto.AssignTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.TechnicianID == "" {
		return fiber.NewError(http.StatusBadRequest, "technician_id required")
	}

	if err := h.store.AssignLeadTechnician(c.Context(), c.Params("id"), req.TechnicianID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"assigned": true}})
}
