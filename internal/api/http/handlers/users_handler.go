package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/roshni-energy/crm-service/internal/api/dto"
	authpkg "github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/store"
)

// UsersHandler exposes user-management endpoints.
type UsersHandler struct {
	store      *store.Store
	bcryptCost int
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(st *store.Store, bcryptCost int) *UsersHandler {
	return &UsersHandler{store: st, bcryptCost: bcryptCost}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewUserList(h.store.Users())})
}

// Technicians handles GET /users/technicians.
func (h *UsersHandler) Technicians(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewUserList(h.store.Technicians())})
}

// CallOperators handles GET /users/call-operators.
func (h *UsersHandler) CallOperators(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewUserList(h.store.CallOperators())})
}

// Salesmen handles GET /users/salesmen.
func (h *UsersHandler) Salesmen(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewUserList(h.store.Salesmen())})
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Role == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, role required")
	}

	input := store.NewUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}
	input.Profile.Territory = req.Territory
	input.Profile.Shift = req.Shift
	input.Profile.Specialization = req.Specialization
	if req.Password != "" {
		hash, err := authpkg.HashPassword(req.Password, h.bcryptCost)
		if err != nil {
			return err
		}
		input.PasswordHash = &hash
	}

	user, err := h.store.CreateUser(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(*user)})
}

// Update handles PATCH /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch := store.UserPatch{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           req.Role,
		IsActive:       req.IsActive,
		Territory:      req.Territory,
		Shift:          req.Shift,
		Specialization: req.Specialization,
	}
	if err := h.store.UpdateUser(c.Context(), c.Params("id"), patch); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
