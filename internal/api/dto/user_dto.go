package dto

import (
	"time"

	"github.com/roshni-energy/crm-service/internal/domain"
)

// CreateUserRequest payload. Password is optional; without one the account
// can only log in under the demo shared-secret verifier.
type CreateUserRequest struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Role           domain.Role `json:"role"`
	Password       string      `json:"password"`
	Territory      *string     `json:"territory"`
	Shift          *string     `json:"shift"`
	Specialization *string     `json:"specialization"`
}

// UpdateUserRequest carries partial updates; absent fields are unchanged.
type UpdateUserRequest struct {
	Name           *string      `json:"name"`
	Email          *string      `json:"email"`
	Phone          *string      `json:"phone"`
	Role           *domain.Role `json:"role"`
	IsActive       *bool        `json:"is_active"`
	Territory      *string      `json:"territory"`
	Shift          *string      `json:"shift"`
	Specialization *string      `json:"specialization"`
}

// UserResponse is the user shape served to clients.
type UserResponse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Role           domain.Role `json:"role"`
	IsActive       bool        `json:"is_active"`
	Territory      *string     `json:"territory,omitempty"`
	Shift          *string     `json:"shift,omitempty"`
	Specialization *string     `json:"specialization,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		Role:           user.Role,
		IsActive:       user.IsActive,
		Territory:      user.Profile.Territory,
		Shift:          user.Profile.Shift,
		Specialization: user.Profile.Specialization,
		CreatedAt:      user.CreatedAt,
	}
}

// NewUserList maps a slice of domain users.
func NewUserList(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
