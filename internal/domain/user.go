package domain

import "time"

// Role enumerates the four actor roles in the organization.
type Role string

const (
	RoleSalesman     Role = "salesman"
	RoleCallOperator Role = "call_operator"
	RoleTechnician   Role = "technician"
	RoleSuperAdmin   Role = "super_admin"
)

// RoleProfile carries the role-specific optional attributes. Only the field
// matching the user's role is expected to be set.
type RoleProfile struct {
	Territory      *string
	Shift          *string
	Specialization *string
}

// User models an actor in the system: salesperson, call operator, technician
// or super-admin.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         Role
	IsActive     bool
	PasswordHash *string
	Profile      RoleProfile
	CreatedAt    time.Time
}
