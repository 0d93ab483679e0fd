package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roshni-energy/crm-service/internal/domain"
)

// DemoUsers returns the fixed account set that ships with the shared-secret
// login mode: two salespeople, two call operators, one technician and one
// super-admin. All of them authenticate with the shared secret.
func DemoUsers() []NewUserInput {
	territorySouth := "Bangalore South"
	territoryNorth := "Bangalore North"
	dayShift := "Day Shift"
	nightShift := "Night Shift"
	specialization := "Residential & Commercial"

	return []NewUserInput{
		{
			Name:    "John Sales",
			Email:   "john@roshni.com",
			Phone:   "+91-9876543210",
			Role:    domain.RoleSalesman,
			Profile: domain.RoleProfile{Territory: &territorySouth},
		},
		{
			Name:    "Sarah Operator",
			Email:   "sarah@roshni.com",
			Phone:   "+91-9876543211",
			Role:    domain.RoleCallOperator,
			Profile: domain.RoleProfile{Shift: &dayShift},
		},
		{
			Name:    "Mike Tech",
			Email:   "mike@roshni.com",
			Phone:   "+91-9876543212",
			Role:    domain.RoleTechnician,
			Profile: domain.RoleProfile{Specialization: &specialization},
		},
		{
			Name:  "Admin User",
			Email: "admin@roshni.com",
			Phone: "+91-9876543213",
			Role:  domain.RoleSuperAdmin,
		},
		{
			Name:    "Rahul Sales",
			Email:   "rahul@roshni.com",
			Phone:   "+91-9876543214",
			Role:    domain.RoleSalesman,
			Profile: domain.RoleProfile{Territory: &territoryNorth},
		},
		{
			Name:    "Priya Operator",
			Email:   "priya.op@roshni.com",
			Phone:   "+91-9876543215",
			Role:    domain.RoleCallOperator,
			Profile: domain.RoleProfile{Shift: &nightShift},
		},
	}
}

// SeedUsers inserts the given users when the backing store holds none, then
// reloads the mirror. A store with any existing user is left untouched, so
// the call is safe on every start.
func (s *Store) SeedUsers(ctx context.Context, inputs []NewUserInput) error {
	existing, err := s.userRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	for _, input := range inputs {
		user := &domain.User{
			ID:           uuid.NewString(),
			Name:         input.Name,
			Email:        input.Email,
			Phone:        input.Phone,
			Role:         input.Role,
			IsActive:     true,
			PasswordHash: input.PasswordHash,
			Profile:      input.Profile,
			CreatedAt:    now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
	}
	s.logger.Info("seeded users", zap.Int("count", len(inputs)))
	return s.Reload(ctx)
}
