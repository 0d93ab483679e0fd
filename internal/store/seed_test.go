package store

import (
	"context"
	"testing"

	"github.com/roshni-energy/crm-service/internal/domain"
)

func TestSeedUsersPopulatesEmptyStore(t *testing.T) {
	f := newFixture(t)

	if err := f.store.SeedUsers(context.Background(), DemoUsers()); err != nil {
		t.Fatalf("SeedUsers: %v", err)
	}

	users := f.store.Users()
	if len(users) != 6 {
		t.Fatalf("seeded %d users, want 6", len(users))
	}

	byEmail := make(map[string]domain.User, len(users))
	for _, u := range users {
		if !u.IsActive {
			t.Errorf("seeded user %s inactive", u.Email)
		}
		byEmail[u.Email] = u
	}
	admin, ok := byEmail["admin@roshni.com"]
	if !ok || admin.Role != domain.RoleSuperAdmin {
		t.Fatalf("no active super-admin in seed set: %+v", admin)
	}
	if got := len(f.store.Salesmen()); got != 2 {
		t.Errorf("Salesmen() = %d, want 2", got)
	}
	if got := len(f.store.CallOperators()); got != 2 {
		t.Errorf("CallOperators() = %d, want 2", got)
	}
	if got := len(f.store.Technicians()); got != 1 {
		t.Errorf("Technicians() = %d, want 1", got)
	}
}

func TestSeedUsersSkipsNonEmptyStore(t *testing.T) {
	f := newFixture(t)
	seedUser(f, t, user("u1", "Existing", domain.RoleSuperAdmin, true))
	f.reload(t)

	if err := f.store.SeedUsers(context.Background(), DemoUsers()); err != nil {
		t.Fatalf("SeedUsers: %v", err)
	}
	if got := len(f.store.Users()); got != 1 {
		t.Errorf("store has %d users after second seed, want 1", got)
	}
}
