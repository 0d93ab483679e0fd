package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/roshni-energy/crm-service/internal/auth"
	"github.com/roshni-energy/crm-service/internal/config"
	"github.com/roshni-energy/crm-service/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*domain.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func demoConfig() config.Config {
	var cfg config.Config
	cfg.Auth = config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
		DemoSharedSecret:      "password123",
	}
	return cfg
}

func bcryptConfig() config.Config {
	cfg := demoConfig()
	cfg.Auth.DemoSharedSecret = ""
	return cfg
}

func activeUser(id, email string, role domain.Role) *domain.User {
	return &domain.User{ID: id, Name: "User " + id, Email: email, Role: role, IsActive: true}
}

func TestLoginDemoMode(t *testing.T) {
	users := newFakeUserRepo(
		activeUser("s1", "john@roshni.com", domain.RoleSalesman),
	)
	svc := NewService(demoConfig(), users)
	ctx := context.Background()

	user, token, exp, err := svc.Login(ctx, "john@roshni.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "s1" {
		t.Errorf("user = %s, want s1", user.ID)
	}
	if token == "" {
		t.Errorf("empty token")
	}
	if !exp.After(time.Now()) {
		t.Errorf("expiry %v not in the future", exp)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "s1" || claims.Role != domain.RoleSalesman {
		t.Errorf("claims = %s/%s", claims.UserID, claims.Role)
	}
}

func TestLoginFailures(t *testing.T) {
	inactive := activeUser("u2", "gone@roshni.com", domain.RoleTechnician)
	inactive.IsActive = false
	users := newFakeUserRepo(
		activeUser("u1", "sarah@roshni.com", domain.RoleCallOperator),
		inactive,
	)
	svc := NewService(demoConfig(), users)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@roshni.com", "password123"},
		{"wrong password", "sarah@roshni.com", "nope"},
		{"inactive user", "gone@roshni.com", "password123"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginBcryptMode(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := activeUser("u1", "mike@roshni.com", domain.RoleTechnician)
	user.PasswordHash = &hash
	noHash := activeUser("u2", "blank@roshni.com", domain.RoleSalesman)
	users := newFakeUserRepo(user, noHash)
	svc := NewService(bcryptConfig(), users)
	ctx := context.Background()

	if _, _, _, err := svc.Login(ctx, "mike@roshni.com", "s3cret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "mike@roshni.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "blank@roshni.com", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("missing hash: err = %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	hash, err := auth.HashPassword("old-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := activeUser("u1", "mike@roshni.com", domain.RoleTechnician)
	user.PasswordHash = &hash
	users := newFakeUserRepo(user)
	svc := NewService(bcryptConfig(), users)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, "u1", "wrong", "new-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong current password: err = %v", err)
	}
	if err := svc.ChangePassword(ctx, "u1", "old-pass", "new-pass"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "mike@roshni.com", "new-pass"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "mike@roshni.com", "old-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still accepted: err = %v", err)
	}
}

func TestChangePasswordDemoModeUnavailable(t *testing.T) {
	users := newFakeUserRepo(activeUser("u1", "x@roshni.com", domain.RoleSalesman))
	svc := NewService(demoConfig(), users)
	if err := svc.ChangePassword(context.Background(), "u1", "password123", "new"); err == nil {
		t.Fatal("expected error in demo mode")
	}
}
