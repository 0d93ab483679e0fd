package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/roshni-energy/crm-service/internal/domain"
	"github.com/roshni-energy/crm-service/pkg/util"
)

type staticUserRepo struct {
	users map[string]*domain.User
}

func (r *staticUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *staticUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = user
	return nil
}

func (r *staticUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *staticUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *staticUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *staticUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Errorf("wrong password accepted")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	tm := NewTokenManager("unit-secret", 5)
	token, _, err := tm.GenerateToken("u1", domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != domain.RoleSuperAdmin {
		t.Errorf("claims = %s/%s", claims.UserID, claims.Role)
	}

	other := NewTokenManager("different-secret", 5)
	if _, err := other.ParseToken(token); err == nil {
		t.Errorf("token accepted under wrong secret")
	}
}

func newProtectedApp(users *staticUserRepo, tm *TokenManager, guards ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		// status mapping mirrors the service's error middleware
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.SendStatus(fiberErr.Code)
			}
			return c.SendStatus(util.ToDomainError(err).HTTPStatus)
		},
	})
	mw := NewAuthMiddleware(tm, users)
	handlers := append([]fiber.Handler{mw.Handle}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	users := &staticUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleSalesman, IsActive: true},
		"u2": {ID: "u2", Role: domain.RoleTechnician, IsActive: false},
	}}
	tm := NewTokenManager("unit-secret", 5)
	app := newProtectedApp(users, tm)

	activeToken, _, _ := tm.GenerateToken("u1", domain.RoleSalesman)
	inactiveToken, _, _ := tm.GenerateToken("u2", domain.RoleTechnician)
	unknownToken, _, _ := tm.GenerateToken("ghost", domain.RoleSalesman)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"unknown user", "Bearer " + unknownToken, http.StatusUnauthorized},
		{"disabled user", "Bearer " + inactiveToken, http.StatusForbidden},
		{"active user", "Bearer " + activeToken, http.StatusOK},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	users := &staticUserRepo{users: map[string]*domain.User{
		"s1": {ID: "s1", Role: domain.RoleSalesman, IsActive: true},
		"a1": {ID: "a1", Role: domain.RoleSuperAdmin, IsActive: true},
	}}
	tm := NewTokenManager("unit-secret", 5)
	app := newProtectedApp(users, tm, RequireRole(domain.RoleSuperAdmin))

	salesToken, _, _ := tm.GenerateToken("s1", domain.RoleSalesman)
	adminToken, _, _ := tm.GenerateToken("a1", domain.RoleSuperAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+salesToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("salesman status = %d, want 403", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin status = %d, want 200", resp.StatusCode)
	}
}
