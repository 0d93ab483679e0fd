package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(_ context.Context) error {
	return p.err
}

func TestReady(t *testing.T) {
	cases := []struct {
		name       string
		postgres   error
		redis      error
		wantStatus int
		wantBody   map[string]bool
	}{
		{"all up", nil, nil, http.StatusOK, nil},
		{"postgres down", errors.New("pool closed"), nil, http.StatusServiceUnavailable, map[string]bool{"postgres": true}},
		{"redis down", nil, errors.New("connection refused"), http.StatusServiceUnavailable, map[string]bool{"redis": true}},
		{"both down", errors.New("pool closed"), errors.New("connection refused"), http.StatusServiceUnavailable, map[string]bool{"postgres": true, "redis": true}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(stubPinger{err: tt.postgres}, stubPinger{err: tt.redis})
			app := fiber.New()
			app.Get("/health/ready", h.Ready)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			for key := range tt.wantBody {
				if body[key] == "" {
					t.Errorf("body missing %q detail: %v", key, body)
				}
			}
			wantState := "ok"
			if tt.wantStatus != http.StatusOK {
				wantState = "degraded"
			}
			if body["status"] != wantState {
				t.Errorf("status field = %q, want %q", body["status"], wantState)
			}
		})
	}
}
