package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/roshni-energy/crm-service/internal/observability"
	apperrors "github.com/roshni-energy/crm-service/pkg/util"
)

func TestMiddlewareRecordsTranslatedStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)

	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("lead", nil)
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": true})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if got := metrics.RequestCount("/missing", http.MethodGet, http.StatusNotFound); got != 1 {
		t.Errorf("request counted as %d under 404, want 1", got)
	}
	if got := metrics.RequestCount("/missing", http.MethodGet, http.StatusOK); got != 0 {
		t.Errorf("failed request counted under 200 (%d times)", got)
	}
	if got := metrics.ErrorCount("/missing", http.MethodGet, "NOT_FOUND"); got != 1 {
		t.Errorf("error counted as %d, want 1", got)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if got := metrics.RequestCount("/ok", http.MethodGet, http.StatusOK); got != 1 {
		t.Errorf("ok request counted as %d, want 1", got)
	}
}

func TestMiddlewareRecoversPanics(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)

	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	if got := metrics.RequestCount("/boom", http.MethodGet, http.StatusInternalServerError); got != 1 {
		t.Errorf("panic request counted as %d under 500, want 1", got)
	}
}
