package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/mimivibe/backend/pkg/health"
	"github.com/mimivibe/backend/pkg/health/checkers"
)

func newHealthApp(svc health.ReadinessUseCase) *fiber.App {
	app := fiber.New()
	h := NewHealthHandler(svc)
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("app.Test() err=%v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("response is not json: %v: %s", err, b)
	}
	return resp, parsed
}

func TestHealth(t *testing.T) {
	app := newHealthApp(health.NewService())

	resp, body := getJSON(t, app, "/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Fatalf("body=%v", body)
	}
}

func TestReady(t *testing.T) {
	app := newHealthApp(health.NewService(checkers.NewProviderChecker("sk-test", false)))

	resp, body := getJSON(t, app, "/ready")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if body["status"] != "ready" {
		t.Fatalf("body=%v", body)
	}
}

func TestReadyFailsWithoutCredentials(t *testing.T) {
	app := newHealthApp(health.NewService(checkers.NewProviderChecker("", false)))

	resp, body := getJSON(t, app, "/ready")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if body["status"] != "not_ready" {
		t.Fatalf("body=%v", body)
	}
}
