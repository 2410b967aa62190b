package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mimivibe/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, ask *handlers.AskHandler, health *handlers.HealthHandler, referral *handlers.ReferralHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/ask", ask.Ask)

	r := app.Group("/referrals")
	r.Post("/claim", referral.Claim)
}
