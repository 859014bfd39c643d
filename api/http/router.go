package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ekazakov/screening/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The analyze endpoint
// sits behind the API-key middleware; the informational endpoints are open.
func Register(app *fiber.App, analyze *handlers.AnalyzeHandler, health *handlers.HealthHandler, auth fiber.Handler) {
	app.Get("/health", health.Health)
	app.Get("/version", health.Version)
	app.Get("/ready", health.Ready)

	app.Post("/analyze/", auth, analyze.Analyze)
}
