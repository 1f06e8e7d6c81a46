package http

import (
	"github.com/gofiber/fiber/v2"

	"promptenhancer/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// rateLimit is applied to the enhance route only; probes and history
// reads stay unmetered.
func Register(app *fiber.App, enhance *handlers.EnhanceHandler, hist *handlers.HistoryHandler, health *handlers.HealthHandler, rateLimit fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	p := v1.Group("/prompts")
	if rateLimit != nil {
		p.Post("/enhance", rateLimit, enhance.Enhance)
	} else {
		p.Post("/enhance", enhance.Enhance)
	}
	p.Get("/history", hist.List)
	p.Get("/history/:id", hist.Get)
}
