package setup

import (
	"sleep-tracker/app"
	"sleep-tracker/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health)

	api := fiberApp.Group("/api")
	api.Get("/time", handlers.ServerTime(application))

	api.Get("/nights", handlers.ListNights(application))
	api.Delete("/nights", handlers.ClearNights(application))
	api.Get("/nights/tonight", handlers.GetTonight(application))
	api.Post("/nights/start", handlers.StartTracking(application))
	api.Post("/nights/stop", handlers.StopTracking(application))
	api.Get("/nights/:id", handlers.GetNight(application))
	api.Put("/nights/:id/quality", handlers.SetQuality(application))
}
