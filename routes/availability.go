package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/controllers"
)

// SetupAvailabilityRoutes configures the resolution and reservation endpoints
func SetupAvailabilityRoutes(app *fiber.App) {
	app.Get("/availability", controllers.GetOpenIntervals)
	app.Get("/slots", controllers.GetSlots)
	app.Post("/reserve", controllers.Reserve)
}
