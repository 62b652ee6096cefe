package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/controllers"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings")
	booking.Get("/", controllers.GetAllBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Patch("/:id/status", controllers.UpdateBookingStatus)
}
