package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/controllers"
)

// SetupScheduleRoutes configures the schedule-management routes feeding
// the resolver: business weekly hours, worker weekly availability and
// blocked dates.
func SetupScheduleRoutes(app *fiber.App) {
	hours := app.Group("/business-hours")
	hours.Get("/", controllers.GetAllBusinessHours)
	hours.Get("/:id", controllers.GetBusinessHours)
	hours.Post("/", controllers.CreateBusinessHours)
	hours.Patch("/:id", controllers.UpdateBusinessHours)
	hours.Delete("/:id", controllers.DeleteBusinessHours)

	availability := app.Group("/worker-availability")
	availability.Get("/", controllers.GetAllWorkerAvailability)
	availability.Get("/:id", controllers.GetWorkerAvailability)
	availability.Post("/", controllers.CreateWorkerAvailability)
	availability.Patch("/:id", controllers.UpdateWorkerAvailability)
	availability.Delete("/:id", controllers.DeleteWorkerAvailability)

	// Blocked dates are created and deleted ad hoc, never updated.
	blocked := app.Group("/blocked-dates")
	blocked.Get("/", controllers.GetBlockedDates)
	blocked.Post("/", controllers.CreateBlockedDate)
	blocked.Delete("/:id", controllers.DeleteBlockedDate)
}
