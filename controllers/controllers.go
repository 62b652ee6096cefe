package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/engine"
	"github.com/bookwell/availability-engine/utils"
)

var eng *engine.Engine

// Init wires the shared engine instance. Called once from main after
// the stores are constructed.
func Init(e *engine.Engine) {
	eng = e
}

// engineError maps engine failures onto HTTP. Conflicts are 409 and
// expected; invalid requests get the caller-specific status (400 for
// query endpoints, 422 for reservations); everything else is a storage
// failure the caller may retry with backoff.
func engineError(c *fiber.Ctx, err error, invalidStatus int) error {
	switch {
	case engine.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Slot is no longer available",
			Reason:  engine.ErrorReason(err),
		})
	case engine.IsInvalidRequest(err):
		return c.Status(invalidStatus).JSON(utils.ErrorResponse{
			Message: "Invalid request",
			Reason:  engine.ErrorReason(err),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve availability",
			Error:   err.Error(),
		})
	}
}
