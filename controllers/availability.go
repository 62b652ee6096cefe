package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/engine"
	"github.com/bookwell/availability-engine/metrics"
	"github.com/bookwell/availability-engine/redis"
	"github.com/bookwell/availability-engine/utils"
)

type openInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GetOpenIntervals godoc
// @Summary Resolve open intervals for a worker on a date
// @Description Business hours intersected with the worker's weekly availability, minus blocked dates
// @Tags availability
// @Produce json
// @Param worker_id query int true "Worker ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} utils.ErrorResponse
// @Router /availability [get]
func GetOpenIntervals(c *fiber.Ctx) error {
	workerID := c.QueryInt("worker_id")
	date := c.Query("date")
	if workerID <= 0 || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "worker_id and date are required",
		})
	}

	open, err := eng.ResolveOpenIntervals(c.UserContext(), uint(workerID), date)
	if err != nil {
		return engineError(c, err, fiber.StatusBadRequest)
	}

	intervals := make([]openInterval, 0, len(open))
	for _, iv := range open {
		intervals = append(intervals, openInterval{
			Start: engine.FormatClock(iv.Start),
			End:   engine.FormatClock(iv.End),
		})
	}
	return c.JSON(fiber.Map{"open_intervals": intervals})
}

// GetSlots godoc
// @Summary List bookable start times for a service
// @Description Free intervals quantized by the service duration and the business buffer
// @Tags availability
// @Produce json
// @Param worker_id query int true "Worker ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_id query int true "Service ID"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} utils.ErrorResponse
// @Router /slots [get]
func GetSlots(c *fiber.Ctx) error {
	workerID := c.QueryInt("worker_id")
	serviceID := c.QueryInt("service_id")
	date := c.Query("date")
	if workerID <= 0 || serviceID <= 0 || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "worker_id, service_id and date are required",
		})
	}

	if slots, ok := redis.GetCachedSlots(uint(workerID), date, uint(serviceID)); ok {
		metrics.IncSlotResolution("hit")
		return c.JSON(fiber.Map{"slots": slots})
	}

	slots, err := eng.SlotsForService(c.UserContext(), uint(workerID), uint(serviceID), date)
	if err != nil {
		return engineError(c, err, fiber.StatusBadRequest)
	}
	if slots == nil {
		slots = []string{}
	}

	metrics.IncSlotResolution("miss")
	redis.CacheSlots(uint(workerID), date, uint(serviceID), slots)
	return c.JSON(fiber.Map{"slots": slots})
}

// Reserve godoc
// @Summary Reserve a slot
// @Description Validates the request, re-checks the free intervals under a per-worker/date lock and inserts the booking
// @Tags availability
// @Accept json
// @Produce json
// @Param request body engine.ReserveRequest true "Reservation"
// @Success 201 {object} models.Booking
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /reserve [post]
func Reserve(c *fiber.Ctx) error {
	var req engine.ReserveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	booking, err := eng.Reserve(c.UserContext(), req)
	if err != nil {
		switch {
		case engine.IsConflict(err):
			metrics.IncReservation("conflict")
		case engine.IsInvalidRequest(err):
			metrics.IncReservation("invalid")
		default:
			metrics.IncReservation("error")
		}
		return engineError(c, err, fiber.StatusUnprocessableEntity)
	}

	metrics.IncReservation("created")
	redis.InvalidateSlots(req.WorkerID, req.Date)
	return c.Status(fiber.StatusCreated).JSON(booking)
}
