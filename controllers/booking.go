package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/db"
	"github.com/bookwell/availability-engine/models"
	"github.com/bookwell/availability-engine/redis"
	"github.com/bookwell/availability-engine/utils"
)

// GetAllBookings godoc
// @Summary List bookings
// @Description List bookings, optionally filtered by worker, business, date or status
// @Tags bookings
// @Produce json
// @Success 200 {array} models.Booking
// @Failure 500 {object} utils.ErrorResponse
// @Router /bookings [get]
func GetAllBookings(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Booking{})

	if workerID := c.QueryInt("worker_id"); workerID > 0 {
		query = query.Where("worker_id = ?", workerID)
	}
	if businessID := c.QueryInt("business_id"); businessID > 0 {
		query = query.Where("business_id = ?", businessID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("date asc, start_time asc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 404 {object} utils.ErrorResponse
// @Router /bookings/{id} [get]
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// UpdateBookingStatus godoc
// @Summary Update a booking's status
// @Description Status transitions are the only mutation a booking supports
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /bookings/{id}/status [patch]
func UpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	wasOccupying := booking.Occupies()
	if err := booking.UpdateStatus(db.DB, body.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	// A booking leaving pending/confirmed frees its slot.
	if wasOccupying && !booking.Occupies() {
		redis.InvalidateSlots(booking.WorkerID, booking.Date)
	}
	return c.JSON(booking)
}
