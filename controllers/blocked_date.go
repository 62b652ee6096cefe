package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/db"
	"github.com/bookwell/availability-engine/engine"
	"github.com/bookwell/availability-engine/models"
	"github.com/bookwell/availability-engine/redis"
	"github.com/bookwell/availability-engine/utils"
)

// GetBlockedDates lists blocked dates, optionally filtered by worker and date
func GetBlockedDates(c *fiber.Ctx) error {
	query := db.DB.Model(&models.WorkerBlockedDate{})
	if workerID := c.QueryInt("worker_id"); workerID > 0 {
		query = query.Where("worker_id = ?", workerID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var blocked []models.WorkerBlockedDate
	if err := query.Order("date asc").Find(&blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get blocked dates",
			Error:   err.Error(),
		})
	}
	return c.JSON(blocked)
}

// CreateBlockedDate creates a blocked date. Blocked dates are created
// and deleted, never updated.
func CreateBlockedDate(c *fiber.Ctx) error {
	blocked := new(models.WorkerBlockedDate)
	if err := c.BodyParser(blocked); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if _, err := engine.ParseDate(blocked.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid blocked date",
			Error:   "date must be formatted YYYY-MM-DD",
		})
	}
	if (blocked.StartTime == nil) != (blocked.EndTime == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid blocked date",
			Error:   "start_time and end_time must both be set or both be omitted",
		})
	}
	if !blocked.FullDay() {
		start, err := engine.ParseClock(*blocked.StartTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid blocked date",
				Error:   err.Error(),
			})
		}
		end, err := engine.ParseClock(*blocked.EndTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid blocked date",
				Error:   err.Error(),
			})
		}
		if end <= start {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid blocked date",
				Error:   "end time must be after start time",
			})
		}
	}

	if err := db.DB.Create(blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create blocked date",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(blocked.WorkerID, blocked.Date)
	return c.Status(fiber.StatusCreated).JSON(blocked)
}

// DeleteBlockedDate deletes a blocked date by ID
func DeleteBlockedDate(c *fiber.Ctx) error {
	id := c.Params("id")
	var blocked models.WorkerBlockedDate
	if err := db.DB.First(&blocked, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Blocked date not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete blocked date",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(blocked.WorkerID, blocked.Date)
	return c.SendStatus(fiber.StatusNoContent)
}
