package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/db"
	"github.com/bookwell/availability-engine/models"
	"github.com/bookwell/availability-engine/utils"
)

// GetAllWorkerAvailability retrieves weekly windows, optionally for one worker
func GetAllWorkerAvailability(c *fiber.Ctx) error {
	query := db.DB.Model(&models.WorkerAvailability{})
	if workerID := c.QueryInt("worker_id"); workerID > 0 {
		query = query.Where("worker_id = ?", workerID)
	}

	var availability []models.WorkerAvailability
	if err := query.Order("day_of_week asc").Find(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get worker availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(availability)
}

// GetWorkerAvailability retrieves a specific weekly window by ID
func GetWorkerAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var availability models.WorkerAvailability
	if err := db.DB.First(&availability, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Worker availability not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(availability)
}

// CreateWorkerAvailability creates a weekly window
func CreateWorkerAvailability(c *fiber.Ctx) error {
	availability := new(models.WorkerAvailability)
	if err := c.BodyParser(availability); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validateWeeklyWindow(int(availability.DayOfWeek), availability.StartTime, availability.EndTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid worker availability",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create worker availability",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(availability)
}

// UpdateWorkerAvailability updates an existing weekly window
func UpdateWorkerAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var availability models.WorkerAvailability
	if err := db.DB.First(&availability, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Worker availability not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&availability); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validateWeeklyWindow(int(availability.DayOfWeek), availability.StartTime, availability.EndTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid worker availability",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update worker availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(availability)
}

// DeleteWorkerAvailability deletes a weekly window by ID
func DeleteWorkerAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var availability models.WorkerAvailability
	if err := db.DB.First(&availability, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Worker availability not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete worker availability",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
