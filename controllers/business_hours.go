package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bookwell/availability-engine/db"
	"github.com/bookwell/availability-engine/engine"
	"github.com/bookwell/availability-engine/models"
	"github.com/bookwell/availability-engine/utils"
)

// GetAllBusinessHours retrieves business hours, optionally for one business
func GetAllBusinessHours(c *fiber.Ctx) error {
	query := db.DB.Model(&models.BusinessHours{})
	if businessID := c.QueryInt("business_id"); businessID > 0 {
		query = query.Where("business_id = ?", businessID)
	}

	var hours []models.BusinessHours
	if err := query.Order("day_of_week asc").Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get business hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(hours)
}

// GetBusinessHours retrieves a specific business hours row by ID
func GetBusinessHours(c *fiber.Ctx) error {
	id := c.Params("id")
	var hours models.BusinessHours
	if err := db.DB.First(&hours, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Business hours not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(hours)
}

// CreateBusinessHours creates a weekly hours row
func CreateBusinessHours(c *fiber.Ctx) error {
	hours := new(models.BusinessHours)
	if err := c.BodyParser(hours); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !hours.IsClosed {
		if err := validateWeeklyWindow(int(hours.DayOfWeek), hours.OpenTime, hours.CloseTime); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid business hours",
				Error:   err.Error(),
			})
		}
	}
	if err := db.DB.Create(hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create business hours",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(hours)
}

// UpdateBusinessHours updates an existing weekly hours row
func UpdateBusinessHours(c *fiber.Ctx) error {
	id := c.Params("id")
	var hours models.BusinessHours
	if err := db.DB.First(&hours, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Business hours not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&hours); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !hours.IsClosed {
		if err := validateWeeklyWindow(int(hours.DayOfWeek), hours.OpenTime, hours.CloseTime); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid business hours",
				Error:   err.Error(),
			})
		}
	}
	if err := db.DB.Save(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update business hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(hours)
}

// DeleteBusinessHours deletes a weekly hours row by ID
func DeleteBusinessHours(c *fiber.Ctx) error {
	id := c.Params("id")
	var hours models.BusinessHours
	if err := db.DB.First(&hours, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Business hours not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete business hours",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// validateWeeklyWindow checks a day-of-week plus "HH:MM" window as it
// enters the schedule tables, so the aggregator never sees malformed
// rows.
func validateWeeklyWindow(day int, start, end string) error {
	if day < int(models.Sunday) || day > int(models.Saturday) {
		return fmt.Errorf("day_of_week must be 0 (Sunday) through 6 (Saturday)")
	}
	s, err := engine.ParseClock(start)
	if err != nil {
		return err
	}
	e, err := engine.ParseClock(end)
	if err != nil {
		return err
	}
	if e <= s {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}
