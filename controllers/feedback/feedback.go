package feedbackController

import (
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedback godoc
// @Summary  Rate a completed rental (once per rental)
// @Tags     feedback
// @Security BearerAuth
// @Router   /api/feedback [post]
func CreateFeedback(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedFeedback").(*struct {
		RentalID       uint   `json:"rental_id"`
		VehicleRating  int    `json:"vehicle_rating"`
		StationRating  int    `json:"station_rating"`
		VehicleComment string `json:"vehicle_comment"`
		StationComment string `json:"station_comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var rental models.Rental
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.RentalID).First(&rental).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rental not found!", nil)
	}
	if rental.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only rate your own rentals!", nil)
	}
	if rental.Status != models.RentalCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Feedback is only open after the rental completes!", nil)
	}

	var existing int64
	database.Database.Db.Model(&models.Feedback{}).Where("rental_id = ?", rental.ID).Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This rental already has feedback!", nil)
	}

	feedback := models.Feedback{
		UserID:         userId,
		RentalID:       rental.ID,
		VehicleID:      rental.VehicleID,
		StationID:      rental.StationID,
		VehicleRating:  reqData.VehicleRating,
		StationRating:  reqData.StationRating,
		VehicleComment: reqData.VehicleComment,
		StationComment: reqData.StationComment,
		Status:         models.FeedbackActive,
	}

	if err := database.Database.Db.Create(&feedback).Error; err != nil {
		// The unique index on rental_id backstops the race on double-submit
		log.Printf("Error creating feedback: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Failed to save feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback saved.", feedback)
}

// ListFeedback godoc
// @Summary  Feedback for a vehicle or station
// @Tags     feedback
// @Router   /api/feedback [get]
func ListFeedback(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination params!", nil)
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Feedback{})

	// Hidden feedback is only visible to staff
	if !middleware.IsStaff(c) {
		query = query.Where("status = ?", models.FeedbackActive)
	}

	if vehicleID := c.QueryInt("vehicle_id", 0); vehicleID > 0 {
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	if stationID := c.QueryInt("station_id", 0); stationID > 0 {
		query = query.Where("station_id = ?", stationID)
	}

	var total int64
	query.Count(&total)

	var feedbacks []models.Feedback
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback list.", fiber.Map{
		"feedback": feedbacks,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MyFeedback godoc
// @Summary  Feedback written by the caller
// @Tags     feedback
// @Security BearerAuth
// @Router   /api/feedback/my-feedback [get]
func MyFeedback(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var feedbacks []models.Feedback
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My feedback.", feedbacks)
}

// HideFeedback godoc
// @Summary  Hide a feedback entry from public listings (admin)
// @Tags     feedback
// @Security BearerAuth
// @Router   /api/feedback/{id}/hide [put]
func HideFeedback(c *fiber.Ctx) error {
	return setFeedbackStatus(c, models.FeedbackHidden, "Feedback hidden.")
}

// UnhideFeedback godoc
// @Summary  Restore a hidden feedback entry (admin)
// @Tags     feedback
// @Security BearerAuth
// @Router   /api/feedback/{id}/unhide [put]
func UnhideFeedback(c *fiber.Ctx) error {
	return setFeedbackStatus(c, models.FeedbackActive, "Feedback restored.")
}

func setFeedbackStatus(c *fiber.Ctx, status string, message string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid feedback id!", nil)
	}

	var feedback models.Feedback
	if err := database.Database.Db.Where("id = ?", id).First(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	if err := database.Database.Db.Model(&feedback).Update("status", status).Error; err != nil {
		log.Printf("Error updating feedback status: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}
	feedback.Status = status

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, feedback)
}
