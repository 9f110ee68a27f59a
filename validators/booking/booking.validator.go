package bookingValidator

import (
	"evrental/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateBookingValidator checks the booking payload and its date window
func CreateBookingValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		VehicleID uint      `json:"vehicle_id"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if reqData.VehicleID == 0 {
		errors["vehicle_id"] = "vehicle_id is required"
	}
	if reqData.StartDate.IsZero() {
		errors["start_date"] = "start_date is required (RFC3339)"
	}
	if reqData.EndDate.IsZero() {
		errors["end_date"] = "end_date is required (RFC3339)"
	}
	if !reqData.StartDate.IsZero() && !reqData.EndDate.IsZero() {
		if !reqData.EndDate.After(reqData.StartDate) {
			errors["end_date"] = "end_date must be after start_date"
		}
		if reqData.StartDate.Before(time.Now().Add(-time.Hour)) {
			errors["start_date"] = "start_date cannot be in the past"
		}
		if reqData.EndDate.Sub(reqData.StartDate) > 30*24*time.Hour {
			errors["end_date"] = "Bookings are limited to 30 days"
		}
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedBooking", reqData)
	return c.Next()
}
