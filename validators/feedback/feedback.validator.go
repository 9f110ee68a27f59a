package feedbackValidator

import (
	"evrental/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedbackValidator checks the feedback payload and its rating range
func CreateFeedbackValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		RentalID       uint   `json:"rental_id"`
		VehicleRating  int    `json:"vehicle_rating"`
		StationRating  int    `json:"station_rating"`
		VehicleComment string `json:"vehicle_comment"`
		StationComment string `json:"station_comment"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if reqData.RentalID == 0 {
		errors["rental_id"] = "rental_id is required"
	}
	if reqData.VehicleRating < 1 || reqData.VehicleRating > 5 {
		errors["vehicle_rating"] = "vehicle_rating must be between 1 and 5"
	}
	if reqData.StationRating < 1 || reqData.StationRating > 5 {
		errors["station_rating"] = "station_rating must be between 1 and 5"
	}
	if len(reqData.VehicleComment) > 1000 {
		errors["vehicle_comment"] = "vehicle_comment is limited to 1000 characters"
	}
	if len(reqData.StationComment) > 1000 {
		errors["station_comment"] = "station_comment is limited to 1000 characters"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedFeedback", reqData)
	return c.Next()
}
