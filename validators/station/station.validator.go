package stationValidator

import (
	"evrental/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateStationValidator checks the station creation payload
func CreateStationValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		Name      string  `json:"name"`
		Address   string  `json:"address"`
		City      string  `json:"city"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Capacity  int     `json:"capacity"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if reqData.Name == "" {
		errors["name"] = "Name is required"
	}
	if reqData.Address == "" {
		errors["address"] = "Address is required"
	}
	if reqData.City == "" {
		errors["city"] = "City is required"
	}
	if reqData.Latitude < -90 || reqData.Latitude > 90 {
		errors["latitude"] = "Latitude must be between -90 and 90"
	}
	if reqData.Longitude < -180 || reqData.Longitude > 180 {
		errors["longitude"] = "Longitude must be between -180 and 180"
	}
	if reqData.Capacity < 1 {
		errors["capacity"] = "Capacity must be at least 1"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedStation", reqData)
	return c.Next()
}
