package vehicleValidator

import (
	"evrental/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateVehicleValidator checks the vehicle registration payload
func CreateVehicleValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		StationID    uint    `json:"station_id"`
		Name         string  `json:"name"`
		Type         string  `json:"type"`
		LicensePlate string  `json:"license_plate"`
		BatteryLevel int     `json:"battery_level"`
		RangeKm      int     `json:"range_km"`
		PricePerDay  float64 `json:"price_per_day"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if reqData.StationID == 0 {
		errors["station_id"] = "station_id is required"
	}
	if reqData.Name == "" {
		errors["name"] = "Name is required"
	}
	if reqData.Type == "" {
		errors["type"] = "Type is required"
	}
	if reqData.LicensePlate == "" {
		errors["license_plate"] = "License plate is required"
	}
	if reqData.BatteryLevel < 0 || reqData.BatteryLevel > 100 {
		errors["battery_level"] = "Battery level must be 0-100"
	}
	if reqData.RangeKm < 0 {
		errors["range_km"] = "Range cannot be negative"
	}
	if reqData.PricePerDay <= 0 {
		errors["price_per_day"] = "Price per day must be positive"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedVehicle", reqData)
	return c.Next()
}
