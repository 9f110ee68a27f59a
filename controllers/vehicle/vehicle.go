package vehicleController

import (
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateVehicle godoc
// @Summary  Register a vehicle at a station (admin)
// @Tags     vehicles
// @Security BearerAuth
// @Router   /api/vehicles [post]
func CreateVehicle(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVehicle").(*struct {
		StationID    uint    `json:"station_id"`
		Name         string  `json:"name"`
		Type         string  `json:"type"`
		LicensePlate string  `json:"license_plate"`
		BatteryLevel int     `json:"battery_level"`
		RangeKm      int     `json:"range_km"`
		PricePerDay  float64 `json:"price_per_day"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The referenced station must exist
	var station models.Station
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.StationID).First(&station).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Station not found!", nil)
	}

	if err := database.Database.Db.Where("license_plate = ? AND is_deleted = false", reqData.LicensePlate).First(&models.Vehicle{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "License plate already registered!", nil)
	}

	vehicle := models.Vehicle{
		StationID:    reqData.StationID,
		Name:         reqData.Name,
		Type:         reqData.Type,
		LicensePlate: reqData.LicensePlate,
		BatteryLevel: reqData.BatteryLevel,
		RangeKm:      reqData.RangeKm,
		PricePerDay:  reqData.PricePerDay,
	}

	if err := database.Database.Db.Create(&vehicle).Error; err != nil {
		log.Printf("Error creating vehicle: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create vehicle!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Vehicle created.", vehicle)
}

// ListVehicles godoc
// @Summary  List vehicles with station/type/status filters
// @Tags     vehicles
// @Router   /api/vehicles [get]
func ListVehicles(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination params!", nil)
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Vehicle{}).Where("is_deleted = false")

	if stationID := c.QueryInt("station_id", 0); stationID > 0 {
		query = query.Where("station_id = ?", stationID)
	}
	if vehicleType := c.Query("type"); vehicleType != "" {
		query = query.Where("type = ?", vehicleType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var vehicles []models.Vehicle
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&vehicles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch vehicles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle list.", fiber.Map{
		"vehicles": vehicles,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetVehicle godoc
// @Summary  Vehicle detail
// @Tags     vehicles
// @Router   /api/vehicles/{id} [get]
func GetVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	var vehicle models.Vehicle
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&vehicle).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle detail.", vehicle)
}

// UpdateVehicle godoc
// @Summary  Update vehicle fields (admin)
// @Tags     vehicles
// @Security BearerAuth
// @Router   /api/vehicles/{id} [put]
func UpdateVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	var vehicle models.Vehicle
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&vehicle).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}

	reqData := new(struct {
		StationID    *uint    `json:"station_id"`
		Name         *string  `json:"name"`
		BatteryLevel *int     `json:"battery_level"`
		RangeKm      *int     `json:"range_km"`
		PricePerDay  *float64 `json:"price_per_day"`
		Status       *string  `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.StationID != nil {
		var station models.Station
		if err := database.Database.Db.Where("id = ? AND is_deleted = false", *reqData.StationID).First(&station).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Station not found!", nil)
		}
		vehicle.StationID = *reqData.StationID
	}
	if reqData.Name != nil {
		vehicle.Name = *reqData.Name
	}
	if reqData.BatteryLevel != nil {
		if *reqData.BatteryLevel < 0 || *reqData.BatteryLevel > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Battery level must be 0-100!", nil)
		}
		vehicle.BatteryLevel = *reqData.BatteryLevel
	}
	if reqData.RangeKm != nil {
		vehicle.RangeKm = *reqData.RangeKm
	}
	if reqData.PricePerDay != nil {
		if *reqData.PricePerDay <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Price per day must be positive!", nil)
		}
		vehicle.PricePerDay = *reqData.PricePerDay
	}
	if reqData.Status != nil {
		switch *reqData.Status {
		case models.VehicleAvailable, models.VehicleRented, models.VehicleMaintenance:
			vehicle.Status = *reqData.Status
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown vehicle status!", nil)
		}
	}

	if err := database.Database.Db.Save(&vehicle).Error; err != nil {
		log.Printf("Error updating vehicle: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update vehicle!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle updated.", vehicle)
}

// DeleteVehicle godoc
// @Summary  Soft-delete a vehicle (admin)
// @Tags     vehicles
// @Security BearerAuth
// @Router   /api/vehicles/{id} [delete]
func DeleteVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid vehicle id!", nil)
	}

	var vehicle models.Vehicle
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&vehicle).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}
	if vehicle.Status == models.VehicleRented {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Vehicle is currently rented!", nil)
	}

	if err := database.Database.Db.Model(&vehicle).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete vehicle!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle deleted.", nil)
}
