package stationController

import (
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateStation godoc
// @Summary  Create a station (admin)
// @Tags     stations
// @Security BearerAuth
// @Router   /api/stations [post]
func CreateStation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStation").(*struct {
		Name      string  `json:"name"`
		Address   string  `json:"address"`
		City      string  `json:"city"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Capacity  int     `json:"capacity"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	station := models.Station{
		Name:      reqData.Name,
		Address:   reqData.Address,
		City:      reqData.City,
		Latitude:  reqData.Latitude,
		Longitude: reqData.Longitude,
		Capacity:  reqData.Capacity,
	}

	if err := database.Database.Db.Create(&station).Error; err != nil {
		log.Printf("Error creating station: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create station!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Station created.", station)
}

// ListStations godoc
// @Summary  List stations
// @Tags     stations
// @Router   /api/stations [get]
func ListStations(c *fiber.Ctx) error {
	query := database.Database.Db.Where("is_deleted = false")

	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var stations []models.Station
	if err := query.Order("name ASC").Find(&stations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Station list.", stations)
}

// GetStation godoc
// @Summary  Station detail
// @Tags     stations
// @Router   /api/stations/{id} [get]
func GetStation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid station id!", nil)
	}

	var station models.Station
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&station).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Station not found!", nil)
	}

	// Count vehicles currently parked at the station
	var available int64
	database.Database.Db.Model(&models.Vehicle{}).
		Where("station_id = ? AND status = ? AND is_deleted = false", station.ID, models.VehicleAvailable).
		Count(&available)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Station detail.", fiber.Map{
		"station":           station,
		"availableVehicles": available,
	})
}

// UpdateStation godoc
// @Summary  Update a station (admin)
// @Tags     stations
// @Security BearerAuth
// @Router   /api/stations/{id} [put]
func UpdateStation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid station id!", nil)
	}

	var station models.Station
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&station).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Station not found!", nil)
	}

	reqData := new(struct {
		Name      *string  `json:"name"`
		Address   *string  `json:"address"`
		City      *string  `json:"city"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Capacity  *int     `json:"capacity"`
		Status    *string  `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		station.Name = *reqData.Name
	}
	if reqData.Address != nil {
		station.Address = *reqData.Address
	}
	if reqData.City != nil {
		station.City = *reqData.City
	}
	if reqData.Latitude != nil {
		station.Latitude = *reqData.Latitude
	}
	if reqData.Longitude != nil {
		station.Longitude = *reqData.Longitude
	}
	if reqData.Capacity != nil {
		station.Capacity = *reqData.Capacity
	}
	if reqData.Status != nil {
		if *reqData.Status != "active" && *reqData.Status != "inactive" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be active or inactive!", nil)
		}
		station.Status = *reqData.Status
	}

	if err := database.Database.Db.Save(&station).Error; err != nil {
		log.Printf("Error updating station: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update station!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Station updated.", station)
}

// DeleteStation godoc
// @Summary  Soft-delete a station (admin)
// @Tags     stations
// @Security BearerAuth
// @Router   /api/stations/{id} [delete]
func DeleteStation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid station id!", nil)
	}

	var station models.Station
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&station).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Station not found!", nil)
	}

	// Refuse while vehicles are still assigned
	var vehicles int64
	database.Database.Db.Model(&models.Vehicle{}).
		Where("station_id = ? AND is_deleted = false", station.ID).
		Count(&vehicles)
	if vehicles > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Station still has vehicles assigned!", nil)
	}

	if err := database.Database.Db.Model(&station).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete station!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Station deleted.", nil)
}
