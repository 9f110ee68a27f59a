package rentalController

import (
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"evrental/utils"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartRental godoc
// @Summary  Hand over the vehicle for a confirmed booking (staff)
// @Tags     rentals
// @Security BearerAuth
// @Router   /api/rentals/start [post]
func StartRental(c *fiber.Ctx) error {
	staffId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		BookingID     uint    `json:"booking_id"`
		StartOdometer float64 `json:"start_odometer"`
		Notes         string  `json:"notes"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.BookingID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "booking_id is required!", nil)
	}

	var booking models.Booking
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.BookingID).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}
	if booking.Status != models.BookingConfirmed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only confirmed bookings can start a rental!", nil)
	}

	var vehicle models.Vehicle
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", booking.VehicleID).First(&vehicle).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}
	if vehicle.Status != models.VehicleAvailable {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Vehicle is not available for handover!", nil)
	}

	rental := models.Rental{
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		VehicleID:     vehicle.ID,
		StationID:     booking.StationID,
		VehicleType:   vehicle.Type,
		PickupAt:      time.Now(),
		StartOdometer: reqData.StartOdometer,
		Status:        models.RentalActive,
		StartedBy:     staffId,
		Notes:         reqData.Notes,
	}

	contract := models.Contract{
		Number:    uuid.NewString(),
		UserID:    booking.UserID,
		VehicleID: vehicle.ID,
		Status:    models.ContractActive,
		Terms: fmt.Sprintf(
			"Rental of %s (%s) from %s to %s. Rate %.0f VND/day, deposit %.0f VND. The renter is responsible for the vehicle until its return.",
			vehicle.Name, vehicle.LicensePlate,
			booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02"),
			vehicle.PricePerDay, booking.DepositAmount,
		),
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rental).Error; err != nil {
			return err
		}

		contract.RentalID = rental.ID
		if err := tx.Create(&contract).Error; err != nil {
			return err
		}

		if err := tx.Model(&vehicle).Update("status", models.VehicleRented).Error; err != nil {
			return err
		}

		return tx.Model(&booking).Update("status", models.BookingInProgress).Error
	})
	if err != nil {
		log.Printf("Error starting rental: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start rental!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Rental started.", fiber.Map{
		"rental":   rental,
		"contract": contract,
	})
}

// CompleteRental godoc
// @Summary  Close a rental at vehicle return (staff)
// @Tags     rentals
// @Security BearerAuth
// @Router   /api/rentals/{id}/complete [put]
func CompleteRental(c *fiber.Ctx) error {
	staffId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid rental id!", nil)
	}

	reqData := new(struct {
		EndOdometer   float64 `json:"end_odometer"`
		BatteryLevel  *int    `json:"battery_level"`
		AdditionalFee float64 `json:"additional_fee"`
		FeeReason     string  `json:"fee_reason"`
		Notes         string  `json:"notes"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var rental models.Rental
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&rental).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rental not found!", nil)
	}
	if rental.Status != models.RentalActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rental is already completed!", nil)
	}
	if reqData.EndOdometer < rental.StartOdometer {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "End odometer cannot be below start odometer!", nil)
	}

	var booking models.Booking
	if err := database.Database.Db.Where("id = ?", rental.BookingID).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	var vehicle models.Vehicle
	if err := database.Database.Db.Where("id = ?", rental.VehicleID).First(&vehicle).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}

	now := time.Now()
	days := utils.RentalDays(rental.PickupAt, now)
	distance := reqData.EndOdometer - rental.StartOdometer
	totalAmount := vehicle.PricePerDay*float64(days) + reqData.AdditionalFee

	rental.ReturnAt = &now
	rental.EndOdometer = reqData.EndOdometer
	rental.DistanceKm = distance
	rental.DaysRented = days
	rental.TotalAmount = totalAmount
	rental.Status = models.RentalCompleted
	rental.CompletedBy = staffId
	if reqData.Notes != "" {
		rental.Notes = reqData.Notes
	}

	feePayment := models.Payment{
		BookingID:   booking.ID,
		UserID:      rental.UserID,
		PaymentType: models.PaymentTypeRentalFee,
		Method:      models.PaymentMethodCash, // Settled at the counter unless paid online later
		Amount:      vehicle.PricePerDay * float64(days),
		Status:      models.PaymentPending,
		TxnRef:      uuid.NewString(),
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&rental).Error; err != nil {
			return err
		}

		vehicleUpdates := map[string]interface{}{"status": models.VehicleAvailable}
		if reqData.BatteryLevel != nil {
			vehicleUpdates["battery_level"] = *reqData.BatteryLevel
		}
		if err := tx.Model(&vehicle).Updates(vehicleUpdates).Error; err != nil {
			return err
		}

		if err := tx.Model(&booking).Update("status", models.BookingCompleted).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Contract{}).
			Where("rental_id = ? AND is_deleted = false", rental.ID).
			Update("status", models.ContractCompleted).Error; err != nil {
			return err
		}

		if err := tx.Create(&feePayment).Error; err != nil {
			return err
		}

		if reqData.AdditionalFee > 0 {
			extra := models.Payment{
				BookingID:   booking.ID,
				UserID:      rental.UserID,
				PaymentType: models.PaymentTypeAdditionalFee,
				Method:      models.PaymentMethodCash,
				Amount:      reqData.AdditionalFee,
				Status:      models.PaymentPending,
				Reason:      reqData.FeeReason,
				TxnRef:      uuid.NewString(),
			}
			if err := tx.Create(&extra).Error; err != nil {
				return err
			}
		}

		// Fold the completed rental into the user's stats exactly once,
		// inside the same transaction as the completion itself.
		return utils.RecordRentalStats(tx, rental.UserID, utils.RentalOutcome{
			Distance:    distance,
			Spent:       totalAmount,
			Days:        days,
			VehicleType: rental.VehicleType,
			StationID:   rental.StationID,
			RentalDate:  now,
		})
	})
	if err != nil {
		log.Printf("Error completing rental: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete rental!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rental completed.", rental)
}

// ListRentals godoc
// @Summary  Paginated rental list (staff)
// @Tags     rentals
// @Security BearerAuth
// @Router   /api/rentals [get]
func ListRentals(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination params!", nil)
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Rental{}).Where("is_deleted = false")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var rentals []models.Rental
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&rentals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rentals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rental list.", fiber.Map{
		"rentals": rentals,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MyRentals godoc
// @Summary  Rentals belonging to the caller
// @Tags     rentals
// @Security BearerAuth
// @Router   /api/rentals/my-rentals [get]
func MyRentals(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var rentals []models.Rental
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rentals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My rentals.", rentals)
}

// GetRental godoc
// @Summary  Rental detail (owner or staff)
// @Tags     rentals
// @Security BearerAuth
// @Router   /api/rentals/{id} [get]
func GetRental(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid rental id!", nil)
	}

	var rental models.Rental
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&rental).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rental not found!", nil)
	}

	if rental.UserID != userId && !middleware.IsStaff(c) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this rental!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rental detail.", rental)
}
