package bookingController

import (
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"evrental/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBooking godoc
// @Summary  Reserve a vehicle for a date window (KYC-approved users)
// @Tags     bookings
// @Security BearerAuth
// @Router   /api/bookings [post]
func CreateBooking(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBooking").(*struct {
		VehicleID uint      `json:"vehicle_id"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Bookings require an approved KYC
	if user.KYCStatus != models.KYCApproved {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "KYC verification required before booking!", nil)
	}

	var vehicle models.Vehicle
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.VehicleID).First(&vehicle).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle not found!", nil)
	}
	if vehicle.Status != models.VehicleAvailable {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Vehicle is not available!", nil)
	}

	// Reject overlapping active bookings for the same vehicle
	var overlapping int64
	database.Database.Db.Model(&models.Booking{}).
		Where("vehicle_id = ? AND status IN ? AND is_deleted = false",
			vehicle.ID, []models.BookingStatus{models.BookingPending, models.BookingConfirmed, models.BookingInProgress}).
		Where("start_date < ? AND end_date > ?", reqData.EndDate, reqData.StartDate).
		Count(&overlapping)
	if overlapping > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Vehicle is already booked for that period!", nil)
	}

	days := utils.RentalDays(reqData.StartDate, reqData.EndDate)
	rentalAmount := vehicle.PricePerDay * float64(days)

	booking := models.Booking{
		Code:          uuid.NewString(),
		UserID:        userId,
		VehicleID:     vehicle.ID,
		StationID:     vehicle.StationID,
		StartDate:     reqData.StartDate,
		EndDate:       reqData.EndDate,
		RentalAmount:  rentalAmount,
		DepositAmount: rentalAmount * vehicle.DepositRate,
		Status:        models.BookingPending,
	}

	if err := database.Database.Db.Create(&booking).Error; err != nil {
		log.Printf("Error creating booking: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking created.", booking)
}

// ListBookings godoc
// @Summary  Paginated booking list (staff)
// @Tags     bookings
// @Security BearerAuth
// @Router   /api/bookings [get]
func ListBookings(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination params!", nil)
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Booking{}).Where("is_deleted = false")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if stationID := c.QueryInt("station_id", 0); stationID > 0 {
		query = query.Where("station_id = ?", stationID)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking list.", fiber.Map{
		"bookings": bookings,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MyBookings godoc
// @Summary  Bookings belonging to the caller
// @Tags     bookings
// @Security BearerAuth
// @Router   /api/bookings/my-bookings [get]
func MyBookings(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var bookings []models.Booking
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My bookings.", bookings)
}

// GetBooking godoc
// @Summary  Booking detail (owner or staff)
// @Tags     bookings
// @Security BearerAuth
// @Router   /api/bookings/{id} [get]
func GetBooking(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	var booking models.Booking
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	if booking.UserID != userId && !middleware.IsStaff(c) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking detail.", booking)
}

// ConfirmBooking godoc
// @Summary  Confirm a pending booking (staff)
// @Tags     bookings
// @Security BearerAuth
// @Router   /api/bookings/{id}/confirm [put]
func ConfirmBooking(c *fiber.Ctx) error {
	staffId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	var booking models.Booking
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	// Only pending bookings can be confirmed; a replayed confirm fails here
	if booking.Status != models.BookingPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending bookings can be confirmed!", nil)
	}

	booking.Status = models.BookingConfirmed
	booking.ConfirmedBy = staffId
	if err := database.Database.Db.Save(&booking).Error; err != nil {
		log.Printf("Error confirming booking: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm booking!", nil)
	}

	var user models.User
	var vehicle models.Vehicle
	if database.Database.Db.First(&user, booking.UserID).Error == nil &&
		database.Database.Db.First(&vehicle, booking.VehicleID).Error == nil {
		utils.SendBookingConfirmedEmail(user.Email, user.Name, booking.Code, vehicle.Name,
			booking.StartDate.Format("January 2, 2006 15:04"))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking confirmed.", booking)
}

// CancelBooking godoc
// @Summary  Cancel a pending or confirmed booking (owner or staff)
// @Tags     bookings
// @Security BearerAuth
// @Router   /api/bookings/{id}/cancel [put]
func CancelBooking(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	c.BodyParser(reqData) // Reason is optional

	var booking models.Booking
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	if booking.UserID != userId && !middleware.IsStaff(c) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this booking!", nil)
	}
	if booking.Status != models.BookingPending && booking.Status != models.BookingConfirmed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending or confirmed bookings can be cancelled!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		booking.Status = models.BookingCancelled
		booking.CancelReason = reqData.Reason
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		// Pending payments on the booking die with it
		if err := tx.Model(&models.Payment{}).
			Where("booking_id = ? AND status = ? AND is_deleted = false", booking.ID, models.PaymentPending).
			Updates(map[string]interface{}{
				"status": models.PaymentCancelled,
				"notes":  "Booking cancelled",
			}).Error; err != nil {
			return err
		}

		// Void any contract that never went anywhere
		return tx.Model(&models.Contract{}).
			Where("user_id = ? AND status = ? AND is_deleted = false", booking.UserID, models.ContractActive).
			Where("rental_id IN (?)", tx.Model(&models.Rental{}).Select("id").Where("booking_id = ?", booking.ID)).
			Update("status", models.ContractVoid).Error
	})
	if err != nil {
		log.Printf("Error cancelling booking: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking cancelled.", booking)
}
