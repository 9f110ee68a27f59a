package utils

import (
	"evrental/database"
	"evrental/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeBookingScheduler sets up the periodic booking/payment expiry sweep
func InitializeBookingScheduler() {
	log.Println("[BOOKING-SCHEDULER] Initializing booking scheduler...")

	c := cron.New()

	// Every 15 minutes: expire stale pending bookings and their payments
	c.AddFunc("*/15 * * * *", func() {
		ExpirePendingBookings()
		CancelStalePayments()
	})

	c.Start()
	log.Println("[BOOKING-SCHEDULER] Booking scheduler started - runs every 15 minutes")
}

// ExpirePendingBookings marks pending bookings whose start date has passed as
// EXPIRED and cancels their pending payments. Both updates are keyed on the
// same id set inside one transaction, so a delayed sweep cannot miss payments.
func ExpirePendingBookings() {
	db := database.Database.Db
	now := time.Now()

	var ids []uint
	if err := db.Model(&models.Booking{}).
		Where("status = ? AND start_date < ? AND is_deleted = false", models.BookingPending, now).
		Pluck("id", &ids).Error; err != nil {
		log.Printf("[BOOKING-SCHEDULER] Error finding overdue bookings: %v", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).
			Where("id IN ? AND status = ?", ids, models.BookingPending).
			Updates(map[string]interface{}{
				"status":        models.BookingExpired,
				"cancel_reason": "Not confirmed before start date",
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Payment{}).
			Where("booking_id IN ? AND status = ? AND is_deleted = false", ids, models.PaymentPending).
			Updates(map[string]interface{}{
				"status": models.PaymentCancelled,
				"notes":  "Booking expired",
			}).Error
	})
	if err != nil {
		log.Printf("[BOOKING-SCHEDULER] Error expiring bookings: %v", err)
		return
	}

	log.Printf("[BOOKING-SCHEDULER] Expired %d pending bookings", len(ids))
}

// CancelStalePayments cancels gateway payments stuck in pending for over 24h
func CancelStalePayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	result := db.Model(&models.Payment{}).
		Where("status = ? AND method = ? AND created_at < ? AND is_deleted = false",
			models.PaymentPending, models.PaymentMethodVNPay, cutoff).
		Updates(map[string]interface{}{
			"status": models.PaymentCancelled,
			"notes":  "Gateway payment not completed within 24 hours",
		})

	if result.Error != nil {
		log.Printf("[BOOKING-SCHEDULER] Error cancelling stale payments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[BOOKING-SCHEDULER] Cancelled %d stale gateway payments", result.RowsAffected)
	}
}
