package utils

import (
	"testing"
	"time"

	"evrental/database"
	"evrental/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSchedulerTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Booking{}, &models.Payment{}))
	database.Database = database.DbInstance{Db: db}

	return db
}

func pendingBooking(code string, start time.Time) models.Booking {
	return models.Booking{
		Code:      code,
		UserID:    1,
		VehicleID: 1,
		StationID: 1,
		StartDate: start,
		EndDate:   start.Add(48 * time.Hour),
		Status:    models.BookingPending,
	}
}

func pendingPayment(bookingID uint, txnRef string) models.Payment {
	return models.Payment{
		BookingID:   bookingID,
		UserID:      1,
		PaymentType: models.PaymentTypeDeposit,
		Method:      models.PaymentMethodVNPay,
		Amount:      50000,
		Status:      models.PaymentPending,
		TxnRef:      txnRef,
	}
}

func TestExpirePendingBookingsCancelsTheirPayments(t *testing.T) {
	db := newSchedulerTestDb(t)

	overdue := pendingBooking("b-overdue", time.Now().Add(-2*time.Hour))
	require.NoError(t, db.Create(&overdue).Error)
	payment := pendingPayment(overdue.ID, "txn-overdue")
	require.NoError(t, db.Create(&payment).Error)

	// A future booking must survive the sweep untouched
	future := pendingBooking("b-future", time.Now().Add(24*time.Hour))
	require.NoError(t, db.Create(&future).Error)

	ExpirePendingBookings()

	require.NoError(t, db.First(&overdue, overdue.ID).Error)
	assert.Equal(t, models.BookingExpired, overdue.Status)
	assert.NotEmpty(t, overdue.CancelReason)

	require.NoError(t, db.First(&payment, payment.ID).Error)
	assert.Equal(t, models.PaymentCancelled, payment.Status)

	require.NoError(t, db.First(&future, future.ID).Error)
	assert.Equal(t, models.BookingPending, future.Status)
}

func TestExpirePendingBookingsSurvivesDelayedSweep(t *testing.T) {
	db := newSchedulerTestDb(t)

	// The booking went stale hours ago and nothing touched it since
	overdue := pendingBooking("b-stale", time.Now().Add(-6*time.Hour))
	require.NoError(t, db.Create(&overdue).Error)
	require.NoError(t, db.Model(&overdue).UpdateColumn("updated_at", time.Now().Add(-5*time.Hour)).Error)
	payment := pendingPayment(overdue.ID, "txn-stale")
	require.NoError(t, db.Create(&payment).Error)

	ExpirePendingBookings()

	require.NoError(t, db.First(&overdue, overdue.ID).Error)
	assert.Equal(t, models.BookingExpired, overdue.Status)

	// Payment cleanup follows the swept ids, not a timestamp window
	require.NoError(t, db.First(&payment, payment.ID).Error)
	assert.Equal(t, models.PaymentCancelled, payment.Status)
}

func TestCancelStalePayments(t *testing.T) {
	db := newSchedulerTestDb(t)

	booking := pendingBooking("b-gateway", time.Now().Add(24*time.Hour))
	require.NoError(t, db.Create(&booking).Error)

	stale := pendingPayment(booking.ID, "txn-old")
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&stale).UpdateColumn("created_at", time.Now().Add(-25*time.Hour)).Error)

	fresh := pendingPayment(booking.ID, "txn-new")
	require.NoError(t, db.Create(&fresh).Error)

	CancelStalePayments()

	require.NoError(t, db.First(&stale, stale.ID).Error)
	assert.Equal(t, models.PaymentCancelled, stale.Status)

	require.NoError(t, db.First(&fresh, fresh.ID).Error)
	assert.Equal(t, models.PaymentPending, fresh.Status)
}
