package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newFeedbackTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Feedback{}))

	return db
}

func validFeedback(rentalID uint) Feedback {
	return Feedback{
		UserID:        1,
		RentalID:      rentalID,
		VehicleID:     2,
		StationID:     3,
		VehicleRating: 4,
		StationRating: 5,
		Status:        FeedbackActive,
	}
}

func TestFeedbackAcceptsRatingsInRange(t *testing.T) {
	db := newFeedbackTestDb(t)

	for i, rating := range []int{1, 2, 3, 4, 5} {
		fb := validFeedback(uint(i + 1))
		fb.VehicleRating = rating
		fb.StationRating = rating
		assert.NoError(t, db.Create(&fb).Error, "rating %d should be accepted", rating)
	}
}

func TestFeedbackRejectsRatingsOutOfRange(t *testing.T) {
	db := newFeedbackTestDb(t)

	low := validFeedback(1)
	low.VehicleRating = 0
	assert.Error(t, db.Create(&low).Error)

	high := validFeedback(2)
	high.StationRating = 6
	assert.Error(t, db.Create(&high).Error)
}

func TestFeedbackRejectsSecondEntryForSameRental(t *testing.T) {
	db := newFeedbackTestDb(t)

	first := validFeedback(1)
	require.NoError(t, db.Create(&first).Error)

	second := validFeedback(1)
	assert.Error(t, db.Create(&second).Error)
}
