package utils

import (
	"testing"
	"time"

	"evrental/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newStatsTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserStats{}, &models.StatsBucket{}, &models.StatsMonthly{}))

	return db
}

func findBucket(t *testing.T, db *gorm.DB, userID uint, kind, key string) models.StatsBucket {
	t.Helper()

	var bucket models.StatsBucket
	err := db.Where("user_id = ? AND kind = ? AND key = ?", userID, kind, key).First(&bucket).Error
	require.NoError(t, err, "expected bucket %s/%s for user %d", kind, key, userID)
	return bucket
}

func TestRecordRentalStatsCreatesAllCounters(t *testing.T) {
	db := newStatsTestDb(t)

	when := time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC) // a Tuesday
	err := RecordRentalStats(db, 7, RentalOutcome{
		Distance:    12,
		Spent:       50000,
		Days:        1,
		VehicleType: "scooter",
		StationID:   1,
		RentalDate:  when,
	})
	require.NoError(t, err)

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", 7).First(&stats).Error)
	assert.EqualValues(t, 1, stats.TotalRentals)
	assert.EqualValues(t, 12, stats.TotalDistance)
	assert.EqualValues(t, 50000, stats.TotalSpent)
	assert.EqualValues(t, 1, stats.TotalDays)
	require.NotNil(t, stats.LastRentalDate)
	assert.True(t, stats.LastRentalDate.Equal(when))

	assert.EqualValues(t, 1, findBucket(t, db, 7, models.BucketHour, "9").Count)
	assert.EqualValues(t, 1, findBucket(t, db, 7, models.BucketWeekday, "2").Count)
	assert.EqualValues(t, 1, findBucket(t, db, 7, models.BucketVehicleType, "scooter").Count)
	assert.EqualValues(t, 1, findBucket(t, db, 7, models.BucketStation, "1").Count)

	var monthly models.StatsMonthly
	require.NoError(t, db.Where("user_id = ? AND year = ? AND month = ?", 7, 2024, 3).First(&monthly).Error)
	assert.EqualValues(t, 1, monthly.Rentals)
	assert.EqualValues(t, 12, monthly.Distance)
	assert.EqualValues(t, 50000, monthly.Spent)
}

func TestRecordRentalStatsAccumulates(t *testing.T) {
	db := newStatsTestDb(t)

	outcomes := []RentalOutcome{
		{Distance: 10, Spent: 100, Days: 1, VehicleType: "scooter", StationID: 1, RentalDate: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)},
		{Distance: 20, Spent: 200, Days: 2, VehicleType: "bike", StationID: 2, RentalDate: time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC)},
		{Distance: 30, Spent: 300, Days: 3, VehicleType: "scooter", StationID: 1, RentalDate: time.Date(2024, 4, 1, 14, 0, 0, 0, time.UTC)},
	}
	for _, o := range outcomes {
		require.NoError(t, RecordRentalStats(db, 7, o))
	}

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", 7).First(&stats).Error)
	assert.EqualValues(t, 3, stats.TotalRentals)
	assert.EqualValues(t, 60, stats.TotalDistance)
	assert.EqualValues(t, 600, stats.TotalSpent)
	assert.EqualValues(t, 6, stats.TotalDays)
	require.NotNil(t, stats.LastRentalDate)
	assert.True(t, stats.LastRentalDate.Equal(outcomes[2].RentalDate))

	// Two rentals started at hour 9, one at 14
	assert.EqualValues(t, 2, findBucket(t, db, 7, models.BucketHour, "9").Count)
	assert.EqualValues(t, 1, findBucket(t, db, 7, models.BucketHour, "14").Count)
	assert.EqualValues(t, 2, findBucket(t, db, 7, models.BucketVehicleType, "scooter").Count)
	assert.EqualValues(t, 1, findBucket(t, db, 7, models.BucketVehicleType, "bike").Count)
	assert.EqualValues(t, 2, findBucket(t, db, 7, models.BucketStation, "1").Count)

	// One row per (kind, key): 2 hours, 2 weekdays, 2 types, 2 stations
	var bucketRows int64
	db.Model(&models.StatsBucket{}).Where("user_id = ?", 7).Count(&bucketRows)
	assert.EqualValues(t, 8, bucketRows)

	// March has two rentals, April one
	var march, april models.StatsMonthly
	require.NoError(t, db.Where("user_id = ? AND year = 2024 AND month = 3", 7).First(&march).Error)
	require.NoError(t, db.Where("user_id = ? AND year = 2024 AND month = 4", 7).First(&april).Error)
	assert.EqualValues(t, 2, march.Rentals)
	assert.EqualValues(t, 30, march.Distance)
	assert.EqualValues(t, 300, march.Spent)
	assert.EqualValues(t, 1, april.Rentals)
}

func TestRecordRentalStatsSkipsEmptyDimensions(t *testing.T) {
	db := newStatsTestDb(t)

	err := RecordRentalStats(db, 3, RentalOutcome{
		Distance:   5,
		Spent:      10,
		Days:       1,
		RentalDate: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var kinds []string
	db.Model(&models.StatsBucket{}).Where("user_id = ?", 3).Pluck("kind", &kinds)
	assert.ElementsMatch(t, []string{models.BucketHour, models.BucketWeekday}, kinds)
}

func TestRecordRentalStatsIsolatesUsers(t *testing.T) {
	db := newStatsTestDb(t)

	when := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	require.NoError(t, RecordRentalStats(db, 1, RentalOutcome{Distance: 1, Spent: 1, Days: 1, RentalDate: when}))
	require.NoError(t, RecordRentalStats(db, 2, RentalOutcome{Distance: 2, Spent: 2, Days: 2, RentalDate: when}))

	var first, second models.UserStats
	require.NoError(t, db.Where("user_id = ?", 1).First(&first).Error)
	require.NoError(t, db.Where("user_id = ?", 2).First(&second).Error)
	assert.EqualValues(t, 1, first.TotalDistance)
	assert.EqualValues(t, 2, second.TotalDistance)
}
