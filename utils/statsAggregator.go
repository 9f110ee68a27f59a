package utils

import (
	"strconv"
	"time"

	"evrental/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RentalOutcome is one completed-rental event to fold into a user's stats.
type RentalOutcome struct {
	Distance    float64
	Spent       float64
	Days        int
	VehicleType string
	StationID   uint
	RentalDate  time.Time
}

// RecordRentalStats folds one completed rental into the user's running
// statistics. Every counter is an atomic upsert-increment keyed by a unique
// index, so concurrent completions for the same user cannot lose updates.
// Not idempotent: replaying the same rental double-counts, so callers must
// fold each rental exactly once (the rental controller does it inside the
// completing transaction).
func RecordRentalStats(db *gorm.DB, userID uint, outcome RentalOutcome) error {
	when := outcome.RentalDate
	if when.IsZero() {
		when = time.Now()
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Running totals
		stats := models.UserStats{
			UserID:         userID,
			TotalRentals:   1,
			TotalDistance:  outcome.Distance,
			TotalSpent:     outcome.Spent,
			TotalDays:      int64(outcome.Days),
			LastRentalDate: &when,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_rentals":    gorm.Expr("user_stats.total_rentals + 1"),
				"total_distance":   gorm.Expr("user_stats.total_distance + ?", outcome.Distance),
				"total_spent":      gorm.Expr("user_stats.total_spent + ?", outcome.Spent),
				"total_days":       gorm.Expr("user_stats.total_days + ?", outcome.Days),
				"last_rental_date": when,
				"updated_at":       time.Now(),
			}),
		}).Create(&stats).Error; err != nil {
			return err
		}

		// Time-of-day and weekday histograms always get a bucket
		buckets := []struct {
			kind string
			key  string
		}{
			{models.BucketHour, strconv.Itoa(when.Hour())},
			{models.BucketWeekday, strconv.Itoa(int(when.Weekday()))},
		}
		if outcome.VehicleType != "" {
			buckets = append(buckets, struct {
				kind string
				key  string
			}{models.BucketVehicleType, outcome.VehicleType})
		}
		if outcome.StationID != 0 {
			buckets = append(buckets, struct {
				kind string
				key  string
			}{models.BucketStation, strconv.FormatUint(uint64(outcome.StationID), 10)})
		}

		for _, b := range buckets {
			bucket := models.StatsBucket{UserID: userID, Kind: b.kind, Key: b.key, Count: 1}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "kind"}, {Name: "key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"count":      gorm.Expr("stats_buckets.count + 1"),
					"updated_at": time.Now(),
				}),
			}).Create(&bucket).Error; err != nil {
				return err
			}
		}

		// Sparse (year, month) time series
		monthly := models.StatsMonthly{
			UserID:   userID,
			Year:     when.Year(),
			Month:    int(when.Month()),
			Rentals:  1,
			Distance: outcome.Distance,
			Spent:    outcome.Spent,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"rentals":    gorm.Expr("stats_monthly.rentals + 1"),
				"distance":   gorm.Expr("stats_monthly.distance + ?", outcome.Distance),
				"spent":      gorm.Expr("stats_monthly.spent + ?", outcome.Spent),
				"updated_at": time.Now(),
			}),
		}).Create(&monthly).Error; err != nil {
			return err
		}

		return nil
	})
}
