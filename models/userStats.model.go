package models

import (
	"time"

	"gorm.io/gorm"
)

// Bucket kinds for StatsBucket.Kind
const (
	BucketHour        = "hour"         // Key is "0".."23"
	BucketWeekday     = "weekday"      // Key is "0".."6", Sunday = 0
	BucketVehicleType = "vehicle_type" // Key is the vehicle type
	BucketStation     = "station"      // Key is the station id
)

// UserStats keeps one aggregate row of running totals per user.
// All counters are maintained with atomic upsert-increments, never
// read-modify-write, so concurrent rental completions cannot lose updates.
type UserStats struct {
	gorm.Model
	UserID         uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	TotalRentals   int64      `gorm:"default:0" json:"total_rentals"`
	TotalDistance  float64    `gorm:"default:0" json:"total_distance"`
	TotalSpent     float64    `gorm:"default:0" json:"total_spent"`
	TotalDays      int64      `gorm:"default:0" json:"total_days"`
	LastRentalDate *time.Time `json:"last_rental_date"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

// StatsBucket is one aggregated counter keyed by a discrete dimension value.
// The unique index makes bucket uniqueness structural: the same key can never
// appear twice for a user.
type StatsBucket struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_stats_bucket" json:"user_id"`
	Kind   string `gorm:"size:20;not null;uniqueIndex:idx_stats_bucket" json:"kind"`
	Key    string `gorm:"size:50;not null;uniqueIndex:idx_stats_bucket" json:"key"`
	Count  int64  `gorm:"default:0" json:"count"`
}

func (StatsBucket) TableName() string {
	return "stats_buckets"
}

// StatsMonthly is the sparse per-(year, month) time series for one user.
type StatsMonthly struct {
	gorm.Model
	UserID   uint    `gorm:"not null;uniqueIndex:idx_stats_monthly" json:"user_id"`
	Year     int     `gorm:"not null;uniqueIndex:idx_stats_monthly" json:"year"`
	Month    int     `gorm:"not null;uniqueIndex:idx_stats_monthly" json:"month"`
	Rentals  int64   `gorm:"default:0" json:"rentals"`
	Distance float64 `gorm:"default:0" json:"distance"`
	Spent    float64 `gorm:"default:0" json:"spent"`
}

func (StatsMonthly) TableName() string {
	return "stats_monthly"
}
