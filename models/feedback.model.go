package models

import "gorm.io/gorm"

// Feedback status values
const (
	FeedbackActive = "active"
	FeedbackHidden = "hidden"
)

// Feedback is one rating record per completed rental. Never deleted;
// visibility is toggled through Status instead.
type Feedback struct {
	gorm.Model
	UserID         uint   `gorm:"not null;index"`
	RentalID       uint   `gorm:"not null;uniqueIndex"` // One feedback per rental
	VehicleID      uint   `gorm:"not null;index"`
	StationID      uint   `gorm:"not null;index"`
	VehicleRating  int    `gorm:"not null;check:vehicle_rating >= 1 AND vehicle_rating <= 5"` // 1–5 rating
	StationRating  int    `gorm:"not null;check:station_rating >= 1 AND station_rating <= 5"` // 1–5 rating
	VehicleComment string `gorm:"type:text;default:''"`
	StationComment string `gorm:"type:text;default:''"`
	Status         string `gorm:"type:varchar(10);default:'active'"` // active/hidden
}
