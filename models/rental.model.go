package models

import (
	"time"

	"gorm.io/gorm"
)

// RentalStatus defines the status of a rental
type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
)

// Rental is the physical usage period following a confirmed booking.
type Rental struct {
	gorm.Model
	BookingID     uint         `gorm:"not null;uniqueIndex" json:"booking_id"`
	UserID        uint         `gorm:"not null;index" json:"user_id"`
	VehicleID     uint         `gorm:"not null" json:"vehicle_id"`
	StationID     uint         `gorm:"not null" json:"station_id"`
	VehicleType   string       `gorm:"default:''" json:"vehicle_type"`
	PickupAt      time.Time    `gorm:"not null" json:"pickup_at"`
	ReturnAt      *time.Time   `json:"return_at"`
	StartOdometer float64      `gorm:"default:0" json:"start_odometer"`
	EndOdometer   float64      `gorm:"default:0" json:"end_odometer"`
	DistanceKm    float64      `gorm:"default:0" json:"distance_km"`
	DaysRented    int          `gorm:"default:0" json:"days_rented"`
	TotalAmount   float64      `gorm:"default:0" json:"total_amount"`
	Status        RentalStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	StartedBy     uint         `gorm:"default:0" json:"started_by"`   // Staff user id at handover
	CompletedBy   uint         `gorm:"default:0" json:"completed_by"` // Staff user id at return
	Notes         string       `gorm:"type:text;default:''" json:"notes"`
	IsDeleted     bool         `gorm:"default:false"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}
