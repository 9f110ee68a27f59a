package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus defines the lifecycle status of a booking
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingExpired    BookingStatus = "expired"
)

type Booking struct {
	gorm.Model
	Code          string        `gorm:"size:36;uniqueIndex;not null" json:"code"` // Public booking reference
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	VehicleID     uint          `gorm:"not null;index" json:"vehicle_id"`
	StationID     uint          `gorm:"not null" json:"station_id"`
	StartDate     time.Time     `gorm:"not null" json:"start_date"`
	EndDate       time.Time     `gorm:"not null" json:"end_date"`
	RentalAmount  float64       `gorm:"not null" json:"rental_amount"`  // PricePerDay * days
	DepositAmount float64       `gorm:"not null" json:"deposit_amount"` // RentalAmount * DepositRate
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CancelReason  string        `gorm:"type:text;default:''" json:"cancel_reason"`
	ConfirmedBy   uint          `gorm:"default:0" json:"confirmed_by"` // Staff user id
	IsDeleted     bool          `gorm:"default:false"`

	// Relations - omit in JSON by default (only load when needed)
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Vehicle Vehicle `gorm:"foreignKey:VehicleID" json:"-"`
}
