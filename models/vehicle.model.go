package models

import "gorm.io/gorm"

// Vehicle status values
const (
	VehicleAvailable   = "available"
	VehicleRented      = "rented"
	VehicleMaintenance = "maintenance"
)

type Vehicle struct {
	gorm.Model
	StationID    uint    `gorm:"not null;index" json:"station_id"`
	Name         string  `gorm:"default:''" json:"name"`
	Type         string  `gorm:"not null" json:"type"` // scooter/motorbike/car
	LicensePlate string  `gorm:"unique;not null" json:"license_plate"`
	BatteryLevel int     `gorm:"default:100" json:"battery_level"` // Percent
	RangeKm      int     `gorm:"default:0" json:"range_km"`        // Full-charge range
	PricePerDay  float64 `gorm:"not null" json:"price_per_day"`
	DepositRate  float64 `gorm:"default:0.3" json:"deposit_rate"` // Fraction of rental amount
	Status       string  `gorm:"default:'available'" json:"status"`
	IsDeleted    bool    `gorm:"default:false"`

	Station Station `gorm:"foreignKey:StationID" json:"-"`
}
