package models

import "gorm.io/gorm"

type Station struct {
	gorm.Model
	Name      string  `gorm:"not null" json:"name"`
	Address   string  `gorm:"type:text;default:''" json:"address"`
	City      string  `gorm:"default:''" json:"city"`
	Latitude  float64 `gorm:"default:0" json:"latitude"`
	Longitude float64 `gorm:"default:0" json:"longitude"`
	Capacity  int     `gorm:"default:0" json:"capacity"` // Max vehicles parked
	Status    string  `gorm:"default:'active'" json:"status"` // active/inactive
	IsDeleted bool    `gorm:"default:false"`
}
