package models

import (
	"time"

	"gorm.io/gorm"
)

// ContractStatus defines the status of a rental contract
type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractSigned    ContractStatus = "signed"
	ContractCompleted ContractStatus = "completed"
	ContractVoid      ContractStatus = "void"
)

// Contract is generated when a rental starts and snapshots the agreed terms.
type Contract struct {
	gorm.Model
	Number    string         `gorm:"size:36;uniqueIndex;not null" json:"number"`
	RentalID  uint           `gorm:"not null;uniqueIndex" json:"rental_id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	VehicleID uint           `gorm:"not null" json:"vehicle_id"`
	Terms     string         `gorm:"type:text;default:''" json:"terms"`
	Status    ContractStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	SignedAt  *time.Time     `json:"signed_at"`
	IsDeleted bool           `gorm:"default:false"`
}
