package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserKYC holds identity-card and driver-license documents for one user.
// Status mirrors User.KYCStatus and moves not_submitted -> pending once all
// four images are uploaded, then approved/rejected by staff.
type UserKYC struct {
	gorm.Model
	UserID          uint            `gorm:"not null;uniqueIndex" json:"user_id"`
	IdentityCard    DocumentDetails `gorm:"embedded;embeddedPrefix:identity_"` // National ID card
	DriverLicense   DocumentDetails `gorm:"embedded;embeddedPrefix:license_"`  // Driver's license
	Status          string          `gorm:"default:'not_submitted'" json:"status"`
	RejectionReason string          `gorm:"type:text;default:''" json:"rejection_reason"`
	VerifiedBy      uint            `gorm:"default:0" json:"verified_by"` // Staff/admin user id
	VerifiedAt      *time.Time      `json:"verified_at"`
	Metadata        datatypes.JSON  `json:"metadata"` // Extracted document fields, free-form
	IsDeleted       bool            `gorm:"default:false"`
}

type DocumentDetails struct {
	Number     string `gorm:"default:''" json:"number"` // Document number printed on the card
	FrontImage string `gorm:"default:''" json:"front_image"`
	BackImage  string `gorm:"default:''" json:"back_image"`
}

// Complete reports whether both sides of both documents are uploaded.
func (k *UserKYC) Complete() bool {
	return k.IdentityCard.FrontImage != "" && k.IdentityCard.BackImage != "" &&
		k.DriverLicense.FrontImage != "" && k.DriverLicense.BackImage != ""
}
