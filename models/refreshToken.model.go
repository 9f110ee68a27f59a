package models

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken is a long-lived token exchanged for new access tokens.
// Rotated on every refresh, revoked on logout.
type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsRevoked bool      `gorm:"default:false" json:"is_revoked"`
	IsDeleted bool      `gorm:"default:false"`
}
