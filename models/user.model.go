package models

import (
	"time"

	"gorm.io/gorm"
)

// KYCStatus values for User.KYCStatus
const (
	KYCNotSubmitted = "not_submitted"
	KYCPending      = "pending"
	KYCApproved     = "approved"
	KYCRejected     = "rejected"
)

type User struct {
	gorm.Model
	ProfileImage        string    `gorm:"default:''"`
	Name                string    `gorm:"default:''"`
	Email               string    `gorm:"unique;not null"`
	Mobile              string    `gorm:"default:''"`
	Role                string    `gorm:"default:'USER'"` // USER, STAFF, ADMIN
	Password            string    `gorm:"not null"`
	Address             string    `gorm:"default:''"`
	DateOfBirth         string    `gorm:"default:''"`
	KYCStatus           string    `gorm:"default:'not_submitted'"` // not_submitted/pending/approved/rejected
	IsEmailVerified     bool      `gorm:"default:false"`
	LastLogin           time.Time `gorm:"default:NULL"`
	FailedLoginAttempts int       `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
