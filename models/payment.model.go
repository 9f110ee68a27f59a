package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentType defines what a payment is for
type PaymentType string

const (
	PaymentTypeDeposit       PaymentType = "deposit"
	PaymentTypeRentalFee     PaymentType = "rental_fee"
	PaymentTypeAdditionalFee PaymentType = "additional_fee"
)

// PaymentMethod defines how a payment is made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodQRCode       PaymentMethod = "qr_code"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodVNPay        PaymentMethod = "vnpay"
)

// PaymentStatus defines the status of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment tracks one monetary transaction tied to a booking.
type Payment struct {
	gorm.Model
	BookingID   uint          `gorm:"not null;index" json:"booking_id"`
	UserID      uint          `gorm:"not null;index" json:"user_id"`
	PaymentType PaymentType   `gorm:"type:varchar(20);not null" json:"payment_type"`
	Method      PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Reason      string        `gorm:"type:text;default:''" json:"reason"` // For additional fees
	Notes       string        `gorm:"type:text;default:''" json:"notes"`

	// Gateway details (vnpay method)
	TxnRef          string         `gorm:"size:36;index" json:"txn_ref"`   // Our reference sent to the gateway
	GatewayTxnNo    string         `gorm:"size:100" json:"gateway_txn_no"` // vnp_TransactionNo
	GatewayResponse datatypes.JSON `json:"gateway_response"`               // Raw callback params

	ConfirmedBy  uint       `gorm:"default:0" json:"confirmed_by"` // Staff user id (manual methods)
	PaidAt       *time.Time `json:"paid_at"`
	RefundedAt   *time.Time `json:"refunded_at"`
	RefundReason string     `gorm:"type:text;default:''" json:"refund_reason"`
	IsDeleted    bool       `gorm:"default:false"`

	// Relations - omit in JSON by default (only load when needed)
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
