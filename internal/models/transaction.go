package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable payment record linking buyer, builder, asset
// and, once issued, the license it paid for. BuilderPayout always equals
// GrossAmount minus PlatformFee; the write path constructs it that way.
type Transaction struct {
	BaseModel
	LicenseID *uuid.UUID `json:"license_id" gorm:"type:uuid;index"`
	BuyerID   uuid.UUID  `json:"buyer_id" gorm:"type:uuid;not null;index"`
	BuilderID uuid.UUID  `json:"builder_id" gorm:"type:uuid;not null;index"`
	AssetID   uuid.UUID  `json:"asset_id" gorm:"type:uuid;not null;index"`

	// Amounts
	GrossAmount   decimal.Decimal `json:"gross_amount" gorm:"type:numeric;not null"`
	PlatformFee   decimal.Decimal `json:"platform_fee" gorm:"type:numeric;not null"`
	TaxAmount     decimal.Decimal `json:"tax_amount" gorm:"type:numeric;not null"` // tax on the platform fee
	BuilderPayout decimal.Decimal `json:"builder_payout" gorm:"type:numeric;not null"`
	Currency      string          `json:"currency" gorm:"size:10;not null;default:'INR'"`

	// Payment provider references, opaque to this schema
	PaymentProvider string `json:"payment_provider" gorm:"size:50;not null;default:'razorpay'"`
	PaymentOrderID  string `json:"payment_order_id,omitempty" gorm:"size:255"`
	PaymentID       string `json:"payment_id,omitempty" gorm:"size:255"`

	Status TransactionStatus `json:"status" gorm:"type:varchar(20);not null;default:'initiated';index"`

	// Builder settlement
	PayoutStatus      PayoutStatus `json:"payout_status" gorm:"type:varchar(20);default:'pending';index"`
	PayoutReference   string       `json:"payout_reference,omitempty" gorm:"size:255"`
	PayoutCompletedAt *time.Time   `json:"payout_completed_at,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Buyer   Profile `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Builder Profile `json:"builder,omitempty" gorm:"foreignKey:BuilderID"`
	Asset   Asset   `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
}
