package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Survey is a demand-discovery run for one asset, collecting Van
// Westendorp price-sensitivity responses that feed the price bands.
type Survey struct {
	BaseModel
	AssetID         uuid.UUID    `json:"asset_id" gorm:"type:uuid;not null;index"`
	Status          SurveyStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	TargetResponses int          `json:"target_responses" gorm:"default:100"`
	ClosedAt        *time.Time   `json:"closed_at,omitempty"`

	// Relationships
	Asset Asset `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
}

type SurveyResponse struct {
	BaseModel
	SurveyID        uuid.UUID `json:"survey_id" gorm:"type:uuid;not null;index"`
	RespondentEmail string    `json:"respondent_email" gorm:"size:255;not null"`

	// Van Westendorp price points
	PriceTooExpensive   decimal.NullDecimal `json:"price_too_expensive" gorm:"type:numeric"`
	PriceExpensiveButOk decimal.NullDecimal `json:"price_expensive_but_ok" gorm:"type:numeric"`
	PriceBargain        decimal.NullDecimal `json:"price_bargain" gorm:"type:numeric"`
	PriceTooCheap       decimal.NullDecimal `json:"price_too_cheap" gorm:"type:numeric"`

	// Preferences
	PreferredLicense LicenseType `json:"preferred_license,omitempty" gorm:"type:varchar(20)"`
	Urgency          Urgency     `json:"urgency,omitempty" gorm:"type:varchar(20)"`

	// Open feedback
	MustHaveFeatures string `json:"must_have_features,omitempty" gorm:"type:text"`
	Concerns         string `json:"concerns,omitempty" gorm:"type:text"`

	// Relationships
	Survey Survey `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
}
