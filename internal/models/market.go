package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketData is an immutable daily snapshot of one asset's price and
// activity metrics, written once per day by MarketService for trend
// analysis.
type MarketData struct {
	BaseModel
	AssetID      uuid.UUID `json:"asset_id" gorm:"type:uuid;not null;index"`
	SnapshotDate time.Time `json:"snapshot_date" gorm:"not null;index"`

	PriceUsage        decimal.NullDecimal `json:"price_usage" gorm:"type:numeric"`
	PriceSource       decimal.NullDecimal `json:"price_source" gorm:"type:numeric"`
	LicensesSoldToday int                 `json:"licenses_sold_today" gorm:"default:0"`
	ViewsToday        int                 `json:"views_today" gorm:"default:0"`
	WaitlistCount     int                 `json:"waitlist_count" gorm:"default:0"`
	CategoryRank      *int                `json:"category_rank,omitempty"`

	// Relationships
	Asset Asset `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
}

func (MarketData) TableName() string {
	return "market_data"
}
