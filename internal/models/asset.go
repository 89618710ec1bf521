package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PriceBand is the floor/optimal/ceiling pricing recommendation derived
// from survey data, stored as jsonb.
type PriceBand struct {
	Floor   decimal.Decimal `json:"floor"`
	Optimal decimal.Decimal `json:"optimal"`
	Ceiling decimal.Decimal `json:"ceiling"`
}

func (b PriceBand) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *PriceBand) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, b)
}

// Asset is a listed AI software product, owned by one builder profile and
// filed under one category.
type Asset struct {
	BaseModel
	BuilderID uuid.UUID `json:"builder_id" gorm:"type:uuid;not null;index"`

	// Basic info
	Name        string    `json:"name" gorm:"size:255;not null"`
	Slug        string    `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Tagline     string    `json:"tagline" gorm:"size:120;not null"`
	Description string    `json:"description" gorm:"type:text;not null"` // markdown
	CategoryID  uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`

	// Technical
	TechStack        pq.StringArray `json:"tech_stack" gorm:"type:text[];not null;default:'{}'"`
	DeploymentType   DeploymentType `json:"deployment_type" gorm:"type:varchar(20);not null"`
	DemoURL          string         `json:"demo_url,omitempty" gorm:"size:255"`
	DocumentationURL string         `json:"documentation_url,omitempty" gorm:"size:255"`
	RepositoryURL    string         `json:"repository_url,omitempty" gorm:"size:255"` // private, only shown to source buyers

	// Pricing, set by the platform from survey bands or admin override
	PriceUsage      decimal.NullDecimal `json:"price_usage" gorm:"type:numeric"`
	PriceSource     decimal.NullDecimal `json:"price_source" gorm:"type:numeric"`
	PriceBandUsage  *PriceBand          `json:"price_band_usage,omitempty" gorm:"type:jsonb"`
	PriceBandSource *PriceBand          `json:"price_band_source,omitempty" gorm:"type:jsonb"`

	// Scarcity
	ScarcityUsageTotal      int `json:"scarcity_usage_total" gorm:"default:100"`
	ScarcityUsageRemaining  int `json:"scarcity_usage_remaining" gorm:"default:100"`
	ScarcitySourceTotal     int `json:"scarcity_source_total" gorm:"default:5"`
	ScarcitySourceRemaining int `json:"scarcity_source_remaining" gorm:"default:5"`

	// Quality
	QualityTier  QualityTier         `json:"quality_tier" gorm:"type:varchar(20);default:'bronze'"`
	QualityScore decimal.NullDecimal `json:"quality_score" gorm:"type:numeric"`
	AvgRating    decimal.Decimal     `json:"avg_rating" gorm:"type:numeric;default:0"`
	ReviewCount  int                 `json:"review_count" gorm:"default:0"`

	Status AssetStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`

	// File references (object storage keys, encrypted at rest)
	SourceFileKey string `json:"source_file_key,omitempty" gorm:"size:255"`
	DemoFileKey   string `json:"demo_file_key,omitempty" gorm:"size:255"`

	// Metadata
	ViewsCount int  `json:"views_count" gorm:"default:0"`
	SalesCount int  `json:"sales_count" gorm:"default:0"`
	Featured   bool `json:"featured" gorm:"default:false"`

	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	// Relationships
	Builder  Profile  `json:"builder,omitempty" gorm:"foreignKey:BuilderID"`
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

var (
	ErrPriceNotSet       = errors.New("asset has no price for the requested license type")
	ErrScarcityExhausted = errors.New("no remaining units for the requested license type")
)

// PriceFor returns the current price for the given license type.
func (a *Asset) PriceFor(licenseType LicenseType) (decimal.Decimal, error) {
	var price decimal.NullDecimal
	switch licenseType {
	case LicenseTypeSource:
		price = a.PriceSource
	default:
		price = a.PriceUsage
	}

	if !price.Valid {
		return decimal.Decimal{}, ErrPriceNotSet
	}
	return price.Decimal, nil
}

// ScarcityRemaining returns the remaining unit count for the given license
// type. Purchase decrements it; it must never exceed the total or go
// negative.
func (a *Asset) ScarcityRemaining(licenseType LicenseType) int {
	if licenseType == LicenseTypeSource {
		return a.ScarcitySourceRemaining
	}
	return a.ScarcityUsageRemaining
}
