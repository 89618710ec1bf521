package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is a hierarchical classification of assets. ParentID forms a
// tree; the schema does not prevent cycles, CategoryService refuses them.
// AssetCount and the average prices are denormalized projections refreshed
// by the write paths that change the underlying assets.
type Category struct {
	BaseModel
	Name           string              `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug           string              `json:"slug" gorm:"size:100;not null;uniqueIndex"`
	ParentID       *uuid.UUID          `json:"parent_id" gorm:"type:uuid;index"`
	Description    string              `json:"description,omitempty" gorm:"type:text"`
	Icon           string              `json:"icon,omitempty" gorm:"size:50"` // emoji or icon name
	SortOrder      int                 `json:"sort_order" gorm:"default:0"`
	AssetCount     int                 `json:"asset_count" gorm:"default:0"` // denormalized for performance
	AvgPriceUsage  decimal.NullDecimal `json:"avg_price_usage" gorm:"type:numeric"`
	AvgPriceSource decimal.NullDecimal `json:"avg_price_source" gorm:"type:numeric"`

	// Relationships
	Parent *Category `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
}
