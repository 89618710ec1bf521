package models

import (
	"github.com/google/uuid"
)

// Review is a buyer's rating of an asset, tied to the license that
// authorizes it. One review per license, enforced by ReviewService.
type Review struct {
	BaseModel
	AssetID   uuid.UUID `json:"asset_id" gorm:"type:uuid;not null;index"`
	BuyerID   uuid.UUID `json:"buyer_id" gorm:"type:uuid;not null;index"`
	LicenseID uuid.UUID `json:"license_id" gorm:"type:uuid;not null;index"`

	Rating int    `json:"rating" gorm:"not null"` // 1-5
	Title  string `json:"title,omitempty" gorm:"size:255"`
	Body   string `json:"body,omitempty" gorm:"type:text"`

	// Moderation
	Status ReviewStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	// Relationships
	Asset   Asset   `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	Buyer   Profile `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	License License `json:"license,omitempty" gorm:"foreignKey:LicenseID"`
}
