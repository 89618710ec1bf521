package models

import (
	"github.com/google/uuid"
)

// AdminAction target types. TargetID is a foreign key by convention only;
// the schema cannot express a conditional foreign key across tables.
const (
	AdminTargetAsset       = "asset"
	AdminTargetProfile     = "profile"
	AdminTargetTransaction = "transaction"
	AdminTargetReview      = "review"
)

// AdminAction is an append-only audit log entry for admin mutations:
// 'approve_asset', 'reject_asset', 'override_price', and so on.
type AdminAction struct {
	BaseModel
	AdminID    uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	Action     string    `json:"action" gorm:"size:100;not null;index"`
	TargetType string    `json:"target_type" gorm:"size:50;not null;index"`
	TargetID   uuid.UUID `json:"target_id" gorm:"type:uuid;not null;index"`
	Details    JSONB     `json:"details,omitempty" gorm:"type:jsonb"`

	// Relationships
	Admin Profile `json:"admin,omitempty" gorm:"foreignKey:AdminID"`
}
