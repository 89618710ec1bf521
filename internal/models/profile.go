package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a person or organization account. The ID carries no column
// default: it is provisioned by the external identity provider, so rows
// here always reuse the identity it issued.
type Profile struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	Role        ProfileRole `json:"role" gorm:"type:varchar(20);not null;default:'buyer';index"`
	DisplayName string      `json:"display_name" gorm:"size:255;not null"`
	CompanyName string      `json:"company_name,omitempty" gorm:"size:255"`
	CompanySize string      `json:"company_size,omitempty" gorm:"size:20"` // '1-10', '11-50', '51-200', '200+'
	City        string      `json:"city,omitempty" gorm:"size:100"`
	LinkedinURL string      `json:"linkedin_url,omitempty" gorm:"size:255"`
	Bio         string      `json:"bio,omitempty" gorm:"type:text"`
	AvatarURL   string      `json:"avatar_url,omitempty" gorm:"size:255"`
	IsVerified  bool        `json:"is_verified" gorm:"default:false"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IsBuilder reports whether the profile may list assets for sale.
func (p *Profile) IsBuilder() bool {
	return p.Role == ProfileRoleBuilder || p.Role == ProfileRoleBoth || p.Role == ProfileRoleAdmin
}

// IsBuyer reports whether the profile may purchase licenses.
func (p *Profile) IsBuyer() bool {
	return p.Role == ProfileRoleBuyer || p.Role == ProfileRoleBoth || p.Role == ProfileRoleAdmin
}
