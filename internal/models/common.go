package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields. UpdatedAt is declared per entity: several
// tables (licenses, reviews, survey responses, market data, admin actions)
// are append-only and never carry one.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums. The schema stores these as plain varchar and does not enforce
// membership; the service layer validates against the constant sets below.
type ProfileRole string

const (
	ProfileRoleBuyer   ProfileRole = "buyer"
	ProfileRoleBuilder ProfileRole = "builder"
	ProfileRoleAdmin   ProfileRole = "admin"
	ProfileRoleBoth    ProfileRole = "both"
)

type DeploymentType string

const (
	DeploymentTypeDownload DeploymentType = "download"
	DeploymentTypeHosted   DeploymentType = "hosted"
	DeploymentTypeHybrid   DeploymentType = "hybrid"
)

type QualityTier string

const (
	QualityTierBronze   QualityTier = "bronze"
	QualityTierSilver   QualityTier = "silver"
	QualityTierGold     QualityTier = "gold"
	QualityTierPlatinum QualityTier = "platinum"
)

type AssetStatus string

const (
	AssetStatusDraft         AssetStatus = "draft"
	AssetStatusPendingReview AssetStatus = "pending_review"
	AssetStatusApproved      AssetStatus = "approved"
	AssetStatusActive        AssetStatus = "active"
	AssetStatusPaused        AssetStatus = "paused"
	AssetStatusDelisted      AssetStatus = "delisted"
)

type LicenseType string

const (
	LicenseTypeUsage  LicenseType = "usage"
	LicenseTypeSource LicenseType = "source"
)

type LicenseStatus string

const (
	LicenseStatusPending     LicenseStatus = "pending"
	LicenseStatusActive      LicenseStatus = "active"
	LicenseStatusExpired     LicenseStatus = "expired"
	LicenseStatusRevoked     LicenseStatus = "revoked"
	LicenseStatusTransferred LicenseStatus = "transferred"
)

type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "initiated"
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
	TransactionStatusDisputed  TransactionStatus = "disputed"
)

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusScheduled PayoutStatus = "scheduled"
	PayoutStatusCompleted PayoutStatus = "completed"
	PayoutStatusFailed    PayoutStatus = "failed"
)

type SurveyStatus string

const (
	SurveyStatusDraft  SurveyStatus = "draft"
	SurveyStatusActive SurveyStatus = "active"
	SurveyStatusClosed SurveyStatus = "closed"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

type Urgency string

const (
	UrgencyImmediate   Urgency = "immediate"
	UrgencyThisQuarter Urgency = "this_quarter"
	UrgencyThisYear    Urgency = "this_year"
	UrgencyExploring   Urgency = "exploring"
)
