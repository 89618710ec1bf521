package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LicenseRights is the rights bundle granted by a license, stored as
// jsonb. Usage rights are a strict subset of source rights.
type LicenseRights struct {
	Deploy       bool `json:"deploy"`
	Modify       bool `json:"modify"`
	Redistribute bool `json:"redistribute"`
	SourceAccess bool `json:"source_access"`
}

func (r LicenseRights) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *LicenseRights) Scan(value interface{}) error {
	if value == nil {
		*r = LicenseRights{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, r)
}

// DefaultRights returns the standard rights bundle for a license type.
func DefaultRights(licenseType LicenseType) LicenseRights {
	if licenseType == LicenseTypeSource {
		return LicenseRights{Deploy: true, Modify: true, SourceAccess: true}
	}
	return LicenseRights{Deploy: true}
}

// License is a granted right to use an asset, held by one buyer and
// optionally linked to the transaction that paid for it.
type License struct {
	BaseModel
	AssetID       uuid.UUID  `json:"asset_id" gorm:"type:uuid;not null;index"`
	BuyerID       uuid.UUID  `json:"buyer_id" gorm:"type:uuid;not null;index"`
	TransactionID *uuid.UUID `json:"transaction_id" gorm:"type:uuid;index"` // linked after payment

	LicenseType LicenseType     `json:"license_type" gorm:"type:varchar(20);not null"`
	PricePaid   decimal.Decimal `json:"price_paid" gorm:"type:numeric;not null"`
	Currency    string          `json:"currency" gorm:"size:10;not null;default:'INR'"`

	Rights LicenseRights `json:"rights" gorm:"type:jsonb;not null;default:'{}'"`

	// Timelines: 90 days support for usage licenses, 180 for source
	SupportUntil *time.Time `json:"support_until,omitempty"`
	UpdatesUntil *time.Time `json:"updates_until,omitempty"`

	Status LicenseStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	// Delivery
	DownloadCount    int        `json:"download_count" gorm:"default:0"`
	MaxDownloads     int        `json:"max_downloads" gorm:"default:5"`
	LastDownloadedAt *time.Time `json:"last_downloaded_at,omitempty"`

	ContractPdfURL string `json:"contract_pdf_url,omitempty" gorm:"size:255"` // generated license document

	// Relationships
	Asset Asset   `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	Buyer Profile `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
}

var (
	ErrLicenseNotActive   = errors.New("license is not active")
	ErrDownloadQuotaSpent = errors.New("download quota exhausted")
)

// CanDownload reports whether another package download is permitted.
func (l *License) CanDownload() error {
	if l.Status != LicenseStatusActive {
		return ErrLicenseNotActive
	}
	if l.DownloadCount >= l.MaxDownloads {
		return ErrDownloadQuotaSpent
	}
	return nil
}
