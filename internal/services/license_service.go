package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/buildermart/marketplace-backend/internal/config"
	"github.com/buildermart/marketplace-backend/internal/database"
	"github.com/buildermart/marketplace-backend/internal/models"
	"github.com/buildermart/marketplace-backend/internal/utils"
)

type LicenseService struct {
	db  *gorm.DB
	cfg *config.Config
}

type PurchaseRequest struct {
	AssetID        uuid.UUID          `json:"asset_id" validate:"required"`
	BuyerID        uuid.UUID          `json:"buyer_id" validate:"required"`
	LicenseType    models.LicenseType `json:"license_type" validate:"required,oneof=usage source"`
	PaymentOrderID string             `json:"payment_order_id,omitempty"`
	PaymentID      string             `json:"payment_id,omitempty"`
}

type PurchaseResult struct {
	License     *models.License     `json:"license"`
	Transaction *models.Transaction `json:"transaction"`
}

func NewLicenseService(db *gorm.DB, cfg *config.Config) *LicenseService {
	return &LicenseService{db: db, cfg: cfg}
}

// FeeBreakdown is the money split for one sale. BuilderPayout is gross
// minus the platform fee by construction; the tax is charged on the fee,
// not on the gross amount.
type FeeBreakdown struct {
	GrossAmount   decimal.Decimal
	PlatformFee   decimal.Decimal
	TaxAmount     decimal.Decimal
	BuilderPayout decimal.Decimal
}

func ComputeFees(gross decimal.Decimal, feePercent, taxPercent float64) FeeBreakdown {
	hundred := decimal.NewFromInt(100)
	fee := gross.Mul(decimal.NewFromFloat(feePercent)).Div(hundred).Round(2)
	tax := fee.Mul(decimal.NewFromFloat(taxPercent)).Div(hundred).Round(2)

	return FeeBreakdown{
		GrossAmount:   gross,
		PlatformFee:   fee,
		TaxAmount:     tax,
		BuilderPayout: gross.Sub(fee),
	}
}

// Purchase records a completed sale: one transaction row, one license row
// linked to it, a scarcity decrement and a sales counter bump, all in a
// single database transaction so the denormalized counters stay consistent
// with the detail rows.
func (s *LicenseService) Purchase(req *PurchaseRequest) (*PurchaseResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var buyer models.Profile
	if err := s.db.First(&buyer, "id = ?", req.BuyerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("buyer profile not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !buyer.IsBuyer() {
		return nil, errors.New("profile is not permitted to purchase licenses")
	}

	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", req.AssetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("asset not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if asset.Status != models.AssetStatusActive {
		return nil, errors.New("asset is not active")
	}

	if asset.BuilderID == req.BuyerID {
		return nil, errors.New("cannot purchase a license for your own asset")
	}

	price, err := asset.PriceFor(req.LicenseType)
	if err != nil {
		return nil, err
	}

	if asset.ScarcityRemaining(req.LicenseType) <= 0 {
		return nil, models.ErrScarcityExhausted
	}

	fees := ComputeFees(price, s.cfg.Platform.FeePercent, s.cfg.Platform.TaxPercent)
	result := &PurchaseResult{}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		remainingColumn := "scarcity_usage_remaining"
		if req.LicenseType == models.LicenseTypeSource {
			remainingColumn = "scarcity_source_remaining"
		}

		// Guarded decrement: concurrent purchases must not push the
		// remaining count below zero.
		res := tx.Model(&models.Asset{}).
			Where("id = ? AND "+remainingColumn+" > 0", asset.ID).
			UpdateColumns(map[string]interface{}{
				remainingColumn: gorm.Expr(remainingColumn + " - 1"),
				"sales_count":   gorm.Expr("sales_count + 1"),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to decrement scarcity: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrScarcityExhausted
		}

		transaction := &models.Transaction{
			BuyerID:         req.BuyerID,
			BuilderID:       asset.BuilderID,
			AssetID:         asset.ID,
			GrossAmount:     fees.GrossAmount,
			PlatformFee:     fees.PlatformFee,
			TaxAmount:       fees.TaxAmount,
			BuilderPayout:   fees.BuilderPayout,
			Currency:        s.cfg.Platform.Currency,
			PaymentProvider: s.cfg.Platform.PaymentProvider,
			PaymentOrderID:  req.PaymentOrderID,
			PaymentID:       req.PaymentID,
			Status:          models.TransactionStatusPaid,
			PayoutStatus:    models.PayoutStatusPending,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		supportDays := s.cfg.Platform.SupportDaysUsage
		if req.LicenseType == models.LicenseTypeSource {
			supportDays = s.cfg.Platform.SupportDaysSource
		}
		supportUntil := time.Now().AddDate(0, 0, supportDays)

		license := &models.License{
			AssetID:       asset.ID,
			BuyerID:       req.BuyerID,
			TransactionID: &transaction.ID,
			LicenseType:   req.LicenseType,
			PricePaid:     price,
			Currency:      s.cfg.Platform.Currency,
			Rights:        models.DefaultRights(req.LicenseType),
			SupportUntil:  &supportUntil,
			UpdatesUntil:  &supportUntil,
			Status:        models.LicenseStatusActive,
			MaxDownloads:  5,
		}
		if err := tx.Create(license).Error; err != nil {
			return fmt.Errorf("failed to create license: %w", err)
		}

		// Back-link the transaction to the license it paid for
		if err := tx.Model(transaction).UpdateColumn("license_id", license.ID).Error; err != nil {
			return fmt.Errorf("failed to link transaction to license: %w", err)
		}
		transaction.LicenseID = &license.ID

		result.Transaction = transaction
		result.License = license
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordDownload enforces the download quota before counting a package
// delivery against the license.
func (s *LicenseService) RecordDownload(licenseID uuid.UUID) (*models.License, error) {
	var license models.License

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&license, "id = ?", licenseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("license not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := license.CanDownload(); err != nil {
			return err
		}

		now := time.Now()
		license.DownloadCount++
		license.LastDownloadedAt = &now

		return tx.Model(&license).UpdateColumns(map[string]interface{}{
			"download_count":     license.DownloadCount,
			"last_downloaded_at": now,
		}).Error
	})

	if err != nil {
		return nil, err
	}
	return &license, nil
}

// Revoke withdraws an active or pending license.
func (s *LicenseService) Revoke(licenseID uuid.UUID) error {
	var license models.License
	if err := s.db.First(&license, "id = ?", licenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("license not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if license.Status != models.LicenseStatusActive && license.Status != models.LicenseStatusPending {
		return fmt.Errorf("cannot revoke license in status %s", license.Status)
	}

	return s.db.Model(&license).UpdateColumn("status", models.LicenseStatusRevoked).Error
}
