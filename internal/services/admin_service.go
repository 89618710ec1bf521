package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/buildermart/marketplace-backend/internal/database"
	"github.com/buildermart/marketplace-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Asset lifecycle: draft -> pending_review -> approved -> active, then
// paused/delisted. Rejection sends a submission back to draft.
var assetTransitions = map[models.AssetStatus][]models.AssetStatus{
	models.AssetStatusDraft:         {models.AssetStatusPendingReview},
	models.AssetStatusPendingReview: {models.AssetStatusApproved, models.AssetStatusDraft},
	models.AssetStatusApproved:      {models.AssetStatusActive},
	models.AssetStatusActive:        {models.AssetStatusPaused, models.AssetStatusDelisted},
	models.AssetStatusPaused:        {models.AssetStatusActive, models.AssetStatusDelisted},
}

func canTransition(from, to models.AssetStatus) bool {
	for _, allowed := range assetTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionAsset moves an asset through its lifecycle. Entering or
// leaving active refreshes the owning category's denormalized stats in the
// same database transaction, and every transition is audited.
func (s *AdminService) TransitionAsset(assetID, adminID uuid.UUID, to models.AssetStatus, reason string) error {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("asset not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	from := asset.Status
	if !canTransition(from, to) {
		return fmt.Errorf("invalid status transition %s -> %s", from, to)
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": to}
		if to == models.AssetStatusActive && asset.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}

		if err := tx.Model(&asset).UpdateColumns(updates).Error; err != nil {
			return fmt.Errorf("failed to update asset status: %w", err)
		}

		if from == models.AssetStatusActive || to == models.AssetStatusActive {
			if err := refreshCategoryStats(tx, asset.CategoryID); err != nil {
				return err
			}
		}

		return s.logAdminAction(tx, adminID, actionForTransition(to), models.AdminTargetAsset, asset.ID, models.JSONB{
			"from":   string(from),
			"to":     string(to),
			"reason": reason,
		})
	})
}

func actionForTransition(to models.AssetStatus) string {
	switch to {
	case models.AssetStatusApproved:
		return "approve_asset"
	case models.AssetStatusDraft:
		return "reject_asset"
	case models.AssetStatusActive:
		return "activate_asset"
	case models.AssetStatusPaused:
		return "pause_asset"
	case models.AssetStatusDelisted:
		return "delist_asset"
	default:
		return "transition_asset"
	}
}

// OverridePrice sets an asset price directly, bypassing the survey-derived
// band. Category price averages are refreshed alongside.
func (s *AdminService) OverridePrice(assetID, adminID uuid.UUID, licenseType models.LicenseType, price decimal.Decimal) error {
	if price.IsNegative() {
		return errors.New("price cannot be negative")
	}

	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("asset not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	column := "price_usage"
	if licenseType == models.LicenseTypeSource {
		column = "price_source"
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Model(&asset).UpdateColumn(column, price).Error; err != nil {
			return fmt.Errorf("failed to override price: %w", err)
		}

		if err := refreshCategoryStats(tx, asset.CategoryID); err != nil {
			return err
		}

		return s.logAdminAction(tx, adminID, "override_price", models.AdminTargetAsset, asset.ID, models.JSONB{
			"license_type": string(licenseType),
			"price":        price.String(),
		})
	})
}

// refreshCategoryStats recomputes the denormalized asset count and price
// averages from the category's active assets.
func refreshCategoryStats(tx *gorm.DB, categoryID uuid.UUID) error {
	var stats struct {
		AssetCount     int64
		AvgPriceUsage  decimal.NullDecimal
		AvgPriceSource decimal.NullDecimal
	}

	err := tx.Model(&models.Asset{}).
		Select("COUNT(*) AS asset_count, AVG(price_usage) AS avg_price_usage, AVG(price_source) AS avg_price_source").
		Where("category_id = ? AND status = ?", categoryID, models.AssetStatusActive).
		Scan(&stats).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate category assets: %w", err)
	}

	return tx.Model(&models.Category{}).
		Where("id = ?", categoryID).
		UpdateColumns(map[string]interface{}{
			"asset_count":      stats.AssetCount,
			"avg_price_usage":  stats.AvgPriceUsage,
			"avg_price_source": stats.AvgPriceSource,
		}).Error
}

func (s *AdminService) logAdminAction(tx *gorm.DB, adminID uuid.UUID, action, targetType string, targetID uuid.UUID, details models.JSONB) error {
	entry := &models.AdminAction{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
	}

	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"admin_id":    adminID,
		"action":      action,
		"target_type": targetType,
		"target_id":   targetID,
	}).Info("Admin action recorded")
	return nil
}
