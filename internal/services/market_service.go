package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildermart/marketplace-backend/internal/models"
)

type MarketService struct {
	db *gorm.DB
}

func NewMarketService(db *gorm.DB) *MarketService {
	return &MarketService{db: db}
}

// CaptureSnapshot writes the immutable daily market data row for one
// asset: current prices, licenses sold that day, and the asset's sales
// rank within its category. The unique (asset, date) index rejects a
// second snapshot for the same day.
func (s *MarketService) CaptureSnapshot(assetID uuid.UUID, day time.Time) (*models.MarketData, error) {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("asset not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var soldToday int64
	err := s.db.Model(&models.License{}).
		Where("asset_id = ? AND created_at >= ? AND created_at < ?", assetID, dayStart, dayEnd).
		Count(&soldToday).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count licenses sold: %w", err)
	}

	rank, err := s.categoryRank(&asset)
	if err != nil {
		return nil, err
	}

	snapshot := &models.MarketData{
		AssetID:           assetID,
		SnapshotDate:      dayStart,
		PriceUsage:        asset.PriceUsage,
		PriceSource:       asset.PriceSource,
		LicensesSoldToday: int(soldToday),
		ViewsToday:        0,
		CategoryRank:      rank,
	}

	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, fmt.Errorf("failed to create market snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *MarketService) categoryRank(asset *models.Asset) (*int, error) {
	var ahead int64
	err := s.db.Model(&models.Asset{}).
		Where("category_id = ? AND status = ? AND sales_count > ?",
			asset.CategoryID, models.AssetStatusActive, asset.SalesCount).
		Count(&ahead).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute category rank: %w", err)
	}

	rank := int(ahead) + 1
	return &rank, nil
}
