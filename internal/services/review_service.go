package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/buildermart/marketplace-backend/internal/database"
	"github.com/buildermart/marketplace-backend/internal/models"
	"github.com/buildermart/marketplace-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type SubmitReviewRequest struct {
	LicenseID uuid.UUID `json:"license_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Title     string    `json:"title,omitempty" validate:"max=255"`
	Body      string    `json:"body,omitempty"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Submit creates a pending review authorized by the given license. One
// review per license; the schema carries no uniqueness for it, so the
// check lives here.
func (s *ReviewService) Submit(req *SubmitReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var license models.License
	if err := s.db.First(&license, "id = ?", req.LicenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("license not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if license.Status != models.LicenseStatusActive && license.Status != models.LicenseStatusExpired {
		return nil, errors.New("license does not authorize a review")
	}

	var existing int64
	if err := s.db.Model(&models.Review{}).
		Where("license_id = ?", req.LicenseID).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing reviews: %w", err)
	}
	if existing > 0 {
		return nil, errors.New("a review already exists for this license")
	}

	review := &models.Review{
		AssetID:   license.AssetID,
		BuyerID:   license.BuyerID,
		LicenseID: license.ID,
		Rating:    req.Rating,
		Title:     req.Title,
		Body:      req.Body,
		Status:    models.ReviewStatusPending,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// Moderate approves or rejects a pending review. Approval recomputes the
// asset's aggregate rating from the approved reviews in the same database
// transaction, and every decision lands in the admin audit log.
func (s *ReviewService) Moderate(reviewID, adminID uuid.UUID, approve bool, notes string) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("review not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if review.Status != models.ReviewStatusPending {
		return fmt.Errorf("review is already %s", review.Status)
	}

	status := models.ReviewStatusRejected
	action := "reject_review"
	if approve {
		status = models.ReviewStatusApproved
		action = "approve_review"
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Model(&review).UpdateColumn("status", status).Error; err != nil {
			return fmt.Errorf("failed to update review status: %w", err)
		}

		if approve {
			if err := refreshAssetRating(tx, review.AssetID); err != nil {
				return err
			}
		}

		audit := &models.AdminAction{
			AdminID:    adminID,
			Action:     action,
			TargetType: models.AdminTargetReview,
			TargetID:   review.ID,
			Details: models.JSONB{
				"asset_id": review.AssetID.String(),
				"rating":   review.Rating,
				"notes":    notes,
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		return nil
	})
}

func refreshAssetRating(tx *gorm.DB, assetID uuid.UUID) error {
	var stats struct {
		AvgRating   decimal.NullDecimal
		ReviewCount int64
	}

	err := tx.Model(&models.Review{}).
		Select("AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Where("asset_id = ? AND status = ?", assetID, models.ReviewStatusApproved).
		Scan(&stats).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	avg := decimal.Zero
	if stats.AvgRating.Valid {
		avg = stats.AvgRating.Decimal.Round(2)
	}

	return tx.Model(&models.Asset{}).
		Where("id = ?", assetID).
		UpdateColumns(map[string]interface{}{
			"avg_rating":   avg,
			"review_count": stats.ReviewCount,
		}).Error
}
