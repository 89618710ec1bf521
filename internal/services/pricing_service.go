package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/buildermart/marketplace-backend/internal/database"
	"github.com/buildermart/marketplace-backend/internal/models"
	"github.com/buildermart/marketplace-backend/internal/utils"
)

type PricingService struct {
	db *gorm.DB
}

type CollectResponseRequest struct {
	SurveyID        uuid.UUID `json:"survey_id" validate:"required"`
	RespondentEmail string    `json:"respondent_email" validate:"required,email"`

	PriceTooExpensive   decimal.NullDecimal `json:"price_too_expensive"`
	PriceExpensiveButOk decimal.NullDecimal `json:"price_expensive_but_ok"`
	PriceBargain        decimal.NullDecimal `json:"price_bargain"`
	PriceTooCheap       decimal.NullDecimal `json:"price_too_cheap"`

	PreferredLicense models.LicenseType `json:"preferred_license,omitempty" validate:"omitempty,oneof=usage source"`
	Urgency          models.Urgency     `json:"urgency,omitempty" validate:"omitempty,oneof=immediate this_quarter this_year exploring"`

	MustHaveFeatures string `json:"must_have_features,omitempty"`
	Concerns         string `json:"concerns,omitempty"`
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{db: db}
}

func (s *PricingService) CreateSurvey(assetID uuid.UUID, targetResponses int) (*models.Survey, error) {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("asset not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if targetResponses <= 0 {
		targetResponses = 100
	}

	survey := &models.Survey{
		AssetID:         assetID,
		Status:          models.SurveyStatusActive,
		TargetResponses: targetResponses,
	}
	if err := s.db.Create(survey).Error; err != nil {
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}
	return survey, nil
}

// CollectResponse stores one Van Westendorp response. Reaching the target
// response count closes the survey.
func (s *PricingService) CollectResponse(req *CollectResponseRequest) (*models.SurveyResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var survey models.Survey
	if err := s.db.First(&survey, "id = ?", req.SurveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("survey not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if survey.Status != models.SurveyStatusActive {
		return nil, errors.New("survey is not accepting responses")
	}

	response := &models.SurveyResponse{
		SurveyID:            survey.ID,
		RespondentEmail:     req.RespondentEmail,
		PriceTooExpensive:   req.PriceTooExpensive,
		PriceExpensiveButOk: req.PriceExpensiveButOk,
		PriceBargain:        req.PriceBargain,
		PriceTooCheap:       req.PriceTooCheap,
		PreferredLicense:    req.PreferredLicense,
		Urgency:             req.Urgency,
		MustHaveFeatures:    req.MustHaveFeatures,
		Concerns:            req.Concerns,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return fmt.Errorf("failed to create response: %w", err)
		}

		var count int64
		if err := tx.Model(&models.SurveyResponse{}).
			Where("survey_id = ?", survey.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count responses: %w", err)
		}

		if count >= int64(survey.TargetResponses) {
			now := time.Now()
			return tx.Model(&survey).UpdateColumns(map[string]interface{}{
				"status":    models.SurveyStatusClosed,
				"closed_at": now,
			}).Error
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return response, nil
}

// DeriveBands computes floor/optimal/ceiling price bands per license type
// from the asset's survey responses and writes them to the asset. Floor is
// the median bargain price, ceiling the median too-expensive price, and
// optimal the median expensive-but-acceptable price clamped into the band.
func (s *PricingService) DeriveBands(assetID uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("asset not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var responses []models.SurveyResponse
	err := s.db.
		Joins("JOIN surveys ON surveys.id = survey_responses.survey_id").
		Where("surveys.asset_id = ?", assetID).
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load survey responses: %w", err)
	}

	updates := map[string]interface{}{}
	if band := bandFromResponses(filterByLicense(responses, models.LicenseTypeUsage)); band != nil {
		asset.PriceBandUsage = band
		updates["price_band_usage"] = band
	}
	if band := bandFromResponses(filterByLicense(responses, models.LicenseTypeSource)); band != nil {
		asset.PriceBandSource = band
		updates["price_band_source"] = band
	}

	if len(updates) == 0 {
		return nil, errors.New("not enough survey data to derive price bands")
	}

	if err := s.db.Model(&asset).UpdateColumns(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to store price bands: %w", err)
	}
	return &asset, nil
}

func filterByLicense(responses []models.SurveyResponse, licenseType models.LicenseType) []models.SurveyResponse {
	var out []models.SurveyResponse
	for _, r := range responses {
		if r.PreferredLicense == licenseType {
			out = append(out, r)
		}
	}
	return out
}

func bandFromResponses(responses []models.SurveyResponse) *models.PriceBand {
	var bargains, acceptables, expensives []decimal.Decimal
	for _, r := range responses {
		if r.PriceBargain.Valid {
			bargains = append(bargains, r.PriceBargain.Decimal)
		}
		if r.PriceExpensiveButOk.Valid {
			acceptables = append(acceptables, r.PriceExpensiveButOk.Decimal)
		}
		if r.PriceTooExpensive.Valid {
			expensives = append(expensives, r.PriceTooExpensive.Decimal)
		}
	}

	if len(bargains) == 0 || len(expensives) == 0 {
		return nil
	}

	floor := median(bargains)
	ceiling := median(expensives)
	if ceiling.LessThan(floor) {
		floor, ceiling = ceiling, floor
	}

	optimal := floor.Add(ceiling).Div(decimal.NewFromInt(2)).Round(2)
	if len(acceptables) > 0 {
		optimal = median(acceptables)
		if optimal.LessThan(floor) {
			optimal = floor
		}
		if optimal.GreaterThan(ceiling) {
			optimal = ceiling
		}
	}

	return &models.PriceBand{Floor: floor, Optimal: optimal, Ceiling: ceiling}
}

func median(values []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2)).Round(2)
}
