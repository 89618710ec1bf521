package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildermart/marketplace-backend/internal/models"
	"github.com/buildermart/marketplace-backend/internal/utils"
)

func response(bargain, acceptable, expensive string) models.SurveyResponse {
	r := models.SurveyResponse{}
	if bargain != "" {
		r.PriceBargain = decimal.NullDecimal{Decimal: decimal.RequireFromString(bargain), Valid: true}
	}
	if acceptable != "" {
		r.PriceExpensiveButOk = decimal.NullDecimal{Decimal: decimal.RequireFromString(acceptable), Valid: true}
	}
	if expensive != "" {
		r.PriceTooExpensive = decimal.NullDecimal{Decimal: decimal.RequireFromString(expensive), Valid: true}
	}
	return r
}

func TestBandFromResponses(t *testing.T) {
	responses := []models.SurveyResponse{
		response("15000", "25000", "40000"),
		response("18000", "26000", "45000"),
		response("12000", "24000", "38000"),
	}

	band := bandFromResponses(responses)
	require.NotNil(t, band)

	assert.True(t, band.Floor.Equal(decimal.NewFromInt(15000)), "floor: %s", band.Floor)
	assert.True(t, band.Optimal.Equal(decimal.NewFromInt(25000)), "optimal: %s", band.Optimal)
	assert.True(t, band.Ceiling.Equal(decimal.NewFromInt(40000)), "ceiling: %s", band.Ceiling)
}

func TestBandOrderingInvariant(t *testing.T) {
	cases := [][]models.SurveyResponse{
		{response("10", "500", "20")}, // optimal above ceiling, clamp down
		{response("10", "1", "20")},   // optimal below floor, clamp up
		{response("50", "", "10")},    // inverted floor/ceiling from noisy data
	}

	for i, responses := range cases {
		band := bandFromResponses(responses)
		require.NotNil(t, band, "case %d", i)

		assert.True(t, band.Floor.LessThanOrEqual(band.Optimal),
			"case %d: floor %s > optimal %s", i, band.Floor, band.Optimal)
		assert.True(t, band.Optimal.LessThanOrEqual(band.Ceiling),
			"case %d: optimal %s > ceiling %s", i, band.Optimal, band.Ceiling)
	}
}

func TestBandFromResponsesInsufficientData(t *testing.T) {
	assert.Nil(t, bandFromResponses(nil))
	assert.Nil(t, bandFromResponses([]models.SurveyResponse{response("", "25000", "")}))
	assert.Nil(t, bandFromResponses([]models.SurveyResponse{response("15000", "", "")}))
}

func TestMedian(t *testing.T) {
	odd := []decimal.Decimal{
		decimal.NewFromInt(30),
		decimal.NewFromInt(10),
		decimal.NewFromInt(20),
	}
	assert.True(t, median(odd).Equal(decimal.NewFromInt(20)))

	even := []decimal.Decimal{
		decimal.NewFromInt(10),
		decimal.NewFromInt(20),
	}
	assert.True(t, median(even).Equal(decimal.NewFromInt(15)))
}

func TestFilterByLicense(t *testing.T) {
	responses := []models.SurveyResponse{
		{PreferredLicense: models.LicenseTypeUsage},
		{PreferredLicense: models.LicenseTypeSource},
		{PreferredLicense: models.LicenseTypeUsage},
		{},
	}

	assert.Len(t, filterByLicense(responses, models.LicenseTypeUsage), 2)
	assert.Len(t, filterByLicense(responses, models.LicenseTypeSource), 1)
}

func TestCollectResponseRequestValidation(t *testing.T) {
	valid := &CollectResponseRequest{
		SurveyID:         uuid.New(),
		RespondentEmail:  "buyer@example.com",
		PreferredLicense: models.LicenseTypeUsage,
		Urgency:          models.UrgencyThisQuarter,
	}
	require.NoError(t, utils.ValidateStruct(valid))

	badEmail := &CollectResponseRequest{
		SurveyID:        uuid.New(),
		RespondentEmail: "not-an-email",
	}
	assert.Error(t, utils.ValidateStruct(badEmail))

	badUrgency := &CollectResponseRequest{
		SurveyID:        uuid.New(),
		RespondentEmail: "buyer@example.com",
		Urgency:         "someday",
	}
	assert.Error(t, utils.ValidateStruct(badUrgency))
}
