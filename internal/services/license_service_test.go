package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildermart/marketplace-backend/internal/utils"
)

func TestComputeFees(t *testing.T) {
	fees := ComputeFees(decimal.NewFromInt(25000), 16.0, 18.0)

	assert.True(t, fees.PlatformFee.Equal(decimal.NewFromInt(4000)), "fee: %s", fees.PlatformFee)
	assert.True(t, fees.TaxAmount.Equal(decimal.NewFromInt(720)), "tax: %s", fees.TaxAmount)
	assert.True(t, fees.BuilderPayout.Equal(decimal.NewFromInt(21000)), "payout: %s", fees.BuilderPayout)
}

// builderPayout = grossAmount - platformFee must hold for every breakdown
// the purchase path produces.
func TestComputeFeesPayoutIdentity(t *testing.T) {
	grosses := []string{"25000", "30000.50", "19999.99", "0.01", "1"}
	for _, g := range grosses {
		gross := decimal.RequireFromString(g)
		fees := ComputeFees(gross, 16.0, 18.0)

		assert.True(t, fees.BuilderPayout.Equal(gross.Sub(fees.PlatformFee)),
			"gross %s: payout %s != gross - fee %s", gross, fees.BuilderPayout, gross.Sub(fees.PlatformFee))
		assert.True(t, fees.PlatformFee.Add(fees.BuilderPayout).Equal(gross),
			"gross %s: fee + payout must reassemble gross", gross)
	}
}

func TestComputeFeesRoundsToCents(t *testing.T) {
	fees := ComputeFees(decimal.RequireFromString("99.99"), 16.0, 18.0)

	assert.True(t, fees.PlatformFee.Exponent() >= -2, "fee has sub-cent precision: %s", fees.PlatformFee)
	assert.True(t, fees.TaxAmount.Exponent() >= -2, "tax has sub-cent precision: %s", fees.TaxAmount)
}

func TestComputeFeesZeroPercent(t *testing.T) {
	gross := decimal.NewFromInt(5000)
	fees := ComputeFees(gross, 0, 0)

	assert.True(t, fees.PlatformFee.IsZero())
	assert.True(t, fees.TaxAmount.IsZero())
	assert.True(t, fees.BuilderPayout.Equal(gross))
}

func TestPurchaseRequestValidation(t *testing.T) {
	valid := &PurchaseRequest{
		AssetID:     uuid.New(),
		BuyerID:     uuid.New(),
		LicenseType: "usage",
	}
	require.NoError(t, utils.ValidateStruct(valid))

	badType := &PurchaseRequest{
		AssetID:     uuid.New(),
		BuyerID:     uuid.New(),
		LicenseType: "perpetual",
	}
	assert.Error(t, utils.ValidateStruct(badType))

	missingAsset := &PurchaseRequest{
		BuyerID:     uuid.New(),
		LicenseType: "source",
	}
	assert.Error(t, utils.ValidateStruct(missingAsset))
}

func TestSubmitReviewRequestValidation(t *testing.T) {
	valid := &SubmitReviewRequest{LicenseID: uuid.New(), Rating: 5}
	require.NoError(t, utils.ValidateStruct(valid))

	for _, rating := range []int{0, 6, -1} {
		req := &SubmitReviewRequest{LicenseID: uuid.New(), Rating: rating}
		assert.Error(t, utils.ValidateStruct(req), "rating %d", rating)
	}
}
