package seeds

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildermart/marketplace-backend/internal/models"
	"github.com/buildermart/marketplace-backend/internal/utils"
)

func TestBuilderProfileFixture(t *testing.T) {
	builder := testBuilderProfile()

	assert.Equal(t, TestBuilderID, builder.ID)
	assert.Equal(t, models.ProfileRoleBuilder, builder.Role)
	assert.Equal(t, "Test Builder", builder.DisplayName)
	assert.True(t, builder.IsVerified)
	assert.True(t, builder.IsBuilder())
}

func TestCategoryFixture(t *testing.T) {
	category := aiAgentsCategory()

	assert.Equal(t, "AI Agents", category.Name)
	assert.Equal(t, "ai-agents", category.Slug)

	type slugged struct {
		Slug string `validate:"slug"`
	}
	assert.NoError(t, utils.ValidateStruct(&slugged{Slug: category.Slug}))
}

func TestAssetFixtures(t *testing.T) {
	builderID := TestBuilderID
	categoryID := uuid.New()
	assets := sampleAssets(builderID, categoryID)

	require.Len(t, assets, 3)

	slugs := make(map[string]bool)
	for _, asset := range assets {
		assert.Equal(t, builderID, asset.BuilderID)
		assert.Equal(t, categoryID, asset.CategoryID)
		assert.Equal(t, models.AssetStatusActive, asset.Status)
		assert.NotEmpty(t, asset.Name)
		assert.NotEmpty(t, asset.Tagline)
		assert.LessOrEqual(t, len(asset.Tagline), 120)
		assert.NotEmpty(t, asset.Description)
		assert.NotEmpty(t, asset.TechStack)

		assert.False(t, slugs[asset.Slug], "duplicate slug %s", asset.Slug)
		slugs[asset.Slug] = true

		// Both prices set, source above usage
		require.True(t, asset.PriceUsage.Valid)
		require.True(t, asset.PriceSource.Valid)
		assert.True(t, asset.PriceSource.Decimal.GreaterThan(asset.PriceUsage.Decimal))

		// Remaining counts fit the default scarcity totals (100 usage, 5 source)
		assert.GreaterOrEqual(t, asset.ScarcityUsageRemaining, 0)
		assert.LessOrEqual(t, asset.ScarcityUsageRemaining, 100)
		assert.GreaterOrEqual(t, asset.ScarcitySourceRemaining, 0)
		assert.LessOrEqual(t, asset.ScarcitySourceRemaining, 5)
	}
}
