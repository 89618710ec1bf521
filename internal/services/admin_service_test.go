package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildermart/marketplace-backend/internal/models"
)

func TestAssetTransitions(t *testing.T) {
	allowed := []struct {
		from, to models.AssetStatus
	}{
		{models.AssetStatusDraft, models.AssetStatusPendingReview},
		{models.AssetStatusPendingReview, models.AssetStatusApproved},
		{models.AssetStatusPendingReview, models.AssetStatusDraft},
		{models.AssetStatusApproved, models.AssetStatusActive},
		{models.AssetStatusActive, models.AssetStatusPaused},
		{models.AssetStatusActive, models.AssetStatusDelisted},
		{models.AssetStatusPaused, models.AssetStatusActive},
		{models.AssetStatusPaused, models.AssetStatusDelisted},
	}

	for _, tc := range allowed {
		assert.True(t, canTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct {
		from, to models.AssetStatus
	}{
		{models.AssetStatusDraft, models.AssetStatusActive},
		{models.AssetStatusDraft, models.AssetStatusApproved},
		{models.AssetStatusApproved, models.AssetStatusDraft},
		{models.AssetStatusActive, models.AssetStatusDraft},
		{models.AssetStatusDelisted, models.AssetStatusActive},
		{models.AssetStatusDelisted, models.AssetStatusDraft},
	}

	for _, tc := range denied {
		assert.False(t, canTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestActionForTransition(t *testing.T) {
	assert.Equal(t, "approve_asset", actionForTransition(models.AssetStatusApproved))
	assert.Equal(t, "reject_asset", actionForTransition(models.AssetStatusDraft))
	assert.Equal(t, "activate_asset", actionForTransition(models.AssetStatusActive))
	assert.Equal(t, "pause_asset", actionForTransition(models.AssetStatusPaused))
	assert.Equal(t, "delist_asset", actionForTransition(models.AssetStatusDelisted))
}
