package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBRoundTrip(t *testing.T) {
	original := JSONB{"action": "approve_asset", "count": float64(3)}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded JSONB
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestJSONBNil(t *testing.T) {
	var j JSONB
	value, err := j.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var decoded JSONB
	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)
}

func TestPriceBandRoundTrip(t *testing.T) {
	band := PriceBand{
		Floor:   decimal.NewFromInt(15000),
		Optimal: decimal.NewFromInt(25000),
		Ceiling: decimal.NewFromInt(40000),
	}

	value, err := band.Value()
	require.NoError(t, err)

	var decoded PriceBand
	require.NoError(t, decoded.Scan(value))
	assert.True(t, band.Floor.Equal(decoded.Floor))
	assert.True(t, band.Optimal.Equal(decoded.Optimal))
	assert.True(t, band.Ceiling.Equal(decoded.Ceiling))
}

func TestLicenseRightsScanNil(t *testing.T) {
	rights := LicenseRights{Deploy: true}
	require.NoError(t, rights.Scan(nil))
	assert.Equal(t, LicenseRights{}, rights)
}

func TestDefaultRights(t *testing.T) {
	usage := DefaultRights(LicenseTypeUsage)
	assert.True(t, usage.Deploy)
	assert.False(t, usage.Modify)
	assert.False(t, usage.Redistribute)
	assert.False(t, usage.SourceAccess)

	source := DefaultRights(LicenseTypeSource)
	assert.True(t, source.Deploy)
	assert.True(t, source.Modify)
	assert.False(t, source.Redistribute)
	assert.True(t, source.SourceAccess)
}

// Usage rights must be a subset of source rights.
func TestUsageRightsSubsetOfSource(t *testing.T) {
	usage := DefaultRights(LicenseTypeUsage)
	source := DefaultRights(LicenseTypeSource)

	if usage.Deploy {
		assert.True(t, source.Deploy)
	}
	if usage.Modify {
		assert.True(t, source.Modify)
	}
	if usage.Redistribute {
		assert.True(t, source.Redistribute)
	}
	if usage.SourceAccess {
		assert.True(t, source.SourceAccess)
	}
}

func TestLicenseCanDownload(t *testing.T) {
	license := License{
		Status:        LicenseStatusActive,
		DownloadCount: 4,
		MaxDownloads:  5,
	}
	assert.NoError(t, license.CanDownload())

	license.DownloadCount = 5
	assert.ErrorIs(t, license.CanDownload(), ErrDownloadQuotaSpent)

	license.DownloadCount = 0
	license.Status = LicenseStatusRevoked
	assert.ErrorIs(t, license.CanDownload(), ErrLicenseNotActive)
}

func TestAssetPriceFor(t *testing.T) {
	asset := Asset{
		PriceUsage: decimal.NullDecimal{Decimal: decimal.NewFromInt(25000), Valid: true},
	}

	price, err := asset.PriceFor(LicenseTypeUsage)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(25000)))

	_, err = asset.PriceFor(LicenseTypeSource)
	assert.ErrorIs(t, err, ErrPriceNotSet)
}

func TestAssetScarcityRemaining(t *testing.T) {
	asset := Asset{
		ScarcityUsageRemaining:  47,
		ScarcitySourceRemaining: 3,
	}

	assert.Equal(t, 47, asset.ScarcityRemaining(LicenseTypeUsage))
	assert.Equal(t, 3, asset.ScarcityRemaining(LicenseTypeSource))
}

func TestProfileRoleHelpers(t *testing.T) {
	cases := []struct {
		role    ProfileRole
		builder bool
		buyer   bool
	}{
		{ProfileRoleBuyer, false, true},
		{ProfileRoleBuilder, true, false},
		{ProfileRoleBoth, true, true},
		{ProfileRoleAdmin, true, true},
	}

	for _, tc := range cases {
		p := Profile{Role: tc.role}
		assert.Equal(t, tc.builder, p.IsBuilder(), "role %s builder", tc.role)
		assert.Equal(t, tc.buyer, p.IsBuyer(), "role %s buyer", tc.role)
	}
}
