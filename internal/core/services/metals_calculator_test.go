package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/services"
)

func TestGoldAtNisabBoundary(t *testing.T) {
	cfg := testConfig("100", "1")

	res, err := services.NewGoldCalculator(decimal.NewFromInt(85)).Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.ZakatDue.Equal(decimal.RequireFromString("212.5")), "got %s", res.ZakatDue)

	res, err = services.NewGoldCalculator(decimal.NewFromInt(84)).Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.True(t, res.ZakatDue.IsZero())
}

func TestGoldPurityAdjustment(t *testing.T) {
	cfg := testConfig("100", "1")

	// 100g of 18K is 75g pure, below the 85g threshold.
	calc := services.NewGoldCalculator(decimal.NewFromInt(100))
	calc.PurityKarat = 18
	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.True(t, res.TotalAssets.Equal(decimal.NewFromInt(7500)), "got %s", res.TotalAssets)

	// The same weight at 24K is payable.
	res, err = services.NewGoldCalculator(decimal.NewFromInt(100)).Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
}

func TestGoldInvalidKarat(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewGoldCalculator(decimal.NewFromInt(100))
	calc.PurityKarat = 25
	_, err := calc.Calculate(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestSilverFinenessBoundary(t *testing.T) {
	cfg := testConfig("100", "1")

	// 643g sterling is 594.775g pure, just below the 595g threshold.
	calc := services.NewSilverCalculator(decimal.NewFromInt(643))
	calc.PurityPerMille = 925
	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)

	calc = services.NewSilverCalculator(decimal.NewFromInt(644))
	calc.PurityPerMille = 925
	res, err = calc.Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
}

func TestJewelryExemptionByMadhab(t *testing.T) {
	weight := decimal.NewFromInt(100)

	shafiCfg := testConfig("100", "1")
	calc := services.NewGoldCalculator(weight)
	calc.Usage = services.UsagePersonalUse
	res, err := calc.Calculate(shafiCfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.Equal(t, services.StatusJewelryExempt, res.StatusReason)

	// Hanafi taxes personal jewelry.
	hanafiCfg := testConfig("100", "1")
	hanafiCfg.Madhab = domain.Hanafi
	calc = services.NewGoldCalculator(weight)
	calc.Usage = services.UsagePersonalUse
	res, err = calc.Calculate(hanafiCfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.Empty(t, res.StatusReason)

	// Investment metal is never exempt.
	res, err = services.NewGoldCalculator(weight).Calculate(shafiCfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
}

func TestMetalsHawlGate(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewGoldCalculator(decimal.NewFromInt(100))
	calc.HawlSatisfied = false
	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.Equal(t, services.StatusHawlNotMet, res.StatusReason)
}

func TestMetalsMissingPriceFails(t *testing.T) {
	cfg := domain.ZakatConfig{Madhab: domain.Shafi}
	_, err := services.NewGoldCalculator(decimal.NewFromInt(100)).Calculate(cfg)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestMetalsNegativeWeightFails(t *testing.T) {
	cfg := testConfig("100", "1")
	_, err := services.NewGoldCalculator(decimal.NewFromInt(-1)).Calculate(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
