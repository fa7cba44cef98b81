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

func TestRikazTwentyPercent(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewRikazCalculator(decimal.NewFromInt(1000))
	calc.LiabilitiesDueNow = decimal.NewFromInt(500)
	calc.HawlSatisfied = false

	// Rikaz ignores Hawl, debts and the threshold.
	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(200)), "got %s", res.ZakatDue)
	assert.True(t, res.Liabilities.IsZero())
	assert.True(t, res.NisabThreshold.IsZero())
}

func TestRikazZeroValueNotPayable(t *testing.T) {
	cfg := testConfig("100", "1")
	res, err := services.NewRikazCalculator(decimal.Zero).Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.True(t, res.ZakatDue.IsZero())
}

func TestMinesGoldNisab(t *testing.T) {
	cfg := testConfig("100", "1")

	res, err := services.NewMiningCalculator(decimal.NewFromInt(10000)).Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.NisabThreshold.Equal(decimal.NewFromInt(8500)), "got %s", res.NisabThreshold)
	assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(250)), "got %s", res.ZakatDue)

	// Mines always measure against gold even under the silver standard.
	silverCfg := testConfig("100", "1")
	silverCfg.NisabStandardOverride = domain.NisabSilver
	res, err = services.NewMiningCalculator(decimal.NewFromInt(1000)).Calculate(silverCfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.True(t, res.NisabThreshold.Equal(decimal.NewFromInt(8500)), "got %s", res.NisabThreshold)
}

func TestMinesHawlGate(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewMiningCalculator(decimal.NewFromInt(10000))
	calc.HawlSatisfied = false

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.Equal(t, services.StatusHawlNotMet, res.StatusReason)
}

func TestMiningNegativeValue(t *testing.T) {
	cfg := testConfig("100", "1")
	_, err := services.NewRikazCalculator(decimal.NewFromInt(-1)).Calculate(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
