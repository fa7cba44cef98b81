package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/services"
)

func TestBusinessZakatPayable(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewBusinessCalculator(
		decimal.NewFromInt(5000),
		decimal.NewFromInt(3000),
		decimal.NewFromInt(2000),
		decimal.NewFromInt(1000),
	)

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.NetAssets.Equal(decimal.NewFromInt(9000)), "got %s", res.NetAssets)
	assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(225)), "got %s", res.ZakatDue)
	assert.NotEmpty(t, res.Trace)
}

func TestBusinessBelowNisab(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewBusinessCalculator(
		decimal.NewFromInt(5000),
		decimal.Zero,
		decimal.Zero,
		decimal.Zero,
	)

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.True(t, res.ZakatDue.IsZero())
}

func TestBusinessNegativeInputsCollected(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewBusinessCalculator(
		decimal.NewFromInt(-1),
		decimal.NewFromInt(-2),
		decimal.Zero,
		decimal.Zero,
	)

	_, err := calc.Calculate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestBusinessHawlGate(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewBusinessCalculator(
		decimal.NewFromInt(10000),
		decimal.Zero,
		decimal.Zero,
		decimal.Zero,
	)
	calc.HawlSatisfied = false

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.Equal(t, services.StatusHawlNotMet, res.StatusReason)
	assert.True(t, res.NetAssets.IsZero())
}

func TestBusinessLiabilitiesExceedAssets(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewBusinessCalculator(
		decimal.NewFromInt(1000),
		decimal.Zero,
		decimal.Zero,
		decimal.NewFromInt(5000),
	)

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable)
	assert.True(t, res.NetAssets.IsNegative())
	assert.True(t, res.ZakatDue.IsZero())
}
