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

func TestFitrahHousehold(t *testing.T) {
	res, err := services.CalculateFitrah(4, decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(100)), "got %s", res.ZakatDue)
	assert.Equal(t, domain.CategoryFitrah, res.Category)
}

func TestFitrahCustomUnitAmount(t *testing.T) {
	res, err := services.CalculateFitrah(2, decimal.NewFromInt(4), decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(24)), "got %s", res.ZakatDue)
}

func TestFitrahInvalidInputs(t *testing.T) {
	_, err := services.CalculateFitrah(0, decimal.NewFromInt(10), decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = services.CalculateFitrah(-3, decimal.NewFromInt(10), decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = services.CalculateFitrah(4, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestFitrahCalculatorLabel(t *testing.T) {
	calc := services.NewFitrahCalculator(4, decimal.NewFromInt(10))
	calc.AssetLabel = "Household"

	res, err := calc.Calculate(testConfig("100", "1"))
	require.NoError(t, err)
	assert.Equal(t, "Household", res.Label)
	assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(100)))
}
