package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/services"
)

func TestIncomeGrossMethod(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewIncomeCalculator(decimal.NewFromInt(12000))
	calc.BasicExpenses = decimal.NewFromInt(5000)

	// Gross method ignores basic expenses.
	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.NetAssets.Equal(decimal.NewFromInt(12000)), "got %s", res.NetAssets)
	assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(300)), "got %s", res.ZakatDue)
}

func TestIncomeNetMethod(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewIncomeCalculator(decimal.NewFromInt(12000))
	calc.BasicExpenses = decimal.NewFromInt(5000)
	calc.Method = services.IncomeNet

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.False(t, res.Payable, "7000 net is below the 8500 threshold")
	assert.True(t, res.NetAssets.Equal(decimal.NewFromInt(7000)), "got %s", res.NetAssets)
}

func TestIncomeNetMethodPayable(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewIncomeCalculator(decimal.NewFromInt(20000))
	calc.BasicExpenses = decimal.NewFromInt(5000)
	calc.Method = services.IncomeNet

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.ZakatDue.Equal(decimal.RequireFromString("375")), "got %s", res.ZakatDue)
}

func TestIncomeNegativeInput(t *testing.T) {
	cfg := testConfig("100", "1")
	_, err := services.NewIncomeCalculator(decimal.NewFromInt(-100)).Calculate(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestInvestmentPurification(t *testing.T) {
	cfg := testConfig("100", "1")
	calc := services.NewInvestmentCalculator(decimal.NewFromInt(10000))
	calc.ImpureProportion = decimal.RequireFromString("0.05")

	res, err := calc.Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.Payable)
	assert.True(t, res.NetAssets.Equal(decimal.NewFromInt(9500)), "got %s", res.NetAssets)
	assert.True(t, res.ZakatDue.Equal(decimal.RequireFromString("237.5")), "got %s", res.ZakatDue)
}

func TestInvestmentKinds(t *testing.T) {
	cfg := testConfig("100", "1")
	for _, kind := range []services.InvestmentKind{
		services.InvestmentStock, services.InvestmentCrypto, services.InvestmentMutualFund,
	} {
		calc := services.NewInvestmentCalculator(decimal.NewFromInt(9000))
		calc.Kind = kind
		res, err := calc.Calculate(cfg)
		require.NoError(t, err)
		assert.True(t, res.Payable, "%s should be payable", kind)
		assert.True(t, res.ZakatDue.Equal(decimal.NewFromInt(225)), "%s: got %s", kind, res.ZakatDue)
	}
}

func TestInvestmentProportionOutOfRange(t *testing.T) {
	cfg := testConfig("100", "1")

	calc := services.NewInvestmentCalculator(decimal.NewFromInt(10000))
	calc.ImpureProportion = decimal.RequireFromString("1.5")
	_, err := calc.Calculate(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	calc = services.NewInvestmentCalculator(decimal.NewFromInt(10000))
	calc.ImpureProportion = decimal.RequireFromString("-0.1")
	_, err = calc.Calculate(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
