package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/services"
	"github.com/zakatify/zakat_backend/internal/dto"
)

func TestBusinessRequestSanitizesAmounts(t *testing.T) {
	req := dto.BusinessZakatRequest{
		CashOnHand:     "$5,000.00",
		InventoryValue: "3.000,00",
		Receivables:    "2 000",
	}
	req.Label = "Shop"
	req.LiabilitiesDueNow = "1,000"

	calc, err := req.ToCalculator()
	require.NoError(t, err)
	assert.Equal(t, "Shop", calc.AssetLabel)
	assert.True(t, calc.CashOnHand.Equal(decimal.NewFromInt(5000)), "got %s", calc.CashOnHand)
	assert.True(t, calc.InventoryValue.Equal(decimal.NewFromInt(3000)), "got %s", calc.InventoryValue)
	assert.True(t, calc.Receivables.Equal(decimal.NewFromInt(2000)), "got %s", calc.Receivables)
	assert.True(t, calc.LiabilitiesDueNow.Equal(decimal.NewFromInt(1000)), "got %s", calc.LiabilitiesDueNow)
}

func TestMetalsRequestWeightUnits(t *testing.T) {
	req := dto.MetalsZakatRequest{Metal: "gold", WeightTola: "2"}
	calc, err := req.ToCalculator()
	require.NoError(t, err)
	assert.True(t, calc.WeightGrams.Equal(decimal.NewFromInt(2).Mul(services.GramsPerTola)))

	// Exactly one weight unit is required.
	_, err = dto.MetalsZakatRequest{Metal: "gold"}.ToCalculator()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = dto.MetalsZakatRequest{Metal: "gold", WeightGrams: "10", WeightOz: "1"}.ToCalculator()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestMetalsRequestSilverPurity(t *testing.T) {
	perMille := 925
	req := dto.MetalsZakatRequest{Metal: "SILVER", WeightGrams: "700", PurityPerMille: &perMille}
	calc, err := req.ToCalculator()
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySilver, calc.Metal)
	assert.Equal(t, 925, calc.PurityPerMille)
}

func TestAgricultureRequestUnitExclusivity(t *testing.T) {
	_, err := dto.AgricultureZakatRequest{PricePerKg: "1"}.ToCalculator()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = dto.AgricultureZakatRequest{HarvestWeightKg: "100", HarvestWasaq: "5", PricePerKg: "1"}.ToCalculator()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	calc, err := dto.AgricultureZakatRequest{HarvestWasaq: "5", PricePerKg: "1"}.ToCalculator()
	require.NoError(t, err)
	assert.True(t, calc.HarvestWeightKg.Equal(decimal.RequireFromString("653")), "got %s", calc.HarvestWeightKg)
}

func TestMiningRequestKind(t *testing.T) {
	calc, err := dto.MiningZakatRequest{Value: "1000", Kind: "rikaz"}.ToCalculator()
	require.NoError(t, err)
	assert.Equal(t, services.MiningRikaz, calc.Kind)

	calc, err = dto.MiningZakatRequest{Value: "1000"}.ToCalculator()
	require.NoError(t, err)
	assert.Equal(t, services.MiningMines, calc.Kind)
}

func TestLivestockRequestGrazing(t *testing.T) {
	req := dto.LivestockZakatRequest{Count: 50, Species: "sheep", Grazing: "maalufah", SheepPrice: "100"}
	calc, err := req.ToCalculator()
	require.NoError(t, err)
	assert.Equal(t, services.SpeciesSheep, calc.Species)
	assert.Equal(t, services.GrazingMaalufah, calc.Grazing)
}

func TestConfigOverridesApply(t *testing.T) {
	base := domain.ZakatConfig{
		Madhab:             domain.Shafi,
		GoldPricePerGram:   decimal.NewFromInt(100),
		SilverPricePerGram: decimal.NewFromInt(1),
	}

	overrides := &dto.ConfigOverridesRequest{
		Madhab:           "hanafi",
		GoldPricePerGram: "$120",
	}
	cfg, err := overrides.Apply(base)
	require.NoError(t, err)
	assert.Equal(t, domain.Hanafi, cfg.Madhab)
	assert.True(t, cfg.GoldPricePerGram.Equal(decimal.NewFromInt(120)))
	assert.True(t, cfg.SilverPricePerGram.Equal(decimal.NewFromInt(1)), "untouched fields keep defaults")

	_, err = (&dto.ConfigOverridesRequest{Madhab: "sufi"}).Apply(base)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	var nilOverrides *dto.ConfigOverridesRequest
	cfg, err = nilOverrides.Apply(base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestAssetBaseHawlFields(t *testing.T) {
	hawl := false
	req := dto.BusinessZakatRequest{CashOnHand: "1000"}
	req.HawlSatisfied = &hawl
	req.AcquisitionDate = "2024-01-15"
	req.AsOfDate = "2024-06-01"

	calc, err := req.ToCalculator()
	require.NoError(t, err)
	assert.False(t, calc.HawlSatisfied)
	require.NotNil(t, calc.AcquisitionDate)
	assert.Equal(t, "2024-01-15", calc.AcquisitionDate.Format("2006-01-02"))
	assert.Equal(t, "2024-06-01", calc.AsOfDate.Format("2006-01-02"))

	req.AcquisitionDate = "15/01/2024"
	_, err = req.ToCalculator()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestToCalculationResponse(t *testing.T) {
	res := domain.CalculationResult{
		TotalAssets:    decimal.NewFromInt(9000),
		NetAssets:      decimal.NewFromInt(9000),
		NisabThreshold: decimal.NewFromInt(8500),
		Payable:        true,
		ZakatDue:       decimal.RequireFromString("225"),
		Category:       domain.CategoryBusiness,
		Trace: []domain.CalculationStep{
			domain.TraceInitial("Cash on Hand", decimal.NewFromInt(9000)),
			domain.TraceInfo("Gross method used"),
		},
	}

	out := dto.ToCalculationResponse(res)
	assert.Equal(t, "9000", out.TotalAssets)
	assert.Equal(t, "225", out.ZakatDue)
	assert.True(t, out.Payable)
	require.Len(t, out.Trace, 2)
	assert.Equal(t, "9000", out.Trace[0].Amount)
	assert.Empty(t, out.Trace[1].Amount, "info steps carry no amount")
}
