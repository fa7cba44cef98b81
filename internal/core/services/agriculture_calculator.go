package services

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// IrrigationMethod determines the agriculture rate: naturally watered crops
// owe more than crops irrigated at cost.
type IrrigationMethod string

const (
	IrrigationRain      IrrigationMethod = "RAIN"
	IrrigationIrrigated IrrigationMethod = "IRRIGATED"
	IrrigationMixed     IrrigationMethod = "MIXED"
)

// KgPerWasaq converts the classical Wasaq unit to kilograms.
var KgPerWasaq = decimal.RequireFromString("130.6")

var (
	rateRain      = decimal.RequireFromString("0.10")
	rateIrrigated = decimal.RequireFromString("0.05")
	rateMixed     = decimal.RequireFromString("0.075")
)

// AgricultureCalculator computes Zakat on harvests. The 653kg Nisab is
// expressed in value terms at the same price per kg. Hawl does not apply; the
// obligation arises at harvest time. A caller-set liability deduction is
// still honored.
type AgricultureCalculator struct {
	AssetBase
	HarvestWeightKg decimal.Decimal
	PricePerKg      decimal.Decimal
	Irrigation      IrrigationMethod
}

// NewAgricultureCalculator creates a rain-fed harvest asset.
func NewAgricultureCalculator(harvestWeightKg, pricePerKg decimal.Decimal) *AgricultureCalculator {
	return &AgricultureCalculator{
		AssetBase:       newAssetBase(),
		HarvestWeightKg: harvestWeightKg,
		PricePerKg:      pricePerKg,
		Irrigation:      IrrigationRain,
	}
}

// NewAgricultureCalculatorFromWasaq creates the asset from Wasaq units
// (1 Wasaq is approximately 130.6 kg).
func NewAgricultureCalculatorFromWasaq(wasaq, pricePerKg decimal.Decimal) *AgricultureCalculator {
	return NewAgricultureCalculator(wasaq.Mul(KgPerWasaq), pricePerKg)
}

// Rate returns the irrigation-dependent rate: rain-fed 10%, irrigated 5%,
// mixed 7.5%.
func (c *AgricultureCalculator) Rate() decimal.Decimal {
	switch c.Irrigation {
	case IrrigationIrrigated:
		return rateIrrigated
	case IrrigationMixed:
		return rateMixed
	default:
		return rateRain
	}
}

func (c *AgricultureCalculator) irrigationDescription() string {
	switch c.Irrigation {
	case IrrigationIrrigated:
		return "Irrigated (5%)"
	case IrrigationMixed:
		return "Mixed irrigation (7.5%)"
	default:
		return "Rain-fed (10%)"
	}
}

// Calculate implements the shared calculation contract.
func (c *AgricultureCalculator) Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error) {
	var errs []error
	for _, check := range []struct {
		field string
		value decimal.Decimal
	}{
		{"harvest_weight_kg", c.HarvestWeightKg},
		{"price_per_kg", c.PricePerKg},
		{"liabilities_due_now", c.LiabilitiesDueNow},
	} {
		if err := requireNonNegative(check.field, check.value); err != nil {
			errs = append(errs, err)
		}
	}
	if err := apperrors.Collect(errs); err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}
	if !c.PricePerKg.IsPositive() {
		return domain.CalculationResult{}, apperrors.WithSource(
			apperrors.NewConfiguration("price per kg must be positive for the agriculture nisab"), c.AssetLabel)
	}

	totalValue := c.HarvestWeightKg.Mul(c.PricePerKg)
	nisabValue := cfg.AgricultureNisabKg().Mul(c.PricePerKg)
	rate := c.Rate()

	trace := []domain.CalculationStep{
		domain.TraceInitial("Harvest Weight (kg)", c.HarvestWeightKg),
		domain.TraceInitial("Price per kg", c.PricePerKg),
		domain.TraceResult("Total Harvest Value", totalValue),
		domain.TraceSubtract("Liabilities Due Now", c.LiabilitiesDueNow),
	}
	net := totalValue.Sub(c.LiabilitiesDueNow)
	trace = append(trace,
		domain.TraceResult("Net Harvest Value", net),
		domain.TraceCompare("Nisab Threshold (653kg value)", nisabValue),
	)

	res := domain.NewProportionalResult(totalValue, c.LiabilitiesDueNow, nisabValue, rate, domain.CategoryAgriculture)
	if res.Payable {
		trace = append(trace,
			domain.TraceInfo("Irrigation method: "+c.irrigationDescription()),
			domain.TraceRate("Applied Rate", rate),
			domain.TraceResult("Zakat Due", res.ZakatDue),
		)
	} else {
		trace = append(trace, domain.TraceInfo("Net value below Nisab - no Zakat due"))
	}
	return res.WithTrace(trace).WithLabel(c.AssetLabel), nil
}
