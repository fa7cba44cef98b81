package services

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// DefaultFitrahUnitAmount is the staple-food amount owed per person (2.5 of
// the configured unit, kilograms by convention).
var DefaultFitrahUnitAmount = decimal.RequireFromString("2.5")

// FitrahCalculator computes Zakat al-Fitr: a per-person staple food obligation
// with no wealth threshold and no holding period.
type FitrahCalculator struct {
	AssetBase
	PersonCount  int64
	PricePerUnit decimal.Decimal
	// UnitAmount is the amount per person; zero means the 2.5 default.
	UnitAmount decimal.Decimal
}

// NewFitrahCalculator creates the obligation for a household of the given size.
func NewFitrahCalculator(personCount int64, pricePerUnit decimal.Decimal) *FitrahCalculator {
	return &FitrahCalculator{
		AssetBase:    newAssetBase(),
		PersonCount:  personCount,
		PricePerUnit: pricePerUnit,
	}
}

// CalculateFitrah is the standalone form of the Fitrah rule, usable without
// constructing an asset.
func CalculateFitrah(personCount int64, pricePerUnit, unitAmount decimal.Decimal) (domain.CalculationResult, error) {
	if personCount <= 0 {
		return domain.CalculationResult{}, apperrors.NewInvalidInput(
			"person_count", strconv.FormatInt(personCount, 10), "error-person-count-positive")
	}
	if !pricePerUnit.IsPositive() {
		return domain.CalculationResult{}, apperrors.NewInvalidInput(
			"price_per_unit", pricePerUnit.String(), "error-price-positive")
	}
	if unitAmount.IsZero() {
		unitAmount = DefaultFitrahUnitAmount
	}
	if unitAmount.IsNegative() {
		return domain.CalculationResult{}, apperrors.NewInvalidInput(
			"unit_amount", unitAmount.String(), "error-negative-value")
	}

	total := decimal.NewFromInt(personCount).Mul(unitAmount).Mul(pricePerUnit)
	trace := []domain.CalculationStep{
		domain.TraceInitial("Person Count", decimal.NewFromInt(personCount)),
		domain.TraceInitial("Amount per Person", unitAmount),
		domain.TraceInitial("Price per Unit", pricePerUnit),
		domain.TraceResult("Fitrah Due", total),
	}
	// Fitrah carries no wealth Nisab; whoever asks to calculate is assumed
	// obligated.
	return domain.CalculationResult{
		TotalAssets:    total,
		Liabilities:    decimal.Zero,
		NetAssets:      total,
		NisabThreshold: decimal.Zero,
		Payable:        true,
		ZakatDue:       total,
		Category:       domain.CategoryFitrah,
		Trace:          trace,
	}, nil
}

// Calculate implements the shared calculation contract.
func (c *FitrahCalculator) Calculate(_ domain.ZakatConfig) (domain.CalculationResult, error) {
	res, err := CalculateFitrah(c.PersonCount, c.PricePerUnit, c.UnitAmount)
	if err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}
	return res.WithLabel(c.AssetLabel), nil
}
