package services

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// MiningKind distinguishes found treasure from extracted minerals; the two
// follow different legal rules.
type MiningKind string

const (
	// MiningRikaz is buried treasure: 20% of the raw value, no threshold,
	// no Hawl, and debts are deliberately ignored.
	MiningRikaz MiningKind = "RIKAZ"
	// MiningMines is extracted minerals: 2.5%, gold Nisab, Hawl-gated,
	// liabilities deductible.
	MiningMines MiningKind = "MINES"
)

var rikazRate = decimal.RequireFromString("0.20")

// MiningCalculator computes Zakat on mining wealth.
type MiningCalculator struct {
	AssetBase
	Value decimal.Decimal
	Kind  MiningKind
}

// NewMiningCalculator creates an extracted-minerals asset.
func NewMiningCalculator(value decimal.Decimal) *MiningCalculator {
	return &MiningCalculator{AssetBase: newAssetBase(), Value: value, Kind: MiningMines}
}

// NewRikazCalculator creates a found-treasure asset.
func NewRikazCalculator(value decimal.Decimal) *MiningCalculator {
	return &MiningCalculator{AssetBase: newAssetBase(), Value: value, Kind: MiningRikaz}
}

// Calculate implements the shared calculation contract.
func (c *MiningCalculator) Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error) {
	if err := requireNonNegative("value", c.Value); err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}
	if err := requireNonNegative("liabilities_due_now", c.LiabilitiesDueNow); err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}

	if c.Kind == MiningRikaz {
		// The legal rule for Rikaz ignores both Hawl and debts.
		due := c.Value.Mul(rikazRate)
		trace := []domain.CalculationStep{
			domain.TraceInitial("Rikaz Found Value", c.Value),
			domain.TraceInfo("Rikaz rule: no Nisab, no debt deduction, 20% rate"),
			domain.TraceRate("Applied Rate (20%)", rikazRate),
			domain.TraceResult("Zakat Due", due),
		}
		return domain.CalculationResult{
			TotalAssets:    c.Value,
			Liabilities:    decimal.Zero,
			NetAssets:      c.Value,
			NisabThreshold: decimal.Zero,
			Payable:        c.Value.IsPositive(),
			ZakatDue:       due,
			Category:       domain.CategoryRikaz,
			Label:          c.AssetLabel,
			Trace:          trace,
		}, nil
	}

	nisab, err := GoldNisabThreshold(cfg)
	if err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}

	trace := []domain.CalculationStep{domain.TraceInitial("Extracted Value", c.Value)}
	return calculateMonetary(monetaryParams{
		total:       c.Value,
		liabilities: c.LiabilitiesDueNow,
		nisab:       nisab,
		rate:        ZakatRate,
		category:    domain.CategoryMining,
		label:       c.AssetLabel,
		hawlMet:     c.hawlMet(),
		trace:       trace,
	})
}
