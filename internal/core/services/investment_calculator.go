package services

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// InvestmentKind is the sub-type of a market investment. All sub-types share
// the standard 2.5% rate; the kind is informational.
type InvestmentKind string

const (
	InvestmentStock      InvestmentKind = "STOCK"
	InvestmentCrypto     InvestmentKind = "CRYPTO"
	InvestmentMutualFund InvestmentKind = "MUTUAL_FUND"
)

// InvestmentCalculator computes Zakat on market investments at market value
// net of debts. An optional purification proportion removes impure income
// from the zakatable value before the rate applies.
type InvestmentCalculator struct {
	AssetBase
	MarketValue decimal.Decimal
	Kind        InvestmentKind
	// ImpureProportion is the fraction (0-1) of the value attributable to
	// impure income, deducted before the threshold comparison.
	ImpureProportion decimal.Decimal
}

// NewInvestmentCalculator creates a stock investment asset.
func NewInvestmentCalculator(marketValue decimal.Decimal) *InvestmentCalculator {
	return &InvestmentCalculator{
		AssetBase:   newAssetBase(),
		MarketValue: marketValue,
		Kind:        InvestmentStock,
	}
}

func (k InvestmentKind) describe() string {
	switch k {
	case InvestmentCrypto:
		return "Crypto"
	case InvestmentMutualFund:
		return "Mutual Fund"
	default:
		return "Stocks"
	}
}

// Calculate implements the shared calculation contract.
func (c *InvestmentCalculator) Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error) {
	var errs []error
	if err := requireNonNegative("market_value", c.MarketValue); err != nil {
		errs = append(errs, err)
	}
	if err := requireNonNegative("liabilities_due_now", c.LiabilitiesDueNow); err != nil {
		errs = append(errs, err)
	}
	if c.ImpureProportion.IsNegative() || c.ImpureProportion.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, apperrors.NewInvalidInput("impure_proportion", c.ImpureProportion.String(), "error-proportion-range"))
	}
	if err := apperrors.Collect(errs); err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}

	nisab, err := MonetaryNisabThreshold(cfg)
	if err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}

	trace := []domain.CalculationStep{
		domain.TraceInitial("Market Value ("+c.Kind.describe()+")", c.MarketValue),
	}
	total := c.MarketValue
	if c.ImpureProportion.IsPositive() {
		purification := c.MarketValue.Mul(c.ImpureProportion)
		total = total.Sub(purification)
		trace = append(trace, domain.TraceSubtract("Purification (impure income)", purification))
	}

	return calculateMonetary(monetaryParams{
		total:       total,
		liabilities: c.LiabilitiesDueNow,
		nisab:       nisab,
		rate:        ZakatRate,
		category:    domain.CategoryInvestment,
		label:       c.AssetLabel,
		hawlMet:     c.hawlMet(),
		trace:       trace,
	})
}
