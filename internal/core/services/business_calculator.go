package services

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// BusinessCalculator computes Zakat on trade goods: cash, inventory and
// receivables net of operating liabilities, at the standard 2.5% rate.
type BusinessCalculator struct {
	AssetBase
	CashOnHand           decimal.Decimal
	InventoryValue       decimal.Decimal
	Receivables          decimal.Decimal
	ShortTermLiabilities decimal.Decimal
}

// NewBusinessCalculator creates a calculator with Hawl assumed satisfied until
// the caller says otherwise.
func NewBusinessCalculator(cash, inventory, receivables, shortTermLiabilities decimal.Decimal) *BusinessCalculator {
	return &BusinessCalculator{
		AssetBase:            newAssetBase(),
		CashOnHand:           cash,
		InventoryValue:       inventory,
		Receivables:          receivables,
		ShortTermLiabilities: shortTermLiabilities,
	}
}

// Calculate implements the shared calculation contract.
func (c *BusinessCalculator) Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error) {
	var errs []error
	for _, check := range []struct {
		field string
		value decimal.Decimal
	}{
		{"cash_on_hand", c.CashOnHand},
		{"inventory_value", c.InventoryValue},
		{"receivables", c.Receivables},
		{"short_term_liabilities", c.ShortTermLiabilities},
		{"liabilities_due_now", c.LiabilitiesDueNow},
	} {
		if err := requireNonNegative(check.field, check.value); err != nil {
			errs = append(errs, err)
		}
	}
	if err := apperrors.Collect(errs); err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}

	nisab, err := MonetaryNisabThreshold(cfg)
	if err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}

	gross := c.CashOnHand.Add(c.InventoryValue).Add(c.Receivables)
	liabilities := c.ShortTermLiabilities.Add(c.LiabilitiesDueNow)

	trace := []domain.CalculationStep{
		domain.TraceInitial("Cash on Hand", c.CashOnHand),
		domain.TraceAdd("Inventory Value", c.InventoryValue),
		domain.TraceAdd("Receivables", c.Receivables),
		domain.TraceResult("Gross Trade Assets", gross),
	}

	return calculateMonetary(monetaryParams{
		total:       gross,
		liabilities: liabilities,
		nisab:       nisab,
		rate:        ZakatRate,
		category:    domain.CategoryBusiness,
		label:       c.AssetLabel,
		hawlMet:     c.hawlMet(),
		trace:       trace,
	})
}
