package services

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// IncomeMethod selects how income Zakat is assessed.
type IncomeMethod string

const (
	// IncomeGross taxes total income; basic living expenses are not deducted,
	// only explicit extra debt.
	IncomeGross IncomeMethod = "GROSS"
	// IncomeNet deducts basic expenses and extra debt before the rate applies.
	IncomeNet IncomeMethod = "NET"
)

// IncomeCalculator computes Zakat on earned income. Hawl gating follows the
// caller's explicit flag even though some opinions treat salaried income as
// due on receipt.
type IncomeCalculator struct {
	AssetBase
	TotalIncome   decimal.Decimal
	BasicExpenses decimal.Decimal
	Method        IncomeMethod
}

// NewIncomeCalculator creates a gross-method calculator.
func NewIncomeCalculator(totalIncome decimal.Decimal) *IncomeCalculator {
	return &IncomeCalculator{
		AssetBase:   newAssetBase(),
		TotalIncome: totalIncome,
		Method:      IncomeGross,
	}
}

// Calculate implements the shared calculation contract.
func (c *IncomeCalculator) Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error) {
	var errs []error
	for _, check := range []struct {
		field string
		value decimal.Decimal
	}{
		{"total_income", c.TotalIncome},
		{"basic_expenses", c.BasicExpenses},
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

	liabilities := c.LiabilitiesDueNow
	trace := []domain.CalculationStep{domain.TraceInitial("Total Income", c.TotalIncome)}
	switch c.Method {
	case IncomeNet:
		liabilities = liabilities.Add(c.BasicExpenses)
		trace = append(trace, domain.TraceSubtract("Basic Living Expenses", c.BasicExpenses))
	default:
		trace = append(trace, domain.TraceInfo("Gross method used (expenses not deducted)"))
	}

	return calculateMonetary(monetaryParams{
		total:       c.TotalIncome,
		liabilities: liabilities,
		nisab:       nisab,
		rate:        ZakatRate,
		category:    domain.CategoryIncome,
		label:       c.AssetLabel,
		hawlMet:     c.hawlMet(),
		trace:       trace,
	})
}
