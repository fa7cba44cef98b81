package services

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/ports"
)

// StatusAggregated is the reason set on items flipped to payable by pooling.
const StatusAggregated = "Payable via Aggregation (Dam' al-Amwal)"

// PortfolioStatus summarizes how much of a portfolio calculation succeeded.
type PortfolioStatus string

const (
	PortfolioComplete PortfolioStatus = "COMPLETE"
	PortfolioPartial  PortfolioStatus = "PARTIAL"
	PortfolioFailed   PortfolioStatus = "FAILED"
)

// PortfolioItemResult is the per-asset outcome: exactly one of Result or Err
// is meaningful.
type PortfolioItemResult struct {
	Label  string
	Result domain.CalculationResult
	Err    error
}

// PortfolioResult is the aggregate outcome. Monetary categories are pooled
// under the Dam' al-Amwal doctrine: items individually below Nisab still owe
// when the combined net crosses it.
type PortfolioResult struct {
	Items  []PortfolioItemResult
	Status PortfolioStatus
	// TotalAssets sums the gross assets of every successful item, monetary
	// or not.
	TotalAssets decimal.Decimal
	// AggregatedNet is the pooled net of the monetary items only.
	AggregatedNet  decimal.Decimal
	NisabThreshold decimal.Decimal
	TotalDue       decimal.Decimal
}

// Portfolio holds a collection of assets for joint calculation.
type Portfolio struct {
	calculators []ports.ZakatCalculator
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{}
}

// Add appends an asset; returns the portfolio for chaining.
func (p *Portfolio) Add(c ports.ZakatCalculator) *Portfolio {
	p.calculators = append(p.calculators, c)
	return p
}

// Len reports the number of assets held.
func (p *Portfolio) Len() int {
	return len(p.calculators)
}

// CalculateTotal evaluates every asset, isolating per-item failures, then
// applies monetary pooling across the successes. A broken config fails the
// whole portfolio before any item runs.
func (p *Portfolio) CalculateTotal(cfg domain.ZakatConfig) (PortfolioResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		return PortfolioResult{}, err
	}

	items := make([]PortfolioItemResult, len(p.calculators))
	for i, c := range p.calculators {
		res, err := c.Calculate(cfg)
		items[i] = PortfolioItemResult{Label: c.Label(), Result: res, Err: err}
	}
	return p.assemble(cfg, items)
}

// RetryFailures re-runs only the assets that failed in a previous pass and
// re-aggregates. Successful items keep their prior results.
func (p *Portfolio) RetryFailures(cfg domain.ZakatConfig, prior PortfolioResult) (PortfolioResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		return PortfolioResult{}, err
	}
	if len(prior.Items) != len(p.calculators) {
		return PortfolioResult{}, apperrors.NewInvalidInput(
			"items", "", "error-portfolio-result-mismatch")
	}

	items := make([]PortfolioItemResult, len(prior.Items))
	copy(items, prior.Items)
	for i, c := range p.calculators {
		if items[i].Err == nil {
			continue
		}
		res, err := c.Calculate(cfg)
		items[i] = PortfolioItemResult{Label: c.Label(), Result: res, Err: err}
	}
	return p.assemble(cfg, items)
}

func (p *Portfolio) assemble(cfg domain.ZakatConfig, items []PortfolioItemResult) (PortfolioResult, error) {
	nisab, err := MonetaryNisabThreshold(cfg)
	if err != nil {
		return PortfolioResult{}, err
	}

	// Pool the net of every monetary item that was not gated out of scope
	// (Hawl or Madhab exemptions keep an item out of the pool). Gross assets
	// are summed across all successful items regardless of category.
	pooled := decimal.Zero
	totalAssets := decimal.Zero
	failures := 0
	for i := range items {
		if items[i].Err != nil {
			failures++
			continue
		}
		res := &items[i].Result
		totalAssets = totalAssets.Add(res.TotalAssets)
		if res.Category.IsMonetary() && res.StatusReason == "" {
			pooled = pooled.Add(res.NetAssets)
		}
	}

	// Re-flag monetary items the pool lifts over Nisab.
	if pooled.GreaterThanOrEqual(nisab) && pooled.IsPositive() {
		for i := range items {
			if items[i].Err != nil {
				continue
			}
			res := &items[i].Result
			if !res.Category.IsMonetary() || res.Payable || res.StatusReason != "" {
				continue
			}
			if !res.NetAssets.IsPositive() {
				continue
			}
			res.Payable = true
			res.ZakatDue = res.NetAssets.Mul(ZakatRate)
			res.StatusReason = StatusAggregated
			res.Trace = append(res.Trace,
				domain.TraceInfo(StatusAggregated),
				domain.TraceRate("Applied Rate", ZakatRate),
				domain.TraceResult("Zakat Due", res.ZakatDue),
			)
		}
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Err == nil && items[i].Result.Payable {
			total = total.Add(items[i].Result.ZakatDue)
		}
	}

	status := PortfolioComplete
	switch {
	case failures == len(items) && len(items) > 0:
		status = PortfolioFailed
	case failures > 0:
		status = PortfolioPartial
	}

	return PortfolioResult{
		Items:          items,
		Status:         status,
		TotalAssets:    totalAssets,
		AggregatedNet:  pooled,
		NisabThreshold: nisab,
		TotalDue:       total,
	}, nil
}
