package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// StatusHawlNotMet is the reason reported when the holding period gate fires.
const StatusHawlNotMet = "Hawl (1 lunar year) not met"

// AssetBase carries the fields shared by every asset rule module: deductible
// debts, the holding-period inputs, and identification for portfolio reports.
type AssetBase struct {
	LiabilitiesDueNow decimal.Decimal
	// HawlSatisfied is the manual flag; it is only consulted when no
	// acquisition date is present.
	HawlSatisfied bool
	// AcquisitionDate, when set, governs Hawl status and overrides the
	// manual flag.
	AcquisitionDate *time.Time
	// AsOfDate is the calculation date for Hawl evaluation; zero means now.
	AsOfDate   time.Time
	AssetLabel string
	AssetID    uuid.UUID
}

func newAssetBase() AssetBase {
	return AssetBase{HawlSatisfied: true, AssetID: uuid.New()}
}

// Label returns the human label for portfolio reports.
func (b AssetBase) Label() string { return b.AssetLabel }

// ID returns the stable asset identifier.
func (b AssetBase) ID() uuid.UUID { return b.AssetID }

// hawlMet resolves the holding-period condition with acquisition-date
// precedence over the manual flag.
func (b AssetBase) hawlMet() bool {
	if b.AcquisitionDate != nil {
		asOf := b.AsOfDate
		if asOf.IsZero() {
			asOf = time.Now()
		}
		return NewHawlTracker(asOf).AcquiredOn(*b.AcquisitionDate).IsSatisfied()
	}
	return b.HawlSatisfied
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return apperrors.NewInvalidInput(field, v.String(), "error-negative-value")
	}
	return nil
}

// monetaryParams feed the shared proportional calculation used by every
// cash-like category.
type monetaryParams struct {
	total       decimal.Decimal
	liabilities decimal.Decimal
	nisab       decimal.Decimal
	rate        decimal.Decimal
	category    domain.WealthCategory
	label       string
	hawlMet     bool
	trace       []domain.CalculationStep
}

// calculateMonetary applies the shared eligibility contract and finishes the
// audit trace the caller started.
func calculateMonetary(p monetaryParams) (domain.CalculationResult, error) {
	if !p.hawlMet {
		return domain.NewExemptResult(p.nisab, p.category, StatusHawlNotMet).WithLabel(p.label), nil
	}

	trace := p.trace
	trace = append(trace, domain.TraceSubtract("Liabilities Due Now", p.liabilities))
	net := p.total.Sub(p.liabilities)
	trace = append(trace,
		domain.TraceResult("Net Zakatable Value", net),
		domain.TraceCompare("Nisab Threshold", p.nisab),
	)

	res := domain.NewProportionalResult(p.total, p.liabilities, p.nisab, p.rate, p.category)
	if res.Payable {
		trace = append(trace,
			domain.TraceRate("Applied Rate", p.rate),
			domain.TraceResult("Zakat Due", res.ZakatDue),
		)
	} else {
		trace = append(trace, domain.TraceInfo("Net value below Nisab - no Zakat due"))
	}
	return res.WithTrace(trace).WithLabel(p.label), nil
}
