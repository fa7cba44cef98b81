package domain

import "github.com/shopspring/decimal"

// StepKind labels an entry in a calculation trace.
type StepKind string

const (
	StepInitial  StepKind = "INITIAL"
	StepAdd      StepKind = "ADD"
	StepSubtract StepKind = "SUBTRACT"
	StepCompare  StepKind = "COMPARE"
	StepRate     StepKind = "RATE"
	StepInfo     StepKind = "INFO"
	StepResult   StepKind = "RESULT"
)

// CalculationStep is one labeled entry in the ordered audit trace of a
// calculation. Info steps carry no amount.
type CalculationStep struct {
	Kind      StepKind        `json:"kind"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	HasAmount bool            `json:"hasAmount"`
}

func step(kind StepKind, label string, amount decimal.Decimal) CalculationStep {
	return CalculationStep{Kind: kind, Label: label, Amount: amount, HasAmount: true}
}

func TraceInitial(label string, amount decimal.Decimal) CalculationStep {
	return step(StepInitial, label, amount)
}

func TraceAdd(label string, amount decimal.Decimal) CalculationStep {
	return step(StepAdd, label, amount)
}

func TraceSubtract(label string, amount decimal.Decimal) CalculationStep {
	return step(StepSubtract, label, amount)
}

func TraceCompare(label string, amount decimal.Decimal) CalculationStep {
	return step(StepCompare, label, amount)
}

func TraceRate(label string, rate decimal.Decimal) CalculationStep {
	return step(StepRate, label, rate)
}

func TraceResult(label string, amount decimal.Decimal) CalculationStep {
	return step(StepResult, label, amount)
}

func TraceInfo(label string) CalculationStep {
	return CalculationStep{Kind: StepInfo, Label: label}
}

// LivestockHead is one line of a livestock obligation breakdown, e.g. 2 Hiqqah.
type LivestockHead struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CalculationResult is the canonical output of every asset rule module.
// Invariants: NetAssets = TotalAssets - Liabilities; for proportional
// categories Payable == (net >= nisab && net > 0) and ZakatDue = net * rate
// when payable, zero otherwise.
type CalculationResult struct {
	TotalAssets    decimal.Decimal
	Liabilities    decimal.Decimal
	NetAssets      decimal.Decimal
	NisabThreshold decimal.Decimal
	Payable        bool
	ZakatDue       decimal.Decimal
	Category       WealthCategory
	Label          string
	// StatusReason explains a non-payable verdict (e.g. holding period not
	// met); empty when the standard threshold comparison decided.
	StatusReason string
	// HeadsDue is populated for livestock, where the obligation is paid in
	// animals rather than currency.
	HeadsDue []LivestockHead
	Trace    []CalculationStep
}

// NewProportionalResult applies the shared eligibility contract: net is
// total minus liabilities, payable iff net reaches the threshold and is
// positive, due is net times rate when payable.
func NewProportionalResult(total, liabilities, nisab, rate decimal.Decimal, category WealthCategory) CalculationResult {
	net := total.Sub(liabilities)
	payable := net.GreaterThanOrEqual(nisab) && net.IsPositive()
	due := decimal.Zero
	if payable {
		due = net.Mul(rate)
	}
	return CalculationResult{
		TotalAssets:    total,
		Liabilities:    liabilities,
		NetAssets:      net,
		NisabThreshold: nisab,
		Payable:        payable,
		ZakatDue:       due,
		Category:       category,
	}
}

// NewExemptResult builds a non-payable result carrying only the threshold and
// the reason, used for gates that fire before any value is computed (Hawl not
// met, stall-fed herds, Madhab jewelry exemption).
func NewExemptResult(nisab decimal.Decimal, category WealthCategory, reason string) CalculationResult {
	return CalculationResult{
		NisabThreshold: nisab,
		Category:       category,
		StatusReason:   reason,
		TotalAssets:    decimal.Zero,
		Liabilities:    decimal.Zero,
		NetAssets:      decimal.Zero,
		ZakatDue:       decimal.Zero,
	}
}

// WithTrace attaches the audit trace and returns the result for chaining.
func (r CalculationResult) WithTrace(trace []CalculationStep) CalculationResult {
	r.Trace = trace
	return r
}

// WithLabel attaches the human label and returns the result for chaining.
func (r CalculationResult) WithLabel(label string) CalculationResult {
	r.Label = label
	return r
}
