package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a balance-changing ledger event.
type TransactionKind string

const (
	TxnDeposit    TransactionKind = "DEPOSIT"
	TxnWithdrawal TransactionKind = "WITHDRAWAL"
	TxnIncome     TransactionKind = "INCOME"
	TxnExpense    TransactionKind = "EXPENSE"
	TxnProfit     TransactionKind = "PROFIT"
	TxnLoss       TransactionKind = "LOSS"
)

// IsCredit reports whether the kind increases the running balance.
func (k TransactionKind) IsCredit() bool {
	switch k {
	case TxnDeposit, TxnIncome, TxnProfit:
		return true
	default:
		return false
	}
}

// ParseTransactionKind maps a case-insensitive name to a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, bool) {
	switch TransactionKind(normalizeEnum(s)) {
	case TxnDeposit:
		return TxnDeposit, true
	case TxnWithdrawal:
		return TxnWithdrawal, true
	case TxnIncome:
		return TxnIncome, true
	case TxnExpense:
		return TxnExpense, true
	case TxnProfit:
		return TxnProfit, true
	case TxnLoss:
		return TxnLoss, true
	}
	return "", false
}

// LedgerEvent is an immutable dated fact about a balance change. Amounts are
// always non-negative; the kind carries the sign.
type LedgerEvent struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    WealthCategory  `json:"category"`
	Kind        TransactionKind `json:"kind"`
	Description string          `json:"description,omitempty"`
}

// NewLedgerEvent builds an event with a fresh ID and the date truncated to a
// calendar day.
func NewLedgerEvent(date time.Time, amount decimal.Decimal, category WealthCategory, kind TransactionKind, description string) LedgerEvent {
	return LedgerEvent{
		ID:          uuid.New(),
		Date:        DayOf(date),
		Amount:      amount,
		Category:    category,
		Kind:        kind,
		Description: description,
	}
}

// DailyBalance is one row of a simulated timeline: the running balance and the
// threshold that applied on that calendar day.
type DailyBalance struct {
	Date           time.Time       `json:"date"`
	Balance        decimal.Decimal `json:"balance"`
	NisabThreshold decimal.Decimal `json:"nisabThreshold"`
	AboveNisab     bool            `json:"aboveNisab"`
}

// HawlVerdict is the continuity analysis of a daily sequence.
type HawlVerdict struct {
	// IsDue is true once the unbroken streak reaches a full lunar year
	// (354 days, the starting day counting as day one).
	IsDue bool `json:"isDue"`
	// HawlStartDate is the first day of the current streak, nil when the
	// balance is currently below threshold.
	HawlStartDate *time.Time `json:"hawlStartDate,omitempty"`
	// CurrentStreakDays counts the days of the current streak.
	CurrentStreakDays int `json:"currentStreakDays"`
	// LastBreachDate is the most recent day the balance fell below that
	// day's threshold, nil if it never did.
	LastBreachDate *time.Time `json:"lastBreachDate,omitempty"`
}

// DayOf truncates a timestamp to midnight UTC, the granularity of the
// timeline simulator.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
