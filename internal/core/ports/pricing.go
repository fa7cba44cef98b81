package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// HistoricalNisabSource resolves the Nisab threshold that applied on a given
// calendar day, with most-recent-at-or-before semantics. Implementations must
// fail (not return zero) when no price exists at or before the queried date.
type HistoricalNisabSource interface {
	NisabThresholdAt(ctx context.Context, date time.Time) (decimal.Decimal, error)
}

// NisabPrice is one dated entry of the threshold history.
type NisabPrice struct {
	EffectiveDate time.Time
	Threshold     decimal.Decimal
}

// NisabPriceRepository persists the threshold history consumed by the ledger
// timeline simulator. It stores resolved values only; no decision logic.
type NisabPriceRepository interface {
	HistoricalNisabSource
	SaveNisabPrice(ctx context.Context, price NisabPrice) error
	ListNisabPrices(ctx context.Context, from, to time.Time) ([]NisabPrice, error)
}
