package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NisabPrice is the database row for one dated threshold entry.
type NisabPrice struct {
	EffectiveDate time.Time
	Threshold     decimal.Decimal
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
