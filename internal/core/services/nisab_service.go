package services

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// ZakatRate is the standard 2.5% rate applied to monetary wealth.
var ZakatRate = decimal.RequireFromString("0.025")

// GoldNisabThreshold returns the gold threshold value (weight x price).
func GoldNisabThreshold(cfg domain.ZakatConfig) (decimal.Decimal, error) {
	if !cfg.GoldPricePerGram.IsPositive() {
		return decimal.Zero, apperrors.NewConfiguration("gold price per gram must be positive for the gold nisab standard")
	}
	return cfg.GoldNisabGrams().Mul(cfg.GoldPricePerGram), nil
}

// SilverNisabThreshold returns the silver threshold value (weight x price).
func SilverNisabThreshold(cfg domain.ZakatConfig) (decimal.Decimal, error) {
	if !cfg.SilverPricePerGram.IsPositive() {
		return decimal.Zero, apperrors.NewConfiguration("silver price per gram must be positive for the silver nisab standard")
	}
	return cfg.SilverNisabGrams().Mul(cfg.SilverPricePerGram), nil
}

// MonetaryNisabThreshold resolves the threshold for cash-like wealth under the
// active standard. For LowerOfTwo both prices must be supplied and positive;
// a missing price is a configuration error, never a silent zero.
func MonetaryNisabThreshold(cfg domain.ZakatConfig) (decimal.Decimal, error) {
	switch cfg.NisabStandard() {
	case domain.NisabSilver:
		return SilverNisabThreshold(cfg)
	case domain.NisabLowerOfTwo:
		gold, err := GoldNisabThreshold(cfg)
		if err != nil {
			return decimal.Zero, err
		}
		silver, err := SilverNisabThreshold(cfg)
		if err != nil {
			return decimal.Zero, err
		}
		if silver.LessThan(gold) {
			return silver, nil
		}
		return gold, nil
	default:
		return GoldNisabThreshold(cfg)
	}
}

// ValidateConfig checks that every price the active standard needs is present.
// The portfolio uses it to fail fast before touching any item.
func ValidateConfig(cfg domain.ZakatConfig) error {
	_, err := MonetaryNisabThreshold(cfg)
	return err
}
