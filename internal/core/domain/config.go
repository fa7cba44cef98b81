package domain

import "github.com/shopspring/decimal"

// Default Nisab weights. Each is independently overridable on ZakatConfig.
var (
	DefaultNisabGoldGrams     = decimal.NewFromInt(85)
	DefaultNisabSilverGrams   = decimal.NewFromInt(595)
	DefaultNisabAgricultureKg = decimal.NewFromInt(653)
)

// ZakatConfig carries the resolved prices and school selection every
// calculation needs. Prices are supplied by an external pricing collaborator;
// the core never fetches them itself.
type ZakatConfig struct {
	GoldPricePerGram   decimal.Decimal
	SilverPricePerGram decimal.Decimal

	Madhab Madhab
	// NisabStandardOverride, when set, takes precedence over the Madhab's
	// default standard.
	NisabStandardOverride NisabStandard

	// Optional threshold weight overrides; zero means use the default.
	NisabGoldGrams     decimal.Decimal
	NisabSilverGrams   decimal.Decimal
	NisabAgricultureKg decimal.Decimal
}

// NisabStandard resolves the active standard: explicit override first, then
// the Madhab rule table.
func (c ZakatConfig) NisabStandard() NisabStandard {
	if c.NisabStandardOverride != "" {
		return c.NisabStandardOverride
	}
	return c.Madhab.Rules().NisabStandard
}

// JewelryExempt reports whether personal-use jewelry is exempt under the
// active Madhab.
func (c ZakatConfig) JewelryExempt() bool {
	return c.Madhab.Rules().JewelryExempt
}

// GoldNisabGrams returns the configured gold threshold weight or the 85g default.
func (c ZakatConfig) GoldNisabGrams() decimal.Decimal {
	if c.NisabGoldGrams.IsPositive() {
		return c.NisabGoldGrams
	}
	return DefaultNisabGoldGrams
}

// SilverNisabGrams returns the configured silver threshold weight or the 595g default.
func (c ZakatConfig) SilverNisabGrams() decimal.Decimal {
	if c.NisabSilverGrams.IsPositive() {
		return c.NisabSilverGrams
	}
	return DefaultNisabSilverGrams
}

// AgricultureNisabKg returns the configured harvest threshold or the 653kg default.
func (c ZakatConfig) AgricultureNisabKg() decimal.Decimal {
	if c.NisabAgricultureKg.IsPositive() {
		return c.NisabAgricultureKg
	}
	return DefaultNisabAgricultureKg
}
