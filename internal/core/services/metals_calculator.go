package services

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// JewelryUsage distinguishes investment metal from personal-use jewelry.
// Personal jewelry is exempt only under schools that exempt it; investment
// jewelry is never exempt.
type JewelryUsage string

const (
	UsageInvestment  JewelryUsage = "INVESTMENT"
	UsagePersonalUse JewelryUsage = "PERSONAL_USE"
)

// StatusJewelryExempt is the reason reported for exempt personal jewelry.
const StatusJewelryExempt = "Exempt per Madhab (Huliyy al-Mubah)"

// Weight conversion factors to grams.
var (
	GramsPerTola      = decimal.RequireFromString("11.66")
	GramsPerTroyOunce = decimal.RequireFromString("31.1034768")
)

var (
	karatScale    = decimal.NewFromInt(24)
	perMilleScale = decimal.NewFromInt(1000)
)

// MetalsCalculator computes Zakat on gold and silver holdings. Zakat is due on
// the pure metal content: gold is scaled by karat over 24, silver by per-mille
// fineness (default 1000, i.e. assumed pure).
type MetalsCalculator struct {
	AssetBase
	WeightGrams decimal.Decimal
	Metal       domain.WealthCategory
	// PurityKarat applies to gold (1-24).
	PurityKarat int
	// PurityPerMille applies to silver (1-1000), e.g. 925 sterling.
	PurityPerMille int
	Usage          JewelryUsage
}

// NewGoldCalculator creates a 24K investment gold asset.
func NewGoldCalculator(weightGrams decimal.Decimal) *MetalsCalculator {
	return &MetalsCalculator{
		AssetBase:      newAssetBase(),
		WeightGrams:    weightGrams,
		Metal:          domain.CategoryGold,
		PurityKarat:    24,
		PurityPerMille: 1000,
		Usage:          UsageInvestment,
	}
}

// NewSilverCalculator creates a pure investment silver asset.
func NewSilverCalculator(weightGrams decimal.Decimal) *MetalsCalculator {
	m := NewGoldCalculator(weightGrams)
	m.Metal = domain.CategorySilver
	return m
}

// Calculate implements the shared calculation contract.
func (c *MetalsCalculator) Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error) {
	if c.Metal != domain.CategoryGold && c.Metal != domain.CategorySilver {
		return domain.CalculationResult{}, apperrors.WithSource(
			apperrors.NewInvalidInput("metal", string(c.Metal), "error-type-required"), c.AssetLabel)
	}
	if err := requireNonNegative("weight_grams", c.WeightGrams); err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}
	if err := requireNonNegative("liabilities_due_now", c.LiabilitiesDueNow); err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}

	var (
		nisab     decimal.Decimal
		effective decimal.Decimal
		err       error
		trace     []domain.CalculationStep
	)
	trace = append(trace, domain.TraceInitial("Weight (g)", c.WeightGrams))

	switch c.Metal {
	case domain.CategoryGold:
		if c.PurityKarat < 1 || c.PurityKarat > 24 {
			return domain.CalculationResult{}, apperrors.WithSource(
				apperrors.NewInvalidInput("purity_karat", strconv.Itoa(c.PurityKarat), "error-invalid-purity"), c.AssetLabel)
		}
		nisab, err = GoldNisabThreshold(cfg)
		if err != nil {
			return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
		}
		effective = c.WeightGrams
		if c.PurityKarat < 24 {
			effective = c.WeightGrams.Mul(decimal.NewFromInt(int64(c.PurityKarat))).Div(karatScale)
			trace = append(trace, domain.TraceResult("Gold Purity Adjustment ("+strconv.Itoa(c.PurityKarat)+"K)", effective))
		}
	case domain.CategorySilver:
		perMille := c.PurityPerMille
		if perMille == 0 {
			perMille = 1000
		}
		if perMille < 1 || perMille > 1000 {
			return domain.CalculationResult{}, apperrors.WithSource(
				apperrors.NewInvalidInput("purity_per_mille", strconv.Itoa(perMille), "error-invalid-purity"), c.AssetLabel)
		}
		nisab, err = SilverNisabThreshold(cfg)
		if err != nil {
			return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
		}
		effective = c.WeightGrams
		if perMille < 1000 {
			effective = c.WeightGrams.Mul(decimal.NewFromInt(int64(perMille))).Div(perMilleScale)
			trace = append(trace, domain.TraceResult("Silver Purity Adjustment ("+strconv.Itoa(perMille)+")", effective))
		}
	}

	if c.Usage == UsagePersonalUse && cfg.JewelryExempt() {
		return domain.NewExemptResult(nisab, c.Metal, StatusJewelryExempt).WithLabel(c.AssetLabel), nil
	}

	price := cfg.GoldPricePerGram
	if c.Metal == domain.CategorySilver {
		price = cfg.SilverPricePerGram
	}
	value := effective.Mul(price)
	trace = append(trace, domain.TraceResult("Metal Value", value))

	return calculateMonetary(monetaryParams{
		total:       value,
		liabilities: c.LiabilitiesDueNow,
		nisab:       nisab,
		rate:        ZakatRate,
		category:    c.Metal,
		label:       c.AssetLabel,
		hawlMet:     c.hawlMet(),
		trace:       trace,
	})
}
