package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/services"
	"github.com/zakatify/zakat_backend/internal/utils"
)

// ConfigOverridesRequest lets a request override the application-level
// calculation defaults. All fields are optional; amounts are strings so the
// sanitizer can accept formatted input ("$1,234.56").
type ConfigOverridesRequest struct {
	Madhab             string `json:"madhab,omitempty"`
	NisabStandard      string `json:"nisabStandard,omitempty"`
	GoldPricePerGram   string `json:"goldPricePerGram,omitempty"`
	SilverPricePerGram string `json:"silverPricePerGram,omitempty"`
	NisabGoldGrams     string `json:"nisabGoldGrams,omitempty"`
	NisabSilverGrams   string `json:"nisabSilverGrams,omitempty"`
	NisabAgricultureKg string `json:"nisabAgricultureKg,omitempty"`
}

// Apply overlays the request overrides onto the base configuration.
func (r *ConfigOverridesRequest) Apply(base domain.ZakatConfig) (domain.ZakatConfig, error) {
	if r == nil {
		return base, nil
	}
	cfg := base
	if r.Madhab != "" {
		madhab, ok := domain.ParseMadhab(r.Madhab)
		if !ok {
			return cfg, apperrors.NewInvalidInput("madhab", r.Madhab, "error-unknown-madhab")
		}
		cfg.Madhab = madhab
	}
	if r.NisabStandard != "" {
		standard, ok := domain.ParseNisabStandard(r.NisabStandard)
		if !ok {
			return cfg, apperrors.NewInvalidInput("nisabStandard", r.NisabStandard, "error-unknown-nisab-standard")
		}
		cfg.NisabStandardOverride = standard
	}
	for _, f := range []struct {
		raw   string
		field string
		dst   *decimal.Decimal
	}{
		{r.GoldPricePerGram, "goldPricePerGram", &cfg.GoldPricePerGram},
		{r.SilverPricePerGram, "silverPricePerGram", &cfg.SilverPricePerGram},
		{r.NisabGoldGrams, "nisabGoldGrams", &cfg.NisabGoldGrams},
		{r.NisabSilverGrams, "nisabSilverGrams", &cfg.NisabSilverGrams},
		{r.NisabAgricultureKg, "nisabAgricultureKg", &cfg.NisabAgricultureKg},
	} {
		if f.raw == "" {
			continue
		}
		d, err := utils.ParseAmount(f.raw)
		if err != nil {
			return cfg, apperrors.NewInvalidInput(f.field, f.raw, "error-amount-format")
		}
		*f.dst = d
	}
	return cfg, nil
}

// AssetBaseRequest carries the fields shared by every asset request.
type AssetBaseRequest struct {
	Label             string `json:"label,omitempty"`
	LiabilitiesDueNow string `json:"liabilitiesDueNow,omitempty"`
	// HawlSatisfied is the manual flag; nil means satisfied. It is ignored
	// when an acquisition date is present.
	HawlSatisfied   *bool  `json:"hawlSatisfied,omitempty"`
	AcquisitionDate string `json:"acquisitionDate,omitempty"`
	AsOfDate        string `json:"asOfDate,omitempty"`
}

// apply copies the shared request fields onto a calculator's base.
func (r AssetBaseRequest) apply(base *services.AssetBase) error {
	base.AssetLabel = r.Label
	if r.LiabilitiesDueNow != "" {
		d, err := utils.ParseAmount(r.LiabilitiesDueNow)
		if err != nil {
			return apperrors.NewInvalidInput("liabilitiesDueNow", r.LiabilitiesDueNow, "error-amount-format")
		}
		base.LiabilitiesDueNow = d
	}
	if r.HawlSatisfied != nil {
		base.HawlSatisfied = *r.HawlSatisfied
	}
	if r.AcquisitionDate != "" {
		d, err := parseDate("acquisitionDate", r.AcquisitionDate)
		if err != nil {
			return err
		}
		base.AcquisitionDate = &d
	}
	if r.AsOfDate != "" {
		d, err := parseDate("asOfDate", r.AsOfDate)
		if err != nil {
			return err
		}
		base.AsOfDate = d
	}
	return nil
}

func parseDate(field, raw string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInput(field, raw, "error-date-format")
	}
	return d, nil
}

func parseAmountField(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := utils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, apperrors.NewInvalidInput(field, raw, "error-amount-format")
	}
	return d, nil
}

// TraceStepResponse is one entry of the audit trace.
type TraceStepResponse struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Amount string `json:"amount,omitempty"`
}

// LivestockHeadResponse is one line of a livestock obligation breakdown.
type LivestockHeadResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CalculationResponse is the wire form of a calculation result. Amounts are
// decimal strings to avoid float rounding on the wire.
type CalculationResponse struct {
	TotalAssets    string                  `json:"totalAssets"`
	Liabilities    string                  `json:"liabilities"`
	NetAssets      string                  `json:"netAssets"`
	NisabThreshold string                  `json:"nisabThreshold"`
	Payable        bool                    `json:"payable"`
	ZakatDue       string                  `json:"zakatDue"`
	Category       string                  `json:"category"`
	Label          string                  `json:"label,omitempty"`
	StatusReason   string                  `json:"statusReason,omitempty"`
	HeadsDue       []LivestockHeadResponse `json:"headsDue,omitempty"`
	Trace          []TraceStepResponse     `json:"trace,omitempty"`
}

// ToCalculationResponse converts a domain.CalculationResult to its wire form.
func ToCalculationResponse(res domain.CalculationResult) CalculationResponse {
	out := CalculationResponse{
		TotalAssets:    res.TotalAssets.String(),
		Liabilities:    res.Liabilities.String(),
		NetAssets:      res.NetAssets.String(),
		NisabThreshold: res.NisabThreshold.String(),
		Payable:        res.Payable,
		ZakatDue:       res.ZakatDue.String(),
		Category:       string(res.Category),
		Label:          res.Label,
		StatusReason:   res.StatusReason,
	}
	for _, h := range res.HeadsDue {
		out.HeadsDue = append(out.HeadsDue, LivestockHeadResponse{Name: h.Name, Count: h.Count})
	}
	for _, s := range res.Trace {
		step := TraceStepResponse{Kind: string(s.Kind), Label: s.Label}
		if s.HasAmount {
			step.Amount = s.Amount.String()
		}
		out.Trace = append(out.Trace, step)
	}
	return out
}
