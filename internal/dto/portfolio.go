package dto

import (
	"strconv"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/ports"
	"github.com/zakatify/zakat_backend/internal/core/services"
)

// PortfolioItemRequest wraps exactly one asset request, discriminated by Type.
type PortfolioItemRequest struct {
	Type        string                   `json:"type" binding:"required"`
	Business    *BusinessZakatRequest    `json:"business,omitempty"`
	Metals      *MetalsZakatRequest      `json:"metals,omitempty"`
	Income      *IncomeZakatRequest      `json:"income,omitempty"`
	Investment  *InvestmentZakatRequest  `json:"investment,omitempty"`
	Agriculture *AgricultureZakatRequest `json:"agriculture,omitempty"`
	Mining      *MiningZakatRequest      `json:"mining,omitempty"`
	Fitrah      *FitrahZakatRequest      `json:"fitrah,omitempty"`
	Livestock   *LivestockZakatRequest   `json:"livestock,omitempty"`
}

// ToCalculator builds the calculator named by the discriminator.
func (r PortfolioItemRequest) ToCalculator() (ports.ZakatCalculator, error) {
	switch normalize(r.Type) {
	case "BUSINESS":
		if r.Business == nil {
			return nil, apperrors.NewInvalidInput("business", "", "error-item-payload-missing")
		}
		return r.Business.ToCalculator()
	case "METALS", "GOLD", "SILVER":
		if r.Metals == nil {
			return nil, apperrors.NewInvalidInput("metals", "", "error-item-payload-missing")
		}
		return r.Metals.ToCalculator()
	case "INCOME":
		if r.Income == nil {
			return nil, apperrors.NewInvalidInput("income", "", "error-item-payload-missing")
		}
		return r.Income.ToCalculator()
	case "INVESTMENT":
		if r.Investment == nil {
			return nil, apperrors.NewInvalidInput("investment", "", "error-item-payload-missing")
		}
		return r.Investment.ToCalculator()
	case "AGRICULTURE":
		if r.Agriculture == nil {
			return nil, apperrors.NewInvalidInput("agriculture", "", "error-item-payload-missing")
		}
		return r.Agriculture.ToCalculator()
	case "MINING", "RIKAZ":
		if r.Mining == nil {
			return nil, apperrors.NewInvalidInput("mining", "", "error-item-payload-missing")
		}
		return r.Mining.ToCalculator()
	case "FITRAH":
		if r.Fitrah == nil {
			return nil, apperrors.NewInvalidInput("fitrah", "", "error-item-payload-missing")
		}
		return r.Fitrah.ToCalculator()
	case "LIVESTOCK":
		if r.Livestock == nil {
			return nil, apperrors.NewInvalidInput("livestock", "", "error-item-payload-missing")
		}
		return r.Livestock.ToCalculator()
	default:
		return nil, apperrors.NewInvalidInput("type", r.Type, "error-unknown-asset-type")
	}
}

// PortfolioRequest defines a joint calculation over several assets.
type PortfolioRequest struct {
	Config *ConfigOverridesRequest `json:"config,omitempty"`
	Items  []PortfolioItemRequest  `json:"items" binding:"required,min=1"`
}

// ToPortfolio builds the portfolio from the request items.
func (r PortfolioRequest) ToPortfolio() (*services.Portfolio, error) {
	portfolio := services.NewPortfolio()
	for i, item := range r.Items {
		calc, err := item.ToCalculator()
		if err != nil {
			return nil, apperrors.WithSource(err, "items["+strconv.Itoa(i)+"]")
		}
		portfolio.Add(calc)
	}
	return portfolio, nil
}

// PortfolioItemResponse is the per-asset outcome on the wire.
type PortfolioItemResponse struct {
	Label  string               `json:"label,omitempty"`
	Result *CalculationResponse `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// PortfolioResponse is the aggregate outcome on the wire.
type PortfolioResponse struct {
	Status         string                  `json:"status"`
	TotalAssets    string                  `json:"totalAssets"`
	AggregatedNet  string                  `json:"aggregatedNet"`
	NisabThreshold string                  `json:"nisabThreshold"`
	TotalDue       string                  `json:"totalDue"`
	Items          []PortfolioItemResponse `json:"items"`
}

// ToPortfolioResponse converts a services.PortfolioResult to its wire form.
func ToPortfolioResponse(res services.PortfolioResult) PortfolioResponse {
	out := PortfolioResponse{
		Status:         string(res.Status),
		TotalAssets:    res.TotalAssets.String(),
		AggregatedNet:  res.AggregatedNet.String(),
		NisabThreshold: res.NisabThreshold.String(),
		TotalDue:       res.TotalDue.String(),
		Items:          make([]PortfolioItemResponse, len(res.Items)),
	}
	for i, item := range res.Items {
		if item.Err != nil {
			out.Items[i] = PortfolioItemResponse{Label: item.Label, Error: item.Err.Error()}
			continue
		}
		result := ToCalculationResponse(item.Result)
		out.Items[i] = PortfolioItemResponse{Label: item.Label, Result: &result}
	}
	return out
}
