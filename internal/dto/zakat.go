package dto

import (
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/services"
)

// BusinessZakatRequest defines the inputs for trade goods Zakat.
type BusinessZakatRequest struct {
	AssetBaseRequest
	Config               *ConfigOverridesRequest `json:"config,omitempty"`
	CashOnHand           string                  `json:"cashOnHand" binding:"required,amount"`
	InventoryValue       string                  `json:"inventoryValue,omitempty"`
	Receivables          string                  `json:"receivables,omitempty"`
	ShortTermLiabilities string                  `json:"shortTermLiabilities,omitempty"`
}

// ToCalculator builds the business calculator from the request.
func (r BusinessZakatRequest) ToCalculator() (*services.BusinessCalculator, error) {
	cash, err := parseAmountField("cashOnHand", r.CashOnHand)
	if err != nil {
		return nil, err
	}
	inventory, err := parseAmountField("inventoryValue", r.InventoryValue)
	if err != nil {
		return nil, err
	}
	receivables, err := parseAmountField("receivables", r.Receivables)
	if err != nil {
		return nil, err
	}
	shortTerm, err := parseAmountField("shortTermLiabilities", r.ShortTermLiabilities)
	if err != nil {
		return nil, err
	}
	calc := services.NewBusinessCalculator(cash, inventory, receivables, shortTerm)
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

// MetalsZakatRequest defines the inputs for gold and silver Zakat.
type MetalsZakatRequest struct {
	AssetBaseRequest
	Config      *ConfigOverridesRequest `json:"config,omitempty"`
	Metal       string                  `json:"metal" binding:"required,oneof=GOLD SILVER gold silver"`
	WeightGrams string                  `json:"weightGrams,omitempty"`
	WeightTola  string                  `json:"weightTola,omitempty"`
	WeightOz    string                  `json:"weightOz,omitempty"`
	PurityKarat *int                    `json:"purityKarat,omitempty"`
	// PurityPerMille is the silver fineness, e.g. 925 for sterling.
	PurityPerMille *int   `json:"purityPerMille,omitempty"`
	Usage          string `json:"usage,omitempty" binding:"omitempty,oneof=INVESTMENT PERSONAL_USE investment personal_use"`
}

// ToCalculator builds the metals calculator from the request. Exactly one
// weight unit must be supplied.
func (r MetalsZakatRequest) ToCalculator() (*services.MetalsCalculator, error) {
	supplied := 0
	for _, w := range []string{r.WeightGrams, r.WeightTola, r.WeightOz} {
		if w != "" {
			supplied++
		}
	}
	if supplied != 1 {
		return nil, apperrors.NewInvalidInput("weightGrams", "", "error-weight-unit-required")
	}

	var grams decimal.Decimal
	switch {
	case r.WeightGrams != "":
		g, err := parseAmountField("weightGrams", r.WeightGrams)
		if err != nil {
			return nil, err
		}
		grams = g
	case r.WeightTola != "":
		t, err := parseAmountField("weightTola", r.WeightTola)
		if err != nil {
			return nil, err
		}
		grams = t.Mul(services.GramsPerTola)
	default:
		oz, err := parseAmountField("weightOz", r.WeightOz)
		if err != nil {
			return nil, err
		}
		grams = oz.Mul(services.GramsPerTroyOunce)
	}

	var calc *services.MetalsCalculator
	if domain.WealthCategory(normalize(r.Metal)) == domain.CategorySilver {
		calc = services.NewSilverCalculator(grams)
		if r.PurityPerMille != nil {
			calc.PurityPerMille = *r.PurityPerMille
		}
	} else {
		calc = services.NewGoldCalculator(grams)
		if r.PurityKarat != nil {
			calc.PurityKarat = *r.PurityKarat
		}
	}
	if normalize(r.Usage) == string(services.UsagePersonalUse) {
		calc.Usage = services.UsagePersonalUse
	}
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

// IncomeZakatRequest defines the inputs for earned income Zakat.
type IncomeZakatRequest struct {
	AssetBaseRequest
	Config        *ConfigOverridesRequest `json:"config,omitempty"`
	TotalIncome   string                  `json:"totalIncome" binding:"required,amount"`
	BasicExpenses string                  `json:"basicExpenses,omitempty"`
	Method        string                  `json:"method,omitempty" binding:"omitempty,oneof=GROSS NET gross net"`
}

// ToCalculator builds the income calculator from the request.
func (r IncomeZakatRequest) ToCalculator() (*services.IncomeCalculator, error) {
	income, err := parseAmountField("totalIncome", r.TotalIncome)
	if err != nil {
		return nil, err
	}
	expenses, err := parseAmountField("basicExpenses", r.BasicExpenses)
	if err != nil {
		return nil, err
	}
	calc := services.NewIncomeCalculator(income)
	calc.BasicExpenses = expenses
	if normalize(r.Method) == string(services.IncomeNet) {
		calc.Method = services.IncomeNet
	}
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

// InvestmentZakatRequest defines the inputs for market investment Zakat.
type InvestmentZakatRequest struct {
	AssetBaseRequest
	Config           *ConfigOverridesRequest `json:"config,omitempty"`
	MarketValue      string                  `json:"marketValue" binding:"required,amount"`
	Kind             string                  `json:"kind,omitempty" binding:"omitempty,oneof=STOCK CRYPTO MUTUAL_FUND stock crypto mutual_fund"`
	ImpureProportion string                  `json:"impureProportion,omitempty"`
}

// ToCalculator builds the investment calculator from the request.
func (r InvestmentZakatRequest) ToCalculator() (*services.InvestmentCalculator, error) {
	value, err := parseAmountField("marketValue", r.MarketValue)
	if err != nil {
		return nil, err
	}
	proportion, err := parseAmountField("impureProportion", r.ImpureProportion)
	if err != nil {
		return nil, err
	}
	calc := services.NewInvestmentCalculator(value)
	calc.ImpureProportion = proportion
	switch services.InvestmentKind(normalize(r.Kind)) {
	case services.InvestmentCrypto:
		calc.Kind = services.InvestmentCrypto
	case services.InvestmentMutualFund:
		calc.Kind = services.InvestmentMutualFund
	}
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

// AgricultureZakatRequest defines the inputs for harvest Zakat. The weight
// may be given in kilograms or classical Wasaq units.
type AgricultureZakatRequest struct {
	AssetBaseRequest
	Config          *ConfigOverridesRequest `json:"config,omitempty"`
	HarvestWeightKg string                  `json:"harvestWeightKg,omitempty"`
	HarvestWasaq    string                  `json:"harvestWasaq,omitempty"`
	PricePerKg      string                  `json:"pricePerKg" binding:"required,amount"`
	Irrigation      string                  `json:"irrigation,omitempty" binding:"omitempty,oneof=RAIN IRRIGATED MIXED rain irrigated mixed"`
}

// ToCalculator builds the agriculture calculator from the request.
func (r AgricultureZakatRequest) ToCalculator() (*services.AgricultureCalculator, error) {
	if (r.HarvestWeightKg == "") == (r.HarvestWasaq == "") {
		return nil, apperrors.NewInvalidInput("harvestWeightKg", "", "error-weight-unit-required")
	}
	price, err := parseAmountField("pricePerKg", r.PricePerKg)
	if err != nil {
		return nil, err
	}

	var calc *services.AgricultureCalculator
	if r.HarvestWeightKg != "" {
		kg, err := parseAmountField("harvestWeightKg", r.HarvestWeightKg)
		if err != nil {
			return nil, err
		}
		calc = services.NewAgricultureCalculator(kg, price)
	} else {
		wasaq, err := parseAmountField("harvestWasaq", r.HarvestWasaq)
		if err != nil {
			return nil, err
		}
		calc = services.NewAgricultureCalculatorFromWasaq(wasaq, price)
	}
	switch services.IrrigationMethod(normalize(r.Irrigation)) {
	case services.IrrigationIrrigated:
		calc.Irrigation = services.IrrigationIrrigated
	case services.IrrigationMixed:
		calc.Irrigation = services.IrrigationMixed
	}
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

// MiningZakatRequest defines the inputs for mining and found treasure Zakat.
type MiningZakatRequest struct {
	AssetBaseRequest
	Config *ConfigOverridesRequest `json:"config,omitempty"`
	Value  string                  `json:"value" binding:"required,amount"`
	Kind   string                  `json:"kind,omitempty" binding:"omitempty,oneof=RIKAZ MINES rikaz mines"`
}

// ToCalculator builds the mining calculator from the request.
func (r MiningZakatRequest) ToCalculator() (*services.MiningCalculator, error) {
	value, err := parseAmountField("value", r.Value)
	if err != nil {
		return nil, err
	}
	var calc *services.MiningCalculator
	if services.MiningKind(normalize(r.Kind)) == services.MiningRikaz {
		calc = services.NewRikazCalculator(value)
	} else {
		calc = services.NewMiningCalculator(value)
	}
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

// FitrahZakatRequest defines the inputs for Zakat al-Fitr.
type FitrahZakatRequest struct {
	AssetBaseRequest
	PersonCount  int64  `json:"personCount" binding:"required"`
	PricePerUnit string `json:"pricePerUnit" binding:"required,amount"`
	// UnitAmount per person; empty means the 2.5 default.
	UnitAmount string `json:"unitAmount,omitempty"`
}

// ToCalculator builds the fitrah calculator from the request.
func (r FitrahZakatRequest) ToCalculator() (*services.FitrahCalculator, error) {
	price, err := parseAmountField("pricePerUnit", r.PricePerUnit)
	if err != nil {
		return nil, err
	}
	unit, err := parseAmountField("unitAmount", r.UnitAmount)
	if err != nil {
		return nil, err
	}
	calc := services.NewFitrahCalculator(r.PersonCount, price)
	calc.UnitAmount = unit
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

// LivestockZakatRequest defines the inputs for herd Zakat.
type LivestockZakatRequest struct {
	AssetBaseRequest
	Config     *ConfigOverridesRequest `json:"config,omitempty"`
	Count      int64                   `json:"count"`
	Species    string                  `json:"species" binding:"required,oneof=SHEEP CATTLE CAMEL sheep cattle camel"`
	Grazing    string                  `json:"grazing,omitempty" binding:"omitempty,oneof=SAIMAH MAALUFAH saimah maalufah"`
	SheepPrice string                  `json:"sheepPrice,omitempty"`
	CowPrice   string                  `json:"cowPrice,omitempty"`
	CamelPrice string                  `json:"camelPrice,omitempty"`
}

// ToCalculator builds the livestock calculator from the request.
func (r LivestockZakatRequest) ToCalculator() (*services.LivestockCalculator, error) {
	sheepPrice, err := parseAmountField("sheepPrice", r.SheepPrice)
	if err != nil {
		return nil, err
	}
	cowPrice, err := parseAmountField("cowPrice", r.CowPrice)
	if err != nil {
		return nil, err
	}
	camelPrice, err := parseAmountField("camelPrice", r.CamelPrice)
	if err != nil {
		return nil, err
	}
	calc := services.NewLivestockCalculator(r.Count, services.LivestockSpecies(normalize(r.Species)), services.LivestockPrices{
		SheepPrice: sheepPrice,
		CowPrice:   cowPrice,
		CamelPrice: camelPrice,
	})
	if services.GrazingMethod(normalize(r.Grazing)) == services.GrazingMaalufah {
		calc.Grazing = services.GrazingMaalufah
	}
	if err := r.apply(&calc.AssetBase); err != nil {
		return nil, err
	}
	return calc, nil
}

func normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
