package services

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// LivestockSpecies identifies the herd animal. Sheep includes goats.
type LivestockSpecies string

const (
	SpeciesSheep  LivestockSpecies = "SHEEP"
	SpeciesCattle LivestockSpecies = "CATTLE"
	SpeciesCamel  LivestockSpecies = "CAMEL"
)

// GrazingMethod gates livestock payability: only naturally grazing (Sa'imah)
// herds owe Zakat; stall-fed (Maalufah) herds are exempt.
type GrazingMethod string

const (
	GrazingSaimah   GrazingMethod = "SAIMAH"
	GrazingMaalufah GrazingMethod = "MAALUFAH"
)

// StatusNotSaimah is the reason reported for stall-fed herds.
const StatusNotSaimah = "Not Sa'imah (naturally grazed)"

// LivestockPrices are per-head market prices used to value obligations.
type LivestockPrices struct {
	SheepPrice decimal.Decimal
	CowPrice   decimal.Decimal
	CamelPrice decimal.Decimal
}

// Per-species Nisab floors in head count.
const (
	sheepNisabHead  = 40
	cattleNisabHead = 30
	camelNisabHead  = 5
)

// Valuation ratios relative to the standard per-head price, by age class.
var (
	ratioTabi       = decimal.RequireFromString("0.7")  // yearling calf
	ratioBintMakhad = decimal.RequireFromString("0.5")  // 1yo camel
	ratioBintLabun  = decimal.RequireFromString("0.75") // 2yo camel
	ratioJazaah     = decimal.RequireFromString("1.25") // 4yo camel
)

// PartitionHerd maps a head count to the obligation for the species: the
// monetary value of the heads due, the species' Nisab floor, and the
// breakdown by age class. It runs in constant time regardless of herd size.
func PartitionHerd(count int64, species LivestockSpecies, prices LivestockPrices) (decimal.Decimal, int64, []domain.LivestockHead, error) {
	if count < 0 {
		return decimal.Zero, 0, nil, apperrors.NewInvalidInput("count", strconv.FormatInt(count, 10), "error-negative-value")
	}
	switch species {
	case SpeciesSheep:
		return partitionSheep(count, prices.SheepPrice)
	case SpeciesCattle:
		return partitionCattle(count, prices.CowPrice)
	case SpeciesCamel:
		return partitionCamel(count, prices)
	default:
		return decimal.Zero, 0, nil, apperrors.NewInvalidInput("species", string(species), "error-type-required")
	}
}

func partitionSheep(count int64, price decimal.Decimal) (decimal.Decimal, int64, []domain.LivestockHead, error) {
	if count < sheepNisabHead {
		return decimal.Zero, sheepNisabHead, nil, nil
	}
	var due int64
	switch {
	case count <= 120:
		due = 1
	case count <= 200:
		due = 2
	case count <= 300:
		due = 3
	default:
		// One sheep per additional hundred.
		due = count / 100
	}
	value := decimal.NewFromInt(due).Mul(price)
	return value, sheepNisabHead, []domain.LivestockHead{{Name: "Sheep", Count: due}}, nil
}

// partitionCattle covers the herd with Tabi' units of 30 and Musinnah units
// of 40: find t, m >= 0 with 30t + 40m = count, preferring the most Musinnah.
// Since lcm(30,40) = 120 = 3*40, walking the Musinnah count down at most
// three times from the greedy maximum visits every residue class, so the
// search is bounded regardless of herd size.
func partitionCattle(count int64, price decimal.Decimal) (decimal.Decimal, int64, []domain.LivestockHead, error) {
	if count < cattleNisabHead {
		return decimal.Zero, cattleNisabHead, nil, nil
	}

	var tabi, musinnah int64
	switch {
	case count <= 39:
		tabi = 1
	case count < 60:
		musinnah = 1
	default:
		m := count / 40
		found := false
		for i := 0; i <= 3; i++ {
			rem := count - m*40
			if rem >= 0 && rem%30 == 0 {
				tabi = rem / 30
				musinnah = m
				found = true
				break
			}
			if m == 0 {
				break
			}
			m--
		}
		if !found {
			// No exact partition: greedy apportionment.
			musinnah = count / 40
			if count%40 >= 30 {
				tabi = 1
			}
		}
	}

	value := decimal.NewFromInt(tabi).Mul(price.Mul(ratioTabi)).
		Add(decimal.NewFromInt(musinnah).Mul(price))
	var heads []domain.LivestockHead
	if tabi > 0 {
		heads = append(heads, domain.LivestockHead{Name: "Tabi'", Count: tabi})
	}
	if musinnah > 0 {
		heads = append(heads, domain.LivestockHead{Name: "Musinnah", Count: musinnah})
	}
	return value, cattleNisabHead, heads, nil
}

// partitionCamel applies the discrete tiers up to 120 head, then covers the
// herd with Hiqqah units of 50 and Bint Labun units of 40 (lcm 200, so at
// most four corrective swaps from the greedy maximum-Hiqqah start).
func partitionCamel(count int64, prices LivestockPrices) (decimal.Decimal, int64, []domain.LivestockHead, error) {
	if count < camelNisabHead {
		return decimal.Zero, camelNisabHead, nil, nil
	}

	var sheep, bintMakhad, bintLabun, hiqqah, jazaah int64
	switch {
	case count < 25:
		switch {
		case count < 10:
			sheep = 1
		case count < 15:
			sheep = 2
		case count < 20:
			sheep = 3
		default:
			sheep = 4
		}
	case count <= 35:
		bintMakhad = 1
	case count <= 45:
		bintLabun = 1
	case count <= 60:
		hiqqah = 1
	case count <= 75:
		jazaah = 1
	case count <= 90:
		bintLabun = 2
	case count <= 120:
		hiqqah = 2
	default:
		h := count / 50
		found := false
		for i := 0; i <= 4; i++ {
			rem := count - h*50
			if rem >= 0 && rem%40 == 0 {
				bintLabun = rem / 40
				hiqqah = h
				found = true
				break
			}
			if h == 0 {
				break
			}
			h--
		}
		if !found {
			hiqqah = count / 50
			if count%50 >= 40 {
				bintLabun = 1
			}
		}
	}

	camelPrice := prices.CamelPrice
	value := decimal.NewFromInt(sheep).Mul(prices.SheepPrice).
		Add(decimal.NewFromInt(bintMakhad).Mul(camelPrice.Mul(ratioBintMakhad))).
		Add(decimal.NewFromInt(bintLabun).Mul(camelPrice.Mul(ratioBintLabun))).
		Add(decimal.NewFromInt(hiqqah).Mul(camelPrice)).
		Add(decimal.NewFromInt(jazaah).Mul(camelPrice.Mul(ratioJazaah)))

	var heads []domain.LivestockHead
	for _, h := range []domain.LivestockHead{
		{Name: "Sheep", Count: sheep},
		{Name: "Bint Makhad", Count: bintMakhad},
		{Name: "Bint Labun", Count: bintLabun},
		{Name: "Hiqqah", Count: hiqqah},
		{Name: "Jaza'ah", Count: jazaah},
	} {
		if h.Count > 0 {
			heads = append(heads, h)
		}
	}
	return value, camelNisabHead, heads, nil
}

// LivestockCalculator computes Zakat on herds via the partition engine.
type LivestockCalculator struct {
	AssetBase
	Count   int64
	Species LivestockSpecies
	Prices  LivestockPrices
	Grazing GrazingMethod
}

// NewLivestockCalculator creates a naturally grazing herd asset.
func NewLivestockCalculator(count int64, species LivestockSpecies, prices LivestockPrices) *LivestockCalculator {
	return &LivestockCalculator{
		AssetBase: newAssetBase(),
		Count:     count,
		Species:   species,
		Prices:    prices,
		Grazing:   GrazingSaimah,
	}
}

func (c *LivestockCalculator) unitPrice() decimal.Decimal {
	switch c.Species {
	case SpeciesCattle:
		return c.Prices.CowPrice
	case SpeciesCamel:
		return c.Prices.CamelPrice
	default:
		return c.Prices.SheepPrice
	}
}

func (c *LivestockCalculator) speciesDescription() string {
	switch c.Species {
	case SpeciesCattle:
		return "Cattle"
	case SpeciesCamel:
		return "Camel"
	default:
		return "Sheep/Goat"
	}
}

func describeHeads(heads []domain.LivestockHead) string {
	parts := make([]string, len(heads))
	for i, h := range heads {
		parts[i] = strconv.FormatInt(h.Count, 10) + " " + h.Name
	}
	return strings.Join(parts, ", ")
}

// Calculate implements the shared calculation contract.
func (c *LivestockCalculator) Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error) {
	if c.Count < 0 {
		return domain.CalculationResult{}, apperrors.WithSource(
			apperrors.NewInvalidInput("count", strconv.FormatInt(c.Count, 10), "error-negative-value"), c.AssetLabel)
	}
	switch c.Species {
	case SpeciesSheep, SpeciesCattle, SpeciesCamel:
	default:
		return domain.CalculationResult{}, apperrors.WithSource(
			apperrors.NewInvalidInput("species", string(c.Species), "error-type-required"), c.AssetLabel)
	}
	price := c.unitPrice()
	if !price.IsPositive() {
		return domain.CalculationResult{}, apperrors.WithSource(
			apperrors.NewConfiguration("per-head price must be positive for "+c.speciesDescription()), c.AssetLabel)
	}

	value, nisabHead, heads, err := PartitionHerd(c.Count, c.Species, c.Prices)
	if err != nil {
		return domain.CalculationResult{}, apperrors.WithSource(err, c.AssetLabel)
	}
	nisabValue := decimal.NewFromInt(nisabHead).Mul(price)

	if c.Grazing != GrazingSaimah {
		return domain.NewExemptResult(nisabValue, domain.CategoryLivestock, StatusNotSaimah).WithLabel(c.AssetLabel), nil
	}
	if !c.hawlMet() {
		return domain.NewExemptResult(nisabValue, domain.CategoryLivestock, StatusHawlNotMet).WithLabel(c.AssetLabel), nil
	}

	totalValue := decimal.NewFromInt(c.Count).Mul(price)
	payable := value.IsPositive()

	trace := []domain.CalculationStep{
		domain.TraceInitial(c.speciesDescription()+" Count", decimal.NewFromInt(c.Count)),
		domain.TraceCompare("Nisab Count ("+strconv.FormatInt(nisabHead, 10)+" head)", nisabValue),
	}
	if payable {
		trace = append(trace,
			domain.TraceResult("Herd Value", totalValue),
			domain.TraceResult("Zakat Due: "+describeHeads(heads), value),
		)
	} else {
		trace = append(trace, domain.TraceInfo("Count below Nisab - no Zakat due"))
	}

	return domain.CalculationResult{
		TotalAssets:    totalValue,
		Liabilities:    c.LiabilitiesDueNow,
		NetAssets:      totalValue,
		NisabThreshold: nisabValue,
		Payable:        payable,
		ZakatDue:       value,
		Category:       domain.CategoryLivestock,
		Label:          c.AssetLabel,
		HeadsDue:       heads,
		Trace:          trace,
	}, nil
}
