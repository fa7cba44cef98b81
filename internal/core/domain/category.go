package domain

// WealthCategory identifies which rate table and threshold rule applies to an asset.
type WealthCategory string

const (
	CategoryGold        WealthCategory = "GOLD"
	CategorySilver      WealthCategory = "SILVER"
	CategoryBusiness    WealthCategory = "BUSINESS"
	CategoryAgriculture WealthCategory = "AGRICULTURE"
	CategoryLivestock   WealthCategory = "LIVESTOCK"
	CategoryIncome      WealthCategory = "INCOME"
	CategoryInvestment  WealthCategory = "INVESTMENT"
	CategoryMining      WealthCategory = "MINING"
	CategoryRikaz       WealthCategory = "RIKAZ"
	CategoryFitrah      WealthCategory = "FITRAH"
	CategoryOther       WealthCategory = "OTHER"
)

// IsMonetary reports whether the category belongs to the single monetary genus
// (Thamaniyyah) that is pooled for Nisab under Dam' al-Amwal: gold, silver,
// business, income and investments.
func (c WealthCategory) IsMonetary() bool {
	switch c {
	case CategoryGold, CategorySilver, CategoryBusiness, CategoryIncome, CategoryInvestment:
		return true
	default:
		return false
	}
}
