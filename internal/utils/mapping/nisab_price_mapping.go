package mapping

import (
	"time"

	"github.com/zakatify/zakat_backend/internal/core/ports"
	"github.com/zakatify/zakat_backend/internal/models"
)

// ToModelNisabPrice converts a ports.NisabPrice to its database row model.
func ToModelNisabPrice(price ports.NisabPrice, now time.Time) models.NisabPrice {
	return models.NisabPrice{
		EffectiveDate: price.EffectiveDate,
		Threshold:     price.Threshold,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

// ToPortNisabPrice converts a database row to the port representation.
func ToPortNisabPrice(row models.NisabPrice) ports.NisabPrice {
	return ports.NisabPrice{
		EffectiveDate: row.EffectiveDate,
		Threshold:     row.Threshold,
	}
}

// ToPortNisabPriceSlice converts a slice of rows.
func ToPortNisabPriceSlice(rows []models.NisabPrice) []ports.NisabPrice {
	res := make([]ports.NisabPrice, len(rows))
	for i, row := range rows {
		res[i] = ToPortNisabPrice(row)
	}
	return res
}
