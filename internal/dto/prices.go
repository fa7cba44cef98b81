package dto

import (
	"time"

	"github.com/zakatify/zakat_backend/internal/core/ports"
)

// SaveNisabPriceRequest records the threshold effective on a given day.
type SaveNisabPriceRequest struct {
	EffectiveDate string `json:"effectiveDate" binding:"required"`
	Threshold     string `json:"threshold" binding:"required"`
}

// ToPort converts the request to its port form.
func (r SaveNisabPriceRequest) ToPort() (ports.NisabPrice, error) {
	return NisabPricePointRequest{EffectiveDate: r.EffectiveDate, Threshold: r.Threshold}.ToPort()
}

// NisabPriceResponse is one history entry on the wire.
type NisabPriceResponse struct {
	EffectiveDate string `json:"effectiveDate"`
	Threshold     string `json:"threshold"`
}

// ToNisabPriceResponse converts a ports.NisabPrice to its wire form.
func ToNisabPriceResponse(price ports.NisabPrice) NisabPriceResponse {
	return NisabPriceResponse{
		EffectiveDate: price.EffectiveDate.Format(time.DateOnly),
		Threshold:     price.Threshold.String(),
	}
}

// ToNisabPriceResponseSlice converts a slice of history entries.
func ToNisabPriceResponseSlice(prices []ports.NisabPrice) []NisabPriceResponse {
	res := make([]NisabPriceResponse, len(prices))
	for i, p := range prices {
		res[i] = ToNisabPriceResponse(p)
	}
	return res
}
