package dto

import (
	"github.com/zakatify/zakat_backend/internal/core/services"
)

// HawlEvaluationRequest asks whether a full lunar year has elapsed since
// acquisition, as of an optional calculation date (default today).
type HawlEvaluationRequest struct {
	AcquisitionDate string `json:"acquisitionDate" binding:"required"`
	AsOfDate        string `json:"asOfDate,omitempty"`
}

// HawlEvaluationResponse reports the holding-period status.
type HawlEvaluationResponse struct {
	Satisfied          bool   `json:"satisfied"`
	DaysElapsed        int    `json:"daysElapsed"`
	CompletionFraction string `json:"completionFraction"`
}

// ToHawlEvaluationResponse converts a tracker's verdict to its wire form.
func ToHawlEvaluationResponse(tracker services.HawlTracker) HawlEvaluationResponse {
	days := 0
	if tracker.AcquisitionDate != nil {
		days = tracker.DaysElapsed(*tracker.AcquisitionDate)
	}
	return HawlEvaluationResponse{
		Satisfied:          tracker.IsSatisfied(),
		DaysElapsed:        days,
		CompletionFraction: tracker.CompletionFraction().Round(4).String(),
	}
}
