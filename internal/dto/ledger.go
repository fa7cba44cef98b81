package dto

import (
	"strconv"
	"time"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/ports"
)

// LedgerEventRequest is one balance-changing event. Amounts are non-negative;
// the kind carries the sign.
type LedgerEventRequest struct {
	Date        string `json:"date" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Kind        string `json:"kind" binding:"required"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToDomain converts the event to its domain form.
func (r LedgerEventRequest) ToDomain() (domain.LedgerEvent, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return domain.LedgerEvent{}, err
	}
	amount, err := parseAmountField("amount", r.Amount)
	if err != nil {
		return domain.LedgerEvent{}, err
	}
	kind, ok := domain.ParseTransactionKind(r.Kind)
	if !ok {
		return domain.LedgerEvent{}, apperrors.NewInvalidInput("kind", r.Kind, "error-unknown-transaction-kind")
	}
	category := domain.CategoryOther
	if r.Category != "" {
		category = domain.WealthCategory(normalize(r.Category))
	}
	return domain.NewLedgerEvent(date, amount, category, kind, r.Description), nil
}

// NisabPricePointRequest is one dated threshold entry supplied inline with a
// simulation, for callers without a persisted price history.
type NisabPricePointRequest struct {
	EffectiveDate string `json:"effectiveDate" binding:"required"`
	Threshold     string `json:"threshold" binding:"required"`
}

// ToPort converts the point to its port form.
func (r NisabPricePointRequest) ToPort() (ports.NisabPrice, error) {
	date, err := parseDate("effectiveDate", r.EffectiveDate)
	if err != nil {
		return ports.NisabPrice{}, err
	}
	threshold, err := parseAmountField("threshold", r.Threshold)
	if err != nil {
		return ports.NisabPrice{}, err
	}
	return ports.NisabPrice{EffectiveDate: domain.DayOf(date), Threshold: threshold}, nil
}

// SimulateTimelineRequest defines a timeline simulation window. Thresholds
// come from the inline price points when given, otherwise from the persisted
// history.
type SimulateTimelineRequest struct {
	StartDate string                   `json:"startDate" binding:"required"`
	EndDate   string                   `json:"endDate" binding:"required"`
	Events    []LedgerEventRequest     `json:"events"`
	Prices    []NisabPricePointRequest `json:"prices,omitempty"`
}

// Window parses the simulation date range.
func (r SimulateTimelineRequest) Window() (time.Time, time.Time, error) {
	start, err := parseDate("startDate", r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("endDate", r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// DomainEvents converts all events, tagging failures with their index.
func (r SimulateTimelineRequest) DomainEvents() ([]domain.LedgerEvent, error) {
	events := make([]domain.LedgerEvent, len(r.Events))
	for i, ev := range r.Events {
		converted, err := ev.ToDomain()
		if err != nil {
			return nil, apperrors.WithSource(err, "events["+strconv.Itoa(i)+"]")
		}
		events[i] = converted
	}
	return events, nil
}

// PricePoints converts the inline threshold entries.
func (r SimulateTimelineRequest) PricePoints() ([]ports.NisabPrice, error) {
	points := make([]ports.NisabPrice, len(r.Prices))
	for i, p := range r.Prices {
		converted, err := p.ToPort()
		if err != nil {
			return nil, apperrors.WithSource(err, "prices["+strconv.Itoa(i)+"]")
		}
		points[i] = converted
	}
	return points, nil
}

// DailyBalanceResponse is one row of the simulated timeline on the wire.
type DailyBalanceResponse struct {
	Date           string `json:"date"`
	Balance        string `json:"balance"`
	NisabThreshold string `json:"nisabThreshold"`
	AboveNisab     bool   `json:"aboveNisab"`
}

// HawlVerdictResponse is the continuity analysis on the wire.
type HawlVerdictResponse struct {
	IsDue             bool   `json:"isDue"`
	HawlStartDate     string `json:"hawlStartDate,omitempty"`
	CurrentStreakDays int    `json:"currentStreakDays"`
	LastBreachDate    string `json:"lastBreachDate,omitempty"`
}

// TimelineResponse pairs the simulated days with their continuity verdict.
type TimelineResponse struct {
	Days    []DailyBalanceResponse `json:"days"`
	Verdict HawlVerdictResponse    `json:"verdict"`
}

// ToTimelineResponse converts a simulated window and its verdict.
func ToTimelineResponse(days []domain.DailyBalance, verdict domain.HawlVerdict) TimelineResponse {
	out := TimelineResponse{
		Days:    make([]DailyBalanceResponse, len(days)),
		Verdict: ToHawlVerdictResponse(verdict),
	}
	for i, d := range days {
		out.Days[i] = DailyBalanceResponse{
			Date:           d.Date.Format(time.DateOnly),
			Balance:        d.Balance.String(),
			NisabThreshold: d.NisabThreshold.String(),
			AboveNisab:     d.AboveNisab,
		}
	}
	return out
}

// ToHawlVerdictResponse converts a domain.HawlVerdict to its wire form.
func ToHawlVerdictResponse(v domain.HawlVerdict) HawlVerdictResponse {
	out := HawlVerdictResponse{
		IsDue:             v.IsDue,
		CurrentStreakDays: v.CurrentStreakDays,
	}
	if v.HawlStartDate != nil {
		out.HawlStartDate = v.HawlStartDate.Format(time.DateOnly)
	}
	if v.LastBreachDate != nil {
		out.LastBreachDate = v.LastBreachDate.Format(time.DateOnly)
	}
	return out
}
