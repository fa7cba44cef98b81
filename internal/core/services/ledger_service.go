package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/ports"
)

// LedgerService replays transaction history into a daily balance timeline and
// judges Hawl continuity over it.
type LedgerService struct {
	prices ports.HistoricalNisabSource
}

// NewLedgerService wires the service to a historical threshold source.
func NewLedgerService(prices ports.HistoricalNisabSource) *LedgerService {
	return &LedgerService{prices: prices}
}

// SimulateTimeline walks day by day from start to end (inclusive), applying
// every event dated at or before each day and pairing the running balance with
// that day's Nisab threshold. Events dated before start are folded into the
// opening balance.
func (s *LedgerService) SimulateTimeline(ctx context.Context, events []domain.LedgerEvent, start, end time.Time) ([]domain.DailyBalance, error) {
	start = domain.DayOf(start)
	end = domain.DayOf(end)
	if start.After(end) {
		return nil, apperrors.NewInvalidInput("start_date", start.Format(time.DateOnly), "error-date-range-invalid")
	}
	for _, ev := range events {
		if ev.Amount.IsNegative() {
			return nil, apperrors.NewInvalidInput("amount", ev.Amount.String(), "error-negative-value")
		}
	}

	// Stable sort keeps same-day events in submission order.
	sorted := make([]domain.LedgerEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	balance := decimal.Zero
	next := 0
	for next < len(sorted) && domain.DayOf(sorted[next].Date).Before(start) {
		balance = applyEvent(balance, sorted[next])
		next++
	}

	var days []domain.DailyBalance
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for next < len(sorted) && !domain.DayOf(sorted[next].Date).After(day) {
			balance = applyEvent(balance, sorted[next])
			next++
		}
		threshold, err := s.prices.NisabThresholdAt(ctx, day)
		if err != nil {
			return nil, err
		}
		days = append(days, domain.DailyBalance{
			Date:           day,
			Balance:        balance,
			NisabThreshold: threshold,
			AboveNisab:     balance.GreaterThanOrEqual(threshold),
		})
	}
	return days, nil
}

func applyEvent(balance decimal.Decimal, ev domain.LedgerEvent) decimal.Decimal {
	if ev.Kind.IsCredit() {
		return balance.Add(ev.Amount)
	}
	return balance.Sub(ev.Amount)
}

// AnalyzeHawl scans a timeline for an unbroken run of at-or-above-threshold
// days. Any day below the threshold resets the streak; Zakat falls due once
// the streak reaches a full lunar year of 354 days.
func AnalyzeHawl(days []domain.DailyBalance) domain.HawlVerdict {
	var verdict domain.HawlVerdict
	streak := 0
	var streakStart *time.Time

	for i := range days {
		d := days[i]
		if d.AboveNisab {
			if streak == 0 {
				start := d.Date
				streakStart = &start
			}
			streak++
		} else {
			streak = 0
			streakStart = nil
			breach := d.Date
			verdict.LastBreachDate = &breach
		}
	}

	verdict.CurrentStreakDays = streak
	verdict.HawlStartDate = streakStart
	verdict.IsDue = streak >= HawlDays
	return verdict
}

// EvaluateHawl is the combined operation: simulate the window, then judge it.
func (s *LedgerService) EvaluateHawl(ctx context.Context, events []domain.LedgerEvent, start, end time.Time) (domain.HawlVerdict, []domain.DailyBalance, error) {
	days, err := s.SimulateTimeline(ctx, events, start, end)
	if err != nil {
		return domain.HawlVerdict{}, nil, err
	}
	return AnalyzeHawl(days), days, nil
}

// InMemoryNisabHistory is a HistoricalNisabSource backed by a sorted slice.
// Lookups resolve to the most recent threshold effective at or before the
// requested date; dates before the first entry are a configuration error.
type InMemoryNisabHistory struct {
	entries []ports.NisabPrice
}

// NewInMemoryNisabHistory copies and sorts the given price points.
func NewInMemoryNisabHistory(entries []ports.NisabPrice) *InMemoryNisabHistory {
	sorted := make([]ports.NisabPrice, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate)
	})
	return &InMemoryNisabHistory{entries: sorted}
}

// NisabThresholdAt implements ports.HistoricalNisabSource.
func (h *InMemoryNisabHistory) NisabThresholdAt(_ context.Context, date time.Time) (decimal.Decimal, error) {
	day := domain.DayOf(date)
	idx := sort.Search(len(h.entries), func(i int) bool {
		return h.entries[i].EffectiveDate.After(day)
	})
	if idx == 0 {
		return decimal.Zero, apperrors.NewConfiguration(
			"no nisab threshold on record for " + day.Format(time.DateOnly))
	}
	return h.entries[idx-1].Threshold, nil
}
