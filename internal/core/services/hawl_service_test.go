package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zakatify/zakat_backend/internal/core/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHawlSatisfiedAcrossHijriYear(t *testing.T) {
	// 2023-03-23 is 1 Ramadan 1444; 2024-03-11 is 1 Ramadan 1445.
	tracker := services.NewHawlTracker(date(2024, time.March, 11)).AcquiredOn(date(2023, time.March, 23))
	assert.True(t, tracker.IsSatisfied())

	// One Hijri day earlier the year has not completed.
	tracker = services.NewHawlTracker(date(2024, time.March, 10)).AcquiredOn(date(2023, time.March, 23))
	assert.False(t, tracker.IsSatisfied())
}

func TestHawlFlatDayBoundary(t *testing.T) {
	asOf := date(2023, time.October, 1)

	exactly := services.NewHawlTracker(asOf).AcquiredOn(asOf.AddDate(0, 0, -services.HawlDays))
	assert.True(t, exactly.IsSatisfied())

	oneShort := services.NewHawlTracker(asOf).AcquiredOn(asOf.AddDate(0, 0, -(services.HawlDays - 1)))
	assert.False(t, oneShort.IsSatisfied())
}

func TestHawlMultipleYearsElapsed(t *testing.T) {
	tracker := services.NewHawlTracker(date(2024, time.June, 1)).AcquiredOn(date(2020, time.June, 1))
	assert.True(t, tracker.IsSatisfied())
}

func TestHawlNoAcquisitionDate(t *testing.T) {
	tracker := services.NewHawlTracker(date(2024, time.June, 1))
	assert.False(t, tracker.IsSatisfied())
	assert.True(t, tracker.CompletionFraction().IsZero())
}

func TestHawlFutureAcquisitionNotSatisfied(t *testing.T) {
	tracker := services.NewHawlTracker(date(2024, time.June, 1)).AcquiredOn(date(2024, time.July, 1))
	assert.False(t, tracker.IsSatisfied())
	assert.True(t, tracker.CompletionFraction().IsZero())
}

func TestHawlCompletionFraction(t *testing.T) {
	asOf := date(2023, time.October, 1)

	half := services.NewHawlTracker(asOf).AcquiredOn(asOf.AddDate(0, 0, -177))
	got, _ := half.CompletionFraction().Float64()
	assert.InDelta(t, 0.5, got, 0.001)

	full := services.NewHawlTracker(asOf).AcquiredOn(asOf.AddDate(0, 0, -354))
	got, _ = full.CompletionFraction().Float64()
	assert.InDelta(t, 1.0, got, 0.001)
}

func TestHawlPreEpochFallsBackToFlatDays(t *testing.T) {
	// Dates before the Hijri epoch cannot be converted; the flat 354-day
	// threshold decides.
	asOf := date(300, time.January, 1)
	tracker := services.NewHawlTracker(asOf).AcquiredOn(asOf.AddDate(0, 0, -400))
	assert.True(t, tracker.IsSatisfied())

	tracker = services.NewHawlTracker(asOf).AcquiredOn(asOf.AddDate(0, 0, -100))
	assert.False(t, tracker.IsSatisfied())
}
