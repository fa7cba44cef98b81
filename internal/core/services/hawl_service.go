package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// HawlDays is the length of the lunar year used by the flat fallback and the
// continuity analyzer.
const HawlDays = 354

var errBeforeHijriEpoch = errors.New("date precedes the Hijri epoch")

var hawlDaysDecimal = decimal.NewFromInt(HawlDays)

// HawlTracker determines whether an asset has been held for a full lunar year
// as of a caller-chosen calculation date. It is created fresh per calculation.
type HawlTracker struct {
	AcquisitionDate *time.Time
	CalculationDate time.Time
}

// NewHawlTracker creates a tracker evaluating against the given "as-of" date.
func NewHawlTracker(calculationDate time.Time) HawlTracker {
	return HawlTracker{CalculationDate: calculationDate}
}

// AcquiredOn sets the acquisition date and returns the tracker for chaining.
func (t HawlTracker) AcquiredOn(date time.Time) HawlTracker {
	d := date
	t.AcquisitionDate = &d
	return t
}

// IsSatisfied reports whether a full Hijri year has elapsed between
// acquisition and calculation date. The Islamic civil calendar comparison is
// tried first; if either date cannot be converted, a flat 354-elapsed-day
// threshold decides. No acquisition date means not satisfied.
func (t HawlTracker) IsSatisfied() bool {
	if t.AcquisitionDate == nil {
		return false
	}
	start := *t.AcquisitionDate
	if ok, err := t.satisfiedHijri(start); err == nil {
		return ok
	}
	return t.DaysElapsed(start) >= HawlDays
}

func (t HawlTracker) satisfiedHijri(start time.Time) (bool, error) {
	sy, sm, sd, err := toIslamicCivil(start)
	if err != nil {
		return false, err
	}
	ny, nm, nd, err := toIslamicCivil(t.CalculationDate)
	if err != nil {
		return false, err
	}
	elapsedYears := ny - sy
	if elapsedYears > 1 {
		return true, nil
	}
	if elapsedYears == 1 {
		if nm > sm {
			return true, nil
		}
		if nm == sm && nd >= sd {
			return true, nil
		}
	}
	return false, nil
}

// DaysElapsed returns the whole days between acquisition and calculation date.
func (t HawlTracker) DaysElapsed(start time.Time) int {
	return int(t.CalculationDate.Sub(start).Hours() / 24)
}

// CompletionFraction is elapsed days over 354, clamped at zero. It exists for
// progress display only; eligibility is binary.
func (t HawlTracker) CompletionFraction() decimal.Decimal {
	if t.AcquisitionDate == nil {
		return decimal.Zero
	}
	days := t.DaysElapsed(*t.AcquisitionDate)
	if days <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(days)).Div(hawlDaysDecimal)
}

// toIslamicCivil converts a Gregorian date to the tabular Islamic civil
// calendar (year, month, day).
func toIslamicCivil(t time.Time) (int, int, int, error) {
	jdn := gregorianJDN(t)
	// 1948440 is the JDN of 1 Muharram 1 AH in the civil reckoning.
	if jdn < 1948440 {
		return 0, 0, 0, errBeforeHijriEpoch
	}
	l := jdn - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	month := (24 * l) / 709
	day := l - (709*month)/24
	year := 30*n + j - 30
	return int(year), int(month), int(day), nil
}

func gregorianJDN(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	a := int64(14-int(m)) / 12
	yy := int64(y) + 4800 - a
	mm := int64(m) + 12*a - 3
	return int64(d) + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045
}
