// Package period provides calendar-aligned period boundaries and the
// percentage-change convention used by performance reporting.
package period

import (
	"math"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
)

// Range is a half-open time interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// CurrentRange returns the calendar-aligned period containing ref.
// Weeks run Monday through Sunday; months, quarters and years follow the
// calendar, not rolling windows.
func CurrentRange(periodType domain.PeriodType, ref time.Time) Range {
	loc := ref.Location()
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)

	switch periodType {
	case domain.PeriodWeek:
		// time.Weekday puts Sunday at 0; shift so Monday starts the week.
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return Range{Start: start, End: start.AddDate(0, 0, 7)}
	case domain.PeriodMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: start.AddDate(0, 1, 0)}
	case domain.PeriodQuarter:
		quarterStartMonth := time.Month(((int(ref.Month())-1)/3)*3 + 1)
		start := time.Date(ref.Year(), quarterStartMonth, 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: start.AddDate(0, 3, 0)}
	case domain.PeriodYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: start.AddDate(1, 0, 0)}
	default:
		// Callers validate the period type; month is the conventional default.
		return CurrentRange(domain.PeriodMonth, ref)
	}
}

// PreviousRange returns the calendar block of the same type immediately
// preceding r.
func PreviousRange(periodType domain.PeriodType, r Range) Range {
	switch periodType {
	case domain.PeriodWeek:
		return Range{Start: r.Start.AddDate(0, 0, -7), End: r.Start}
	case domain.PeriodMonth:
		return Range{Start: r.Start.AddDate(0, -1, 0), End: r.Start}
	case domain.PeriodQuarter:
		return Range{Start: r.Start.AddDate(0, -3, 0), End: r.Start}
	case domain.PeriodYear:
		return Range{Start: r.Start.AddDate(-1, 0, 0), End: r.Start}
	default:
		return Range{Start: r.Start.AddDate(0, -1, 0), End: r.Start}
	}
}

// PercentageChange returns (curr - prev) / |prev| * 100. A zero previous
// value is defined as 100 when curr is positive and 0 otherwise, which keeps
// the direction meaningful without dividing by zero.
func PercentageChange(prev, curr float64) float64 {
	if prev == 0 {
		if curr > 0 {
			return 100
		}
		return 0
	}
	return (curr - prev) / math.Abs(prev) * 100
}
