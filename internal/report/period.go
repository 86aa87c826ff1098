package report

import (
	"strings"
	"time"
)

// Period is the granularity of a report. It decides both the default date
// range and how transactions are bucketed into trend points.
type Period int8

const (
	PeriodDaily Period = iota
	PeriodWeekly
	PeriodMonthly
	PeriodAnnual
	PeriodCustom
)

// DefaultPeriod is used when no period or an unknown one is requested.
const DefaultPeriod = PeriodMonthly

var periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAnnual, PeriodCustom}

func (p Period) String() string {
	switch p {
	case PeriodDaily:
		return "daily"
	case PeriodWeekly:
		return "weekly"
	case PeriodMonthly:
		return "monthly"
	case PeriodAnnual:
		return "annual"
	case PeriodCustom:
		return "custom"
	}
	return DefaultPeriod.String()
}

// Label returns the display label of the period.
func (p Period) Label() string {
	switch p {
	case PeriodDaily:
		return "Daily"
	case PeriodWeekly:
		return "Weekly"
	case PeriodMonthly:
		return "Monthly"
	case PeriodAnnual:
		return "Annual"
	case PeriodCustom:
		return "Custom Range"
	}
	return DefaultPeriod.Label()
}

// ParsePeriod maps a period keyword to a Period. Unknown keywords fall back
// to DefaultPeriod instead of failing.
func ParsePeriod(s string) Period {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range periods {
		if p.String() == s {
			return p
		}
	}
	return DefaultPeriod
}

// PeriodOptions lists every period in display order.
func PeriodOptions() []Option {
	options := make([]Option, len(periods))
	for i, p := range periods {
		options[i] = Option{Value: p.String(), Label: p.Label()}
	}
	return options
}

// DateLayout is the wire format of dates in requests and responses.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, -1)
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// Resolver turns a requested period and optional custom bounds into a
// concrete DateRange. Weeks run Monday through Sunday.
type Resolver struct {
	Now func() time.Time
}

// NewResolver creates a Resolver using the wall clock.
func NewResolver() *Resolver {
	return &Resolver{Now: time.Now}
}

// Resolve never fails: missing or malformed custom bounds fall back to the
// current month's bounds, and reversed custom bounds are swapped.
func (r *Resolver) Resolve(period Period, startDate, endDate string) DateRange {
	now := r.now()
	today := startOfDay(now)

	switch period {
	case PeriodDaily:
		return DateRange{Start: today, End: today}
	case PeriodWeekly:
		start := startOfWeek(now)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	case PeriodAnnual:
		start := startOfYear(now)
		return DateRange{Start: start, End: start.AddDate(1, 0, -1)}
	case PeriodCustom:
		start := parseDateOr(startDate, startOfMonth(now))
		end := parseDateOr(endDate, endOfMonth(now))
		if start.After(end) {
			start, end = end, start
		}
		return DateRange{Start: start, End: end}
	default:
		return DateRange{Start: startOfMonth(now), End: endOfMonth(now)}
	}
}

func (r *Resolver) now() time.Time {
	if r == nil || r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func parseDateOr(value string, fallback time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseInLocation(DateLayout, value, fallback.Location())
	if err != nil {
		return fallback
	}
	return parsed
}
