package models

import "time"

// DateLayout is the ISO calendar date format used for log dates.
const DateLayout = "2006-01-02"

type DateFilterMode int

const (
	DateFilterAll DateFilterMode = iota
	DateFilterExact
	DateFilterRange
)

// DateFilter selects log entries by calendar day. A complete range wins over
// an exact date; a lone range bound is ignored.
type DateFilter struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

func (f DateFilter) Mode() DateFilterMode {
	switch {
	case f.StartDate != nil && f.EndDate != nil:
		return DateFilterRange
	case f.Date != nil:
		return DateFilterExact
	default:
		return DateFilterAll
	}
}

// Matches reports whether day passes the filter. Both bounds are inclusive.
func (f DateFilter) Matches(day time.Time) bool {
	d := TruncateDay(day)
	switch f.Mode() {
	case DateFilterRange:
		return !d.Before(TruncateDay(*f.StartDate)) && !d.After(TruncateDay(*f.EndDate))
	case DateFilterExact:
		return d.Equal(TruncateDay(*f.Date))
	default:
		return true
	}
}

// TruncateDay drops the clock part of t and pins it to UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
