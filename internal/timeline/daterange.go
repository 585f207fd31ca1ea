package timeline

import (
	"strings"
	"time"
)

// Day is the unit every offset and width is expressed in.
const Day = 24 * time.Hour

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// DateRange is a start/end pair where either bound may be unknown.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// ParseDate parses an ISO 8601 date or timestamp. Blank, "null" and malformed input report false.
// Results are in UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeRange builds a DateRange from raw strings. Unparseable bounds become absent.
func NormalizeRange(rawStart, rawEnd string) DateRange {
	var start, end *time.Time
	if t, ok := ParseDate(rawStart); ok {
		start = &t
	}
	if t, ok := ParseDate(rawEnd); ok {
		end = &t
	}
	return NewRange(start, end)
}

// NewRange copies the given bounds. An end before the start is not swapped: it is moved to
// start + 1 day so the entity keeps a minimum visible span.
func NewRange(start, end *time.Time) DateRange {
	var r DateRange
	if start != nil {
		s := *start
		r.Start = &s
	}
	if end != nil {
		e := *end
		r.End = &e
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		e := r.Start.Add(Day)
		r.End = &e
	}
	return r
}

// IsAbsent reports whether neither bound is known.
func (r DateRange) IsAbsent() bool {
	return r.Start == nil && r.End == nil
}

// IsComplete reports whether both bounds are known.
func (r DateRange) IsComplete() bool {
	return r.Start != nil && r.End != nil
}

// Span resolves the range into concrete bounds. A single known bound is widened to a
// one-day span anchored on it. Returns false when both bounds are absent.
func (r DateRange) Span() (start, end time.Time, ok bool) {
	switch {
	case r.Start != nil && r.End != nil:
		return *r.Start, *r.End, true
	case r.Start != nil:
		return *r.Start, r.Start.Add(Day), true
	case r.End != nil:
		return r.End.Add(-Day), *r.End, true
	}
	return time.Time{}, time.Time{}, false
}

// DurationDays is the length of the resolved span in days, 0 for an absent range.
func (r DateRange) DurationDays() float64 {
	start, end, ok := r.Span()
	if !ok {
		return 0
	}
	return DaysBetween(start, end)
}

// DaysBetween returns b - a in (fractional) days.
func DaysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24.0
}
