package timeline

import (
	"strings"
	"time"
)

// CurrentWeekWindow returns the 7-day window containing today. The week begins on weekStart,
// which must be time.Sunday or time.Monday; anything else is treated as Monday.
func CurrentWeekWindow(today time.Time, weekStart time.Weekday) Window {
	if weekStart != time.Sunday {
		weekStart = time.Monday
	}
	back := (int(today.Weekday()) - int(weekStart) + 7) % 7
	origin := time.Date(today.Year(), today.Month(), today.Day()-back, 0, 0, 0, 0, today.Location())
	return Window{Origin: origin, LengthDays: 7}
}

// ParseWeekStart reads a week-start convention. Only "sunday" selects Sunday.
func ParseWeekStart(s string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun", "0":
		return time.Sunday
	default:
		return time.Monday
	}
}

// Overlaps reports whether the range intersects the window (start <= window end and end >= origin).
func Overlaps(r DateRange, w Window) bool {
	start, end, ok := r.Span()
	if !ok {
		return false
	}
	return !start.After(w.End()) && !end.Before(w.Origin)
}

// SelectOverlapping keeps the tasks whose ranges intersect the window, in input order.
func SelectOverlapping(tasks []Entity, w Window) []Entity {
	selected := make([]Entity, 0, len(tasks))
	for _, t := range tasks {
		if Overlaps(t.Range, w) {
			selected = append(selected, t)
		}
	}
	return selected
}

// LayoutAll lays out every task against the window, skipping the ones that are not visible.
func LayoutAll(tasks []Entity, w Window) []BarGeometry {
	bars := make([]BarGeometry, 0, len(tasks))
	for _, t := range tasks {
		if bar, ok := LayoutEntity(t, w); ok {
			bars = append(bars, bar)
		}
	}
	return bars
}
