package timeline

import (
	"fmt"
	"math"
	"time"
)

// Window is the visible span a timeline is drawn against. Origin is offset zero.
type Window struct {
	Origin     time.Time `json:"origin"`
	LengthDays int       `json:"length_days"`
}

// NewWindow returns a window starting at the beginning of origin's day.
func NewWindow(origin time.Time, lengthDays int) Window {
	if lengthDays < 0 {
		lengthDays = 0
	}
	return Window{Origin: SnapToStart(origin, "day"), LengthDays: lengthDays}
}

// End is the instant Origin + LengthDays.
func (w Window) End() time.Time {
	return w.Origin.AddDate(0, 0, w.LengthDays)
}

// Contains reports whether t lies within [Origin, End], both ends inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Origin) && !t.After(w.End())
}

// ToOffset returns the day offset of t from the window origin. The result is not clamped.
func (w Window) ToOffset(t time.Time) float64 {
	return DaysBetween(w.Origin, t)
}

// ToOffsetClamped is ToOffset limited to [0, LengthDays].
func (w Window) ToOffsetClamped(t time.Time) float64 {
	return clamp(w.ToOffset(t), 0, float64(w.LengthDays))
}

// ToPercent returns the clamped offset of t as a percentage of the window length.
func (w Window) ToPercent(t time.Time) float64 {
	if w.LengthDays <= 0 {
		return 0
	}
	return w.ToOffsetClamped(t) / float64(w.LengthDays) * 100
}

// ToCell returns the index of the grid cell holding t for cells of cellDays days.
// Dates before the origin yield negative indices.
func (w Window) ToCell(t time.Time, cellDays int) int {
	if cellDays <= 0 {
		cellDays = 1
	}
	return int(math.Floor(w.ToOffset(t) / float64(cellDays)))
}

// Tick is a labelled grid line inside a window.
type Tick struct {
	Date       time.Time `json:"date"`
	OffsetDays float64   `json:"offset_days"`
	Label      string    `json:"label"`
}

// Ticks returns the bucket boundaries ("day", "week", "month") that fall inside the window.
// Week boundaries are Mondays.
func (w Window) Ticks(bucket string) []Tick {
	if bucket == "" {
		bucket = "day"
	}

	end := w.End()
	current := SnapToStart(w.Origin, bucket)
	if current.Before(w.Origin) {
		current = nextBucket(current, bucket)
	}

	var ticks []Tick
	for !current.After(end) {
		ticks = append(ticks, Tick{
			Date:       current,
			OffsetDays: w.ToOffset(current),
			Label:      BucketLabel(current, bucket),
		})
		current = nextBucket(current, bucket)
	}
	return ticks
}

// SnapToStart normalizes a timestamp to the beginning of its bucket (0:00:00).
func SnapToStart(t time.Time, bucket string) time.Time {
	if t.IsZero() {
		return t
	}
	switch bucket {
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case "week":
		// Snap to Monday
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday -> 7
		}
		return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
	default: // day
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// BucketLabel returns a human-readable label for a bucket start (e.g. "Jan 2025" or "2025-W01").
func BucketLabel(t time.Time, bucket string) string {
	switch bucket {
	case "month":
		return t.Format("Jan 2006")
	case "week":
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	default: // day
		return t.Format("2006-01-02")
	}
}

func nextBucket(t time.Time, bucket string) time.Time {
	switch bucket {
	case "month":
		return t.AddDate(0, 1, 0)
	case "week":
		return t.AddDate(0, 0, 7)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// ProjectWindow derives the full-project window. The project's own range wins; otherwise the
// envelope of all milestone and task ranges is used. padDays widens both sides.
// Returns false when the project carries no dates at all.
func ProjectWindow(p Project, padDays int) (Window, bool) {
	start, end, ok := p.Range.Span()
	if !p.Range.IsComplete() {
		envStart, envEnd, envOK := envelope(p)
		switch {
		case envOK && p.Range.Start != nil:
			start, end, ok = *p.Range.Start, maxTime(*p.Range.Start, envEnd), true
		case envOK && p.Range.End != nil:
			start, end, ok = minTime(envStart, *p.Range.End), *p.Range.End, true
		case envOK:
			start, end, ok = envStart, envEnd, true
		}
	}
	if !ok {
		return Window{}, false
	}
	if padDays < 0 {
		padDays = 0
	}

	origin := SnapToStart(start, "day").AddDate(0, 0, -padDays)
	length := int(math.Ceil(DaysBetween(origin, end))) + padDays
	if length < 1 {
		length = 1
	}
	return Window{Origin: origin, LengthDays: length}, true
}

func envelope(p Project) (time.Time, time.Time, bool) {
	var start, end time.Time
	found := false
	visit := func(r DateRange) {
		s, e, ok := r.Span()
		if !ok {
			return
		}
		if !found || s.Before(start) {
			start = s
		}
		if !found || e.After(end) {
			end = e
		}
		found = true
	}
	for _, m := range p.Milestones {
		visit(m.Range)
		for _, t := range m.Tasks {
			visit(t.Range)
		}
	}
	return start, end, found
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
