package timeline

import "math"

// MinWidthDays is the narrowest bar produced for an entity that overlaps the window.
const MinWidthDays = 1.0

// Layout positions a range inside a window. It reports false when the range is absent or does
// not intersect the window. A range with a single known bound is laid out as a one-day span.
func Layout(r DateRange, w Window) (BarGeometry, bool) {
	start, end, ok := r.Span()
	if !ok {
		return BarGeometry{}, false
	}

	windowEnd := w.End()
	if end.Before(w.Origin) || start.After(windowEnd) {
		return BarGeometry{}, false
	}

	offset := math.Max(0, w.ToOffset(start))
	rawEnd := w.ToOffset(end)
	width := math.Max(math.Min(rawEnd, float64(w.LengthDays))-offset, MinWidthDays)

	return BarGeometry{
		OffsetDays:   offset,
		WidthDays:    width,
		ClampedLeft:  start.Before(w.Origin),
		ClampedRight: end.After(windowEnd),
	}, true
}

// LayoutEntity is Layout stamped with the entity's ID.
func LayoutEntity(e Entity, w Window) (BarGeometry, bool) {
	bar, ok := Layout(e.Range, w)
	if !ok {
		return BarGeometry{}, false
	}
	bar.EntityID = e.ID
	return bar, true
}

// MilestoneRow is the layout of a milestone header and its visible tasks, in days and in
// window percentages. TaskPercents is parallel to Tasks.
type MilestoneRow struct {
	MilestoneID  string        `json:"milestone_id"`
	Title        string        `json:"title"`
	Bar          *BarGeometry  `json:"bar,omitempty"`
	BarPercent   *PercentBar   `json:"bar_percent,omitempty"`
	Tasks        []BarGeometry `json:"tasks"`
	TaskPercents []PercentBar  `json:"task_percents"`
}

// LayoutMilestone lays out a milestone (with dates rolled up from its tasks) and its tasks.
func LayoutMilestone(m Milestone, w Window) MilestoneRow {
	rolled := RollupMilestone(m)
	row := MilestoneRow{
		MilestoneID: m.ID,
		Title:       m.Title,
		Tasks:       LayoutAll(m.Tasks, w),
	}
	row.TaskPercents = PercentAll(row.Tasks, w)
	if bar, ok := LayoutEntity(rolled.Entity, w); ok {
		pct := bar.Percent(w)
		row.Bar = &bar
		row.BarPercent = &pct
	}
	return row
}

// PercentAll converts every bar into window percentages, keeping order.
func PercentAll(bars []BarGeometry, w Window) []PercentBar {
	out := make([]PercentBar, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Percent(w))
	}
	return out
}

// Percent converts the bar into window-relative percentages. The bar stays inside [0, 100] and
// keeps at least MinWidthDays of width, so a bar touching the right edge is pulled back inside.
func (b BarGeometry) Percent(w Window) PercentBar {
	if w.LengthDays <= 0 {
		return PercentBar{}
	}
	length := float64(w.LengthDays)
	minPct := math.Min(MinWidthDays/length*100, 100)
	left := clamp(b.OffsetDays/length*100, 0, 100-minPct)
	width := clamp(b.WidthDays/length*100, minPct, 100-left)
	return PercentBar{LeftPct: left, WidthPct: width}
}
