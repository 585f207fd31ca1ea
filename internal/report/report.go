package report

import (
	"time"

	"sitegantt/internal/timeline"
)

// Options carries the caller-supplied clock and layout conventions.
type Options struct {
	Today     time.Time
	WeekStart time.Weekday
	PadDays   int
}

// ProjectView is the full-project timeline.
type ProjectView struct {
	Window      *timeline.Window        `json:"window,omitempty"`
	TodayOffset *float64                `json:"today_offset,omitempty"`
	TodayPct    *float64                `json:"today_pct,omitempty"`
	Ticks       []timeline.Tick         `json:"ticks,omitempty"`
	Rows        []timeline.MilestoneRow `json:"rows"`
}

// WeekView is the weekly preview of tasks overlapping the current week. Tasks, Bars and
// Percents are parallel. TodayColumn is the zero-based day column holding today.
type WeekView struct {
	Window      timeline.Window        `json:"window"`
	TodayOffset *float64               `json:"today_offset,omitempty"`
	TodayPct    *float64               `json:"today_pct,omitempty"`
	TodayColumn *int                   `json:"today_column,omitempty"`
	Tasks       []timeline.Entity      `json:"tasks"`
	Bars        []timeline.BarGeometry `json:"bars"`
	Percents    []timeline.PercentBar  `json:"percents"`
}

// Report bundles every engine output for one project snapshot.
type Report struct {
	ProjectID       string                     `json:"project_id"`
	ProjectName     string                     `json:"project_name"`
	Today           time.Time                  `json:"today"`
	Project         ProjectView                `json:"project"`
	Week            WeekView                   `json:"week"`
	Delays          []timeline.DelayInfo       `json:"delays"`
	Health          timeline.HealthSummary     `json:"health"`
	MilestoneHealth []timeline.MilestoneHealth `json:"milestone_health"`
}

// Build runs the engine over a snapshot. It is a pure function of its inputs.
func Build(p timeline.Project, opts Options) Report {
	tasks := p.AllTasks()
	rep := Report{
		ProjectID:       p.ID,
		ProjectName:     p.Name,
		Today:           opts.Today,
		Project:         BuildProjectView(p, opts),
		Week:            BuildWeekView(tasks, opts),
		Delays:          timeline.EvaluateAll(tasks, opts.Today),
		Health:          timeline.Aggregate(tasks, opts.Today),
		MilestoneHealth: timeline.AggregateMilestones(p.Milestones, opts.Today),
	}
	return rep
}

// BuildProjectView lays out every milestone against the full-project window.
// A project without any dates yields an empty view.
func BuildProjectView(p timeline.Project, opts Options) ProjectView {
	view := ProjectView{Rows: []timeline.MilestoneRow{}}
	w, ok := timeline.ProjectWindow(p, opts.PadDays)
	if !ok {
		return view
	}

	view.Window = &w
	view.Ticks = w.Ticks(tickBucket(w))
	if off, ok := timeline.LocateToday(opts.Today, w); ok {
		pct := w.ToPercent(opts.Today)
		view.TodayOffset = &off
		view.TodayPct = &pct
	}
	for _, m := range p.Milestones {
		view.Rows = append(view.Rows, timeline.LayoutMilestone(m, w))
	}
	return view
}

// BuildWeekView selects and lays out the tasks visible in the week containing opts.Today.
func BuildWeekView(tasks []timeline.Entity, opts Options) WeekView {
	w := timeline.CurrentWeekWindow(opts.Today, opts.WeekStart)
	view := WeekView{
		Window: w,
		Tasks:  timeline.SelectOverlapping(tasks, w),
	}
	view.Bars = timeline.LayoutAll(view.Tasks, w)
	view.Percents = timeline.PercentAll(view.Bars, w)
	if off, ok := timeline.LocateToday(opts.Today, w); ok {
		pct := w.ToPercent(opts.Today)
		col := min(w.ToCell(opts.Today, 1), w.LengthDays-1)
		view.TodayOffset = &off
		view.TodayPct = &pct
		view.TodayColumn = &col
	}
	return view
}

// tickBucket keeps grid density readable: daily up to a month, weekly up to half a year.
func tickBucket(w timeline.Window) string {
	switch {
	case w.LengthDays <= 31:
		return "day"
	case w.LengthDays <= 183:
		return "week"
	default:
		return "month"
	}
}
