package mcp

import (
	"fmt"
	"strings"
	"time"

	"sitegantt/internal/report"
	"sitegantt/internal/schedule"
	"sitegantt/internal/timeline"
	"sitegantt/internal/visuals"
)

func (s *Server) handleTimelineLayout(args ScheduleArgs) (interface{}, error) {
	p, opts, err := s.resolve(args)
	if err != nil {
		return nil, err
	}
	view := report.BuildProjectView(p, opts)

	res := map[string]interface{}{
		"project_id":   p.ID,
		"project_name": p.Name,
		"today":        opts.Today.Format("2006-01-02"),
		"timeline":     view,
	}
	if view.Window == nil {
		res["warning"] = "project has no usable dates; nothing to lay out"
	}
	if s.cfg != nil && s.cfg.EnableMermaidCharts {
		if chart := visuals.GenerateGantt(p, report.Build(p, opts)); chart != "" {
			res["mermaid"] = chart
		}
	}
	return res, nil
}

func (s *Server) handleTimelineWeek(args ScheduleArgs) (interface{}, error) {
	p, opts, err := s.resolve(args)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"project_id": p.ID,
		"today":      opts.Today.Format("2006-01-02"),
		"week_start": strings.ToLower(opts.WeekStart.String()),
		"week":       report.BuildWeekView(p.AllTasks(), opts),
	}, nil
}

func (s *Server) handleScheduleHealth(args ScheduleArgs) (interface{}, error) {
	p, opts, err := s.resolve(args)
	if err != nil {
		return nil, err
	}
	tasks := p.AllTasks()
	health := timeline.Aggregate(tasks, opts.Today)
	return map[string]interface{}{
		"project_id":       p.ID,
		"today":            opts.Today.Format("2006-01-02"),
		"health":           health,
		"on_track_ratio":   health.OnTrackRatio(),
		"milestone_health": timeline.AggregateMilestones(p.Milestones, opts.Today),
		"delays":           onlyDelayed(timeline.EvaluateAll(tasks, opts.Today)),
	}, nil
}

func (s *Server) handleTimelineMermaid(args ScheduleArgs) (interface{}, error) {
	p, opts, err := s.resolve(args)
	if err != nil {
		return nil, err
	}
	rep := report.Build(p, opts)
	blocks := []string{}
	if chart := visuals.GenerateGantt(p, rep); chart != "" {
		blocks = append(blocks, chart)
	}
	if pie := visuals.GenerateHealthPie(rep.Health); pie != "" {
		blocks = append(blocks, pie)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("project %q has no dated tasks to chart", p.ID)
	}
	return map[string]interface{}{
		"project_id": p.ID,
		"markdown":   strings.Join(blocks, "\n\n"),
	}, nil
}

// resolve loads the snapshot and fixes the clock for one tool call.
func (s *Server) resolve(args ScheduleArgs) (timeline.Project, report.Options, error) {
	var p timeline.Project
	switch {
	case args.Project != nil:
		p = schedule.MapProject(*args.Project)
	case args.SnapshotPath != "":
		path := args.SnapshotPath
		if s.cfg != nil {
			path = s.cfg.ResolvePath(path)
		}
		loaded, err := schedule.Load(path)
		if err != nil {
			return timeline.Project{}, report.Options{}, err
		}
		p = loaded
	default:
		return timeline.Project{}, report.Options{}, fmt.Errorf("either snapshot_path or project is required")
	}

	opts, err := s.options(args)
	if err != nil {
		return timeline.Project{}, report.Options{}, err
	}
	return p, opts, nil
}

func (s *Server) options(args ScheduleArgs) (report.Options, error) {
	opts := report.Options{WeekStart: time.Monday}
	if s.cfg != nil {
		opts.WeekStart = s.cfg.WeekStart
		opts.PadDays = s.cfg.PadDays
	}
	if args.WeekStart != "" {
		opts.WeekStart = timeline.ParseWeekStart(args.WeekStart)
	}

	if args.Today != "" {
		today, ok := timeline.ParseDate(args.Today)
		if !ok {
			return report.Options{}, fmt.Errorf("invalid today %q: expected YYYY-MM-DD", args.Today)
		}
		opts.Today = today
		return opts, nil
	}
	if s.cfg != nil {
		opts.Today = s.cfg.Today(s.now())
	} else {
		now := s.now().UTC()
		opts.Today = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return opts, nil
}
