package commands

import (
	"fmt"

	"sitegantt/internal/schedule"
	"sitegantt/internal/timeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type projectHealth struct {
	ProjectID  string                     `json:"project_id"`
	Name       string                     `json:"name"`
	Health     timeline.HealthSummary     `json:"health"`
	Milestones []timeline.MilestoneHealth `json:"milestones,omitempty"`
}

func newHealthCmd(a *app) *cobra.Command {
	var perMilestone bool

	cmd := &cobra.Command{
		Use:   "health <snapshot>...",
		Short: "Summarize completed, on-track and delayed tasks for one or more projects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			projects, err := schedule.LoadAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			results := make([]projectHealth, 0, len(projects))
			for _, p := range projects {
				ph := projectHealth{
					ProjectID: p.ID,
					Name:      p.Name,
					Health:    timeline.Aggregate(p.AllTasks(), opts.Today),
				}
				if perMilestone {
					ph.Milestones = timeline.AggregateMilestones(p.Milestones, opts.Today)
				}
				results = append(results, ph)
			}

			out := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(out, results)
			}

			fmt.Fprintf(out, "Schedule health as of %s\n", opts.Today.Format("2006-01-02"))
			tw := newTable(out, table.Row{"Project", "Total", "Completed", "On Track", "Delayed", "Delay Days", "On Track %"})
			for _, r := range results {
				tw.AppendRow(healthRow(r.Name, r.Health))
				for _, m := range r.Milestones {
					tw.AppendRow(healthRow("  "+m.Title, m.Summary))
				}
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&perMilestone, "milestones", false, "include a row per milestone")
	return cmd
}

func healthRow(label string, h timeline.HealthSummary) table.Row {
	return table.Row{label, h.Total, h.Completed, h.OnTrack, h.Delayed, h.TotalDelayDays, fmt.Sprintf("%.0f%%", h.OnTrackRatio()*100)}
}
