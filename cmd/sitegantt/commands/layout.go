package commands

import (
	"fmt"

	"sitegantt/internal/report"
	"sitegantt/internal/schedule"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <snapshot>",
		Short: "Lay out a project snapshot against its full-project window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			p, err := schedule.Load(args[0])
			if err != nil {
				return err
			}

			view := report.BuildProjectView(p, opts)
			out := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(out, view)
			}
			if view.Window == nil {
				log.Warn().Str("project", p.ID).Msg("Project has no usable dates")
				fmt.Fprintln(out, "No dated milestones or tasks to lay out.")
				return nil
			}

			fmt.Fprintf(out, "%s: %s + %d days\n", p.Name, view.Window.Origin.Format("2006-01-02"), view.Window.LengthDays)
			if view.TodayOffset != nil {
				fmt.Fprintf(out, "Today (%s) at day %s\n", opts.Today.Format("2006-01-02"), fmtDays(*view.TodayOffset))
			}

			tw := newTable(out, table.Row{"Item", "ID", "Start", "End", "Status", "Offset", "Width", "Clamp"})
			for i, m := range p.Milestones {
				row := view.Rows[i]
				tw.AppendRow(barRow(m.Title, m.Entity, row.Bar))
				bars := pairBars(m.Tasks, row.Tasks, *view.Window)
				for j, t := range m.Tasks {
					tw.AppendRow(barRow("  "+t.Title, t, bars[j]))
				}
				if i < len(p.Milestones)-1 {
					tw.AppendSeparator()
				}
			}
			tw.Render()
			return nil
		},
	}
}
