package commands

import (
	"fmt"

	"sitegantt/internal/report"
	"sitegantt/internal/schedule"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newWeekCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "week <snapshot>",
		Short: "Preview the tasks overlapping the current week",
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

			view := report.BuildWeekView(p.AllTasks(), opts)
			out := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(out, view)
			}

			end := view.Window.End().AddDate(0, 0, -1)
			fmt.Fprintf(out, "Week %s to %s (%d tasks)\n", view.Window.Origin.Format("Mon 2006-01-02"), end.Format("Mon 2006-01-02"), len(view.Tasks))
			if len(view.Tasks) == 0 {
				return nil
			}

			bars := pairBars(view.Tasks, view.Bars, view.Window)
			tw := newTable(out, table.Row{"Task", "ID", "Start", "End", "Status", "Offset", "Width", "Clamp"})
			for i, t := range view.Tasks {
				tw.AppendRow(barRow(t.Title, t, bars[i]))
			}
			tw.Render()
			return nil
		},
	}
}
