package commands

import (
	"context"
	"fmt"
	"time"

	"sitegantt/internal/config"
	"sitegantt/internal/logging"
	"sitegantt/internal/report"
	"sitegantt/internal/timeline"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries flag values and loaded configuration for one command invocation.
type app struct {
	verbose   bool
	today     string
	weekStart string
	format    string

	cfg *config.AppConfig
	now func() time.Time
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:   "sitegantt",
		Short: "sitegantt lays out construction schedules as timeline bars",
		Long: `sitegantt turns project, milestone and task date ranges into Gantt bar geometry,
weekly previews, delay reports and schedule health summaries. It can also serve the
same computations as MCP tools over stdio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(a.verbose)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.cfg = cfg

			switch a.format {
			case "table", "json":
			default:
				return fmt.Errorf("unknown format %q (expected table or json)", a.format)
			}

			log.Debug().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Str("command", cmd.Name()).
				Msg("sitegantt starting")
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.today, "today", "", "reference date (YYYY-MM-DD); defaults to the current date")
	root.PersistentFlags().StringVar(&a.weekStart, "week-start", "", "first day of the week: sunday or monday (default from WEEK_START_DAY)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "table", "output format: table or json")

	root.AddCommand(
		newLayoutCmd(a),
		newWeekCmd(a),
		newHealthCmd(a),
		newRenderCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// options resolves the clock and conventions. The wall clock is only read here.
func (a *app) options() (report.Options, error) {
	opts := report.Options{WeekStart: time.Monday}
	if a.cfg != nil {
		opts.WeekStart = a.cfg.WeekStart
		opts.PadDays = a.cfg.PadDays
	}
	if a.weekStart != "" {
		opts.WeekStart = timeline.ParseWeekStart(a.weekStart)
	}

	if a.today != "" {
		today, ok := timeline.ParseDate(a.today)
		if !ok {
			return report.Options{}, fmt.Errorf("invalid --today %q: expected YYYY-MM-DD", a.today)
		}
		opts.Today = today
		return opts, nil
	}
	cfg := a.cfg
	if cfg == nil {
		cfg = &config.AppConfig{Location: time.UTC}
	}
	opts.Today = cfg.Today(a.now())
	return opts, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sitegantt %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		},
	}
}
