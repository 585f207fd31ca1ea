package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sitegantt/internal/report"
	"sitegantt/internal/schedule"
	"sitegantt/internal/visuals"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var outPath string
	var open bool

	cmd := &cobra.Command{
		Use:   "render <snapshot>",
		Short: "Render a Mermaid gantt chart and health pie for a project",
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

			rep := report.Build(p, opts)
			blocks := []string{}
			if chart := visuals.GenerateGantt(p, rep); chart != "" {
				blocks = append(blocks, chart)
			}
			if pie := visuals.GenerateHealthPie(rep.Health); pie != "" {
				blocks = append(blocks, pie)
			}
			if len(blocks) == 0 {
				return fmt.Errorf("project %q has no dated tasks to render", p.ID)
			}

			if open && outPath == "" {
				outPath = filepath.Join(os.TempDir(), fmt.Sprintf("sitegantt-%s.html", sanitizeFileName(p.ID)))
			}
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(blocks, "\n\n"))
				return nil
			}

			content := strings.Join(blocks, "\n\n") + "\n"
			if strings.EqualFold(filepath.Ext(outPath), ".html") {
				content = visuals.GenerateHTML(p.Name, blocks...)
			}
			if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
				return fmt.Errorf("error writing chart: %w", err)
			}
			log.Info().Str("path", outPath).Msg("Chart written")

			if open {
				browser.Stdout = cmd.ErrOrStderr()
				if err := browser.OpenFile(outPath); err != nil {
					return fmt.Errorf("failed to open browser: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file (.html renders a standalone page, anything else markdown)")
	cmd.Flags().BoolVar(&open, "open", false, "open the rendered HTML page in the default browser")
	return cmd
}

func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || r == ' ' {
			return '_'
		}
		return r
	}, s)
}
