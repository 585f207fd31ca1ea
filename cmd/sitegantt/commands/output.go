package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"sitegantt/internal/timeline"

	"github.com/jedib0t/go-pretty/v6/table"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	return tw
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func fmtDays(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

func clampMarks(b timeline.BarGeometry) string {
	switch {
	case b.ClampedLeft && b.ClampedRight:
		return "<>"
	case b.ClampedLeft:
		return "<"
	case b.ClampedRight:
		return ">"
	}
	return ""
}

func barRow(label string, e timeline.Entity, bar *timeline.BarGeometry) table.Row {
	if bar == nil {
		return table.Row{label, e.ID, fmtDate(e.Range.Start), fmtDate(e.Range.End), e.Status, "-", "-", ""}
	}
	return table.Row{label, e.ID, fmtDate(e.Range.Start), fmtDate(e.Range.End), e.Status, fmtDays(bar.OffsetDays), fmtDays(bar.WidthDays), clampMarks(*bar)}
}

// pairBars matches the output of timeline.LayoutAll back to its input tasks by position. LayoutAll
// keeps input order and drops exactly the tasks that do not overlap w, so IDs are never consulted.
func pairBars(tasks []timeline.Entity, bars []timeline.BarGeometry, w timeline.Window) []*timeline.BarGeometry {
	slots := make([]*timeline.BarGeometry, len(tasks))
	next := 0
	for i, t := range tasks {
		if next < len(bars) && timeline.Overlaps(t.Range, w) {
			slots[i] = &bars[next]
			next++
		}
	}
	return slots
}
