package visuals

import (
	"fmt"
	"html"
	"strings"
	"time"

	"sitegantt/internal/report"
	"sitegantt/internal/timeline"
)

const mermaidDateFormat = "2006-01-02"

// GenerateGantt creates a Mermaid gantt chart: one section per milestone, one line per dated task.
// Completed tasks are tagged done, delayed ones crit, in-progress ones active.
func GenerateGantt(p timeline.Project, rep report.Report) string {
	delayed := make(map[string]bool, len(rep.Delays))
	for _, d := range rep.Delays {
		if d.IsDelayed {
			delayed[d.EntityID] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("gantt\n")
	sb.WriteString(fmt.Sprintf("    title %s\n", sanitizeLabel(p.Name)))
	sb.WriteString("    dateFormat YYYY-MM-DD\n")
	sb.WriteString("    axisFormat %b %d\n")
	// The renderer's own marker follows the viewer's clock, not the report's.
	sb.WriteString("    todayMarker off\n")

	sections := 0
	for _, m := range p.Milestones {
		var body strings.Builder
		for _, t := range m.Tasks {
			start, end, ok := t.Range.Span()
			if !ok {
				continue
			}
			body.WriteString(fmt.Sprintf("    %s :%s%s, %s, %s\n",
				sanitizeLabel(t.Title),
				taskTags(t, delayed[t.ID]),
				sanitizeID(t.ID),
				start.Format(mermaidDateFormat),
				ganttEnd(start, end),
			))
		}
		if body.Len() == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("    section %s\n", sanitizeLabel(m.Title)))
		sb.WriteString(body.String())
		sections++
	}

	if sections == 0 {
		return ""
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateHealthPie creates a Mermaid pie chart of the health buckets.
func GenerateHealthPie(h timeline.HealthSummary) string {
	if h.Total == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie showData\n")
	sb.WriteString(fmt.Sprintf("    title Schedule Health (%d tasks, %d delay days)\n", h.Total, h.TotalDelayDays))
	sb.WriteString(fmt.Sprintf("    \"Completed\" : %d\n", h.Completed))
	sb.WriteString(fmt.Sprintf("    \"On Track\" : %d\n", h.OnTrack))
	sb.WriteString(fmt.Sprintf("    \"Delayed\" : %d\n", h.Delayed))
	sb.WriteString("```")
	return sb.String()
}

// GenerateHTML wraps fenced Mermaid blocks into a standalone page that renders them client-side.
func GenerateHTML(title string, blocks ...string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	sb.WriteString("<script type=\"module\">import mermaid from 'https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs'; mermaid.initialize({ startOnLoad: true });</script>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(title)))
	for _, b := range blocks {
		body := stripFence(b)
		if body == "" {
			continue
		}
		sb.WriteString("<pre class=\"mermaid\">\n")
		sb.WriteString(html.EscapeString(body))
		sb.WriteString("\n</pre>\n")
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func taskTags(t timeline.Entity, isDelayed bool) string {
	var tags []string
	switch {
	case t.Status == timeline.StatusCompleted:
		tags = append(tags, "done")
	case isDelayed:
		tags = append(tags, "crit")
		if t.Status == timeline.StatusInProgress {
			tags = append(tags, "active")
		}
	case t.Status == timeline.StatusInProgress:
		tags = append(tags, "active")
	}
	if len(tags) == 0 {
		return ""
	}
	return strings.Join(tags, ", ") + ", "
}

// ganttEnd renders the end as a date, or as "1d" when the span is shorter than a calendar day.
func ganttEnd(start, end time.Time) string {
	if end.Format(mermaidDateFormat) <= start.Format(mermaidDateFormat) {
		return "1d"
	}
	return end.Format(mermaidDateFormat)
}

func stripFence(block string) string {
	block = strings.TrimSpace(block)
	block = strings.TrimPrefix(block, "```mermaid")
	block = strings.TrimSuffix(block, "```")
	return strings.TrimSpace(block)
}

// Mermaid treats ':' and '#' as syntax inside task lines.
func sanitizeLabel(s string) string {
	s = strings.NewReplacer(":", " -", "#", "", ";", ",", "\n", " ").Replace(s)
	s = strings.TrimSpace(s)
	if s == "" {
		return "Untitled"
	}
	return s
}

func sanitizeID(id string) string {
	var b strings.Builder
	b.WriteString("id_")
	for _, r := range id {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
