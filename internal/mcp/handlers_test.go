package mcp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sitegantt/internal/config"
	"sitegantt/internal/report"
	"sitegantt/internal/schedule"
	"sitegantt/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = `id: p1
name: Riverside Duplex
start_date: "2025-01-01"
end_date: "2025-02-28"
milestones:
  - id: m1
    title: Foundation
    tasks:
      - {id: t1, title: Excavation, start_date: "2025-01-02", end_date: "2025-01-06", status: completed}
      - {id: t2, title: Footings, start_date: "2025-01-07", end_date: "2025-01-09", status: in_progress}
  - id: m2
    title: Framing
    tasks:
      - {id: t3, title: Walls, start_date: "2025-01-13", end_date: "2025-01-24"}
`

func newTestServer(t *testing.T, cfg *config.AppConfig) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duplex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0644))
	s := NewServer(cfg, "test")
	s.now = func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) }
	return s, path
}

func TestHandleScheduleHealth_UsesInjectedClock(t *testing.T) {
	s, path := newTestServer(t, &config.AppConfig{Location: time.UTC, WeekStart: time.Monday})

	res, err := s.handleScheduleHealth(ScheduleArgs{SnapshotPath: path})
	require.NoError(t, err)

	m := res.(map[string]interface{})
	assert.Equal(t, "2025-01-15", m["today"])
	assert.Equal(t, timeline.HealthSummary{Total: 3, Completed: 1, Delayed: 1, OnTrack: 1, TotalDelayDays: 6}, m["health"])
	delays := m["delays"].([]timeline.DelayInfo)
	require.Len(t, delays, 1)
	assert.Equal(t, "t2", delays[0].EntityID)
}

func TestHandleScheduleHealth_ExplicitToday(t *testing.T) {
	s, path := newTestServer(t, nil)

	res, err := s.handleScheduleHealth(ScheduleArgs{SnapshotPath: path, Today: "2025-01-08"})
	require.NoError(t, err)
	health := res.(map[string]interface{})["health"].(timeline.HealthSummary)
	assert.Equal(t, 0, health.Delayed)

	_, err = s.handleScheduleHealth(ScheduleArgs{SnapshotPath: path, Today: "next week"})
	assert.Error(t, err)
}

func TestHandleTimelineWeek_WeekStartOverride(t *testing.T) {
	s, path := newTestServer(t, &config.AppConfig{WeekStart: time.Monday})

	res, err := s.handleTimelineWeek(ScheduleArgs{SnapshotPath: path, Today: "2025-01-15", WeekStart: "sunday"})
	require.NoError(t, err)

	m := res.(map[string]interface{})
	assert.Equal(t, "sunday", m["week_start"])
	week := m["week"].(report.WeekView)
	assert.Equal(t, "2025-01-12", week.Window.Origin.Format("2006-01-02"))
	require.Len(t, week.Bars, 1)
	assert.Equal(t, "t3", week.Bars[0].EntityID)
}

func TestHandleTimelineLayout_InlineProjectAndMermaid(t *testing.T) {
	s, _ := newTestServer(t, &config.AppConfig{EnableMermaidCharts: true})
	dto, err := schedule.Decode([]byte(snapshot), "yaml")
	require.NoError(t, err)

	res, err := s.handleTimelineLayout(ScheduleArgs{Project: &dto, Today: "2025-01-15"})
	require.NoError(t, err)

	m := res.(map[string]interface{})
	view := m["timeline"].(report.ProjectView)
	require.NotNil(t, view.Window)
	assert.Len(t, view.Rows, 2)
	assert.Contains(t, m["mermaid"], "gantt")
	assert.NotContains(t, m, "warning")
}

func TestHandleTimelineLayout_UndatedProjectWarns(t *testing.T) {
	s, _ := newTestServer(t, nil)
	res, err := s.handleTimelineLayout(ScheduleArgs{Project: &schedule.ProjectDTO{ID: "blank"}})
	require.NoError(t, err)
	assert.Contains(t, res.(map[string]interface{}), "warning")
}

func TestHandleTimelineMermaid(t *testing.T) {
	s, path := newTestServer(t, nil)

	res, err := s.handleTimelineMermaid(ScheduleArgs{SnapshotPath: path, Today: "2025-01-15"})
	require.NoError(t, err)
	md := res.(map[string]interface{})["markdown"].(string)
	assert.True(t, strings.Contains(md, "gantt") && strings.Contains(md, "pie showData"))

	_, err = s.handleTimelineMermaid(ScheduleArgs{Project: &schedule.ProjectDTO{ID: "blank"}})
	assert.Error(t, err)
}

func TestResolve_RequiresSource(t *testing.T) {
	s, _ := newTestServer(t, nil)
	_, _, err := s.resolve(ScheduleArgs{})
	assert.EqualError(t, err, "either snapshot_path or project is required")

	_, _, err = s.resolve(ScheduleArgs{SnapshotPath: "/does/not/exist.yaml"})
	assert.Error(t, err)
}

func TestResolve_RelativeSnapshotUsesDataPath(t *testing.T) {
	s, path := newTestServer(t, nil)
	s.cfg = &config.AppConfig{DataPath: filepath.Dir(path), WeekStart: time.Monday}

	p, _, err := s.resolve(ScheduleArgs{SnapshotPath: filepath.Base(path), Today: "2025-01-15"})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestHandleTimelineLayout_IncludesPercentGeometry(t *testing.T) {
	s, path := newTestServer(t, nil)

	res, err := s.handleTimelineLayout(ScheduleArgs{SnapshotPath: path, Today: "2025-01-15"})
	require.NoError(t, err)

	view := res.(map[string]interface{})["timeline"].(report.ProjectView)
	require.NotNil(t, view.TodayPct)
	for _, row := range view.Rows {
		assert.Len(t, row.TaskPercents, len(row.Tasks))
		require.NotNil(t, row.BarPercent)
	}
}
