package engine

import (
	"testing"
	"time"

	"sitegantt/internal/schedule"
	"sitegantt/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := GeneratorConfig{Scenario: "slipping", Seed: 42, Today: today}
	assert.Equal(t, Generate(cfg), Generate(cfg))
}

func TestGenerate_SteadyHasNoInvalidData(t *testing.T) {
	dto := Generate(GeneratorConfig{Scenario: "steady", Seed: 7, Today: today})
	require.Len(t, dto.Milestones, len(phases))

	p := schedule.MapProject(dto)
	for _, task := range p.AllTasks() {
		require.True(t, task.Range.IsComplete(), task.ID)
		assert.False(t, task.Range.End.Before(*task.Range.Start))
		if task.Status == timeline.StatusCompleted {
			assert.False(t, task.Range.End.After(today))
		}
	}

	w, ok := timeline.ProjectWindow(p, 0)
	require.True(t, ok)
	_, visible := timeline.LocateToday(today, w)
	assert.True(t, visible)
}

func TestGenerate_ChaosIsStillTotal(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		p := schedule.MapProject(Generate(GeneratorConfig{Scenario: "chaos", Seed: seed, Today: today}))
		h := timeline.Aggregate(p.AllTasks(), today)
		assert.Equal(t, h.Total, h.Completed+h.Delayed+h.OnTrack)
		for _, task := range p.AllTasks() {
			assert.NotEmpty(t, task.ID)
		}
	}
}

func TestSave(t *testing.T) {
	dto := Generate(GeneratorConfig{Seed: 3, Today: today})
	path, err := Save(t.TempDir(), dto)
	require.NoError(t, err)

	loaded, err := schedule.LoadDTO(path)
	require.NoError(t, err)
	assert.Equal(t, dto, loaded)
}
