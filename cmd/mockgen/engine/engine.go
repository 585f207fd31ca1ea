package engine

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"sitegantt/internal/schedule"
)

// GeneratorConfig controls the synthetic construction project.
type GeneratorConfig struct {
	Scenario string // "steady", "slipping" or "chaos"
	Seed     int64
	Today    time.Time
	Name     string
}

type phase struct {
	title string
	tasks []string
}

var phases = []phase{
	{"Site Preparation", []string{"Survey and staking", "Clearing and grubbing", "Temporary utilities"}},
	{"Foundation", []string{"Excavation", "Footings", "Foundation walls", "Waterproofing"}},
	{"Framing", []string{"Floor framing", "Wall framing", "Roof trusses", "Sheathing"}},
	{"MEP Rough-in", []string{"Plumbing rough-in", "Electrical rough-in", "HVAC ductwork", "Rough-in inspection"}},
	{"Finishing", []string{"Drywall", "Interior paint", "Flooring", "Fixtures", "Final inspection"}},
}

const dateLayout = "2006-01-02"

// Generate builds a project that starts a few weeks before Today. Tasks that should have ended
// are completed unless the scenario makes them slip.
func Generate(cfg GeneratorConfig) schedule.ProjectDTO {
	if cfg.Today.IsZero() {
		cfg.Today = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if cfg.Name == "" {
		cfg.Name = "Mock Residence"
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	start := cfg.Today.AddDate(0, 0, -35)
	dto := schedule.ProjectDTO{
		ID:        fmt.Sprintf("MOCK-%d", cfg.Seed),
		Name:      cfg.Name,
		StartDate: start.Format(dateLayout),
	}

	cursor := start
	for pi, ph := range phases {
		m := schedule.MilestoneDTO{
			ID:    fmt.Sprintf("M%d", pi+1),
			Title: ph.title,
		}
		for ti, title := range ph.tasks {
			duration := 2 + rng.Intn(6)
			taskStart := cursor
			taskEnd := taskStart.AddDate(0, 0, duration)

			t := schedule.TaskDTO{
				ID:        fmt.Sprintf("M%d-T%d", pi+1, ti+1),
				Title:     title,
				StartDate: taskStart.Format(dateLayout),
				EndDate:   taskEnd.Format(dateLayout),
			}
			t.Status, t.Progress = statusFor(cfg, rng, taskStart, taskEnd)
			if cfg.Scenario == "chaos" {
				corrupt(rng, &t)
			}
			m.Tasks = append(m.Tasks, t)

			// Overlap roughly a third of consecutive tasks.
			if rng.Float64() < 0.33 {
				cursor = taskStart.AddDate(0, 0, duration/2)
			} else {
				cursor = taskEnd
			}
		}
		dto.Milestones = append(dto.Milestones, m)
	}
	dto.EndDate = cursor.AddDate(0, 0, 7).Format(dateLayout)
	return dto
}

func statusFor(cfg GeneratorConfig, rng *rand.Rand, start, end time.Time) (string, *float64) {
	progress := func(p float64) *float64 { return &p }
	switch {
	case !end.After(cfg.Today):
		slipChance := 0.05
		if cfg.Scenario == "slipping" || cfg.Scenario == "chaos" {
			slipChance = 0.4
		}
		if rng.Float64() < slipChance {
			return "in_progress", progress(float64(50 + rng.Intn(45)))
		}
		return "completed", progress(100)
	case !start.After(cfg.Today):
		elapsed := cfg.Today.Sub(start).Hours() / end.Sub(start).Hours()
		return "in_progress", progress(float64(int(elapsed * 100)))
	default:
		if cfg.Scenario == "chaos" && rng.Float64() < 0.1 {
			return "on_hold", nil
		}
		return "not_started", nil
	}
}

// corrupt injects the malformed inputs the ingestion layer must tolerate.
func corrupt(rng *rand.Rand, t *schedule.TaskDTO) {
	switch rng.Intn(8) {
	case 0:
		t.StartDate = "TBD"
	case 1:
		t.EndDate = ""
	case 2:
		t.StartDate, t.EndDate = t.EndDate, t.StartDate
	case 3:
		t.ID = ""
	case 4:
		t.Status = "In Progress"
	}
}

// Save writes the snapshot as YAML and returns the file path.
func Save(outDir string, dto schedule.ProjectDTO) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	data, err := schedule.Encode(dto)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, fmt.Sprintf("%s.yaml", dto.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
