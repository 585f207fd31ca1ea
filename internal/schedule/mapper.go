package schedule

import (
	"math"
	"strconv"
	"strings"

	"sitegantt/internal/timeline"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MapProject transforms a snapshot DTO into engine types. Dates are parsed exactly once here.
// Records without an ID get one derived from their position, so re-mapping the same snapshot
// yields the same IDs.
func MapProject(dto ProjectDTO) timeline.Project {
	id := ensureID(dto.ID, "", 0, dto.Name)
	p := timeline.Project{
		ID:    id,
		Name:  dto.Name,
		Range: mapRange(id, dto.StartDate, dto.EndDate),
	}
	p.Milestones = make([]timeline.Milestone, 0, len(dto.Milestones))
	for i, m := range dto.Milestones {
		p.Milestones = append(p.Milestones, mapMilestone(id, i, m))
	}
	return p
}

// MapMilestone maps a milestone and its tasks. A milestone without its own progress inherits the
// mean progress of its tasks.
func MapMilestone(dto MilestoneDTO) timeline.Milestone {
	return mapMilestone("", 0, dto)
}

// MapTask maps a single task record.
func MapTask(dto TaskDTO) timeline.Entity {
	return mapTask("", 0, dto)
}

func mapMilestone(parentID string, index int, dto MilestoneDTO) timeline.Milestone {
	id := ensureID(dto.ID, parentID, index, dto.Title)
	m := timeline.Milestone{
		Entity: timeline.Entity{
			ID:       id,
			Title:    dto.Title,
			Range:    mapRange(id, dto.StartDate, dto.EndDate),
			Status:   timeline.ParseStatus(dto.Status),
			Progress: normalizeProgress(dto.Progress),
		},
	}
	m.Tasks = make([]timeline.Entity, 0, len(dto.Tasks))
	for j, t := range dto.Tasks {
		m.Tasks = append(m.Tasks, mapTask(id, j, t))
	}
	if dto.Progress == nil && len(m.Tasks) > 0 {
		m.Progress = timeline.MeanProgress(m.Tasks)
	}
	return m
}

func mapTask(parentID string, index int, dto TaskDTO) timeline.Entity {
	id := ensureID(dto.ID, parentID, index, dto.Title)
	return timeline.Entity{
		ID:       id,
		Title:    dto.Title,
		Range:    mapRange(id, dto.StartDate, dto.EndDate),
		Status:   timeline.ParseStatus(dto.Status),
		Progress: normalizeProgress(dto.Progress),
	}
}

func mapRange(id, rawStart, rawEnd string) timeline.DateRange {
	r := timeline.NormalizeRange(rawStart, rawEnd)
	if r.Start == nil && hasValue(rawStart) {
		log.Debug().Str("id", id).Str("start_date", rawStart).Msg("Dropping unparseable start date")
	}
	if r.End == nil && hasValue(rawEnd) {
		log.Debug().Str("id", id).Str("end_date", rawEnd).Msg("Dropping unparseable end date")
	}
	return r
}

func hasValue(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw != "" && !strings.EqualFold(raw, "null")
}

func normalizeProgress(p *float64) float64 {
	if p == nil || math.IsNaN(*p) {
		return 0
	}
	return math.Max(0, math.Min(*p, 100))
}

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("sitegantt/schedule"))

// ensureID keeps a supplied ID or derives a name-based UUID from the record's parent, its index
// among siblings and its title.
func ensureID(id, parentID string, index int, title string) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	name := parentID + "/" + strconv.Itoa(index) + "/" + title
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}
