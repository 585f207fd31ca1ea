package timeline

import "strings"

// Status is the lifecycle state of a milestone or task.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus maps loosely formatted status strings ("In Progress", "in-progress") onto the enum.
// Unknown values fall back to StatusNotStarted.
func ParseStatus(s string) Status {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	switch Status(norm) {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled:
		return Status(norm)
	}
	switch norm {
	case "done", "complete", "finished":
		return StatusCompleted
	case "pending", "todo", "planned", "":
		return StatusNotStarted
	case "active", "ongoing", "started":
		return StatusInProgress
	case "paused", "hold", "blocked":
		return StatusOnHold
	case "canceled":
		return StatusCancelled
	}
	return StatusNotStarted
}

// Entity is a schedulable item: a milestone header or a task.
type Entity struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Range    DateRange `json:"range"`
	Status   Status    `json:"status"`
	Progress float64   `json:"progress"` // 0..100
}

// Milestone owns an ordered list of tasks.
type Milestone struct {
	Entity
	Tasks []Entity `json:"tasks"`
}

// Project is the root of a schedule snapshot.
type Project struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Range      DateRange   `json:"range"`
	Milestones []Milestone `json:"milestones"`
}

// AllTasks flattens the tasks of every milestone, preserving order.
func (p Project) AllTasks() []Entity {
	var tasks []Entity
	for _, m := range p.Milestones {
		tasks = append(tasks, m.Tasks...)
	}
	return tasks
}

// BarGeometry is the position of one entity inside a Window, in day units.
type BarGeometry struct {
	EntityID     string  `json:"entity_id"`
	OffsetDays   float64 `json:"offset_days"`
	WidthDays    float64 `json:"width_days"`
	ClampedLeft  bool    `json:"clamped_left"`
	ClampedRight bool    `json:"clamped_right"`
}

// PercentBar is a BarGeometry expressed as a share of the window width.
type PercentBar struct {
	LeftPct  float64 `json:"left_pct"`
	WidthPct float64 `json:"width_pct"`
}

// DelayInfo reports whether an entity is overdue and by how many days.
type DelayInfo struct {
	EntityID  string `json:"entity_id"`
	IsDelayed bool   `json:"is_delayed"`
	DelayDays int    `json:"delay_days"`
}

// HealthSummary partitions a set of entities into completed, delayed and on-track buckets.
type HealthSummary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Delayed        int `json:"delayed"`
	OnTrack        int `json:"on_track"`
	TotalDelayDays int `json:"total_delay_days"`
}

// OnTrackRatio returns the share of non-delayed entities (completed or on track), 1 for an empty set.
func (h HealthSummary) OnTrackRatio() float64 {
	if h.Total == 0 {
		return 1
	}
	return float64(h.Completed+h.OnTrack) / float64(h.Total)
}
