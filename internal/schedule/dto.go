package schedule

// ProjectDTO is a project snapshot as supplied by the data layer. Dates are ISO 8601 strings
// and may be empty, "null" or malformed.
type ProjectDTO struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	StartDate  string         `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate    string         `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Milestones []MilestoneDTO `json:"milestones" yaml:"milestones"`
}

// MilestoneDTO is a milestone record with its owned tasks.
type MilestoneDTO struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	StartDate string    `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Status    string    `json:"status,omitempty" yaml:"status,omitempty"`
	Progress  *float64  `json:"progress,omitempty" yaml:"progress,omitempty"`
	Tasks     []TaskDTO `json:"tasks" yaml:"tasks"`
}

// TaskDTO is a single task record.
type TaskDTO struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	StartDate string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Status    string   `json:"status,omitempty" yaml:"status,omitempty"`
	Progress  *float64 `json:"progress,omitempty" yaml:"progress,omitempty"`
}
