package timeline

import "time"

// Aggregate classifies each entity exactly once: completed, otherwise delayed, otherwise on track.
func Aggregate(entities []Entity, today time.Time) HealthSummary {
	summary := HealthSummary{Total: len(entities)}
	for _, e := range entities {
		if e.Status == StatusCompleted {
			summary.Completed++
			continue
		}
		info := EvaluateDelay(e, today)
		if info.IsDelayed {
			summary.Delayed++
			summary.TotalDelayDays += info.DelayDays
			continue
		}
		summary.OnTrack++
	}
	return summary
}

// MilestoneHealth is the health of the tasks owned by one milestone.
type MilestoneHealth struct {
	MilestoneID string        `json:"milestone_id"`
	Title       string        `json:"title"`
	Summary     HealthSummary `json:"summary"`
}

// AggregateMilestones computes health per milestone over its tasks.
func AggregateMilestones(milestones []Milestone, today time.Time) []MilestoneHealth {
	out := make([]MilestoneHealth, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, MilestoneHealth{
			MilestoneID: m.ID,
			Title:       m.Title,
			Summary:     Aggregate(m.Tasks, today),
		})
	}
	return out
}
