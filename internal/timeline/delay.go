package timeline

import (
	"math"
	"time"
)

// EvaluateDelay decides whether an entity is overdue as of today.
// Completion always overrides lateness, and an entity without an end date is never late.
func EvaluateDelay(e Entity, today time.Time) DelayInfo {
	info := DelayInfo{EntityID: e.ID}
	if e.Status == StatusCompleted || e.Range.End == nil {
		return info
	}

	end := *e.Range.End
	if end.Before(today) {
		info.IsDelayed = true
		info.DelayDays = int(math.Ceil(DaysBetween(end, today)))
	}
	return info
}

// EvaluateAll runs EvaluateDelay over every entity, in input order.
func EvaluateAll(entities []Entity, today time.Time) []DelayInfo {
	out := make([]DelayInfo, 0, len(entities))
	for _, e := range entities {
		out = append(out, EvaluateDelay(e, today))
	}
	return out
}
