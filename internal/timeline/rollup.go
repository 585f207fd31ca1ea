package timeline

// RollupMilestone fills a milestone's missing bounds from the envelope of its tasks.
// The input is not modified.
func RollupMilestone(m Milestone) Milestone {
	if m.Range.IsComplete() || len(m.Tasks) == 0 {
		return m
	}

	env, ok := tasksEnvelope(m.Tasks)
	if !ok {
		return m
	}

	start, end := m.Range.Start, m.Range.End
	if start == nil {
		start = env.Start
	}
	if end == nil {
		end = env.End
	}
	m.Range = NewRange(start, end)
	return m
}

// MeanProgress averages task progress; 0 when there are no tasks.
func MeanProgress(tasks []Entity) float64 {
	if len(tasks) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range tasks {
		sum += t.Progress
	}
	return sum / float64(len(tasks))
}

func tasksEnvelope(tasks []Entity) (DateRange, bool) {
	var env DateRange
	found := false
	for _, t := range tasks {
		s, e, ok := t.Range.Span()
		if !ok {
			continue
		}
		if !found || s.Before(*env.Start) {
			env.Start = &s
		}
		if !found || e.After(*env.End) {
			env.End = &e
		}
		found = true
	}
	return env, found
}
