package timeline

import (
	"fmt"
	"testing"
)

func TestAggregate_Partition(t *testing.T) {
	today := day(t, "2025-01-10")
	entities := []Entity{
		{ID: "done-late", Status: StatusCompleted, Range: rng(t, "2025-01-01", "2025-01-02")},
		{ID: "late-3", Status: StatusInProgress, Range: rng(t, "2025-01-01", "2025-01-07")},
		{ID: "late-5", Status: StatusOnHold, Range: rng(t, "", "2025-01-05")},
		{ID: "future", Status: StatusNotStarted, Range: rng(t, "2025-02-01", "2025-02-05")},
		{ID: "undated", Status: StatusInProgress},
	}
	h := Aggregate(entities, today)
	want := HealthSummary{Total: 5, Completed: 1, Delayed: 2, OnTrack: 2, TotalDelayDays: 8}
	if h != want {
		t.Errorf("got %+v, want %+v", h, want)
	}
}

func TestAggregate_BucketsAlwaysSumToTotal(t *testing.T) {
	today := day(t, "2025-01-15")
	statuses := []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled}
	var entities []Entity
	for i := 0; i < 50; i++ {
		end := today.AddDate(0, 0, i-25)
		e := Entity{ID: fmt.Sprintf("e%d", i), Status: statuses[i%len(statuses)]}
		if i%7 != 0 {
			e.Range = NewRange(nil, &end)
		}
		entities = append(entities, e)
		h := Aggregate(entities, today)
		if h.Completed+h.Delayed+h.OnTrack != h.Total || h.Total != len(entities) {
			t.Fatalf("partition broken at %d: %+v", i, h)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	h := Aggregate(nil, day(t, "2025-01-01"))
	if h != (HealthSummary{}) {
		t.Errorf("got %+v", h)
	}
	if h.OnTrackRatio() != 1 {
		t.Errorf("empty ratio = %v", h.OnTrackRatio())
	}
}

func TestAggregateMilestones(t *testing.T) {
	ms := []Milestone{
		{Entity: Entity{ID: "m1", Title: "Framing"}, Tasks: []Entity{
			{ID: "t1", Status: StatusCompleted},
			{ID: "t2", Status: StatusInProgress, Range: rng(t, "", "2025-01-01")},
		}},
		{Entity: Entity{ID: "m2"}},
	}
	out := AggregateMilestones(ms, day(t, "2025-01-04"))
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].Summary.Delayed != 1 || out[0].Summary.TotalDelayDays != 3 || out[0].Summary.Completed != 1 {
		t.Errorf("unexpected summary %+v", out[0].Summary)
	}
	if !approx(out[0].Summary.OnTrackRatio(), 0.5) {
		t.Errorf("ratio = %v", out[0].Summary.OnTrackRatio())
	}
	if out[1].Summary.Total != 0 {
		t.Errorf("expected empty milestone, got %+v", out[1].Summary)
	}
}
