package metrics

import "time"

// PlanResult represents one route planning call to be recorded.
type PlanResult struct {
	RouteID    string
	DistanceKm float64
	EnergyKWh  float64
	Stops      int
	Feasible   bool
	Elapsed    time.Duration
	Time       time.Time
}

// Sink records planning results for observability purposes.
type Sink interface {
	RecordPlan(res PlanResult) error
}

// NopSink discards all results.
type NopSink struct{}

// RecordPlan implements Sink.
func (NopSink) RecordPlan(PlanResult) error { return nil }
