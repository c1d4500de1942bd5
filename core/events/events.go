// Package events defines the planning related events emitted on the event bus.
package events

import "time"

// PlanEvent is published after each route planning call, successful or not.
type PlanEvent struct {
	RouteID    string
	DistanceKm float64
	EnergyKWh  float64
	Stops      int
	Feasible   bool
	Elapsed    time.Duration
}
