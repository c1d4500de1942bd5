package metrics

import (
	"context"
	"time"

	"github.com/kilianp07/evroute/core/events"
	coremetrics "github.com/kilianp07/evroute/core/metrics"
	"github.com/kilianp07/evroute/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// plan events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if e, ok := ev.(events.PlanEvent); ok {
					_ = sink.RecordPlan(coremetrics.PlanResult{
						RouteID:    e.RouteID,
						DistanceKm: e.DistanceKm,
						EnergyKWh:  e.EnergyKWh,
						Stops:      e.Stops,
						Feasible:   e.Feasible,
						Elapsed:    e.Elapsed,
						Time:       time.Now(),
					})
				}
			}
		}
	}()
}
