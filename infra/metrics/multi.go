package metrics

import (
	"errors"

	coremetrics "github.com/kilianp07/evroute/core/metrics"
)

// MultiSink fans planning results out to several sinks.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink combines multiple sinks into one.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordPlan records on every sink and joins their errors.
func (m *MultiSink) RecordPlan(res coremetrics.PlanResult) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlan(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
