package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/evroute/core/metrics"
)

// PromSink records planning results in Prometheus metrics.
type PromSink struct {
	plans    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	stops    prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using the configured port.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_plans_total",
		Help: "Total number of route planning calls",
	}, []string{"feasible"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "route_plan_duration_seconds",
		Help:    "Time spent computing a route plan",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"feasible"})
	stops := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "route_plan_last_stops",
		Help: "Charging stops in the most recently planned route",
	})

	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(stops); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			stops = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	return &PromSink{plans: plans, duration: duration, stops: stops}, nil
}

// RecordPlan implements the Sink interface.
func (s *PromSink) RecordPlan(res coremetrics.PlanResult) error {
	feasible := strconv.FormatBool(res.Feasible)
	s.plans.WithLabelValues(feasible).Inc()
	s.duration.WithLabelValues(feasible).Observe(res.Elapsed.Seconds())
	if res.Feasible {
		s.stops.Set(float64(res.Stops))
	}
	return nil
}
