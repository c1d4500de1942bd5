// Package history keeps per-trip records so past consumption can inform the
// driver. Stores mirror the planner's stateless contract: records are
// immutable once added.
package history

import (
	"sort"
	"sync"
	"time"

	"github.com/kilianp07/evroute/core/model"
)

// Record summarises one completed or planned trip.
type Record struct {
	TripID          string    `json:"trip_id"`
	DestinationName string    `json:"destination_name"`
	Date            time.Time `json:"date"`
	DistanceKm      float64   `json:"distance_km"`
	DurationMinutes int       `json:"duration_minutes"`
	EnergyUsedKWh   float64   `json:"energy_used_kwh"`
	AvgConsumption  float64   `json:"avg_consumption"` // kWh per 100 km
	StartSoC        float64   `json:"start_soc"`
	EndSoC          float64   `json:"end_soc"`
	ChargingStops   int       `json:"charging_stops"`
}

// Store persists trip records.
type Store interface {
	Add(Record) error
	Recent(limit int) ([]Record, error)
}

// RecordForRoute converts a planned route into a history record.
func RecordForRoute(r model.Route, startSoC float64) Record {
	avg := 0.0
	if r.DistanceKm > 0 {
		avg = r.EstimatedEnergyKWh / r.DistanceKm * 100
	}
	return Record{
		TripID:          r.ID,
		DestinationName: r.Destination.Name,
		Date:            r.CreatedAt,
		DistanceKm:      r.DistanceKm,
		DurationMinutes: r.TotalTimeWithChargingMinutes(),
		EnergyUsedKWh:   r.EstimatedEnergyKWh,
		AvgConsumption:  avg,
		StartSoC:        startSoC,
		EndSoC:          r.ArrivalSoC,
		ChargingStops:   len(r.ChargingStops),
	}
}

// MemoryStore keeps records in memory, newest first.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Add implements Store.
func (s *MemoryStore) Add(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

// Recent implements Store. Records are returned newest first.
func (s *MemoryStore) Recent(limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
