package history

import (
	"testing"
	"time"

	"github.com/kilianp07/evroute/core/model"
)

func record(id string, daysAgo int, distance float64) Record {
	return Record{
		TripID:          id,
		DestinationName: "somewhere",
		Date:            time.Now().AddDate(0, 0, -daysAgo),
		DistanceKm:      distance,
		EnergyUsedKWh:   distance * 0.18,
		AvgConsumption:  18,
	}
}

func TestMemoryStoreRecentOrderAndLimit(t *testing.T) {
	s := NewMemoryStore()
	for i, id := range []string{"t1", "t2", "t3"} {
		if err := s.Add(record(id, 3-i, 100)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].TripID != "t3" || got[1].TripID != "t2" {
		t.Fatalf("unexpected order: %+v", got)
	}

	all, err := s.Recent(0)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected all records, got %d (%v)", len(all), err)
	}
}

func TestRecordForRoute(t *testing.T) {
	route := model.Route{
		ID:                 "r1",
		Destination:        model.Destination{Name: "Los Angeles, CA"},
		DistanceKm:         559,
		DurationMinutes:    419,
		EstimatedEnergyKWh: 100.6,
		ArrivalSoC:         25.6,
		NeedsCharging:      true,
		ChargingStops:      []model.ChargingStop{{ChargingTimeMinutes: 31}},
		CreatedAt:          time.Now(),
	}
	r := RecordForRoute(route, 90)
	if r.TripID != "r1" || r.DestinationName != "Los Angeles, CA" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.StartSoC != 90 || r.EndSoC != 25.6 || r.ChargingStops != 1 {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.DurationMinutes != 450 {
		t.Fatalf("expected charging-inclusive duration got %d", r.DurationMinutes)
	}
	want := 100.6 / 559 * 100
	if diff := r.AvgConsumption - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("avg consumption %v want %v", r.AvgConsumption, want)
	}
}

func TestRecordForRouteZeroDistance(t *testing.T) {
	r := RecordForRoute(model.Route{ID: "r0"}, 50)
	if r.AvgConsumption != 0 {
		t.Fatalf("expected 0 consumption got %v", r.AvgConsumption)
	}
}
