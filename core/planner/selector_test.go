package planner

import (
	"testing"

	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/model"
)

func station(id string, lat, lon float64, powerKW int, stalls int, cost float64) model.ChargingStation {
	return model.ChargingStation{
		ID:              id,
		Name:            "station " + id,
		Coordinate:      geo.Coordinate{Latitude: lat, Longitude: lon},
		ConnectorTypes:  []string{"CCS"},
		PowerLevelsKW:   []int{50, powerKW},
		CostPerKWh:      cost,
		AvailableStalls: stalls,
		TotalStalls:     8,
		Operational:     true,
	}
}

func TestSelectCandidateFiltersDetour(t *testing.T) {
	sel := NewStationSelector(DefaultConfig())
	point := geo.Coordinate{Latitude: 0, Longitude: 0}
	// ~111 km away, beyond the 50 km default detour bound.
	far := station("far", 1, 0, 250, 4, 0.4)
	if _, ok := sel.SelectCandidate(point, []model.ChargingStation{far}); ok {
		t.Fatalf("station beyond detour bound selected")
	}
}

func TestSelectCandidateFiltersStallsAndOperational(t *testing.T) {
	sel := NewStationSelector(DefaultConfig())
	point := geo.Coordinate{Latitude: 0, Longitude: 0}
	full := station("full", 0.01, 0, 250, 0, 0.4)
	closed := station("closed", 0.01, 0, 250, 4, 0.4)
	closed.Operational = false
	if _, ok := sel.SelectCandidate(point, []model.ChargingStation{full, closed}); ok {
		t.Fatalf("unusable station selected")
	}
}

func TestSelectCandidatePrefersCloser(t *testing.T) {
	sel := NewStationSelector(DefaultConfig())
	point := geo.Coordinate{Latitude: 0, Longitude: 0}
	near := station("near", 0.02, 0, 150, 4, 0.4)
	farther := station("farther", 0.3, 0, 150, 4, 0.4)
	st, ok := sel.SelectCandidate(point, []model.ChargingStation{farther, near})
	if !ok || st.ID != "near" {
		t.Fatalf("expected near got %+v ok=%v", st.ID, ok)
	}
}

func TestSelectCandidatePrefersPowerAtEqualDistance(t *testing.T) {
	sel := NewStationSelector(DefaultConfig())
	point := geo.Coordinate{Latitude: 0, Longitude: 0}
	slow := station("slow", 0.1, 0, 50, 4, 0.4)
	fast := station("fast", -0.1, 0, 250, 4, 0.4)
	st, ok := sel.SelectCandidate(point, []model.ChargingStation{slow, fast})
	if !ok || st.ID != "fast" {
		t.Fatalf("expected fast got %v", st.ID)
	}
}

func TestSelectCandidateTieBreaks(t *testing.T) {
	sel := NewStationSelector(DefaultConfig())
	point := geo.Coordinate{Latitude: 0, Longitude: 0}
	// Identical score: same spot, same power, same availability.
	cheap := station("b", 0.1, 0, 150, 4, 0.30)
	pricey := station("a", 0.1, 0, 150, 4, 0.55)
	st, ok := sel.SelectCandidate(point, []model.ChargingStation{pricey, cheap})
	if !ok || st.ID != "b" {
		t.Fatalf("expected cheaper station got %v", st.ID)
	}

	// Same cost as well: lowest ID wins.
	twinA := station("a", 0.1, 0, 150, 4, 0.30)
	twinB := station("b", 0.1, 0, 150, 4, 0.30)
	st, ok = sel.SelectCandidate(point, []model.ChargingStation{twinB, twinA})
	if !ok || st.ID != "a" {
		t.Fatalf("expected station a got %v", st.ID)
	}
}

func TestSelectCandidateEmpty(t *testing.T) {
	sel := NewStationSelector(DefaultConfig())
	if _, ok := sel.SelectCandidate(geo.Coordinate{}, nil); ok {
		t.Fatalf("expected no candidate")
	}
}
