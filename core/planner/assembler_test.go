package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/kilianp07/evroute/core/errs"
	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/model"
)

var (
	sanFrancisco = geo.Coordinate{Latitude: 37.7749, Longitude: -122.4194}
	losAngeles   = model.Destination{
		Name:       "Los Angeles, CA",
		Address:    "Los Angeles, California, USA",
		Coordinate: geo.Coordinate{Latitude: 34.0522, Longitude: -118.2437},
	}
)

// kettleman sits at the first search point of the SF->LA trip for a 75 kWh
// battery starting at 90%.
var kettleman = station("kettleman", 35.55, -119.93, 250, 6, 0.42)

func caProfile() model.VehicleEnergyProfile {
	return model.VehicleEnergyProfile{BatteryKWh: 75, ConsumptionKWhKm: 0.18}
}

func TestBuildRouteLongTripNeedsCharging(t *testing.T) {
	a := NewAssembler(DefaultConfig())
	route, err := a.BuildRoute(Request{
		Origin:      sanFrancisco,
		Destination: losAngeles,
		Profile:     caProfile(),
		CurrentSoC:  90,
		Stations:    []model.ChargingStation{kettleman},
	})
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if math.Abs(route.DistanceKm-559.12) > 0.5 {
		t.Fatalf("distance %.2f", route.DistanceKm)
	}
	if math.Abs(route.EstimatedEnergyKWh-100.64) > 0.2 {
		t.Fatalf("energy %.2f", route.EstimatedEnergyKWh)
	}
	if !route.NeedsCharging || len(route.ChargingStops) == 0 {
		t.Fatalf("expected charging stops")
	}
	if route.ArrivalSoC < DefaultConfig().MinSoC {
		t.Fatalf("arrival soc %v below threshold", route.ArrivalSoC)
	}
	// One stop suffices: charge to 80% at ~332 km, 227 km remain.
	if len(route.ChargingStops) != 1 {
		t.Fatalf("expected 1 stop got %d", len(route.ChargingStops))
	}
	stop := route.ChargingStops[0]
	if math.Abs(stop.ArrivalSoC-10.22) > 0.2 {
		t.Fatalf("stop arrival soc %v", stop.ArrivalSoC)
	}
	if math.Abs(route.ArrivalSoC-25.59) > 0.2 {
		t.Fatalf("final arrival soc %v", route.ArrivalSoC)
	}
	if route.DurationMinutes != int(route.DistanceKm/80*60) {
		t.Fatalf("duration %d", route.DurationMinutes)
	}
	if route.TotalTimeWithChargingMinutes() <= route.DurationMinutes {
		t.Fatalf("charging time not accounted for")
	}
}

func TestBuildRouteLargeBatteryNoCharging(t *testing.T) {
	a := NewAssembler(DefaultConfig())
	route, err := a.BuildRoute(Request{
		Origin:      sanFrancisco,
		Destination: losAngeles,
		Profile:     model.VehicleEnergyProfile{BatteryKWh: 200, ConsumptionKWhKm: 0.18},
		CurrentSoC:  100,
	})
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if route.NeedsCharging || len(route.ChargingStops) != 0 {
		t.Fatalf("unexpected charging stops")
	}
	if route.ArrivalSoC <= DefaultConfig().MinSoC {
		t.Fatalf("arrival soc %v", route.ArrivalSoC)
	}
}

func TestBuildRouteZeroDistance(t *testing.T) {
	a := NewAssembler(DefaultConfig())
	dest := model.Destination{Name: "Here", Coordinate: sanFrancisco}
	route, err := a.BuildRoute(Request{
		Origin:      sanFrancisco,
		Destination: dest,
		Profile:     caProfile(),
		CurrentSoC:  42,
	})
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if route.DistanceKm != 0 || route.EstimatedEnergyKWh != 0 {
		t.Fatalf("expected empty route got %+v", route)
	}
	if route.ArrivalSoC != 42 {
		t.Fatalf("arrival soc changed: %v", route.ArrivalSoC)
	}
	if route.NeedsCharging {
		t.Fatalf("zero route needs charging")
	}
}

func TestBuildRouteInfeasibleStallRadius(t *testing.T) {
	a := NewAssembler(DefaultConfig())
	occupied := kettleman
	occupied.AvailableStalls = 0
	_, err := a.BuildRoute(Request{
		Origin:      sanFrancisco,
		Destination: losAngeles,
		Profile:     caProfile(),
		CurrentSoC:  90,
		Stations:    []model.ChargingStation{occupied},
	})
	if !errors.Is(err, errs.ErrRouteInfeasible) {
		t.Fatalf("expected infeasible got %v", err)
	}
}

func TestBuildRouteValidation(t *testing.T) {
	a := NewAssembler(DefaultConfig())
	base := Request{
		Origin:      sanFrancisco,
		Destination: losAngeles,
		Profile:     caProfile(),
		CurrentSoC:  90,
	}

	bad := base
	bad.CurrentSoC = 120
	if _, err := a.BuildRoute(bad); !errs.IsValidation(err) {
		t.Fatalf("expected validation error got %v", err)
	}

	bad = base
	bad.Origin = geo.Coordinate{Latitude: 91, Longitude: 0}
	if _, err := a.BuildRoute(bad); !errs.IsValidation(err) {
		t.Fatalf("expected validation error got %v", err)
	}

	bad = base
	bad.Profile.BatteryKWh = 0
	if _, err := a.BuildRoute(bad); !errs.IsValidation(err) {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestBuildRouteIdempotent(t *testing.T) {
	a := NewAssembler(DefaultConfig())
	req := Request{
		Origin:      sanFrancisco,
		Destination: losAngeles,
		Profile:     caProfile(),
		CurrentSoC:  90,
		Stations:    []model.ChargingStation{kettleman},
	}
	r1, err := a.BuildRoute(req)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	r2, err := a.BuildRoute(req)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	// Identity fields differ per call; the plan itself must not.
	r2.ID, r2.CreatedAt = r1.ID, r1.CreatedAt
	if r1.DistanceKm != r2.DistanceKm || r1.ArrivalSoC != r2.ArrivalSoC ||
		len(r1.ChargingStops) != len(r2.ChargingStops) {
		t.Fatalf("plans differ:\n%+v\n%+v", r1, r2)
	}
	for i := range r1.ChargingStops {
		if r1.ChargingStops[i].Station.ID != r2.ChargingStops[i].Station.ID ||
			r1.ChargingStops[i].ArrivalSoC != r2.ChargingStops[i].ArrivalSoC {
			t.Fatalf("stop %d differs", i)
		}
	}
}
