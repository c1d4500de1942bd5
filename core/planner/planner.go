package planner

import (
	"fmt"
	"math"

	"github.com/kilianp07/evroute/core/energy"
	"github.com/kilianp07/evroute/core/errs"
	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/model"
)

// StopPlanner inserts charging stops along a route using a greedy forward
// simulation: drive as far as the safety threshold allows, charge at the
// best station near that point, repeat. The result is deterministic and
// explainable rather than globally optimal.
type StopPlanner struct {
	cfg      Config
	selector StationSelector
}

// NewStopPlanner returns a planner using the given configuration.
func NewStopPlanner(cfg Config) *StopPlanner {
	return &StopPlanner{cfg: cfg, selector: NewStationSelector(cfg)}
}

// departureSoC returns the SoC a stop charges to.
func (p *StopPlanner) departureSoC() float64 {
	if p.cfg.ChargeToFull {
		return 100
	}
	return p.cfg.TargetSoC
}

// chargeTime returns the minutes needed to raise the battery from arrival to
// departure SoC at the station's best power level. Flat average power with a
// fixed efficiency factor; charge-curve tapering is not modelled.
func (p *StopPlanner) chargeTime(arrivalSoC, departureSoC float64, profile model.VehicleEnergyProfile, st model.ChargingStation) int {
	energyToAdd := energy.SoCToEnergy(departureSoC-arrivalSoC, profile)
	power := float64(st.MaxPowerKW()) * p.cfg.ChargingEfficiency
	if power <= 0 {
		return 0
	}
	return int(math.Round(energyToAdd / power * 60))
}

// PlanStops simulates the trip from origin to dest (totalKm apart) starting
// at currentSoC and returns the charging stops required to finish without
// dropping below the configured minimum SoC. An empty slice means the trip
// needs no stop. The error wraps errs.ErrRouteInfeasible when no station can
// serve a required stop or the stop count exceeds its bound.
func (p *StopPlanner) PlanStops(origin, dest geo.Coordinate, totalKm, currentSoC float64, profile model.VehicleEnergyProfile, stations []model.ChargingStation) ([]model.ChargingStop, error) {
	if totalKm == 0 {
		return nil, nil
	}

	var stops []model.ChargingStop
	soc := currentSoC
	covered := 0.0
	last := origin

	for {
		remaining := totalKm - covered
		reachable := energy.ReachableDistance(soc, p.cfg.MinSoC, profile)
		if reachable >= remaining {
			return stops, nil
		}
		if len(stops) >= p.cfg.MaxStops {
			return nil, fmt.Errorf("still %.1f km short after %d stops: %w", remaining, len(stops), errs.ErrRouteInfeasible)
		}

		// The next stop is searched at the furthest point the current
		// charge can safely reach along the straight-line path.
		searchPoint := geo.Interpolate(origin, dest, (covered+reachable)/totalKm)
		st, ok := p.selector.SelectCandidate(searchPoint, stations)
		if !ok {
			return nil, fmt.Errorf("no station within %.0f km of route km %.1f: %w",
				p.cfg.MaxDetourKm, covered+reachable, errs.ErrRouteInfeasible)
		}

		legKm := geo.Distance(last, st.Coordinate)
		distFromStart := covered + legKm
		if legKm <= 0 || distFromStart >= totalKm {
			// The best candidate does not advance the trip, or lies past
			// the destination; the network cannot serve this route.
			return nil, fmt.Errorf("station %s does not advance the route: %w", st.ID, errs.ErrRouteInfeasible)
		}

		arrival := soc - energy.SoCDrop(energy.Required(legKm, 0, profile), profile)
		if arrival < 0 {
			return nil, fmt.Errorf("station %s unreachable with current charge: %w", st.ID, errs.ErrRouteInfeasible)
		}
		departure := p.departureSoC()
		if departure < arrival {
			departure = arrival
		}

		stops = append(stops, model.ChargingStop{
			Station:             st,
			DistanceFromStartKm: distFromStart,
			ArrivalSoC:          arrival,
			DepartureSoC:        departure,
			ChargingTimeMinutes: p.chargeTime(arrival, departure, profile, st),
		})
		covered = distFromStart
		soc = departure
		last = st.Coordinate
	}
}
