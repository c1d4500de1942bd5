package planner

import (
	"sort"

	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/model"
)

// StationSelector scores candidate stations around a search point using a
// weighted combination of proximity, peak power and stall availability.
type StationSelector struct {
	cfg Config
}

// NewStationSelector returns a selector using the given configuration.
func NewStationSelector(cfg Config) StationSelector {
	return StationSelector{cfg: cfg}
}

type stationCandidate struct {
	station  model.ChargingStation
	distance float64
	score    float64
}

// score computes the weighted candidate score. Proximity is normalised
// against the detour bound so that a station at the search point scores 1
// and one at the edge of the radius scores 0.
func (s StationSelector) score(c stationCandidate, maxPower float64) float64 {
	proximity := 1 - c.distance/s.cfg.MaxDetourKm
	power := 0.0
	if maxPower > 0 {
		power = float64(c.station.MaxPowerKW()) / maxPower
	}
	avail := c.station.AvailabilityPercent() / 100
	return proximity*s.cfg.ProximityWeight + power*s.cfg.PowerWeight + avail*s.cfg.AvailabilityWeight
}

// SelectCandidate returns the best station within MaxDetourKm of searchPoint
// that has at least one free stall. The second return value is false when no
// station qualifies, which signals route infeasibility to the planner.
// Ordering is deterministic: score, then cost per kWh, then station ID.
func (s StationSelector) SelectCandidate(searchPoint geo.Coordinate, stations []model.ChargingStation) (model.ChargingStation, bool) {
	var cands []stationCandidate
	maxPower := 0.0
	for _, st := range stations {
		if !st.Operational || st.AvailableStalls == 0 {
			continue
		}
		d := geo.Distance(searchPoint, st.Coordinate)
		if d > s.cfg.MaxDetourKm {
			continue
		}
		cands = append(cands, stationCandidate{station: st, distance: d})
		if p := float64(st.MaxPowerKW()); p > maxPower {
			maxPower = p
		}
	}
	if len(cands) == 0 {
		return model.ChargingStation{}, false
	}
	for i := range cands {
		cands[i].score = s.score(cands[i], maxPower)
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		if cands[i].station.CostPerKWh != cands[j].station.CostPerKWh {
			return cands[i].station.CostPerKWh < cands[j].station.CostPerKWh
		}
		return cands[i].station.ID < cands[j].station.ID
	})
	return cands[0].station, true
}
