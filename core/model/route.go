package model

import (
	"time"

	"github.com/kilianp07/evroute/core/geo"
)

// ChargingStop is a planned pause at a station along a route.
//
// ArrivalSoC is the projected charge on reaching the station and is never
// negative: the planner inserts the stop before the battery would fall below
// its safety threshold. DepartureSoC is always >= ArrivalSoC.
type ChargingStop struct {
	Station             ChargingStation `json:"station"`
	DistanceFromStartKm float64         `json:"distance_from_start_km"`
	ArrivalSoC          float64         `json:"arrival_soc"`
	DepartureSoC        float64         `json:"departure_soc"`
	ChargingTimeMinutes int             `json:"charging_time_minutes"`
}

// Route is the result of one planning call. All fields are fixed at
// construction; charging stops are ordered by ascending distance from start.
type Route struct {
	ID                 string         `json:"id"`
	Origin             geo.Coordinate `json:"origin"`
	Destination        Destination    `json:"destination"`
	DistanceKm         float64        `json:"distance_km"`
	DurationMinutes    int            `json:"duration_minutes"`
	EstimatedEnergyKWh float64        `json:"estimated_energy_kwh"`
	ArrivalSoC         float64        `json:"arrival_soc"`
	NeedsCharging      bool           `json:"needs_charging"`
	ChargingStops      []ChargingStop `json:"charging_stops"`
	CreatedAt          time.Time      `json:"created_at"`
}

// TotalTimeWithChargingMinutes returns driving time plus time spent at
// charging stops.
func (r Route) TotalTimeWithChargingMinutes() int {
	total := r.DurationMinutes
	for _, s := range r.ChargingStops {
		total += s.ChargingTimeMinutes
	}
	return total
}
