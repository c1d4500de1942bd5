package model

import (
	"strings"

	"github.com/kilianp07/evroute/core/errs"
	"github.com/kilianp07/evroute/core/geo"
)

// ChargingStation describes one entry of the station directory snapshot
// passed into a planning call. Instances are read-only inputs; availability
// and pricing freshness is the directory collaborator's responsibility.
type ChargingStation struct {
	ID              string         `json:"station_id"`
	Name            string         `json:"name"`
	Coordinate      geo.Coordinate `json:"coordinate"`
	ConnectorTypes  []string       `json:"connector_types"`
	PowerLevelsKW   []int          `json:"power_levels_kw"`
	CostPerKWh      float64        `json:"cost_per_kwh"`
	AvailableStalls int            `json:"available_stalls"`
	TotalStalls     int            `json:"total_stalls"`
	Operational     bool           `json:"is_operational"`
}

// Validate checks the station directory entry is sound.
func (s ChargingStation) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errs.NewValidationError("name", "cannot be empty")
	}
	if err := s.Coordinate.Validate(); err != nil {
		return err
	}
	if len(s.PowerLevelsKW) == 0 {
		return errs.NewValidationError("power_levels_kw", "cannot be empty")
	}
	for _, p := range s.PowerLevelsKW {
		if p <= 0 {
			return errs.NewValidationError("power_levels_kw", "must contain positive values")
		}
	}
	if s.TotalStalls < 0 {
		return errs.NewValidationError("total_stalls", "must be non-negative")
	}
	if s.AvailableStalls < 0 || s.AvailableStalls > s.TotalStalls {
		return errs.NewValidationError("available_stalls", "must be between 0 and total_stalls")
	}
	if s.CostPerKWh < 0 {
		return errs.NewValidationError("cost_per_kwh", "must be non-negative")
	}
	return nil
}

// MaxPowerKW returns the highest power level the station offers.
func (s ChargingStation) MaxPowerKW() int {
	max := 0
	for _, p := range s.PowerLevelsKW {
		if p > max {
			max = p
		}
	}
	return max
}

// AvailabilityPercent returns the fraction of free stalls as a percentage.
func (s ChargingStation) AvailabilityPercent() float64 {
	if s.TotalStalls == 0 {
		return 0
	}
	return float64(s.AvailableStalls) / float64(s.TotalStalls) * 100
}
