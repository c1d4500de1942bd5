package model

import "github.com/kilianp07/evroute/core/errs"

// VehicleEnergyProfile captures the consumption characteristics of the
// vehicle for one planning call. It comes from the vehicle status
// collaborator and is constant for the duration of the call.
type VehicleEnergyProfile struct {
	BatteryKWh         float64 `json:"battery_capacity_kwh"`
	ConsumptionKWhKm   float64 `json:"base_consumption_kwh_per_km"`
	ElevationKWhPer10m float64 `json:"elevation_factor_kwh_per_10m"`
}

// Validate checks that the profile values are physically sound.
func (p VehicleEnergyProfile) Validate() error {
	if p.BatteryKWh <= 0 {
		return errs.NewValidationError("battery_capacity_kwh", "must be positive")
	}
	if p.ConsumptionKWhKm <= 0 {
		return errs.NewValidationError("base_consumption_kwh_per_km", "must be positive")
	}
	if p.ElevationKWhPer10m < 0 {
		return errs.NewValidationError("elevation_factor_kwh_per_10m", "must be non-negative")
	}
	return nil
}
