// Package energy estimates driving consumption and converts between energy
// and state of charge. All functions are pure; the vehicle profile is the
// only parameter source.
package energy

import "github.com/kilianp07/evroute/core/model"

// Required returns the energy in kWh needed to cover distanceKm with the
// given elevation gain. Descents are not credited: a negative gain is
// treated as flat, which keeps the estimate conservative.
func Required(distanceKm, elevationGainM float64, p model.VehicleEnergyProfile) float64 {
	if elevationGainM < 0 {
		elevationGainM = 0
	}
	return distanceKm*p.ConsumptionKWhKm + (elevationGainM/10.0)*p.ElevationKWhPer10m
}

// SoCDrop converts an energy amount into the SoC percentage it drains.
func SoCDrop(energyKWh float64, p model.VehicleEnergyProfile) float64 {
	return energyKWh / p.BatteryKWh * 100
}

// SoCToEnergy converts a SoC percentage into stored energy in kWh.
func SoCToEnergy(soc float64, p model.VehicleEnergyProfile) float64 {
	return soc / 100 * p.BatteryKWh
}

// ReachableDistance returns how far the vehicle can drive from soc before
// dropping to minSoC, assuming flat terrain at the profile's base rate. This
// inverts the Required formula for the planner's forward simulation.
func ReachableDistance(soc, minSoC float64, p model.VehicleEnergyProfile) float64 {
	usable := SoCToEnergy(soc-minSoC, p)
	if usable <= 0 {
		return 0
	}
	return usable / p.ConsumptionKWhKm
}
