package history

import "gonum.org/v1/gonum/stat"

// Summary aggregates consumption statistics over a set of trips.
type Summary struct {
	Trips              int     `json:"trips"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalEnergyKWh     float64 `json:"total_energy_kwh"`
	MeanConsumption    float64 `json:"mean_consumption"`    // kWh per 100 km
	StdDevConsumption  float64 `json:"stddev_consumption"`  // kWh per 100 km
	TotalChargingStops int     `json:"total_charging_stops"`
}

// Summarize computes consumption statistics across the given records.
func Summarize(records []Record) Summary {
	s := Summary{Trips: len(records)}
	if len(records) == 0 {
		return s
	}
	cons := make([]float64, 0, len(records))
	for _, r := range records {
		s.TotalDistanceKm += r.DistanceKm
		s.TotalEnergyKWh += r.EnergyUsedKWh
		s.TotalChargingStops += r.ChargingStops
		cons = append(cons, r.AvgConsumption)
	}
	s.MeanConsumption = stat.Mean(cons, nil)
	if len(cons) > 1 {
		s.StdDevConsumption = stat.StdDev(cons, nil)
	}
	return s
}
