package planner

import "fmt"

// Config tunes the planning engine. The selector weights are deliberately
// configurable: the relative importance of detour, charge speed and stall
// availability is an operator decision, not a constant of the algorithm.
type Config struct {
	// TargetSoC is the departure SoC after a planned charging stop.
	TargetSoC float64 `json:"target_soc"`
	// MinSoC is the safety threshold the battery must never fall below.
	MinSoC float64 `json:"min_soc"`
	// ChargeToFull makes every stop charge to 100% instead of TargetSoC.
	ChargeToFull bool `json:"charge_to_full"`
	// MaxDetourKm bounds the search radius around a candidate stop point.
	MaxDetourKm float64 `json:"max_detour_km"`
	// AverageSpeedKmh is used to derive driving duration from distance.
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
	// ChargingEfficiency discounts the station power actually reaching the
	// battery. Charge-curve tapering is not modelled; the flat rate is a
	// documented approximation.
	ChargingEfficiency float64 `json:"charging_efficiency"`
	// MaxStops bounds the stop-insertion loop.
	MaxStops int `json:"max_stops"`

	// Selector weights.
	ProximityWeight    float64 `json:"proximity_weight"`
	PowerWeight        float64 `json:"power_weight"`
	AvailabilityWeight float64 `json:"availability_weight"`
}

// SetDefaults applies sane defaults for unset fields.
func (c *Config) SetDefaults() {
	if c.TargetSoC == 0 {
		c.TargetSoC = 80
	}
	if c.MinSoC == 0 {
		c.MinSoC = 10
	}
	if c.MaxDetourKm == 0 {
		c.MaxDetourKm = 50
	}
	if c.AverageSpeedKmh == 0 {
		c.AverageSpeedKmh = 80
	}
	if c.ChargingEfficiency == 0 {
		c.ChargingEfficiency = 0.9
	}
	if c.MaxStops == 0 {
		c.MaxStops = 20
	}
	if c.ProximityWeight == 0 && c.PowerWeight == 0 && c.AvailabilityWeight == 0 {
		c.ProximityWeight = 0.5
		c.PowerWeight = 0.35
		c.AvailabilityWeight = 0.15
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.TargetSoC <= 0 || c.TargetSoC > 100 {
		return fmt.Errorf("target_soc must be in (0,100]")
	}
	if c.MinSoC < 0 || c.MinSoC >= c.TargetSoC {
		return fmt.Errorf("min_soc must be in [0, target_soc)")
	}
	if c.MaxDetourKm <= 0 {
		return fmt.Errorf("max_detour_km must be positive")
	}
	if c.AverageSpeedKmh <= 0 {
		return fmt.Errorf("average_speed_kmh must be positive")
	}
	if c.ChargingEfficiency <= 0 || c.ChargingEfficiency > 1 {
		return fmt.Errorf("charging_efficiency must be in (0,1]")
	}
	if c.MaxStops <= 0 {
		return fmt.Errorf("max_stops must be positive")
	}
	return nil
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	var c Config
	c.SetDefaults()
	return c
}
