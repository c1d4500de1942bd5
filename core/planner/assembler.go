package planner

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/evroute/core/energy"
	"github.com/kilianp07/evroute/core/errs"
	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/model"
)

// Assembler orchestrates distance and energy estimation, stop planning and
// final route construction. Each call is a pure function of its inputs plus
// the supplied station snapshot; the assembler holds no mutable state.
type Assembler struct {
	cfg     Config
	planner *StopPlanner
	now     func() time.Time
	newID   func() string
}

// NewAssembler returns an Assembler using the given configuration.
func NewAssembler(cfg Config) *Assembler {
	return &Assembler{
		cfg:     cfg,
		planner: NewStopPlanner(cfg),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// Request carries the inputs of one planning call.
type Request struct {
	Origin         geo.Coordinate
	Destination    model.Destination
	Profile        model.VehicleEnergyProfile
	CurrentSoC     float64
	ElevationGainM float64
	Stations       []model.ChargingStation
}

func (r Request) validate() error {
	if err := r.Origin.Validate(); err != nil {
		return err
	}
	if err := r.Destination.Validate(); err != nil {
		return err
	}
	if err := r.Profile.Validate(); err != nil {
		return err
	}
	if r.CurrentSoC < 0 || r.CurrentSoC > 100 {
		return errs.NewValidationError("current_soc", "must be between 0 and 100")
	}
	return nil
}

// BuildRoute plans a drivable route with the charging stops needed to reach
// the destination without the battery falling below the safety threshold.
// No partial route is returned on failure.
func (a *Assembler) BuildRoute(req Request) (model.Route, error) {
	if err := req.validate(); err != nil {
		return model.Route{}, err
	}

	distanceKm := geo.Distance(req.Origin, req.Destination.Coordinate)
	energyKWh := energy.Required(distanceKm, req.ElevationGainM, req.Profile)
	arrivalSoC := req.CurrentSoC - energy.SoCDrop(energyKWh, req.Profile)

	var stops []model.ChargingStop
	if arrivalSoC < a.cfg.MinSoC {
		var err error
		stops, err = a.planner.PlanStops(req.Origin, req.Destination.Coordinate, distanceKm, req.CurrentSoC, req.Profile, req.Stations)
		if err != nil {
			return model.Route{}, err
		}
		if len(stops) > 0 {
			last := stops[len(stops)-1]
			finalLeg := energy.Required(distanceKm-last.DistanceFromStartKm, 0, req.Profile)
			arrivalSoC = last.DepartureSoC - energy.SoCDrop(finalLeg, req.Profile)
		}
	}
	arrivalSoC = math.Max(0, math.Min(100, arrivalSoC))

	return model.Route{
		ID:                 a.newID(),
		Origin:             req.Origin,
		Destination:        req.Destination,
		DistanceKm:         distanceKm,
		DurationMinutes:    int(distanceKm / a.cfg.AverageSpeedKmh * 60),
		EstimatedEnergyKWh: energyKWh,
		ArrivalSoC:         arrivalSoC,
		NeedsCharging:      len(stops) > 0,
		ChargingStops:      stops,
		CreatedAt:          a.now(),
	}, nil
}
