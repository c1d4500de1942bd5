package geo

import (
	"math"

	"github.com/kilianp07/evroute/core/errs"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinate is an immutable latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinate lies within valid ranges.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return errs.NewValidationError("latitude", "must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return errs.NewValidationError("longitude", "must be between -180 and 180")
	}
	return nil
}

// Distance returns the haversine great-circle distance between a and b in
// kilometers. Straight-line distance stands in for road-network distance;
// swapping in a routing provider only requires replacing this function's
// callers with an adapter exposing the same contract.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// Interpolate returns the point at the given fraction of the segment from a
// to b. Fraction is clamped to [0,1]. Linear interpolation in lat/lon space
// is sufficient at the scale the planner searches for stations.
func Interpolate(a, b Coordinate, fraction float64) Coordinate {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return Coordinate{
		Latitude:  a.Latitude + (b.Latitude-a.Latitude)*fraction,
		Longitude: a.Longitude + (b.Longitude-a.Longitude)*fraction,
	}
}
