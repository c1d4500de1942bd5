// Package search resolves free-text queries into destinations. A real
// deployment plugs a geocoding provider behind the Resolver interface; the
// static resolver serves development and tests.
package search

import (
	"strings"

	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/model"
)

// Resolver turns a free-text query into candidate destinations.
type Resolver interface {
	Search(query string) []model.Destination
}

// StaticResolver matches a fixed destination list by substring on name or
// address, case-insensitive.
type StaticResolver struct {
	destinations []model.Destination
}

// NewStaticResolver returns a resolver over the given destinations.
func NewStaticResolver(dests []model.Destination) *StaticResolver {
	return &StaticResolver{destinations: dests}
}

// DefaultDestinations returns the seeded destination set used when no
// geocoding provider is configured.
func DefaultDestinations() []model.Destination {
	return []model.Destination{
		{Name: "San Francisco, CA", Address: "San Francisco, California, USA", Coordinate: geo.Coordinate{Latitude: 37.7749, Longitude: -122.4194}, PlaceID: "ChIJIQBpAG2ahYAR_6128GcTUEo"},
		{Name: "Los Angeles, CA", Address: "Los Angeles, California, USA", Coordinate: geo.Coordinate{Latitude: 34.0522, Longitude: -118.2437}, PlaceID: "ChIJE9on3F3HwoAR9AhGJW_fL-I"},
		{Name: "San Diego, CA", Address: "San Diego, California, USA", Coordinate: geo.Coordinate{Latitude: 32.7157, Longitude: -117.1611}, PlaceID: "ChIJSx6SrQ9T2YARed8V_f0hOg0"},
		{Name: "Seattle, WA", Address: "Seattle, Washington, USA", Coordinate: geo.Coordinate{Latitude: 47.6062, Longitude: -122.3321}, PlaceID: "ChIJVTPokywQkFQRmtVEaUZlJRA"},
	}
}

// Search implements Resolver.
func (r *StaticResolver) Search(query string) []model.Destination {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []model.Destination
	for _, d := range r.destinations {
		if strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(strings.ToLower(d.Address), q) {
			out = append(out, d)
		}
	}
	return out
}
