package model

import "github.com/kilianp07/evroute/core/geo"

// Destination is a resolved navigation target. It is produced by the
// destination search collaborator and read-only once attached to a request.
type Destination struct {
	Name       string         `json:"name"`
	Address    string         `json:"address"`
	Coordinate geo.Coordinate `json:"coordinate"`
	PlaceID    string         `json:"place_id,omitempty"`
}

// Validate checks the destination coordinate.
func (d Destination) Validate() error {
	return d.Coordinate.Validate()
}
