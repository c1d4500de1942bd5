// Package vehicle tracks the latest known vehicle state so the planner can
// default a request's SoC and energy profile when the caller omits them.
package vehicle

import (
	"sync"
	"time"

	"github.com/kilianp07/evroute/core/model"
)

// Status is the latest vehicle snapshot received from telemetry.
type Status struct {
	SoC       float64                    `json:"soc"`
	Profile   model.VehicleEnergyProfile `json:"profile"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// StatusStore holds the most recent Status.
type StatusStore struct {
	mu     sync.RWMutex
	status Status
	seen   bool
}

// NewStatusStore returns an empty store.
func NewStatusStore() *StatusStore { return &StatusStore{} }

// Set replaces the stored status.
func (s *StatusStore) Set(st Status) {
	s.mu.Lock()
	s.status = st
	s.seen = true
	s.mu.Unlock()
}

// Get returns the stored status and whether any telemetry arrived yet.
func (s *StatusStore) Get() (Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.seen
}
