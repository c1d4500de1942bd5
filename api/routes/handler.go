// Package routes exposes the planning engine over a JSON HTTP API.
package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kilianp07/evroute/core/errs"
	"github.com/kilianp07/evroute/core/events"
	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/history"
	"github.com/kilianp07/evroute/core/model"
	"github.com/kilianp07/evroute/core/planner"
	"github.com/kilianp07/evroute/core/search"
	"github.com/kilianp07/evroute/infra/stations"
	"github.com/kilianp07/evroute/infra/vehicle"
	"github.com/kilianp07/evroute/internal/eventbus"
)

// Handler bundles the collaborators behind the API endpoints.
type Handler struct {
	Assembler *planner.Assembler
	Stations  stations.Source
	Resolver  search.Resolver
	History   history.Store
	Status    *vehicle.StatusStore
	Bus       eventbus.EventBus
}

// NewMux returns a ServeMux with all API endpoints registered.
func (h *Handler) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/routes/plan", h.planHandler())
	mux.Handle("/api/destinations", h.destinationsHandler())
	mux.Handle("/api/stations", h.stationsHandler())
	mux.Handle("/api/trips", h.tripsHandler())
	return mux
}

// planRequest is the body of POST /api/routes/plan. SoC and profile default
// to the latest telemetry snapshot when omitted.
type planRequest struct {
	Origin           geo.Coordinate              `json:"origin"`
	Destination      *model.Destination          `json:"destination,omitempty"`
	DestinationQuery string                      `json:"destination_query,omitempty"`
	SoC              *float64                    `json:"soc,omitempty"`
	Profile          *model.VehicleEnergyProfile `json:"profile,omitempty"`
	ElevationGainM   float64                     `json:"elevation_gain_m,omitempty"`
}

func (h *Handler) planHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req planRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("decode request: %v", err), http.StatusBadRequest)
			return
		}

		dest, err := h.resolveDestination(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		soc, profile, err := h.resolveVehicle(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snapshot, err := h.Stations.Snapshot()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		start := time.Now()
		route, err := h.Assembler.BuildRoute(planner.Request{
			Origin:         req.Origin,
			Destination:    dest,
			Profile:        profile,
			CurrentSoC:     soc,
			ElevationGainM: req.ElevationGainM,
			Stations:       snapshot,
		})
		elapsed := time.Since(start)

		if h.Bus != nil {
			h.Bus.Publish(events.PlanEvent{
				RouteID:    route.ID,
				DistanceKm: route.DistanceKm,
				EnergyKWh:  route.EstimatedEnergyKWh,
				Stops:      len(route.ChargingStops),
				Feasible:   err == nil,
				Elapsed:    elapsed,
			})
		}
		if err != nil {
			switch {
			case errs.IsValidation(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, errs.ErrRouteInfeasible):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		if h.History != nil {
			if herr := h.History.Add(history.RecordForRoute(route, soc)); herr != nil {
				http.Error(w, herr.Error(), http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, route)
	})
}

func (h *Handler) resolveDestination(req planRequest) (model.Destination, error) {
	if req.Destination != nil {
		return *req.Destination, nil
	}
	if req.DestinationQuery == "" {
		return model.Destination{}, fmt.Errorf("destination or destination_query required")
	}
	matches := h.Resolver.Search(req.DestinationQuery)
	if len(matches) == 0 {
		return model.Destination{}, fmt.Errorf("no destination matches %q", req.DestinationQuery)
	}
	return matches[0], nil
}

func (h *Handler) resolveVehicle(req planRequest) (float64, model.VehicleEnergyProfile, error) {
	if req.SoC != nil && req.Profile != nil {
		return *req.SoC, *req.Profile, nil
	}
	if h.Status == nil {
		return 0, model.VehicleEnergyProfile{}, fmt.Errorf("soc and profile required (no telemetry configured)")
	}
	st, ok := h.Status.Get()
	if !ok {
		return 0, model.VehicleEnergyProfile{}, fmt.Errorf("soc and profile required (no telemetry received yet)")
	}
	soc := st.SoC
	if req.SoC != nil {
		soc = *req.SoC
	}
	profile := st.Profile
	if req.Profile != nil {
		profile = *req.Profile
	}
	return soc, profile, nil
}

func (h *Handler) destinationsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, h.Resolver.Search(r.URL.Query().Get("q")))
	})
}

func (h *Handler) stationsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		snapshot, err := h.Stations.Snapshot()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot)
	})
}

// tripsResponse carries the recent trips and their consumption summary.
type tripsResponse struct {
	Trips   []history.Record `json:"trips"`
	Summary history.Summary  `json:"summary"`
}

func (h *Handler) tripsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		limit := 10
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		trips, err := h.History.Recent(limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, tripsResponse{Trips: trips, Summary: history.Summarize(trips)})
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
