package handler

import (
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// CreateTrip handles POST /rpc/createTrip.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.trips.Create(r.Context(), tripFromCreateRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(created))
}

// GetTrips handles POST /rpc/getTrips. Takes no input; returns all trips
// newest first.
func (s *Server) GetTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]api.Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTripByID handles POST /rpc/getTripById.
// An unknown id yields a JSON null body, not an error — absence is an
// ordinary query result here.
func (s *Server) GetTripByID(w http.ResponseWriter, r *http.Request) {
	var req api.IDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := requiredID(w, req)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles POST /rpc/updateTrip.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	upd, err := tripUpdateFromRequest(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := s.trips.Update(r.Context(), upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles POST /rpc/deleteTrip.
// Deleting a missing trip reports {"success": false} rather than 404 —
// "already gone" is an expected idempotent outcome.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	var req api.IDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := requiredID(w, req)
	if !ok {
		return
	}
	if id <= 0 {
		writeError(w, r, &domain.ValidationError{Field: "id", Message: "id must be a positive integer"})
		return
	}

	deleted, err := s.trips.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteResponse{Success: deleted})
}

// --- mapping helpers --------------------------------------------------------

// tripFromCreateRequest converts a CreateTripRequest body into a domain.Trip.
func tripFromCreateRequest(req api.CreateTripRequest) domain.Trip {
	return domain.Trip{
		Name:         req.Name,
		Destination:  req.Destination,
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
		Description:  req.Description,
		Participants: req.Participants,
	}
}

// tripUpdateFromRequest builds a sparse domain.TripUpdate from the request.
// Returns a validation error when id is absent.
func tripUpdateFromRequest(req api.UpdateTripRequest) (domain.TripUpdate, error) {
	if req.ID == nil {
		return domain.TripUpdate{}, &domain.ValidationError{Field: "id", Message: "id is required"}
	}
	upd := domain.TripUpdate{
		ID:           *req.ID,
		Name:         req.Name,
		Destination:  req.Destination,
		Description:  req.Description,
		Participants: req.Participants,
	}
	if req.StartDate != nil {
		sd := req.StartDate.Time
		upd.StartDate = &sd
	}
	if req.EndDate != nil {
		ed := req.EndDate.Time
		upd.EndDate = &ed
	}
	return upd, nil
}

// tripToResponse converts a domain.Trip into the wire api.Trip type.
func tripToResponse(t domain.Trip) api.Trip {
	return api.Trip{
		ID:           t.ID,
		Name:         t.Name,
		Destination:  t.Destination,
		StartDate:    openapi_types.Date{Time: t.StartDate},
		EndDate:      openapi_types.Date{Time: t.EndDate},
		Description:  t.Description,
		Participants: t.Participants,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
