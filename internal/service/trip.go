// Package service contains the business logic for the Trip Planner API.
// Services validate inputs, enforce referential integrity, and orchestrate
// repo calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns a domain.NotFoundError naming the id if no such trip exists.
func (s *TripService) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, &domain.NotFoundError{Entity: "trip", ID: id}
		}
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by creation time, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update applies the supplied fields of upd to an existing trip and returns
// the full updated record. A supplied date is checked only against the other
// supplied date — not against the stored value — so a lone start_date or
// end_date is accepted as-is.
// Returns domain.ErrValidation for invalid input and a domain.NotFoundError
// naming the id if the trip does not exist.
func (s *TripService) Update(ctx context.Context, upd domain.TripUpdate) (domain.Trip, error) {
	if err := validateTripUpdate(upd); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, &domain.NotFoundError{Entity: "trip", ID: upd.ID}
		}
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID; owned expenses are cascade-deleted atomically
// with the trip row. Returns true if a trip was removed, false if no such
// trip existed — absence is an expected idempotent outcome, not an error.
func (s *TripService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return deleted, nil
}

// validateTrip enforces creation rules.
//   - Name and destination must be non-empty (whitespace-only is rejected).
//   - EndDate must not be before StartDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return &domain.ValidationError{Field: "destination", Message: "destination is required"}
	}
	if trip.StartDate.IsZero() {
		return &domain.ValidationError{Field: "start_date", Message: "start_date is required"}
	}
	if trip.EndDate.IsZero() {
		return &domain.ValidationError{Field: "end_date", Message: "end_date is required"}
	}
	if err := validateDateRange(trip.StartDate, trip.EndDate); err != nil {
		return err
	}
	return nil
}

// validateTripUpdate enforces update rules on the supplied fields only.
func validateTripUpdate(upd domain.TripUpdate) error {
	if upd.ID <= 0 {
		return &domain.ValidationError{Field: "id", Message: "id must be a positive integer"}
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if upd.Destination != nil && strings.TrimSpace(*upd.Destination) == "" {
		return &domain.ValidationError{Field: "destination", Message: "destination is required"}
	}
	if upd.StartDate != nil && upd.EndDate != nil {
		if err := validateDateRange(*upd.StartDate, *upd.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// validateDateRange rejects an end date strictly before the start date.
// Same-day trips are valid.
func validateDateRange(start, end time.Time) error {
	if end.Before(start) {
		return &domain.ValidationError{Field: "end_date", Message: "end_date must be on or after start_date"}
	}
	return nil
}
