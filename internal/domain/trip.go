// Package domain contains the core data types for the Trip Planner API.
// This package has no I/O and is imported by every other internal package
// (repo, service, handler).
package domain

import "time"

// Trip represents a planned journey with a date range.
// A trip is the top-level aggregate; expenses belong to a trip and are
// deleted with it.
type Trip struct {
	ID           int64
	Name         string
	Destination  string
	StartDate    time.Time // date-only, midnight UTC
	EndDate      time.Time // date-only, never before StartDate
	Description  *string   // nil when not set
	Participants *string   // nil when not set
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TripUpdate is a sparse update record for a trip. Only non-nil fields
// overwrite stored values; nil fields keep what is in the database.
// It is a separate type from Trip so "absent" never has to be encoded as a
// sentinel zero value.
type TripUpdate struct {
	ID           int64
	Name         *string
	Destination  *string
	StartDate    *time.Time
	EndDate      *time.Time
	Description  *string
	Participants *string
}
