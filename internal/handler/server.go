// Package handler implements the HTTP layer of the Trip Planner API.
// Every operation is exposed as a named procedure under /rpc; methods are
// split into domain-specific files (trip.go, expense.go, etc.) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, upd domain.TripUpdate) (domain.Trip, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ExpenseServicer defines the business operations the expense handlers
// depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	GetByID(ctx context.Context, id int64) (domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	ListByTripID(ctx context.Context, tripID int64) ([]domain.Expense, error)
	Update(ctx context.Context, upd domain.ExpenseUpdate) (domain.Expense, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Exporter defines the flat-export operation the export handler depends on.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies for all API endpoints.
// Methods live in domain-specific files but all operate on this struct.
type Server struct {
	trips    TripServicer
	expenses ExpenseServicer
	export   Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, expenses ExpenseServicer, export Exporter) *Server {
	return &Server{trips: trips, expenses: expenses, export: export}
}
