// Package api defines the JSON wire types for the RPC surface.
// Dates cross the boundary as date-only "2006-01-02" values and amounts as
// numbers with two-decimal semantics; the handler package converts between
// these shapes and the domain types.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Trip is the wire representation of a stored trip.
type Trip struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Destination  string             `json:"destination"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	Description  *string            `json:"description"`
	Participants *string            `json:"participants"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// CreateTripRequest is the input for the createTrip mutation.
type CreateTripRequest struct {
	Name         string             `json:"name"`
	Destination  string             `json:"destination"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	Description  *string            `json:"description"`
	Participants *string            `json:"participants"`
}

// UpdateTripRequest is the input for the updateTrip mutation.
// All fields except id are optional; absent fields keep their stored values.
type UpdateTripRequest struct {
	ID           *int64              `json:"id"`
	Name         *string             `json:"name"`
	Destination  *string             `json:"destination"`
	StartDate    *openapi_types.Date `json:"start_date"`
	EndDate      *openapi_types.Date `json:"end_date"`
	Description  *string             `json:"description"`
	Participants *string             `json:"participants"`
}

// Expense is the wire representation of a stored expense.
type Expense struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	ExpenseDate openapi_types.Date `json:"expense_date"`
	Category    string             `json:"category"`
	TripID      int64              `json:"trip_id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateExpenseRequest is the input for the createExpense mutation.
type CreateExpenseRequest struct {
	Name        string             `json:"name"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	ExpenseDate openapi_types.Date `json:"expense_date"`
	Category    string             `json:"category"`
	TripID      int64              `json:"trip_id"`
}

// UpdateExpenseRequest is the input for the updateExpense mutation.
// All fields except id are optional; absent fields keep their stored values.
type UpdateExpenseRequest struct {
	ID          *int64              `json:"id"`
	Name        *string             `json:"name"`
	Amount      *float64            `json:"amount"`
	Currency    *string             `json:"currency"`
	ExpenseDate *openapi_types.Date `json:"expense_date"`
	Category    *string             `json:"category"`
	TripID      *int64              `json:"trip_id"`
}

// IDRequest is the input for procedures keyed by a single id
// (getTripById, getExpenseById, deleteTrip, deleteExpense).
type IDRequest struct {
	ID *int64 `json:"id"`
}

// TripIDRequest is the input for getExpensesByTrip.
type TripIDRequest struct {
	TripID *int64 `json:"trip_id"`
}

// DeleteResponse reports whether a delete mutation removed a row.
// Success is false — not an error — when the target was already gone.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthcheckResponse is the result of the healthcheck query.
type HealthcheckResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ExportRow is one flattened trip-and-expense row in the JSON export.
// Expense fields are empty strings on rows for trips without expenses.
type ExportRow struct {
	TripID          int64  `json:"trip_id"`
	TripName        string `json:"trip_name"`
	TripDestination string `json:"trip_destination"`
	TripStartDate   string `json:"trip_start_date"`
	TripEndDate     string `json:"trip_end_date"`
	ExpenseName     string `json:"expense_name"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	ExpenseDate     string `json:"expense_date"`
	Category        string `json:"category"`
}

// ErrorResponse is the envelope for every error returned by the API.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail distinguishes failures by kind via Code:
// "validation_error", "not_found", or "store_error".
// Field carries the offending input field path for validation errors.
type ErrorDetail struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Field   *string `json:"field,omitempty"`
}
