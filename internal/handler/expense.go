package handler

import (
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// CreateExpense handles POST /rpc/createExpense.
// A missing trip is a 404 naming the trip id, produced by the service before
// any insert is attempted.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req api.CreateExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.expenses.Create(r.Context(), expenseFromCreateRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(created))
}

// GetExpenses handles POST /rpc/getExpenses. Takes no input; returns all
// expenses ordered by expense_date descending.
func (s *Server) GetExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expensesToResponse(expenses))
}

// GetExpensesByTrip handles POST /rpc/getExpensesByTrip.
// Returns the trip's expenses ordered by expense_date ascending; an unknown
// trip yields an empty array.
func (s *Server) GetExpensesByTrip(w http.ResponseWriter, r *http.Request) {
	var req api.TripIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.TripID == nil {
		writeError(w, r, &domain.ValidationError{Field: "trip_id", Message: "trip_id is required"})
		return
	}

	expenses, err := s.expenses.ListByTripID(r.Context(), *req.TripID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expensesToResponse(expenses))
}

// GetExpenseByID handles POST /rpc/getExpenseById.
// An unknown id yields a JSON null body, not an error.
func (s *Server) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	var req api.IDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := requiredID(w, req)
	if !ok {
		return
	}

	expense, err := s.expenses.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(expense))
}

// UpdateExpense handles POST /rpc/updateExpense.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	upd, err := expenseUpdateFromRequest(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := s.expenses.Update(r.Context(), upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(updated))
}

// DeleteExpense handles POST /rpc/deleteExpense.
// Deleting a missing expense reports {"success": false} rather than 404.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := s.expenses.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteResponse{Success: deleted})
}

// --- mapping helpers --------------------------------------------------------

// expenseFromCreateRequest converts a CreateExpenseRequest into a
// domain.Expense. The wire amount is a float64; it is converted to an exact
// decimal rounded half-up to two places at this boundary, so money never
// travels further as binary floating point.
func expenseFromCreateRequest(req api.CreateExpenseRequest) domain.Expense {
	return domain.Expense{
		Name:        req.Name,
		Amount:      decimal.NewFromFloat(req.Amount).Round(2),
		Currency:    req.Currency,
		ExpenseDate: req.ExpenseDate.Time,
		Category:    domain.Category(req.Category),
		TripID:      req.TripID,
	}
}

// expenseUpdateFromRequest builds a sparse domain.ExpenseUpdate from the
// request. Returns a validation error when id is absent.
func expenseUpdateFromRequest(req api.UpdateExpenseRequest) (domain.ExpenseUpdate, error) {
	if req.ID == nil {
		return domain.ExpenseUpdate{}, &domain.ValidationError{Field: "id", Message: "id is required"}
	}
	upd := domain.ExpenseUpdate{
		ID:       *req.ID,
		Name:     req.Name,
		Currency: req.Currency,
		TripID:   req.TripID,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount).Round(2)
		upd.Amount = &amount
	}
	if req.ExpenseDate != nil {
		d := req.ExpenseDate.Time
		upd.ExpenseDate = &d
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		upd.Category = &c
	}
	return upd, nil
}

// expenseToResponse converts a domain.Expense into the wire api.Expense type.
// The exact decimal amount becomes a JSON number; two-decimal values
// round-trip through float64 without drift.
func expenseToResponse(e domain.Expense) api.Expense {
	return api.Expense{
		ID:          e.ID,
		Name:        e.Name,
		Amount:      e.Amount.InexactFloat64(),
		Currency:    e.Currency,
		ExpenseDate: openapi_types.Date{Time: e.ExpenseDate},
		Category:    string(e.Category),
		TripID:      e.TripID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// expensesToResponse maps a slice of domain expenses to wire expenses.
func expensesToResponse(expenses []domain.Expense) []api.Expense {
	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToResponse(e)
	}
	return out
}
