package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ExpenseService implements business logic for Expense operations.
// It holds both repos because creating or reassigning an expense requires
// verifying the referenced trip exists before touching the expenses table.
type ExpenseService struct {
	expenses repo.ExpenseRepo
	trips    repo.TripRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(expenses repo.ExpenseRepo, trips repo.TripRepo) *ExpenseService {
	return &ExpenseService{expenses: expenses, trips: trips}
}

// Create verifies the referenced trip exists, validates the expense, then
// persists it. Returns a domain.NotFoundError naming the missing trip id if
// the trip does not exist, and domain.ErrValidation for invalid input.
func (s *ExpenseService) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	if expense.TripID <= 0 {
		return domain.Expense{}, &domain.ValidationError{Field: "trip_id", Message: "trip_id must be a positive integer"}
	}
	if err := s.requireTrip(ctx, expense.TripID); err != nil {
		return domain.Expense{}, err
	}
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}
	result, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single expense by ID.
// Returns a domain.NotFoundError naming the id if no such expense exists.
func (s *ExpenseService) GetByID(ctx context.Context, id int64) (domain.Expense, error) {
	result, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Expense{}, &domain.NotFoundError{Entity: "expense", ID: id}
		}
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all expenses ordered by expense_date descending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) List(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// ListByTripID returns all expenses for a trip ordered by expense_date
// ascending. No trip-existence check is performed: an unknown trip and a
// trip with no expenses both yield an empty slice.
func (s *ExpenseService) ListByTripID(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	if tripID <= 0 {
		return nil, &domain.ValidationError{Field: "trip_id", Message: "trip_id must be a positive integer"}
	}
	expenses, err := s.expenses.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTripID: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// Update applies the supplied fields of upd to an existing expense and
// returns the full updated record. If trip_id is supplied the referenced
// trip is re-verified before the write.
// Returns a domain.NotFoundError naming the expense id if the expense does
// not exist, or naming the trip id if a supplied trip_id references a
// missing trip.
func (s *ExpenseService) Update(ctx context.Context, upd domain.ExpenseUpdate) (domain.Expense, error) {
	if err := validateExpenseUpdate(upd); err != nil {
		return domain.Expense{}, err
	}

	// The expense lookup comes first so "expense not found" wins when both
	// the expense and a supplied trip are missing.
	if _, err := s.expenses.GetByID(ctx, upd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Expense{}, &domain.NotFoundError{Entity: "expense", ID: upd.ID}
		}
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}

	if upd.TripID != nil {
		if err := s.requireTrip(ctx, *upd.TripID); err != nil {
			return domain.Expense{}, err
		}
	}

	result, err := s.expenses.Update(ctx, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Expense{}, &domain.NotFoundError{Entity: "expense", ID: upd.ID}
		}
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an expense by ID. Returns true if an expense was removed,
// false if no such expense existed — absence is not an error.
func (s *ExpenseService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.expenses.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return deleted, nil
}

// requireTrip fails with a NotFoundError naming tripID when the trip is absent.
func (s *ExpenseService) requireTrip(ctx context.Context, tripID int64) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "trip", ID: tripID}
		}
		return fmt.Errorf("service.ExpenseService: verify trip: %w", err)
	}
	return nil
}

// validateExpense enforces creation rules.
//   - Name and currency must be non-empty (whitespace-only is rejected).
//   - Amount must be strictly positive.
//   - Category must be one of the closed set.
//   - ExpenseDate must be set.
func validateExpense(expense domain.Expense) error {
	if strings.TrimSpace(expense.Name) == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if !expense.Amount.IsPositive() {
		return &domain.ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	if strings.TrimSpace(expense.Currency) == "" {
		return &domain.ValidationError{Field: "currency", Message: "currency is required"}
	}
	if expense.ExpenseDate.IsZero() {
		return &domain.ValidationError{Field: "expense_date", Message: "expense_date is required"}
	}
	if !expense.Category.Valid() {
		return &domain.ValidationError{Field: "category", Message: categoryMessage()}
	}
	return nil
}

// validateExpenseUpdate enforces update rules on the supplied fields only.
func validateExpenseUpdate(upd domain.ExpenseUpdate) error {
	if upd.ID <= 0 {
		return &domain.ValidationError{Field: "id", Message: "id must be a positive integer"}
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if upd.Amount != nil && !upd.Amount.IsPositive() {
		return &domain.ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	if upd.Currency != nil && strings.TrimSpace(*upd.Currency) == "" {
		return &domain.ValidationError{Field: "currency", Message: "currency is required"}
	}
	if upd.Category != nil && !upd.Category.Valid() {
		return &domain.ValidationError{Field: "category", Message: categoryMessage()}
	}
	if upd.TripID != nil && *upd.TripID <= 0 {
		return &domain.ValidationError{Field: "trip_id", Message: "trip_id must be a positive integer"}
	}
	return nil
}

// categoryMessage builds the "must be one of" message from the closed set.
func categoryMessage() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return "category must be one of " + strings.Join(names, ", ")
}
