package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ExpenseRepo defines the persistence operations for Expenses.
type ExpenseRepo interface {
	// Create inserts a new expense and returns the persisted record.
	// The caller is responsible for verifying the parent trip exists;
	// the trip_id foreign key is the storage-layer backstop.
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)

	// GetByID retrieves a single expense by its primary key.
	// Returns domain.ErrNotFound if no expense with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Expense, error)

	// List returns all expenses ordered by expense_date descending.
	List(ctx context.Context) ([]domain.Expense, error)

	// ListByTripID returns all expenses for a trip ordered by expense_date
	// ascending. An unknown trip yields an empty result, not an error.
	ListByTripID(ctx context.Context, tripID int64) ([]domain.Expense, error)

	// Update applies the non-nil fields of upd in a single statement,
	// refreshes updated_at, and returns the full updated record.
	// Returns domain.ErrNotFound if no expense with that ID exists.
	Update(ctx context.Context, upd domain.ExpenseUpdate) (domain.Expense, error)

	// Delete removes an expense by ID.
	// Returns false (not an error) when no expense with that ID existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

// expenseColumns is the shared select list. The amount is cast to text so the
// NUMERIC value crosses the driver boundary as an exact decimal string and is
// never parsed through binary floating point.
const expenseColumns = `id, name, amount::text, currency, expense_date, category, trip_id, created_at, updated_at`

// Create inserts a new expense row and returns the full persisted record.
func (r *pgExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (name, amount, currency, expense_date, category, trip_id)
		VALUES (@name, @amount, @currency, @expense_date, @category, @trip_id)
		RETURNING ` + expenseColumns

	args := pgx.NamedArgs{
		"name":         expense.Name,
		"amount":       expense.Amount.StringFixed(2),
		"currency":     expense.Currency,
		"expense_date": expense.ExpenseDate,
		"category":     string(expense.Category),
		"trip_id":      expense.TripID,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an expense by primary key.
func (r *pgExpenseRepo) GetByID(ctx context.Context, id int64) (domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all expenses ordered by expense_date descending (newest first).
func (r *pgExpenseRepo) List(ctx context.Context) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		ORDER BY expense_date DESC`

	return r.queryExpenses(ctx, "List", q, nil)
}

// ListByTripID returns all expenses for a trip ordered by expense_date ascending.
func (r *pgExpenseRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE trip_id = @trip_id
		ORDER BY expense_date ASC`

	return r.queryExpenses(ctx, "ListByTripID", q, pgx.NamedArgs{"trip_id": tripID})
}

// Update applies the non-nil fields of upd and returns the updated record.
// COALESCE keeps stored values for absent fields, so the partial merge is a
// single atomic statement.
func (r *pgExpenseRepo) Update(ctx context.Context, upd domain.ExpenseUpdate) (domain.Expense, error) {
	const q = `
		UPDATE expenses
		SET name         = COALESCE(@name, name),
		    amount       = COALESCE(@amount, amount),
		    currency     = COALESCE(@currency, currency),
		    expense_date = COALESCE(@expense_date, expense_date),
		    category     = COALESCE(@category, category),
		    trip_id      = COALESCE(@trip_id, trip_id),
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + expenseColumns

	var amount any
	if upd.Amount != nil {
		amount = upd.Amount.StringFixed(2)
	}
	var category any
	if upd.Category != nil {
		category = string(*upd.Category)
	}

	args := pgx.NamedArgs{
		"id":           upd.ID,
		"name":         upd.Name,
		"amount":       amount,
		"currency":     upd.Currency,
		"expense_date": upd.ExpenseDate,
		"category":     category,
		"trip_id":      upd.TripID,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an expense by primary key.
func (r *pgExpenseRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM expenses WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// queryExpenses runs a multi-row expense query and scans all results.
func (r *pgExpenseRepo) queryExpenses(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.Expense, error) {
	var rows pgx.Rows
	var err error
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.%s: scan: %w", op, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.%s: rows: %w", op, err)
	}

	return expenses, nil
}

// scanExpense maps a single database row into a domain.Expense.
// The amount arrives as a decimal string (see expenseColumns) and is parsed
// into an exact decimal.
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e           domain.Expense
		amount      string
		expenseDate pgtype.Date
		category    string
	)

	err := s.Scan(&e.ID, &e.Name, &amount, &e.Currency, &expenseDate,
		&category, &e.TripID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, err
	}

	e.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	e.ExpenseDate = expenseDate.Time
	e.Category = domain.Category(category)

	return e, nil
}
