package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
)

type mockExpenseRepo struct {
	create       func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	getByID      func(ctx context.Context, id int64) (domain.Expense, error)
	list         func(ctx context.Context) ([]domain.Expense, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.Expense, error)
	update       func(ctx context.Context, upd domain.ExpenseUpdate) (domain.Expense, error)
	delete       func(ctx context.Context, id int64) (bool, error)
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	return m.create(ctx, expense)
}
func (m *mockExpenseRepo) GetByID(ctx context.Context, id int64) (domain.Expense, error) {
	return m.getByID(ctx, id)
}
func (m *mockExpenseRepo) List(ctx context.Context) ([]domain.Expense, error) {
	return m.list(ctx)
}
func (m *mockExpenseRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockExpenseRepo) Update(ctx context.Context, upd domain.ExpenseUpdate) (domain.Expense, error) {
	return m.update(ctx, upd)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return m.delete(ctx, id)
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validExpense() domain.Expense {
	return domain.Expense{
		Name:        "Hotel night",
		Amount:      decimal.RequireFromString("49.99"),
		Currency:    "EUR",
		ExpenseDate: day(2024, 6, 2),
		Category:    domain.CategoryAccommodation,
		TripID:      1,
	}
}

// tripExists is a trip repo that reports every id as present.
func tripExists() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id int64) (domain.Trip, error) {
			return domain.Trip{ID: id}, nil
		},
	}
}

// tripMissing is a trip repo that reports every id as absent.
func tripMissing() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ int64) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

func echoExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{
		create: func(_ context.Context, e domain.Expense) (domain.Expense, error) { return e, nil },
		getByID: func(_ context.Context, id int64) (domain.Expense, error) {
			e := validExpense()
			e.ID = id
			return e, nil
		},
		update: func(_ context.Context, upd domain.ExpenseUpdate) (domain.Expense, error) {
			return domain.Expense{ID: upd.ID}, nil
		},
	}
}

// ---- Create tests ----------------------------------------------------------

func TestExpenseService_Create_Valid(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	got, err := svc.Create(context.Background(), validExpense())

	require.NoError(t, err)
	assert.Equal(t, "Hotel night", got.Name)
}

func TestExpenseService_Create_MissingTrip(t *testing.T) {
	expenses := &mockExpenseRepo{
		create: func(_ context.Context, _ domain.Expense) (domain.Expense, error) {
			t.Fatal("create must not be called when the trip does not exist")
			return domain.Expense{}, nil
		},
	}
	svc := service.NewExpenseService(expenses, tripMissing())

	e := validExpense()
	e.TripID = 999999

	_, err := svc.Create(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "999999")
}

func TestExpenseService_Create_NonPositiveTripID(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	e := validExpense()
	e.TripID = 0

	_, err := svc.Create(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseService_Create_NonPositiveAmount(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	for _, amount := range []string{"0", "-5.00"} {
		e := validExpense()
		e.Amount = decimal.RequireFromString(amount)

		_, err := svc.Create(context.Background(), e)

		assert.ErrorIs(t, err, domain.ErrValidation, "amount %s should be rejected", amount)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "amount", ve.Field)
	}
}

func TestExpenseService_Create_UnknownCategory(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	e := validExpense()
	e.Category = "Gambling"

	_, err := svc.Create(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrValidation)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "category", ve.Field)
	// The message spells out the allowed values.
	assert.Contains(t, ve.Message, "Food")
	assert.Contains(t, ve.Message, "Other")
}

func TestExpenseService_Create_MissingName(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	e := validExpense()
	e.Name = " "

	_, err := svc.Create(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseService_Create_MissingCurrency(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	e := validExpense()
	e.Currency = ""

	_, err := svc.Create(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- GetByID tests ---------------------------------------------------------

func TestExpenseService_GetByID_NotFoundNamesID(t *testing.T) {
	expenses := &mockExpenseRepo{
		getByID: func(_ context.Context, _ int64) (domain.Expense, error) {
			return domain.Expense{}, domain.ErrNotFound
		},
	}
	svc := service.NewExpenseService(expenses, tripExists())

	_, err := svc.GetByID(context.Background(), 424242)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "424242")
}

// ---- List tests ------------------------------------------------------------

func TestExpenseService_List_EmptyIsNotNil(t *testing.T) {
	expenses := &mockExpenseRepo{
		list: func(_ context.Context) ([]domain.Expense, error) { return nil, nil },
	}
	svc := service.NewExpenseService(expenses, tripExists())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExpenseService_ListByTripID_NoExistenceCheck(t *testing.T) {
	// An unknown trip yields an empty list, not a not-found error.
	expenses := &mockExpenseRepo{
		listByTripID: func(_ context.Context, _ int64) ([]domain.Expense, error) { return nil, nil },
	}
	svc := service.NewExpenseService(expenses, tripMissing())

	got, err := svc.ListByTripID(context.Background(), 999999)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExpenseService_ListByTripID_NonPositiveID(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	_, err := svc.ListByTripID(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Update tests ----------------------------------------------------------

func TestExpenseService_Update_PartialAmount(t *testing.T) {
	var gotUpd domain.ExpenseUpdate
	expenses := echoExpenseRepo()
	expenses.update = func(_ context.Context, upd domain.ExpenseUpdate) (domain.Expense, error) {
		gotUpd = upd
		return domain.Expense{ID: upd.ID}, nil
	}
	svc := service.NewExpenseService(expenses, tripExists())

	amount := decimal.RequireFromString("123.45")
	_, err := svc.Update(context.Background(), domain.ExpenseUpdate{ID: 5, Amount: &amount})

	require.NoError(t, err)
	require.NotNil(t, gotUpd.Amount)
	assert.True(t, gotUpd.Amount.Equal(amount))
	assert.Nil(t, gotUpd.Name)
}

func TestExpenseService_Update_ExpenseNotFoundWinsOverTrip(t *testing.T) {
	// Both the expense and the supplied trip are missing; the expense lookup
	// happens first, so its not-found error is the one reported.
	expenses := &mockExpenseRepo{
		getByID: func(_ context.Context, _ int64) (domain.Expense, error) {
			return domain.Expense{}, domain.ErrNotFound
		},
	}
	svc := service.NewExpenseService(expenses, tripMissing())

	tripID := int64(888888)
	_, err := svc.Update(context.Background(), domain.ExpenseUpdate{ID: 777777, TripID: &tripID})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "expense")
	assert.ErrorContains(t, err, "777777")
}

func TestExpenseService_Update_ReassignToMissingTrip(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripMissing())

	tripID := int64(888888)
	_, err := svc.Update(context.Background(), domain.ExpenseUpdate{ID: 5, TripID: &tripID})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "trip")
	assert.ErrorContains(t, err, "888888")
}

func TestExpenseService_Update_InvalidCategory(t *testing.T) {
	svc := service.NewExpenseService(echoExpenseRepo(), tripExists())

	bad := domain.Category("Misc")
	_, err := svc.Update(context.Background(), domain.ExpenseUpdate{ID: 5, Category: &bad})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete tests ----------------------------------------------------------

func TestExpenseService_Delete_AbsentIsNotAnError(t *testing.T) {
	expenses := &mockExpenseRepo{
		delete: func(_ context.Context, _ int64) (bool, error) { return false, nil },
	}
	svc := service.NewExpenseService(expenses, tripExists())

	deleted, err := svc.Delete(context.Background(), 999999)

	require.NoError(t, err)
	assert.False(t, deleted)
}
