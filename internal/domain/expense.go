package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the closed set of expense categories.
type Category string

// The only valid expense categories. The database enforces the same set
// with a CHECK constraint as a backstop.
const (
	CategoryFood          Category = "Food"
	CategoryAccommodation Category = "Accommodation"
	CategoryTransport     Category = "Transport"
	CategoryActivities    Category = "Activities"
	CategoryOther         Category = "Other"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryAccommodation,
	CategoryTransport,
	CategoryActivities,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a monetary record tied to exactly one trip.
// Amount is an exact decimal with two fractional digits; money never touches
// binary floating point inside the domain.
type Expense struct {
	ID          int64
	Name        string
	Amount      decimal.Decimal
	Currency    string
	ExpenseDate time.Time // date-only, midnight UTC
	Category    Category
	TripID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseUpdate is a sparse update record for an expense. Only non-nil
// fields overwrite stored values. A non-nil TripID reassigns the expense to
// another trip, which must exist.
type ExpenseUpdate struct {
	ID          int64
	Name        *string
	Amount      *decimal.Decimal
	Currency    *string
	ExpenseDate *time.Time
	Category    *Category
	TripID      *int64
}
