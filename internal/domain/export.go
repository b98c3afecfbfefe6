package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per expense, with trip fields
// repeated for every expense on that trip. Trips with no expenses yield one
// row with empty expense fields.
//
// Dates are pre-formatted "2006-01-02" strings and Amount is a fixed
// two-decimal string so the row can be written to CSV or JSON unchanged.
type ExportRow struct {
	// Trip fields — repeated for every expense on the trip.
	TripID          int64
	TripName        string
	TripDestination string
	TripStartDate   string
	TripEndDate     string

	// Expense fields — empty strings when the trip has no expenses.
	ExpenseName string
	Amount      string // e.g. "49.99"
	Currency    string
	ExpenseDate string
	Category    string
}
