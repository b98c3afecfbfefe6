package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ExportService assembles a full flat export of all trips and their expenses.
type ExportService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExportService {
	return &ExportService{trips: trips, expenses: expenses}
}

// Export returns one ExportRow per expense across all trips, following the
// trip listing order (newest trip first, expenses oldest first within a
// trip). Trips with no expenses contribute one row with empty expense fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		expenses, err := s.expenses.ListByTripID(ctx, trip.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: trip %d: %w", trip.ID, err)
		}

		if len(expenses) == 0 {
			rows = append(rows, tripRow(trip))
			continue
		}
		for _, e := range expenses {
			row := tripRow(trip)
			row.ExpenseName = e.Name
			row.Amount = e.Amount.StringFixed(2)
			row.Currency = e.Currency
			row.ExpenseDate = formatDate(e.ExpenseDate)
			row.Category = string(e.Category)
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// tripRow builds an ExportRow with only the trip fields populated.
func tripRow(trip domain.Trip) domain.ExportRow {
	return domain.ExportRow{
		TripID:          trip.ID,
		TripName:        trip.Name,
		TripDestination: trip.Destination,
		TripStartDate:   formatDate(trip.StartDate),
		TripEndDate:     formatDate(trip.EndDate),
	}
}

// formatDate renders a date-only value as "2006-01-02".
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
