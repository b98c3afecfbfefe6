// Package handler — export.go implements GET /export.
// Returns all trips and their expenses as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_destination", "trip_start_date", "trip_end_date",
	"expense_name", "amount", "currency", "expense_date", "category",
}

// GetExport implements GET /export.
// It returns one flat row per expense, with trip fields repeated; trips
// without expenses contribute one row with empty expense fields.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]api.ExportRow, len(rows))
	for i, row := range rows {
		out[i] = exportRowToResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV streams the export rows as text/csv.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-planner-export.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		slog.Error("write csv header", "error", err)
		return
	}
	for _, row := range rows {
		if err := cw.Write(exportRowToRecord(row)); err != nil {
			slog.Error("write csv row", "error", err)
			return
		}
	}
	cw.Flush()
}

// exportRowToResponse maps a domain.ExportRow to the wire api.ExportRow type.
func exportRowToResponse(row domain.ExportRow) api.ExportRow {
	return api.ExportRow{
		TripID:          row.TripID,
		TripName:        row.TripName,
		TripDestination: row.TripDestination,
		TripStartDate:   row.TripStartDate,
		TripEndDate:     row.TripEndDate,
		ExpenseName:     row.ExpenseName,
		Amount:          row.Amount,
		Currency:        row.Currency,
		ExpenseDate:     row.ExpenseDate,
		Category:        row.Category,
	}
}

// exportRowToRecord encodes a domain.ExportRow as a flat string slice for CSV.
func exportRowToRecord(row domain.ExportRow) []string {
	return []string{
		strconv.FormatInt(row.TripID, 10),
		row.TripName,
		row.TripDestination,
		row.TripStartDate,
		row.TripEndDate,
		row.ExpenseName,
		row.Amount,
		row.Currency,
		row.ExpenseDate,
		row.Category,
	}
}
