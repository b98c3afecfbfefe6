package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/spec"
)

// NewRouter registers every operation on a chi router.
//
// All procedures live under the single /rpc endpoint family: each call is a
// POST to /rpc/<name> with a JSON input body and a JSON result. Queries have
// no side effects; mutations create, update, or delete. Outside /rpc there
// are only the operational routes: /healthz, /export, and the embedded API
// document at /openapi.yaml.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/export", s.GetExport)
	r.Get("/openapi.yaml", serveSpec)

	r.Route("/rpc", func(r chi.Router) {
		// Queries.
		r.Post("/healthcheck", s.Healthcheck)
		r.Post("/getTrips", s.GetTrips)
		r.Post("/getTripById", s.GetTripByID)
		r.Post("/getExpenses", s.GetExpenses)
		r.Post("/getExpensesByTrip", s.GetExpensesByTrip)
		r.Post("/getExpenseById", s.GetExpenseByID)

		// Mutations.
		r.Post("/createTrip", s.CreateTrip)
		r.Post("/updateTrip", s.UpdateTrip)
		r.Post("/deleteTrip", s.DeleteTrip)
		r.Post("/createExpense", s.CreateExpense)
		r.Post("/updateExpense", s.UpdateExpense)
		r.Post("/deleteExpense", s.DeleteExpense)
	})

	return r
}

// serveSpec returns the embedded OpenAPI document.
// Serving it from the binary means the document and the running code are
// always in sync.
func serveSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
