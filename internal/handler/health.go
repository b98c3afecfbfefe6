package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/trip-planner/internal/api"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}

// Healthcheck handles POST /rpc/healthcheck, the RPC-surface twin of
// /healthz that clients poll; it adds a server timestamp.
func (s *Server) Healthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthcheckResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
