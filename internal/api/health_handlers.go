package api

import (
	"net/http"

	"github.com/Sumantkumarraj20/KLD/internal/logger"
)

// handleHealth returns a liveness probe - always returns 200 OK.
// This endpoint indicates the server process is running.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady returns a readiness probe - checks if the service is ready to accept traffic.
// Returns 200 if the database is reachable, 503 otherwise.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if err := s.DB.PingContext(ctx); err != nil {
		log.Warn("readiness check failed - database: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
