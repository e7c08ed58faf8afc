// Package api implements the Resistwatch REST API.
// It provides politician, action, and score endpoints backed by Postgres,
// plus the recalculation trigger.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/resistwatch/resistwatch/internal/recalc"
	"github.com/resistwatch/resistwatch/internal/store"
)

// Handler is the top-level API handler for the Resistwatch service.
type Handler struct {
	db     *sql.DB
	store  *store.Service
	recalc *recalc.Service
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, storeSvc *store.Service, recalcSvc *recalc.Service) *Handler {
	return &Handler{
		db:     db,
		store:  storeSvc,
		recalc: recalcSvc,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/recalc", h.handleRecalc)
	mux.HandleFunc("POST /api/politicians", h.handleCreatePolitician)
	mux.HandleFunc("POST /api/actions", h.handleCreateAction)
	mux.HandleFunc("POST /api/actions/{actionID}/verify", h.handleVerifyAction)
	mux.HandleFunc("POST /api/actions/{actionID}/reject", h.handleRejectAction)
	mux.HandleFunc("POST /api/actions/{actionID}/evidence", h.handleAddEvidence)

	// Read endpoints
	mux.HandleFunc("GET /api/politicians", h.handleListPoliticians)
	mux.HandleFunc("GET /api/politicians/{politicianID}/breakdown", h.handleBreakdown)
	mux.HandleFunc("GET /api/politicians/{politicianID}/history", h.handleHistory)
	mux.HandleFunc("GET /api/actions/pending", h.handlePendingActions)
	mux.HandleFunc("GET /api/actions/{actionID}/evidence", h.handleListEvidence)
	mux.HandleFunc("GET /api/scores/top", h.handleTopScores)
	mux.HandleFunc("GET /api/scores/bottom", h.handleBottomScores)
	mux.HandleFunc("GET /api/scores/level/{level}", h.handleScoresByLevel)

	mux.HandleFunc("GET /healthz", h.handleHealthz)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
