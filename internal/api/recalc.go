package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/resistwatch/resistwatch/internal/store"
)

type recalcRequest struct {
	PoliticianID string `json:"politician_id"` // optional; empty means all
}

type recalcResponse struct {
	Recalculated int `json:"recalculated"`
}

// handleRecalc re-runs the scoring engine. With a politician_id it
// recalculates that subject and returns the fresh result; without one it
// recalculates everyone.
func (h *Handler) handleRecalc(w http.ResponseWriter, r *http.Request) {
	var req recalcRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	ctx := r.Context()

	if req.PoliticianID != "" {
		result, err := h.recalc.Recalculate(ctx, req.PoliticianID)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "politician not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"politician_id": req.PoliticianID,
			"score":         result,
		})
		return
	}

	processed, err := h.recalc.RecalculateAll(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, recalcResponse{Recalculated: processed})
}
