package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/resistwatch/resistwatch/internal/store"
)

type addEvidenceRequest struct {
	SourceType string  `json:"source_type"`
	URL        string  `json:"url"`
	Title      *string `json:"title,omitempty"`
}

type evidenceResponse struct {
	ID         string    `json:"id"`
	ActionID   string    `json:"action_id"`
	SourceType string    `json:"source_type"`
	URL        string    `json:"url"`
	Title      *string   `json:"title,omitempty"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

func toEvidenceResponse(e *store.EvidenceSource) evidenceResponse {
	return evidenceResponse{
		ID:         e.ID,
		ActionID:   e.ActionID,
		SourceType: e.SourceType,
		URL:        e.URL,
		Title:      e.Title,
		Confidence: e.Confidence,
		CreatedAt:  e.CreatedAt,
	}
}

// handleAddEvidence attaches an evidence source to an action. Confidence is
// derived from the source type and is informational only.
func (h *Handler) handleAddEvidence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actionID := r.PathValue("actionID")

	var req addEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if !store.ValidSourceType(req.SourceType) {
		writeError(w, http.StatusBadRequest, "unknown source_type")
		return
	}

	if _, err := h.store.GetAction(ctx, actionID); errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "action not found")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	e, err := h.store.AddEvidence(ctx, actionID, req.SourceType, req.URL, req.Title)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toEvidenceResponse(e))
}

func (h *Handler) handleListEvidence(w http.ResponseWriter, r *http.Request) {
	sources, err := h.store.FindEvidence(r.Context(), r.PathValue("actionID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]evidenceResponse, 0, len(sources))
	for i := range sources {
		out = append(out, toEvidenceResponse(&sources[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"evidence": out})
}
