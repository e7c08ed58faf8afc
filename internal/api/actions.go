package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/resistwatch/resistwatch/internal/store"
	"github.com/resistwatch/resistwatch/pkg/scoring"
)

type createActionRequest struct {
	PoliticianID   string  `json:"politician_id"`
	ActionType     string  `json:"action_type"`
	ActionDate     string  `json:"action_date"` // YYYY-MM-DD or RFC 3339
	Description    string  `json:"description"`
	SourceURL      *string `json:"source_url,omitempty"`
	Points         int     `json:"points"`
	Category       string  `json:"category"`
	SubCategory    *string `json:"sub_category,omitempty"`
	ImpactLevel    *string `json:"impact_level,omitempty"`
	RiskLevel      *string `json:"risk_level,omitempty"`
	StrategicValue *string `json:"strategic_value,omitempty"`
	HasFollowUp    bool    `json:"has_follow_up"`
	CreatedBy      *string `json:"created_by,omitempty"`
}

type actionResponse struct {
	ID                  string     `json:"id"`
	PoliticianID        string     `json:"politician_id"`
	ActionType          string     `json:"action_type"`
	ActionDate          time.Time  `json:"action_date"`
	Description         string     `json:"description"`
	SourceURL           *string    `json:"source_url,omitempty"`
	Points              int        `json:"points"`
	Category            string     `json:"category"`
	SubCategory         *string    `json:"sub_category,omitempty"`
	ImpactLevel         *string    `json:"impact_level,omitempty"`
	RiskLevel           *string    `json:"risk_level,omitempty"`
	StrategicValue      *string    `json:"strategic_value,omitempty"`
	HasFollowUp         bool       `json:"has_follow_up"`
	VerificationStatus  string     `json:"verification_status"`
	VerifiedBy          *string    `json:"verified_by,omitempty"`
	VerifiedAt          *time.Time `json:"verified_at,omitempty"`
	ContradictionFlag   bool       `json:"contradiction_flag"`
	ContradictionNotes  *string    `json:"contradiction_notes,omitempty"`
	TimeValue           float64    `json:"time_value"`
	PerformanceModifier float64    `json:"performance_modifier"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toActionResponse(a *store.Action) actionResponse {
	return actionResponse{
		ID:                  a.ID,
		PoliticianID:        a.PoliticianID,
		ActionType:          string(a.Type),
		ActionDate:          a.Date,
		Description:         a.Description,
		SourceURL:           a.SourceURL,
		Points:              a.Points,
		Category:            string(a.Category),
		SubCategory:         a.SubCategory,
		ImpactLevel:         a.ImpactLevel,
		RiskLevel:           a.RiskLevel,
		StrategicValue:      a.StrategicValue,
		HasFollowUp:         a.HasFollowUp,
		VerificationStatus:  string(a.VerificationStatus),
		VerifiedBy:          a.VerifiedBy,
		VerifiedAt:          a.VerifiedAt,
		ContradictionFlag:   a.ContradictionFlag,
		ContradictionNotes:  a.ContradictionNotes,
		TimeValue:           a.TimeValue,
		PerformanceModifier: a.PerformanceModifier,
		CreatedAt:           a.CreatedAt,
	}
}

func parseActionDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// handleCreateAction records a new action. Actions always enter pending and
// do not affect any score until verified.
func (h *Handler) handleCreateAction(w http.ResponseWriter, r *http.Request) {
	var req createActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	date, err := parseActionDate(req.ActionDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "action_date must be YYYY-MM-DD or RFC 3339")
		return
	}

	a, err := h.store.CreateAction(r.Context(), store.NewActionInput{
		PoliticianID:   req.PoliticianID,
		Type:           scoring.ActionType(req.ActionType),
		Date:           date,
		Description:    req.Description,
		SourceURL:      req.SourceURL,
		Points:         req.Points,
		Category:       scoring.Category(req.Category),
		SubCategory:    req.SubCategory,
		ImpactLevel:    req.ImpactLevel,
		RiskLevel:      req.RiskLevel,
		StrategicValue: req.StrategicValue,
		HasFollowUp:    req.HasFollowUp,
		CreatedBy:      req.CreatedBy,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toActionResponse(a))
}

type resolveActionRequest struct {
	VerifierID string `json:"verifier_id"`
}

// handleVerifyAction marks a pending action verified, screens it for
// contradictions, and recalculates the politician's scores.
func (h *Handler) handleVerifyAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actionID := r.PathValue("actionID")

	var req resolveActionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	a, err := h.store.MarkVerified(ctx, actionID, req.VerifierID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "action not found")
		return
	}
	if err != nil {
		if strings.Contains(err.Error(), "not pending") {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := h.recalc.ProcessVerifiedAction(ctx, a.ID)
	if err != nil {
		// The verification itself committed; report the action and the
		// recalculation failure.
		log.Printf("verify action %s: recalculation failed: %v", a.ID, err)
		writeJSON(w, http.StatusOK, map[string]any{
			"action":       toActionResponse(a),
			"recalc_error": err.Error(),
		})
		return
	}

	// Re-read so contradiction flags set during processing are reflected.
	if refreshed, err := h.store.GetAction(ctx, a.ID); err == nil {
		a = refreshed
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"action": toActionResponse(a),
		"score":  result,
	})
}

// handleRejectAction marks a pending action rejected. Rejected actions
// never enter scoring, so no recalculation is needed.
func (h *Handler) handleRejectAction(w http.ResponseWriter, r *http.Request) {
	actionID := r.PathValue("actionID")

	var req resolveActionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	a, err := h.store.MarkRejected(r.Context(), actionID, req.VerifierID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "action not found")
		return
	}
	if err != nil {
		if strings.Contains(err.Error(), "not pending") {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toActionResponse(a))
}

func (h *Handler) handlePendingActions(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 20)
	actions, err := h.store.PendingActions(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]actionResponse, 0, len(actions))
	for i := range actions {
		out = append(out, toActionResponse(&actions[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"actions": out})
}
