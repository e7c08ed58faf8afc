package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/resistwatch/resistwatch/internal/store"
)

type createPoliticianRequest struct {
	Name     string  `json:"name"`
	Party    *string `json:"party,omitempty"`
	State    *string `json:"state,omitempty"`
	Position *string `json:"position,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

type politicianResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Party     *string   `json:"party,omitempty"`
	State     *string   `json:"state,omitempty"`
	Position  *string   `json:"position,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toPoliticianResponse(p *store.Politician) politicianResponse {
	return politicianResponse{
		ID:        p.ID,
		Name:      p.Name,
		Party:     p.Party,
		State:     p.State,
		Position:  p.Position,
		PhotoURL:  p.PhotoURL,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

func (h *Handler) handleCreatePolitician(w http.ResponseWriter, r *http.Request) {
	var req createPoliticianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	p, err := h.store.CreatePolitician(r.Context(), req.Name, req.Party, req.State, req.Position, req.PhotoURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toPoliticianResponse(p))
}

func (h *Handler) handleListPoliticians(w http.ResponseWriter, r *http.Request) {
	politicians, err := h.store.ListPoliticians(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]politicianResponse, 0, len(politicians))
	for i := range politicians {
		out = append(out, toPoliticianResponse(&politicians[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"politicians": out})
}

type breakdownResponse struct {
	Politician    politicianResponse    `json:"politician"`
	Score         *scoreResponse        `json:"score,omitempty"`
	Status        string                `json:"status"`
	Components    []componentResponse   `json:"components"`
	RecentActions []actionResponse      `json:"recent_actions"`
	History       []historyResponse     `json:"history"`
}

type componentResponse struct {
	Category    string    `json:"category"`
	Score       int       `json:"score"`
	Weight      float64   `json:"weight"`
	LastUpdated time.Time `json:"last_updated"`
}

// handleBreakdown returns the full scoring picture for one politician:
// the current score, its per-category components, recent verified actions,
// and the trailing history window.
func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	politicianID := r.PathValue("politicianID")

	p, err := h.store.GetPolitician(ctx, politicianID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "politician not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := breakdownResponse{
		Politician:    toPoliticianResponse(p),
		Components:    []componentResponse{},
		RecentActions: []actionResponse{},
		History:       []historyResponse{},
	}

	// A politician who has never been scored still gets a breakdown, with
	// no score block.
	sc, err := h.store.GetScore(ctx, politicianID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		resp.Status = ""
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	default:
		s := toScoreResponse(sc)
		resp.Score = &s
		resp.Status = sc.Status()
	}

	components, err := h.store.Components(ctx, politicianID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for i := range components {
		c := &components[i]
		resp.Components = append(resp.Components, componentResponse{
			Category:    string(c.Category),
			Score:       c.Score,
			Weight:      c.Weight,
			LastUpdated: c.LastUpdated,
		})
	}

	actions, err := h.store.RecentVerifiedActions(ctx, politicianID, 10)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for i := range actions {
		resp.RecentActions = append(resp.RecentActions, toActionResponse(&actions[i]))
	}

	history, err := h.store.ScoreHistory(ctx, politicianID, 90)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for i := range history {
		resp.History = append(resp.History, toHistoryResponse(&history[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

type historyResponse struct {
	TotalScore    int       `json:"total_score"`
	DaysOfSilence int       `json:"days_of_silence"`
	RecordedDate  time.Time `json:"recorded_date"`
}

func toHistoryResponse(h *store.HistoryEntry) historyResponse {
	return historyResponse{
		TotalScore:    h.TotalScore,
		DaysOfSilence: h.DaysOfSilence,
		RecordedDate:  h.RecordedDate,
	}
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	politicianID := r.PathValue("politicianID")

	days := 90
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	history, err := h.store.ScoreHistory(r.Context(), politicianID, days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]historyResponse, 0, len(history))
	for i := range history {
		out = append(out, toHistoryResponse(&history[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"politician_id": politicianID,
		"days":          days,
		"history":       out,
	})
}
