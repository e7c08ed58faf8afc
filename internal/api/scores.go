package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/resistwatch/resistwatch/internal/store"
	"github.com/resistwatch/resistwatch/pkg/scoring"
)

type scoreResponse struct {
	PoliticianID                string                 `json:"politician_id"`
	TotalScore                  int                    `json:"total_score"`
	Categories                  scoring.CategoryScores `json:"category_scores"`
	StrategicIntegrity          int                    `json:"strategic_integrity_score"`
	InfrastructureUnderstanding int                    `json:"infrastructure_understanding_score"`
	PerformanceVsImpact         int                    `json:"performance_vs_impact_score"`
	ResistanceLevel             string                 `json:"resistance_level"`
	Status                      string                 `json:"status"`
	DaysOfSilence               int                    `json:"days_of_silence"`
	LastActivityDate            *time.Time             `json:"last_activity_date,omitempty"`
	LastCalculated              time.Time              `json:"last_calculated"`
}

func toScoreResponse(sc *store.Score) scoreResponse {
	return scoreResponse{
		PoliticianID:                sc.PoliticianID,
		TotalScore:                  sc.TotalScore,
		Categories:                  sc.Categories(),
		StrategicIntegrity:          sc.StrategicIntegrity,
		InfrastructureUnderstanding: sc.InfrastructureUnderstanding,
		PerformanceVsImpact:         sc.PerformanceVsImpact,
		ResistanceLevel:             string(sc.ResistanceLevel),
		Status:                      sc.Status(),
		DaysOfSilence:               sc.DaysOfSilence,
		LastActivityDate:            sc.LastActivityDate,
		LastCalculated:              sc.LastCalculated,
	}
}

func parseLimit(r *http.Request, fallback int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (h *Handler) handleTopScores(w http.ResponseWriter, r *http.Request) {
	h.writeScoreList(w, r, h.store.TopScorers)
}

func (h *Handler) handleBottomScores(w http.ResponseWriter, r *http.Request) {
	h.writeScoreList(w, r, h.store.BottomScorers)
}

func (h *Handler) writeScoreList(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, limit int) ([]store.Score, error)) {
	scores, err := list(r.Context(), parseLimit(r, 10))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]scoreResponse, 0, len(scores))
	for i := range scores {
		out = append(out, toScoreResponse(&scores[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"scores": out})
}

func (h *Handler) handleScoresByLevel(w http.ResponseWriter, r *http.Request) {
	level := scoring.ResistanceLevel(r.PathValue("level"))
	switch level {
	case scoring.LevelDefender, scoring.LevelActiveResistor,
		scoring.LevelInconsistentAdvocate, scoring.LevelComplicitEnabler:
	default:
		writeError(w, http.StatusBadRequest, "unknown resistance level")
		return
	}

	scores, err := h.store.ScoresByResistanceLevel(r.Context(), level, parseLimit(r, 20))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]scoreResponse, 0, len(scores))
	for i := range scores {
		out = append(out, toScoreResponse(&scores[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"resistance_level": string(level),
		"scores":           out,
	})
}
