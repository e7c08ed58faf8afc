package store

import (
	"context"
	"fmt"
	"time"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

// Score is the current computed state for one politician: exactly one row
// per subject, written only by the recalculation orchestrator.
type Score struct {
	ID                          string
	PoliticianID                string
	TotalScore                  int
	PublicStatementsScore       int
	LegislativeActionScore      int
	PublicEngagementScore       int
	SocialMediaScore            int
	ConsistencyScore            int
	StrategicIntegrity          int
	InfrastructureUnderstanding int
	PerformanceVsImpact         int
	ResistanceLevel             scoring.ResistanceLevel
	DaysOfSilence               int
	LastActivityDate            *time.Time
	LastCalculated              time.Time
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// Categories assembles the per-category scores for classification or
// display.
func (sc *Score) Categories() scoring.CategoryScores {
	return scoring.CategoryScores{
		PublicStatements:  sc.PublicStatementsScore,
		LegislativeAction: sc.LegislativeActionScore,
		PublicEngagement:  sc.PublicEngagementScore,
		SocialMedia:       sc.SocialMediaScore,
		Consistency:       sc.ConsistencyScore,
	}
}

// Status returns the single-axis status label for this score.
func (sc *Score) Status() string {
	return scoring.StatusFor(sc.TotalScore)
}

const scoreColumns = `id, politician_id, total_score,
	public_statements_score, legislative_action_score, public_engagement_score,
	social_media_score, consistency_score,
	strategic_integrity_score, infrastructure_understanding_score, performance_vs_impact_score,
	resistance_level, days_of_silence, last_activity_date, last_calculated,
	created_at, updated_at`

func scanScore(scanner interface{ Scan(...any) error }) (*Score, error) {
	sc := &Score{}
	err := scanner.Scan(
		&sc.ID, &sc.PoliticianID, &sc.TotalScore,
		&sc.PublicStatementsScore, &sc.LegislativeActionScore, &sc.PublicEngagementScore,
		&sc.SocialMediaScore, &sc.ConsistencyScore,
		&sc.StrategicIntegrity, &sc.InfrastructureUnderstanding, &sc.PerformanceVsImpact,
		&sc.ResistanceLevel, &sc.DaysOfSilence, &sc.LastActivityDate, &sc.LastCalculated,
		&sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// GetScore returns the current score for a politician.
func (s *Service) GetScore(ctx context.Context, politicianID string) (*Score, error) {
	sc, err := scanScore(s.db.QueryRowContext(ctx,
		`SELECT `+scoreColumns+` FROM politician_scores WHERE politician_id = $1`,
		politicianID))
	if err != nil {
		return nil, notFound(fmt.Sprintf("get score for %s", politicianID), err)
	}
	return sc, nil
}

// TopScorers returns the highest-scoring politicians, up to limit.
func (s *Service) TopScorers(ctx context.Context, limit int) ([]Score, error) {
	return s.listScores(ctx, `ORDER BY total_score DESC`, limit)
}

// BottomScorers returns the lowest-scoring politicians, up to limit.
func (s *Service) BottomScorers(ctx context.Context, limit int) ([]Score, error) {
	return s.listScores(ctx, `ORDER BY total_score ASC`, limit)
}

func (s *Service) listScores(ctx context.Context, order string, limit int) ([]Score, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+scoreColumns+` FROM politician_scores `+order+` LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var out []Score
	for rows.Next() {
		sc, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, *sc)
	}
	return out, rows.Err()
}

// ScoresByResistanceLevel returns politicians at the given level, highest
// total first.
func (s *Service) ScoresByResistanceLevel(ctx context.Context, level scoring.ResistanceLevel, limit int) ([]Score, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+scoreColumns+`
		 FROM politician_scores
		 WHERE resistance_level = $1
		 ORDER BY total_score DESC
		 LIMIT $2`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scores by resistance level: %w", err)
	}
	defer rows.Close()

	var out []Score
	for rows.Next() {
		sc, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, *sc)
	}
	return out, rows.Err()
}

// HistoryEntry is one append-only score_history row.
type HistoryEntry struct {
	ID                     string
	PoliticianID           string
	TotalScore             int
	PublicStatementsScore  int
	LegislativeActionScore int
	PublicEngagementScore  int
	SocialMediaScore       int
	ConsistencyScore       int
	DaysOfSilence          int
	RecordedDate           time.Time
	CreatedAt              time.Time
}

// ScoreHistory returns history rows for a politician within the trailing
// day window, oldest first, for trend reconstruction.
func (s *Service) ScoreHistory(ctx context.Context, politicianID string, days int) ([]HistoryEntry, error) {
	if days <= 0 {
		days = 90
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, politician_id, total_score,
			public_statements_score, legislative_action_score, public_engagement_score,
			social_media_score, consistency_score, days_of_silence, recorded_date, created_at
		 FROM score_history
		 WHERE politician_id = $1 AND recorded_date >= now() - make_interval(days => $2)
		 ORDER BY recorded_date ASC, created_at ASC`,
		politicianID, days,
	)
	if err != nil {
		return nil, fmt.Errorf("score history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(
			&h.ID, &h.PoliticianID, &h.TotalScore,
			&h.PublicStatementsScore, &h.LegislativeActionScore, &h.PublicEngagementScore,
			&h.SocialMediaScore, &h.ConsistencyScore, &h.DaysOfSilence, &h.RecordedDate, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Component is one score_components row: the denormalized per-category
// breakdown, one row per (politician, category).
type Component struct {
	ID           string
	PoliticianID string
	Category     scoring.Category
	Score        int
	Weight       float64
	LastUpdated  time.Time
}

// Components returns the per-category breakdown for a politician, ordered
// by category.
func (s *Service) Components(ctx context.Context, politicianID string) ([]Component, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, politician_id, category, score, weight, last_updated
		 FROM score_components
		 WHERE politician_id = $1
		 ORDER BY category ASC`,
		politicianID,
	)
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	defer rows.Close()

	var out []Component
	for rows.Next() {
		var c Component
		if err := rows.Scan(&c.ID, &c.PoliticianID, &c.Category, &c.Score, &c.Weight, &c.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
