package recalc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/resistwatch/resistwatch/internal/store"
	"github.com/resistwatch/resistwatch/pkg/scoring"
)

// Service owns every write to the computed score artifacts. Reads go
// through the store service; all recalculation writes happen here, inside
// a single transaction per subject.
type Service struct {
	db      *sql.DB
	engine  *scoring.Engine
	storage StorageClient
	now     func() time.Time
}

// NewService creates a recalculation Service. storage may be nil, in which
// case assessment archival is skipped.
func NewService(db *sql.DB, engine *scoring.Engine, storage StorageClient) *Service {
	return &Service{
		db:      db,
		engine:  engine,
		storage: storage,
		now:     time.Now,
	}
}

// Recalculate recomputes one politician's scores from their verified
// actions and persists the result. The politician row is locked for the
// duration, so concurrent recalculations of the same subject serialize.
// Everything commits or nothing does.
func (s *Service) Recalculate(ctx context.Context, politicianID string) (*scoring.Result, error) {
	now := s.now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin recalculation: %w", err)
	}
	defer tx.Rollback()

	var locked string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM politicians WHERE id = $1 FOR UPDATE`, politicianID,
	).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recalculate %s: %w", politicianID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock politician %s: %w", politicianID, err)
	}

	actions, err := loadVerifiedActions(ctx, tx, politicianID)
	if err != nil {
		return nil, err
	}

	// A committee lookup failure degrades to "no committees" rather than
	// aborting the run.
	committees, err := loadCommittees(ctx, tx, politicianID)
	if err != nil {
		log.Printf("recalc %s: committee lookup failed, scoring without committees: %v", politicianID, err)
		committees = nil
	}

	result, err := s.engine.Compute(actions, committees, now)
	if err != nil {
		return nil, fmt.Errorf("compute scores for %s: %w", politicianID, err)
	}

	for i := range result.Actions {
		a := &result.Actions[i]
		if _, err := tx.ExecContext(ctx,
			`UPDATE scoring_actions SET time_value = $1, performance_modifier = $2, updated_at = now()
			 WHERE id = $3`,
			a.TimeValue, a.PerformanceModifier, a.ID,
		); err != nil {
			return nil, fmt.Errorf("write back derived values for action %s: %w", a.ID, err)
		}
	}

	if err := upsertScore(ctx, tx, politicianID, result, now); err != nil {
		return nil, err
	}
	if err := insertHistory(ctx, tx, politicianID, result, now); err != nil {
		return nil, err
	}
	if err := s.upsertComponents(ctx, tx, politicianID, result, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recalculation for %s: %w", politicianID, err)
	}

	s.archive(ctx, politicianID, result, now)
	return result, nil
}

// RecalculateAll recalculates every politician in turn, each in its own
// transaction. Per-subject failures are logged and skipped. Returns the
// number successfully processed.
func (s *Service) RecalculateAll(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM politicians ORDER BY created_at`)
	if err != nil {
		return 0, fmt.Errorf("list politicians: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan politician id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("list politicians: %w", err)
	}

	processed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if _, err := s.Recalculate(ctx, id); err != nil {
			log.Printf("recalc all: politician %s failed: %v", id, err)
			continue
		}
		processed++
	}
	return processed, nil
}

// ProcessVerifiedAction runs the post-verification pipeline for one newly
// verified action: contradiction screening, then a full recalculation of
// the affected politician.
func (s *Service) ProcessVerifiedAction(ctx context.Context, actionID string) (*scoring.Result, error) {
	var politicianID string
	var category scoring.Category
	err := s.db.QueryRowContext(ctx,
		`SELECT politician_id, category FROM scoring_actions
		 WHERE id = $1 AND verification_status = 'verified'`,
		actionID,
	).Scan(&politicianID, &category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("process verified action %s: %w", actionID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load verified action %s: %w", actionID, err)
	}

	if err := s.screenContradictions(ctx, actionID, politicianID, category); err != nil {
		return nil, err
	}
	return s.Recalculate(ctx, politicianID)
}

func loadVerifiedActions(ctx context.Context, tx *sql.Tx, politicianID string) ([]scoring.Action, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, politician_id, action_type, action_date, description,
			COALESCE(source_url, ''), points, category,
			COALESCE(sub_category, ''), COALESCE(impact_level, ''),
			COALESCE(risk_level, ''), COALESCE(strategic_value, ''),
			has_follow_up, contradiction_flag, COALESCE(contradiction_notes, ''),
			time_value, performance_modifier
		 FROM scoring_actions
		 WHERE politician_id = $1 AND verification_status = 'verified'
		 ORDER BY action_date DESC, created_at DESC`,
		politicianID,
	)
	if err != nil {
		return nil, fmt.Errorf("load verified actions: %w", err)
	}
	defer rows.Close()

	var out []scoring.Action
	for rows.Next() {
		var a scoring.Action
		if err := rows.Scan(
			&a.ID, &a.PoliticianID, &a.Type, &a.Date, &a.Description,
			&a.SourceURL, &a.Points, &a.Category,
			&a.SubCategory, &a.ImpactLevel, &a.RiskLevel, &a.StrategicValue,
			&a.HasFollowUp, &a.ContradictionFlag, &a.ContradictionNotes,
			&a.TimeValue, &a.PerformanceModifier,
		); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func loadCommittees(ctx context.Context, tx *sql.Tx, politicianID string) ([]scoring.Committee, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT committee_name, COALESCE(role, '')
		 FROM politician_committees WHERE politician_id = $1`,
		politicianID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scoring.Committee
	for rows.Next() {
		var c scoring.Committee
		if err := rows.Scan(&c.Name, &c.LeadershipPosition); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func upsertScore(ctx context.Context, tx *sql.Tx, politicianID string, r *scoring.Result, now time.Time) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO politician_scores (politician_id, total_score,
			public_statements_score, legislative_action_score, public_engagement_score,
			social_media_score, consistency_score,
			strategic_integrity_score, infrastructure_understanding_score, performance_vs_impact_score,
			resistance_level, days_of_silence, last_activity_date, last_calculated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 ON CONFLICT (politician_id) DO UPDATE SET
			total_score = EXCLUDED.total_score,
			public_statements_score = EXCLUDED.public_statements_score,
			legislative_action_score = EXCLUDED.legislative_action_score,
			public_engagement_score = EXCLUDED.public_engagement_score,
			social_media_score = EXCLUDED.social_media_score,
			consistency_score = EXCLUDED.consistency_score,
			strategic_integrity_score = EXCLUDED.strategic_integrity_score,
			infrastructure_understanding_score = EXCLUDED.infrastructure_understanding_score,
			performance_vs_impact_score = EXCLUDED.performance_vs_impact_score,
			resistance_level = EXCLUDED.resistance_level,
			days_of_silence = EXCLUDED.days_of_silence,
			last_activity_date = EXCLUDED.last_activity_date,
			last_calculated = EXCLUDED.last_calculated,
			updated_at = now()`,
		politicianID, r.TotalScore,
		r.Categories.PublicStatements, r.Categories.LegislativeAction, r.Categories.PublicEngagement,
		r.Categories.SocialMedia, r.Categories.Consistency,
		r.StrategicIntegrity, r.InfrastructureUnderstanding, r.PerformanceVsImpact,
		r.ResistanceLevel, r.DaysOfSilence, r.LastActivityDate, now,
	)
	if err != nil {
		return fmt.Errorf("upsert score for %s: %w", politicianID, err)
	}
	return nil
}

func insertHistory(ctx context.Context, tx *sql.Tx, politicianID string, r *scoring.Result, now time.Time) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO score_history (politician_id, total_score,
			public_statements_score, legislative_action_score, public_engagement_score,
			social_media_score, consistency_score, days_of_silence, recorded_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		politicianID, r.TotalScore,
		r.Categories.PublicStatements, r.Categories.LegislativeAction, r.Categories.PublicEngagement,
		r.Categories.SocialMedia, r.Categories.Consistency, r.DaysOfSilence, now,
	)
	if err != nil {
		return fmt.Errorf("insert history for %s: %w", politicianID, err)
	}
	return nil
}

func (s *Service) upsertComponents(ctx context.Context, tx *sql.Tx, politicianID string, r *scoring.Result, now time.Time) error {
	weights := s.engine.Weights()
	for _, c := range scoring.Categories() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO score_components (politician_id, category, score, weight, last_updated)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (politician_id, category) DO UPDATE SET
				score = EXCLUDED.score,
				weight = EXCLUDED.weight,
				last_updated = EXCLUDED.last_updated`,
			politicianID, c, r.Categories.Get(c), weights.For(c), now,
		); err != nil {
			return fmt.Errorf("upsert component %s for %s: %w", c, politicianID, err)
		}
	}
	return nil
}

// Assessment is the archived snapshot of one recalculation run.
type Assessment struct {
	ID           string          `json:"id"`
	PoliticianID string          `json:"politician_id"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Result       *scoring.Result `json:"result"`
}

// archive writes the assessment snapshot to blob storage. Archival is best
// effort: a failure here never undoes a committed recalculation.
func (s *Service) archive(ctx context.Context, politicianID string, r *scoring.Result, now time.Time) {
	if s.storage == nil {
		return
	}
	a := Assessment{
		ID:           uuid.NewString(),
		PoliticianID: politicianID,
		GeneratedAt:  now,
		Result:       r,
	}
	data, err := json.Marshal(a)
	if err != nil {
		log.Printf("recalc %s: marshal assessment: %v", politicianID, err)
		return
	}
	if err := s.storage.PutAssessment(ctx, politicianID, a.ID, data); err != nil {
		log.Printf("recalc %s: archive assessment %s: %v", politicianID, a.ID, err)
	}
}
