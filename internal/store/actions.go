package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

// Action is a scoring_actions row.
type Action struct {
	ID                  string
	PoliticianID        string
	Type                scoring.ActionType
	Date                time.Time
	Description         string
	SourceURL           *string
	Points              int
	Category            scoring.Category
	SubCategory         *string
	ImpactLevel         *string
	RiskLevel           *string
	StrategicValue      *string
	HasFollowUp         bool
	VerificationStatus  scoring.VerificationStatus
	VerifiedBy          *string
	VerifiedAt          *time.Time
	ContradictionFlag   bool
	ContradictionNotes  *string
	TimeValue           float64
	PerformanceModifier float64
	CreatedBy           *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ToScoring converts a row into the engine's action representation.
func (a *Action) ToScoring() scoring.Action {
	return scoring.Action{
		ID:                  a.ID,
		PoliticianID:        a.PoliticianID,
		Type:                a.Type,
		Date:                a.Date,
		Description:         a.Description,
		SourceURL:           deref(a.SourceURL),
		Points:              a.Points,
		Category:            a.Category,
		SubCategory:         deref(a.SubCategory),
		ImpactLevel:         deref(a.ImpactLevel),
		RiskLevel:           deref(a.RiskLevel),
		StrategicValue:      deref(a.StrategicValue),
		HasFollowUp:         a.HasFollowUp,
		ContradictionFlag:   a.ContradictionFlag,
		ContradictionNotes:  deref(a.ContradictionNotes),
		TimeValue:           a.TimeValue,
		PerformanceModifier: a.PerformanceModifier,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

const actionColumns = `id, politician_id, action_type, action_date, description, source_url,
	points, category, sub_category, impact_level, risk_level, strategic_value,
	has_follow_up, verification_status, verified_by, verified_at,
	contradiction_flag, contradiction_notes, time_value, performance_modifier,
	created_by, created_at, updated_at`

func scanAction(scanner interface{ Scan(...any) error }) (*Action, error) {
	a := &Action{}
	err := scanner.Scan(
		&a.ID, &a.PoliticianID, &a.Type, &a.Date, &a.Description, &a.SourceURL,
		&a.Points, &a.Category, &a.SubCategory, &a.ImpactLevel, &a.RiskLevel, &a.StrategicValue,
		&a.HasFollowUp, &a.VerificationStatus, &a.VerifiedBy, &a.VerifiedAt,
		&a.ContradictionFlag, &a.ContradictionNotes, &a.TimeValue, &a.PerformanceModifier,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// NewActionInput describes an action to record. Actions are always created
// pending; only verified actions participate in scoring.
type NewActionInput struct {
	PoliticianID   string
	Type           scoring.ActionType
	Date           time.Time
	Description    string
	SourceURL      *string
	Points         int
	Category       scoring.Category
	SubCategory    *string
	ImpactLevel    *string
	RiskLevel      *string
	StrategicValue *string
	HasFollowUp    bool
	CreatedBy      *string
}

// Validate rejects out-of-range or unknown-enum inputs before persistence.
func (in *NewActionInput) Validate() error {
	if in.PoliticianID == "" {
		return fmt.Errorf("politician_id is required")
	}
	if !in.Type.Valid() {
		return fmt.Errorf("unknown action_type %q", in.Type)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("unknown category %q", in.Category)
	}
	if in.Description == "" {
		return fmt.Errorf("description is required")
	}
	if in.Date.IsZero() {
		return fmt.Errorf("action_date is required")
	}
	if in.Points < 0 || in.Points > 100 {
		return fmt.Errorf("points %d out of range [0, 100]", in.Points)
	}
	return nil
}

// CreateAction inserts a new pending action.
func (s *Service) CreateAction(ctx context.Context, in NewActionInput) (*Action, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("create action: %w", err)
	}
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO scoring_actions (id, politician_id, action_type, action_date, description,
			source_url, points, category, sub_category, impact_level, risk_level,
			strategic_value, has_follow_up, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+actionColumns,
		uuid.NewString(), in.PoliticianID, in.Type, in.Date, in.Description,
		in.SourceURL, in.Points, in.Category, in.SubCategory, in.ImpactLevel, in.RiskLevel,
		in.StrategicValue, in.HasFollowUp, in.CreatedBy,
	)
	a, err := scanAction(row)
	if err != nil {
		return nil, fmt.Errorf("create action: %w", err)
	}
	return a, nil
}

// GetAction retrieves an action by ID.
func (s *Service) GetAction(ctx context.Context, id string) (*Action, error) {
	a, err := scanAction(s.db.QueryRowContext(ctx,
		`SELECT `+actionColumns+` FROM scoring_actions WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(fmt.Sprintf("get action %s", id), err)
	}
	return a, nil
}

// FindVerifiedActions returns all verified actions for a politician,
// ordered by action date descending. This ordering is part of the scoring
// contract: the first action per category is its most recent.
func (s *Service) FindVerifiedActions(ctx context.Context, politicianID string) ([]Action, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+actionColumns+`
		 FROM scoring_actions
		 WHERE politician_id = $1 AND verification_status = 'verified'
		 ORDER BY action_date DESC, created_at DESC`,
		politicianID,
	)
	if err != nil {
		return nil, fmt.Errorf("find verified actions: %w", err)
	}
	defer rows.Close()

	var out []Action
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// RecentVerifiedActions returns the most recently dated verified actions for
// a politician, up to limit.
func (s *Service) RecentVerifiedActions(ctx context.Context, politicianID string, limit int) ([]Action, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+actionColumns+`
		 FROM scoring_actions
		 WHERE politician_id = $1 AND verification_status = 'verified'
		 ORDER BY action_date DESC, created_at DESC
		 LIMIT $2`,
		politicianID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent verified actions: %w", err)
	}
	defer rows.Close()

	var out []Action
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// PendingActions returns the oldest pending actions, for the moderation
// queue.
func (s *Service) PendingActions(ctx context.Context, limit int) ([]Action, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+actionColumns+`
		 FROM scoring_actions
		 WHERE verification_status = 'pending'
		 ORDER BY created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("pending actions: %w", err)
	}
	defer rows.Close()

	var out []Action
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// MarkVerified transitions a pending action to verified. The transition is
// one-way: verifying an already-resolved action is an error.
func (s *Service) MarkVerified(ctx context.Context, actionID, verifierID string) (*Action, error) {
	return s.resolve(ctx, actionID, verifierID, scoring.StatusVerified)
}

// MarkRejected transitions a pending action to rejected.
func (s *Service) MarkRejected(ctx context.Context, actionID, verifierID string) (*Action, error) {
	return s.resolve(ctx, actionID, verifierID, scoring.StatusRejected)
}

func (s *Service) resolve(ctx context.Context, actionID, verifierID string, status scoring.VerificationStatus) (*Action, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE scoring_actions
		 SET verification_status = $1, verified_by = $2, verified_at = now(), updated_at = now()
		 WHERE id = $3 AND verification_status = 'pending'
		 RETURNING `+actionColumns,
		status, verifierID, actionID,
	)
	a, err := scanAction(row)
	if err == nil {
		return a, nil
	}

	// Distinguish "absent" from "already resolved".
	if _, getErr := s.GetAction(ctx, actionID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("mark %s %s: action is not pending", status, actionID)
}
