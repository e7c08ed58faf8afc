package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Evidence source types, ordered by trustworthiness.
const (
	SourceOfficialRecord          = "official_record"
	SourceInvestigativeJournalism = "investigative_journalism"
	SourceFirstParty              = "first_party"
	SourceSocialMedia             = "social_media"
)

// ValidSourceType reports whether t is a known evidence source type.
func ValidSourceType(t string) bool {
	switch t {
	case SourceOfficialRecord, SourceInvestigativeJournalism,
		SourceFirstParty, SourceSocialMedia:
		return true
	}
	return false
}

// ConfidenceWeight maps a source type to its display confidence. Unknown
// types get a middling 0.5. These weights annotate evidence for reviewers
// and do not feed the scoring engine.
func ConfidenceWeight(sourceType string) float64 {
	switch sourceType {
	case SourceOfficialRecord:
		return 1.0
	case SourceInvestigativeJournalism:
		return 0.8
	case SourceFirstParty:
		return 0.6
	case SourceSocialMedia:
		return 0.4
	default:
		return 0.5
	}
}

// EvidenceSource is an evidence_sources row backing a scoring action.
type EvidenceSource struct {
	ID         string
	ActionID   string
	SourceType string
	URL        string
	Title      *string
	Confidence float64
	CreatedAt  time.Time
}

// AddEvidence attaches an evidence source to an action. Confidence is
// derived from the source type at insert time.
func (s *Service) AddEvidence(ctx context.Context, actionID, sourceType, url string, title *string) (*EvidenceSource, error) {
	if actionID == "" || url == "" {
		return nil, fmt.Errorf("add evidence: action_id and url are required")
	}
	if !ValidSourceType(sourceType) {
		return nil, fmt.Errorf("add evidence: unknown source_type %q", sourceType)
	}
	e := &EvidenceSource{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO evidence_sources (id, action_id, source_type, url, title, confidence)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, action_id, source_type, url, title, confidence, created_at`,
		uuid.NewString(), actionID, sourceType, url, title, ConfidenceWeight(sourceType),
	).Scan(&e.ID, &e.ActionID, &e.SourceType, &e.URL, &e.Title, &e.Confidence, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add evidence: %w", err)
	}
	return e, nil
}

// FindEvidence returns all evidence sources for an action, most trusted
// first.
func (s *Service) FindEvidence(ctx context.Context, actionID string) ([]EvidenceSource, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, action_id, source_type, url, title, confidence, created_at
		 FROM evidence_sources
		 WHERE action_id = $1
		 ORDER BY confidence DESC, created_at ASC`,
		actionID,
	)
	if err != nil {
		return nil, fmt.Errorf("find evidence: %w", err)
	}
	defer rows.Close()

	var out []EvidenceSource
	for rows.Next() {
		var e EvidenceSource
		if err := rows.Scan(&e.ID, &e.ActionID, &e.SourceType, &e.URL, &e.Title, &e.Confidence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evidence: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
