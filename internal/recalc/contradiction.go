package recalc

import (
	"context"
	"fmt"
	"strings"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

// Contradiction screening compares words against deeds: statements are
// checked against the legislative record and vice versa. The current pass
// is deliberately coarse. It flags the new action whenever any verified
// opposite-category action exists and leaves the judgment to a human
// reviewer.
//
// TODO: replace the coarse screen with topic matching once actions carry
// subject tags.

// maxContradictionRefs caps how many opposing action IDs the note cites.
const maxContradictionRefs = 5

// oppositeCategory returns the category whose actions can contradict c.
func oppositeCategory(c scoring.Category) (scoring.Category, bool) {
	switch c {
	case scoring.CategoryPublicStatements:
		return scoring.CategoryLegislativeAction, true
	case scoring.CategoryLegislativeAction:
		return scoring.CategoryPublicStatements, true
	}
	return "", false
}

// screenContradictions flags the action if the politician has verified
// actions in the opposing category, citing up to maxContradictionRefs of
// them in the note.
func (s *Service) screenContradictions(ctx context.Context, actionID, politicianID string, category scoring.Category) error {
	opposite, ok := oppositeCategory(category)
	if !ok {
		return nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM scoring_actions
		 WHERE politician_id = $1 AND category = $2 AND verification_status = 'verified' AND id <> $3
		 ORDER BY action_date DESC
		 LIMIT $4`,
		politicianID, opposite, actionID, maxContradictionRefs,
	)
	if err != nil {
		return fmt.Errorf("screen contradictions for %s: %w", actionID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan opposing action id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("screen contradictions for %s: %w", actionID, err)
	}
	if len(ids) == 0 {
		return nil
	}

	note := contradictionNote(ids)
	if _, err := s.db.ExecContext(ctx,
		`UPDATE scoring_actions
		 SET contradiction_flag = TRUE, contradiction_notes = $1, updated_at = now()
		 WHERE id = $2`,
		note, actionID,
	); err != nil {
		return fmt.Errorf("flag contradiction on %s: %w", actionID, err)
	}
	return nil
}

func contradictionNote(ids []string) string {
	return fmt.Sprintf("Potential contradiction with opposing actions: %s. Flagged for manual review.",
		strings.Join(ids, ", "))
}
