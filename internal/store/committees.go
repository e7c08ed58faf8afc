package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

// CommitteeMembership is a politician_committees row.
type CommitteeMembership struct {
	ID             string
	PoliticianID   string
	CommitteeName  string
	Role           *string
	CommitteePower *string
	CreatedAt      time.Time
}

// ToScoring converts a membership row into the engine's representation.
func (c *CommitteeMembership) ToScoring() scoring.Committee {
	return scoring.Committee{
		Name:               c.CommitteeName,
		LeadershipPosition: deref(c.Role),
	}
}

// AddCommittee records a committee membership for a politician.
func (s *Service) AddCommittee(ctx context.Context, politicianID, name string, role, power *string) (*CommitteeMembership, error) {
	if politicianID == "" || name == "" {
		return nil, fmt.Errorf("add committee: politician_id and committee_name are required")
	}
	c := &CommitteeMembership{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO politician_committees (id, politician_id, committee_name, role, committee_power)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, politician_id, committee_name, role, committee_power, created_at`,
		uuid.NewString(), politicianID, name, role, power,
	).Scan(&c.ID, &c.PoliticianID, &c.CommitteeName, &c.Role, &c.CommitteePower, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add committee: %w", err)
	}
	return c, nil
}

// FindCommittees returns all committee memberships for a politician.
func (s *Service) FindCommittees(ctx context.Context, politicianID string) ([]CommitteeMembership, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, politician_id, committee_name, role, committee_power, created_at
		 FROM politician_committees
		 WHERE politician_id = $1
		 ORDER BY committee_name`,
		politicianID,
	)
	if err != nil {
		return nil, fmt.Errorf("find committees: %w", err)
	}
	defer rows.Close()

	var out []CommitteeMembership
	for rows.Next() {
		var c CommitteeMembership
		if err := rows.Scan(&c.ID, &c.PoliticianID, &c.CommitteeName, &c.Role, &c.CommitteePower, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan committee: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
