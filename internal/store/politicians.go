package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Politician is a tracked public official.
type Politician struct {
	ID        string
	Name      string
	Party     *string
	State     *string
	Position  *string
	PhotoURL  *string
	IsActive  bool
	CreatedAt time.Time
}

// CreatePolitician inserts a new politician record.
func (s *Service) CreatePolitician(ctx context.Context, name string, party, state, position, photoURL *string) (*Politician, error) {
	if name == "" {
		return nil, fmt.Errorf("create politician: name is required")
	}
	p := &Politician{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO politicians (id, name, party, state, position, photo_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, party, state, position, photo_url, is_active, created_at`,
		uuid.NewString(), name, party, state, position, photoURL,
	).Scan(&p.ID, &p.Name, &p.Party, &p.State, &p.Position, &p.PhotoURL, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create politician: %w", err)
	}
	return p, nil
}

// GetPolitician retrieves a politician by ID.
func (s *Service) GetPolitician(ctx context.Context, id string) (*Politician, error) {
	p := &Politician{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, party, state, position, photo_url, is_active, created_at
		 FROM politicians WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Party, &p.State, &p.Position, &p.PhotoURL, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, notFound(fmt.Sprintf("get politician %s", id), err)
	}
	return p, nil
}

// ListPoliticians returns all politicians ordered by name.
func (s *Service) ListPoliticians(ctx context.Context) ([]Politician, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, party, state, position, photo_url, is_active, created_at
		 FROM politicians ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list politicians: %w", err)
	}
	defer rows.Close()

	var out []Politician
	for rows.Next() {
		var p Politician
		if err := rows.Scan(&p.ID, &p.Name, &p.Party, &p.State, &p.Position, &p.PhotoURL, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan politician: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListPoliticianIDs returns the IDs of all politicians, for batch
// recalculation.
func (s *Service) ListPoliticianIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM politicians ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list politician ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan politician id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
