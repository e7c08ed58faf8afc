// Package store provides Postgres-backed persistence for politicians, their
// scoring actions, committees, evidence sources, and computed scores.
package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Service provides read and CRUD access to the Resistwatch schema. Computed
// score artifacts (politician_scores, score_history, score_components) are
// written only by the recalculation orchestrator; this service reads them.
type Service struct {
	db *sql.DB
}

// NewService creates a new store Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// DB exposes the underlying handle for callers that manage their own
// transactions.
func (s *Service) DB() *sql.DB { return s.db }

// notFound maps sql.ErrNoRows onto ErrNotFound, wrapping other errors.
func notFound(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
