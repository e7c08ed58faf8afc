// Package recalc orchestrates score recalculation: it locks the subject,
// runs the scoring engine over their verified actions, and persists the
// total, history, and per-category breakdown in one transaction.
package recalc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for archived assessment snapshots.
type StorageClient interface {
	PutAssessment(ctx context.Context, politicianID, assessmentID string, data []byte) error
	GetAssessment(ctx context.Context, politicianID, assessmentID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(politicianID, assessmentID string) string {
	return filepath.Join(s.BaseDir, politicianID, "assessments", assessmentID+".json")
}

// PutAssessment stores an assessment blob.
func (s *LocalStorage) PutAssessment(ctx context.Context, politicianID, assessmentID string, data []byte) error {
	path := s.path(politicianID, assessmentID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// GetAssessment retrieves an assessment blob.
func (s *LocalStorage) GetAssessment(ctx context.Context, politicianID, assessmentID string) ([]byte, error) {
	return os.ReadFile(s.path(politicianID, assessmentID))
}
