package recalc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetAssessment(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"total_score":72}`)
	if err := s.PutAssessment(ctx, "pol1", "assess1", data); err != nil {
		t.Fatalf("PutAssessment: %v", err)
	}

	got, err := s.GetAssessment(ctx, "pol1", "assess1")
	if err != nil {
		t.Fatalf("GetAssessment: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetAssessment = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "pol1", "assessments", "assess1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetNotFound(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	_, err := s.GetAssessment(ctx, "pol1", "nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent assessment")
	}
}
