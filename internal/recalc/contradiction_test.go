package recalc

import (
	"strings"
	"testing"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

func TestOppositeCategory(t *testing.T) {
	tests := []struct {
		in      scoring.Category
		want    scoring.Category
		checked bool
	}{
		{scoring.CategoryPublicStatements, scoring.CategoryLegislativeAction, true},
		{scoring.CategoryLegislativeAction, scoring.CategoryPublicStatements, true},
		{scoring.CategorySocialMedia, "", false},
		{scoring.CategoryPublicEngagement, "", false},
		{scoring.CategoryConsistency, "", false},
	}
	for _, tc := range tests {
		got, ok := oppositeCategory(tc.in)
		if ok != tc.checked || got != tc.want {
			t.Errorf("oppositeCategory(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.checked)
		}
	}
}

func TestContradictionNoteCitesIDs(t *testing.T) {
	note := contradictionNote([]string{"a-1", "a-2", "a-3"})
	if !strings.Contains(note, "a-1, a-2, a-3") {
		t.Errorf("note missing cited IDs: %q", note)
	}
	if !strings.Contains(note, "manual review") {
		t.Errorf("note missing review instruction: %q", note)
	}
}
