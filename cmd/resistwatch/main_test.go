package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

func TestRecalcCmdFlags(t *testing.T) {
	cmd := newRecalcCmd()
	f := cmd.Flags()

	all, _ := f.GetBool("all")
	if all {
		t.Error("default --all should be false")
	}

	for _, flag := range []string{"database-url", "config", "all"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestBreakdownCmdFlags(t *testing.T) {
	cmd := newBreakdownCmd()
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}

	for _, flag := range []string{"database-url", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestImportCmdFlags(t *testing.T) {
	cmd := newImportCmd()
	f := cmd.Flags()

	verifier, _ := f.GetString("verifier")
	if verifier != "import" {
		t.Errorf("default verifier = %q, want import", verifier)
	}

	for _, flag := range []string{"database-url", "config", "verifier"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestPrintResultSentinelSilence(t *testing.T) {
	var buf bytes.Buffer
	last := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	printResult(&buf, "p-1", &scoring.Result{
		TotalScore:      72,
		ResistanceLevel: scoring.LevelActiveResistor,
		Status:          scoring.StatusUnderSurveillance,
		DaysOfSilence:   scoring.DaysOfSilenceSentinel,
	})
	if !strings.Contains(buf.String(), "no verified activity") {
		t.Errorf("sentinel not rendered: %q", buf.String())
	}

	buf.Reset()
	printResult(&buf, "p-1", &scoring.Result{
		TotalScore:       72,
		ResistanceLevel:  scoring.LevelActiveResistor,
		Status:           scoring.StatusUnderSurveillance,
		DaysOfSilence:    14,
		LastActivityDate: &last,
	})
	if !strings.Contains(buf.String(), "Days of silence: 14") {
		t.Errorf("day count not rendered: %q", buf.String())
	}
}
