package scoring

import "testing"

func TestResistanceLevelFor(t *testing.T) {
	tests := []struct {
		name                          string
		total, integrity, infra       int
		want                          ResistanceLevel
	}{
		{"defender at exact boundary", 80, 70, 0, LevelDefender},
		{"high everything", 95, 90, 90, LevelDefender},
		{"total one below defender", 79, 70, 60, LevelActiveResistor},
		{"integrity one below defender falls through", 85, 69, 60, LevelActiveResistor},
		{"active resistor at boundary", 60, 50, 50, LevelActiveResistor},
		{"infra below resistor threshold", 60, 50, 49, LevelInconsistentAdvocate},
		{"integrity below resistor threshold", 75, 49, 80, LevelInconsistentAdvocate},
		{"inconsistent at boundary", 40, 0, 0, LevelInconsistentAdvocate},
		{"just below inconsistent", 39, 100, 100, LevelComplicitEnabler},
		{"all zero", 0, 0, 0, LevelComplicitEnabler},
		{"defender does not need infrastructure", 80, 70, 10, LevelDefender},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResistanceLevelFor(tc.total, tc.integrity, tc.infra)
			if got != tc.want {
				t.Errorf("ResistanceLevelFor(%d, %d, %d) = %q, want %q",
					tc.total, tc.integrity, tc.infra, got, tc.want)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{100, StatusWhistleblower},
		{80, StatusWhistleblower},
		{79, StatusUnderSurveillance},
		{50, StatusUnderSurveillance},
		{49, StatusPersonOfInterest},
		{0, StatusPersonOfInterest},
	}

	for _, tc := range tests {
		if got := StatusFor(tc.total); got != tc.want {
			t.Errorf("StatusFor(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestTaxonomiesAreIndependent(t *testing.T) {
	// A politician can be a WHISTLEBLOWER by status while failing the
	// Defender integrity gate; the two classifications must not collapse
	// into one another.
	if got := StatusFor(85); got != StatusWhistleblower {
		t.Fatalf("StatusFor(85) = %q, want %q", got, StatusWhistleblower)
	}
	if got := ResistanceLevelFor(85, 40, 40); got == LevelDefender {
		t.Errorf("ResistanceLevelFor(85, 40, 40) = Defender, want a lower level")
	}
}
