package scoring

import "testing"

func TestStrategicIntegrityNeutralWithoutBothRecords(t *testing.T) {
	onlyStatements := []Action{
		{Category: CategoryPublicStatements, TimeValue: 1.0},
		{Category: CategoryPublicStatements, TimeValue: 1.0},
	}
	if got := StrategicIntegrity(onlyStatements); got != 50 {
		t.Errorf("statements only: got %d, want neutral 50", got)
	}

	onlyLegislative := []Action{{Category: CategoryLegislativeAction, TimeValue: 1.0}}
	if got := StrategicIntegrity(onlyLegislative); got != 50 {
		t.Errorf("legislative only: got %d, want neutral 50", got)
	}
}

func TestStrategicIntegrityContradictionPenalty(t *testing.T) {
	actions := []Action{
		{Category: CategoryPublicStatements, TimeValue: 1.0, ContradictionFlag: true},
		{Category: CategoryLegislativeAction, TimeValue: 0.25, ContradictionFlag: true},
	}
	// 100 - 10*1.0 - 10*0.25 = 87.5, rounds to 88.
	if got := StrategicIntegrity(actions); got != 88 {
		t.Errorf("got %d, want 88", got)
	}
}

func TestStrategicIntegrityHighImpactBonus(t *testing.T) {
	base := []Action{
		{Category: CategoryPublicStatements, TimeValue: 1.0, ImpactLevel: GradeHigh},
		{Category: CategoryLegislativeAction, TimeValue: 1.0, ImpactLevel: GradeHigh},
	}
	// Two high-impact actions: no bonus, clean record stays at 100.
	if got := StrategicIntegrity(base); got != 100 {
		t.Errorf("two high-impact: got %d, want 100", got)
	}

	withBonus := append(base, Action{
		Category: CategorySocialMedia, TimeValue: 1.0, ImpactLevel: GradeHigh,
		ContradictionFlag: true,
	})
	// 100 - 10*1.0 + 10 = 100 (bonus offsets one fresh contradiction).
	if got := StrategicIntegrity(withBonus); got != 100 {
		t.Errorf("three high-impact with contradiction: got %d, want 100", got)
	}
}

func TestInfrastructureUnderstanding(t *testing.T) {
	committees := []Committee{{Name: "Judiciary", LeadershipPosition: "Ranking Member"}}

	tests := []struct {
		name       string
		actions    []Action
		committees []Committee
		want       int
	}{
		{
			name:    "baseline with no signals",
			actions: []Action{{Category: CategoryPublicStatements}},
			want:    50,
		},
		{
			name: "procedural defense bonus",
			actions: []Action{
				{Category: CategoryLegislativeAction, SubCategory: SubCategoryProceduralDefense},
				{Category: CategoryLegislativeAction, SubCategory: SubCategoryProceduralDefense},
			},
			want: 60,
		},
		{
			name: "committee power used",
			actions: []Action{
				{Category: CategoryLegislativeAction, SubCategory: SubCategoryCommitteePower},
			},
			committees: committees,
			want:       57,
		},
		{
			name:       "committee power held but idle",
			actions:    []Action{{Category: CategoryLegislativeAction}},
			committees: committees,
			want:       35,
		},
		{
			name: "high risk actions counted in any category",
			actions: []Action{
				{Category: CategorySocialMedia, RiskLevel: GradeHigh},
				{Category: CategoryPublicStatements, RiskLevel: GradeHigh},
			},
			want: 56,
		},
		{
			name: "no committees means no idle penalty",
			actions: []Action{
				{Category: CategoryLegislativeAction, SubCategory: SubCategoryCommitteePower},
			},
			// committee_power sub-category without membership earns nothing.
			want: 50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := InfrastructureUnderstanding(tc.actions, tc.committees)
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPerformanceVsImpact(t *testing.T) {
	high := Action{ImpactLevel: GradeHigh, PerformanceModifier: 1.0}
	performative := Action{ImpactLevel: GradeLow, PerformanceModifier: 0.5}

	tests := []struct {
		name    string
		actions []Action
		want    int
	}{
		{
			name:    "no relevant actions is neutral",
			actions: []Action{{ImpactLevel: GradeMedium, PerformanceModifier: 1.0}},
			want:    50,
		},
		{
			name:    "only performative actions",
			actions: []Action{performative, performative},
			want:    20,
		},
		{
			name: "ratio two at boundary",
			// 2 high / 1 performative: 80 + min(20, 4) = 84.
			actions: []Action{high, high, performative},
			want:    84,
		},
		{
			name: "ratio one",
			// 1 high / 1 performative: 60 + min(20, 10) = 70.
			actions: []Action{high, performative},
			want:    70,
		},
		{
			name: "ratio below one",
			// 1 high / 2 performative: 40 * 0.5 = 20.
			actions: []Action{high, performative, performative},
			want:    20,
		},
		{
			name: "no performative uses raw high count",
			// ratio = 3: 80 + min(20, 6) = 86.
			actions: []Action{high, high, high},
			want:    86,
		},
		{
			name: "ratio capped at plus twenty",
			// ratio = 15: 80 + min(20, 30) = 100.
			actions: func() []Action {
				var a []Action
				for i := 0; i < 15; i++ {
					a = append(a, high)
				}
				return a
			}(),
			want: 100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PerformanceVsImpact(tc.actions); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLowImpactFullValueNotPerformative(t *testing.T) {
	// A low-impact action that was not discounted does not count as
	// performative.
	actions := []Action{
		{ImpactLevel: GradeLow, PerformanceModifier: 1.0},
		{ImpactLevel: GradeHigh, PerformanceModifier: 1.0},
	}
	// 1 high, 0 performative: ratio 1 -> 60 + 10 = 70.
	if got := PerformanceVsImpact(actions); got != 70 {
		t.Errorf("got %d, want 70", got)
	}
}
