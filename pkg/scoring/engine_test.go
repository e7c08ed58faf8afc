package scoring

import (
	"reflect"
	"testing"
)

func TestComputeNoActions(t *testing.T) {
	e := NewEngine(Defaults())
	res, err := e.Compute(nil, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if res.TotalScore != 0 {
		t.Errorf("TotalScore = %d, want 0", res.TotalScore)
	}
	if res.Categories != (CategoryScores{}) {
		t.Errorf("Categories = %+v, want all zero", res.Categories)
	}
	if res.StrategicIntegrity != 50 || res.InfrastructureUnderstanding != 50 || res.PerformanceVsImpact != 50 {
		t.Errorf("enhanced metrics = %d/%d/%d, want neutral 50s",
			res.StrategicIntegrity, res.InfrastructureUnderstanding, res.PerformanceVsImpact)
	}
	if res.ResistanceLevel != LevelComplicitEnabler {
		t.Errorf("ResistanceLevel = %q, want %q", res.ResistanceLevel, LevelComplicitEnabler)
	}
	if res.DaysOfSilence != DaysOfSilenceSentinel {
		t.Errorf("DaysOfSilence = %d, want sentinel %d", res.DaysOfSilence, DaysOfSilenceSentinel)
	}
	if res.LastActivityDate != nil {
		t.Errorf("LastActivityDate = %v, want nil", res.LastActivityDate)
	}
}

func TestComputeFreshActionScoresItsPoints(t *testing.T) {
	// A 0-day-old action with the default modifier scores exactly its
	// points in its category.
	e := NewEngine(Defaults())
	actions := []Action{{
		ID:       "a1",
		Category: CategoryConsistency,
		Points:   64,
		Date:     testNow,
	}}

	res, err := e.Compute(actions, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if res.Categories.Consistency != 64 {
		t.Errorf("Consistency = %d, want 64", res.Categories.Consistency)
	}
}

func TestComputeSingleLegislativeAction(t *testing.T) {
	// One legislative action, 80 points, 10 days old: category score 80,
	// weighted total round(80*0.25)=20, plus the 5-point recency bonus.
	e := NewEngine(Defaults())
	actions := []Action{{
		ID:       "a1",
		Category: CategoryLegislativeAction,
		Points:   80,
		Date:     daysAgo(10),
	}}

	res, err := e.Compute(actions, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if res.Categories.LegislativeAction != 80 {
		t.Errorf("LegislativeAction = %d, want 80", res.Categories.LegislativeAction)
	}
	if res.TotalScore != 25 {
		t.Errorf("TotalScore = %d, want 25", res.TotalScore)
	}
	if res.DaysOfSilence != 10 {
		t.Errorf("DaysOfSilence = %d, want 10", res.DaysOfSilence)
	}
	if res.LastActivityDate == nil || !res.LastActivityDate.Equal(daysAgo(10)) {
		t.Errorf("LastActivityDate = %v, want %v", res.LastActivityDate, daysAgo(10))
	}
}

func TestComputeDecayWeightedMean(t *testing.T) {
	// Adding an old low-point action pulls the category toward a
	// decay-weighted mean: round((80*1.0 + 40*0.25) / (1.0+0.25)) = 72.
	e := NewEngine(Defaults())
	actions := []Action{
		{ID: "a1", Category: CategoryLegislativeAction, Points: 80, Date: daysAgo(10)},
		{ID: "a2", Category: CategoryLegislativeAction, Points: 40, Date: daysAgo(200)},
	}

	res, err := e.Compute(actions, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if res.Categories.LegislativeAction != 72 {
		t.Errorf("LegislativeAction = %d, want 72", res.Categories.LegislativeAction)
	}
	// round(72*0.25)=18, plus recency bonus from the 10-day-old action.
	if res.TotalScore != 23 {
		t.Errorf("TotalScore = %d, want 23", res.TotalScore)
	}
}

func TestComputeIdempotent(t *testing.T) {
	e := NewEngine(Defaults())
	actions := []Action{
		{ID: "a1", Category: CategoryPublicStatements, Points: 70, Date: daysAgo(5), ImpactLevel: GradeHigh},
		{ID: "a2", Category: CategoryLegislativeAction, Points: 55, Date: daysAgo(40)},
		{ID: "a3", Category: CategorySocialMedia, Points: 30, Date: daysAgo(100)},
	}
	committees := []Committee{{Name: "Appropriations"}}

	first, err := e.Compute(actions, committees, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	second, err := e.Compute(actions, committees, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ for identical inputs and clock:\n%+v\n%+v", first, second)
	}
}

func TestComputeInputOrderIrrelevant(t *testing.T) {
	e := NewEngine(Defaults())
	a := Action{ID: "a1", Category: CategoryPublicEngagement, Points: 50, Date: daysAgo(3)}
	b := Action{ID: "a2", Category: CategoryPublicEngagement, Points: 90, Date: daysAgo(60)}

	r1, err := e.Compute([]Action{a, b}, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	r2, err := e.Compute([]Action{b, a}, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if r1.TotalScore != r2.TotalScore || r1.Categories != r2.Categories {
		t.Errorf("order-dependent result: %+v vs %+v", r1, r2)
	}
}

func TestComputeRecomputesDerivedFields(t *testing.T) {
	// Stale persisted derived values are overwritten every run.
	e := NewEngine(Defaults())
	actions := []Action{{
		ID:                  "a1",
		Category:            CategorySocialMedia,
		Points:              40,
		Date:                daysAgo(200),
		TimeValue:           1.0, // stale
		PerformanceModifier: 1.0, // stale: no follow-up recorded
	}}

	res, err := e.Compute(actions, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if len(res.Actions) != 1 {
		t.Fatalf("len(Actions) = %d, want 1", len(res.Actions))
	}
	if res.Actions[0].TimeValue != 0.25 {
		t.Errorf("TimeValue = %v, want 0.25", res.Actions[0].TimeValue)
	}
	if res.Actions[0].PerformanceModifier != 0.5 {
		t.Errorf("PerformanceModifier = %v, want 0.5", res.Actions[0].PerformanceModifier)
	}
	// Input slice is untouched.
	if actions[0].TimeValue != 1.0 {
		t.Errorf("input mutated: TimeValue = %v", actions[0].TimeValue)
	}
}

func TestComputeRejectsUnknownCategory(t *testing.T) {
	e := NewEngine(Defaults())
	_, err := e.Compute([]Action{{ID: "a1", Category: "bribery", Date: testNow}}, nil, testNow)
	if err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestComputeTotalClamped(t *testing.T) {
	e := NewEngine(Defaults())
	var actions []Action
	for _, cat := range Categories() {
		actions = append(actions, Action{
			ID: string(cat), Category: cat, Points: 100, Date: daysAgo(1),
			HasFollowUp: true, StrategicValue: GradeHigh,
		})
	}

	res, err := e.Compute(actions, nil, testNow)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	// 100 weighted + 5 recency bonus clamps to 100.
	if res.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", res.TotalScore)
	}
}
