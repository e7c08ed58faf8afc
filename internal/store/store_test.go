package store

import (
	"testing"
	"time"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

func TestNewService(t *testing.T) {
	// NewService should not panic with nil db (it just stores the reference).
	svc := NewService(nil)
	if svc == nil {
		t.Fatal("NewService returned nil")
	}
}

func TestServiceMethodSet(t *testing.T) {
	// The Service methods all require a real Postgres database; verify the
	// method set compiles with the expected signatures. Full integration
	// tests would require a test database.
	svc := &Service{}
	if svc.db != nil {
		t.Error("zero-value Service should have nil db")
	}

	_ = svc.CreatePolitician
	_ = svc.GetPolitician
	_ = svc.ListPoliticians
	_ = svc.ListPoliticianIDs
	_ = svc.CreateAction
	_ = svc.GetAction
	_ = svc.FindVerifiedActions
	_ = svc.RecentVerifiedActions
	_ = svc.PendingActions
	_ = svc.MarkVerified
	_ = svc.MarkRejected
	_ = svc.GetScore
	_ = svc.TopScorers
	_ = svc.BottomScorers
	_ = svc.ScoresByResistanceLevel
	_ = svc.ScoreHistory
	_ = svc.Components
	_ = svc.AddCommittee
	_ = svc.FindCommittees
	_ = svc.AddEvidence
	_ = svc.FindEvidence
}

func TestActionToScoring(t *testing.T) {
	sub := "committee_work"
	impact := "High"
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	a := Action{
		ID:                  "a-1",
		PoliticianID:        "p-1",
		Type:                scoring.ActionVote,
		Date:                date,
		Description:         "blocked the nominee in committee",
		Points:              70,
		Category:            scoring.CategoryLegislativeAction,
		SubCategory:         &sub,
		ImpactLevel:         &impact,
		HasFollowUp:         true,
		TimeValue:           0.75,
		PerformanceModifier: 1.0,
	}

	sa := a.ToScoring()
	if sa.ID != "a-1" || sa.PoliticianID != "p-1" {
		t.Errorf("identity fields = %q/%q", sa.ID, sa.PoliticianID)
	}
	if sa.Category != scoring.CategoryLegislativeAction {
		t.Errorf("Category = %q", sa.Category)
	}
	if sa.SubCategory != "committee_work" || sa.ImpactLevel != "High" {
		t.Errorf("SubCategory = %q, ImpactLevel = %q", sa.SubCategory, sa.ImpactLevel)
	}
	if sa.RiskLevel != "" || sa.StrategicValue != "" {
		t.Errorf("nil pointers should deref to empty strings, got %q/%q", sa.RiskLevel, sa.StrategicValue)
	}
	if !sa.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", sa.Date, date)
	}
}

func TestNewActionInputValidate(t *testing.T) {
	valid := NewActionInput{
		PoliticianID: "p-1",
		Type:         scoring.ActionVote,
		Date:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Description:  "voted against the package",
		Points:       60,
		Category:     scoring.CategoryLegislativeAction,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*NewActionInput)
	}{
		{"missing politician", func(in *NewActionInput) { in.PoliticianID = "" }},
		{"bad type", func(in *NewActionInput) { in.Type = "heroic" }},
		{"bad category", func(in *NewActionInput) { in.Category = "charisma" }},
		{"missing description", func(in *NewActionInput) { in.Description = "" }},
		{"zero date", func(in *NewActionInput) { in.Date = time.Time{} }},
		{"negative points", func(in *NewActionInput) { in.Points = -1 }},
		{"points over cap", func(in *NewActionInput) { in.Points = 101 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			if err := in.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestScoreCategoriesAndStatus(t *testing.T) {
	sc := Score{
		TotalScore:             85,
		PublicStatementsScore:  90,
		LegislativeActionScore: 80,
		PublicEngagementScore:  70,
		SocialMediaScore:       60,
		ConsistencyScore:       95,
	}

	cats := sc.Categories()
	if cats.PublicStatements != 90 || cats.Consistency != 95 {
		t.Errorf("Categories() = %+v", cats)
	}
	if got := sc.Status(); got != scoring.StatusWhistleblower {
		t.Errorf("Status() = %q, want %q", got, scoring.StatusWhistleblower)
	}
}

func TestConfidenceWeight(t *testing.T) {
	tests := []struct {
		sourceType string
		want       float64
	}{
		{SourceOfficialRecord, 1.0},
		{SourceInvestigativeJournalism, 0.8},
		{SourceFirstParty, 0.6},
		{SourceSocialMedia, 0.4},
		{"carrier_pigeon", 0.5},
	}
	for _, tc := range tests {
		if got := ConfidenceWeight(tc.sourceType); got != tc.want {
			t.Errorf("ConfidenceWeight(%q) = %v, want %v", tc.sourceType, got, tc.want)
		}
	}
}

func TestValidSourceType(t *testing.T) {
	for _, valid := range []string{
		SourceOfficialRecord, SourceInvestigativeJournalism,
		SourceFirstParty, SourceSocialMedia,
	} {
		if !ValidSourceType(valid) {
			t.Errorf("ValidSourceType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "carrier_pigeon", "major_outlet"} {
		if ValidSourceType(invalid) {
			t.Errorf("ValidSourceType(%q) = true, want false", invalid)
		}
	}
}

func TestCommitteeMembershipToScoring(t *testing.T) {
	role := "Ranking Member"
	c := CommitteeMembership{
		CommitteeName: "Judiciary",
		Role:          &role,
	}
	sc := c.ToScoring()
	if sc.Name != "Judiciary" || sc.LeadershipPosition != "Ranking Member" {
		t.Errorf("ToScoring() = %+v", sc)
	}
}
