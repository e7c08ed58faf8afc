package scoring

import "testing"

func TestPerformanceModifier(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   float64
	}{
		{
			name:   "legislative action full value",
			action: Action{Category: CategoryLegislativeAction},
			want:   1.0,
		},
		{
			name:   "statement full value",
			action: Action{Category: CategoryPublicStatements},
			want:   1.0,
		},
		{
			name:   "social post without follow-up discounted",
			action: Action{Category: CategorySocialMedia, HasFollowUp: false},
			want:   0.5,
		},
		{
			name:   "social post with follow-up full value",
			action: Action{Category: CategorySocialMedia, HasFollowUp: true},
			want:   1.0,
		},
		{
			name:   "ceremonial engagement discounted",
			action: Action{Category: CategoryPublicEngagement, StrategicValue: GradeLow},
			want:   0.3,
		},
		{
			name:   "strategic engagement full value",
			action: Action{Category: CategoryPublicEngagement, StrategicValue: GradeHigh},
			want:   1.0,
		},
		{
			name:   "engagement with no recorded strategic value full value",
			action: Action{Category: CategoryPublicEngagement},
			want:   1.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PerformanceModifier(tc.action); got != tc.want {
				t.Errorf("PerformanceModifier() = %v, want %v", got, tc.want)
			}
		})
	}
}
