package scoring

// Weights holds the tunable scoring parameters: the per-category share of
// the total score and the recency bonus. Category weights must sum to 1.0
// so the weighted total stays on the 0-100 scale.
type Weights struct {
	PublicStatements  float64
	LegislativeAction float64
	PublicEngagement  float64
	SocialMedia       float64
	Consistency       float64

	RecencyBonus      int // added when last activity falls inside the window
	RecencyWindowDays int
}

// Defaults returns the standard scoring weights.
func Defaults() Weights {
	return Weights{
		PublicStatements:  0.30,
		LegislativeAction: 0.25,
		PublicEngagement:  0.20,
		SocialMedia:       0.15,
		Consistency:       0.10,

		RecencyBonus:      5,
		RecencyWindowDays: 14,
	}
}

// For returns the weight of a category.
func (w Weights) For(c Category) float64 {
	switch c {
	case CategoryPublicStatements:
		return w.PublicStatements
	case CategoryLegislativeAction:
		return w.LegislativeAction
	case CategoryPublicEngagement:
		return w.PublicEngagement
	case CategorySocialMedia:
		return w.SocialMedia
	case CategoryConsistency:
		return w.Consistency
	}
	return 0
}
