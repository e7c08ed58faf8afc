package scoring

// Performance modifier discounts for low-substance, high-visibility activity.
const (
	modifierDefault         = 1.0
	modifierNoFollowUp      = 0.5 // social post with no recorded follow-up action
	modifierCeremonial      = 0.3 // public engagement with Low strategic value
)

// PerformanceModifier returns the discount multiplier for an action,
// reflecting how substantive versus performative it is. Substantive
// legislative and statement work is never discounted.
func PerformanceModifier(a Action) float64 {
	if a.Category == CategorySocialMedia && !a.HasFollowUp {
		return modifierNoFollowUp
	}
	if a.Category == CategoryPublicEngagement && a.StrategicValue == GradeLow {
		return modifierCeremonial
	}
	return modifierDefault
}
