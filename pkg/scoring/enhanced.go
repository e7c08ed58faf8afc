package scoring

// Enhanced metric baselines and adjustments.
const (
	neutralScore = 50

	contradictionPenalty   = 10.0 // scaled by the contradiction's time value
	highImpactBonusAt      = 3    // high-impact actions needed for the bonus
	highImpactBonus        = 10.0
	proceduralDefenseBonus = 5.0
	committeePowerBonus    = 7.0
	idleCommitteePenalty   = 15.0 // holds committee power but never uses it
	highRiskBonus          = 3.0
)

// Legislative sub-categories recognized by the infrastructure metric.
const (
	SubCategoryProceduralDefense = "procedural_defense"
	SubCategoryCommitteePower    = "committee_power"
)

// StrategicIntegrity measures alignment between a politician's words and
// actions. Neutral when either the statements or the legislative record is
// empty; otherwise starts at 100 and pays for each flagged contradiction,
// with recent contradictions costing more.
func StrategicIntegrity(actions []Action) int {
	var statements, legislative int
	for i := range actions {
		switch actions[i].Category {
		case CategoryPublicStatements:
			statements++
		case CategoryLegislativeAction:
			legislative++
		}
	}
	if statements == 0 || legislative == 0 {
		return neutralScore
	}

	score := 100.0
	highImpact := 0
	for i := range actions {
		a := &actions[i]
		if a.ContradictionFlag {
			score -= contradictionPenalty * a.TimeValue
		}
		if a.ImpactLevel == GradeHigh {
			highImpact++
		}
	}
	if highImpact >= highImpactBonusAt {
		score += highImpactBonus
	}

	return clamp100(score)
}

// InfrastructureUnderstanding measures use of structural and procedural
// power. Committee members who never exercise committee power are penalized.
func InfrastructureUnderstanding(actions []Action, committees []Committee) int {
	score := float64(neutralScore)

	var proceduralDefense, committeePower, highRisk int
	for i := range actions {
		a := &actions[i]
		if a.Category == CategoryLegislativeAction {
			switch a.SubCategory {
			case SubCategoryProceduralDefense:
				proceduralDefense++
			case SubCategoryCommitteePower:
				committeePower++
			}
		}
		if a.RiskLevel == GradeHigh {
			highRisk++
		}
	}

	score += float64(proceduralDefense) * proceduralDefenseBonus

	if len(committees) > 0 {
		score += float64(committeePower) * committeePowerBonus
		if committeePower == 0 {
			score -= idleCommitteePenalty
		}
	}

	score += float64(highRisk) * highRiskBonus

	return clamp100(score)
}

// PerformanceVsImpact compares high-impact work against performative
// activity (low impact, discounted by the performance modifier).
func PerformanceVsImpact(actions []Action) int {
	var highImpact, performative int
	for i := range actions {
		a := &actions[i]
		if a.ImpactLevel == GradeHigh {
			highImpact++
		}
		if a.ImpactLevel == GradeLow && a.PerformanceModifier < 1.0 {
			performative++
		}
	}

	ratio := float64(highImpact)
	if performative > 0 {
		ratio = float64(highImpact) / float64(performative)
	}

	switch {
	case ratio >= 2:
		return clamp100(80 + min(20.0, ratio*2))
	case ratio >= 1:
		return clamp100(60 + min(20.0, ratio*10))
	case ratio > 0:
		return clamp100(40 * ratio)
	case performative > 0:
		// All show, no substance.
		return 20
	default:
		return neutralScore
	}
}
