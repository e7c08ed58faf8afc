package scoring

import (
	"fmt"
	"sort"
	"time"
)

// Engine computes a politician's complete scoring result from their
// verified actions and committee memberships.
type Engine struct {
	weights Weights
}

// NewEngine creates an engine with the given weights.
func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// Weights returns the engine's configured weights.
func (e *Engine) Weights() Weights { return e.weights }

// DefaultResult returns the result recorded for a politician with no
// verified actions: all category scores zero, enhanced metrics neutral,
// lowest resistance level, and the days-of-silence sentinel.
func DefaultResult() *Result {
	return &Result{
		TotalScore:                  0,
		StrategicIntegrity:          neutralScore,
		InfrastructureUnderstanding: neutralScore,
		PerformanceVsImpact:         neutralScore,
		ResistanceLevel:             LevelComplicitEnabler,
		Status:                      StatusFor(0),
		DaysOfSilence:               DaysOfSilenceSentinel,
	}
}

// Compute runs the full scoring pipeline for one politician. It recomputes
// each action's time value and performance modifier against now, aggregates
// category and total scores, evaluates the enhanced metrics, and classifies
// the result. Deterministic and idempotent for fixed inputs and a fixed now.
func (e *Engine) Compute(actions []Action, committees []Committee, now time.Time) (*Result, error) {
	if len(actions) == 0 {
		return DefaultResult(), nil
	}

	for i := range actions {
		if !actions[i].Category.Valid() {
			return nil, fmt.Errorf("action %s: unknown category %q", actions[i].ID, actions[i].Category)
		}
	}

	// Work on a copy sorted date-descending so the per-category
	// most-recent-first contract holds regardless of input order.
	sorted := make([]Action, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	for i := range sorted {
		sorted[i].TimeValue = TimeValue(sorted[i].Date, now)
		sorted[i].PerformanceModifier = PerformanceModifier(sorted[i])
	}

	scores, total, lastActivity, silence := aggregate(sorted, e.weights, now)

	integrity := StrategicIntegrity(sorted)
	infrastructure := InfrastructureUnderstanding(sorted, committees)
	perfVsImpact := PerformanceVsImpact(sorted)

	return &Result{
		TotalScore:                  total,
		Categories:                  scores,
		StrategicIntegrity:          integrity,
		InfrastructureUnderstanding: infrastructure,
		PerformanceVsImpact:         perfVsImpact,
		ResistanceLevel:             ResistanceLevelFor(total, integrity, infrastructure),
		Status:                      StatusFor(total),
		DaysOfSilence:               silence,
		LastActivityDate:            lastActivity,
		Actions:                     sorted,
	}, nil
}
