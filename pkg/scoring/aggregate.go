package scoring

import (
	"math"
	"time"
)

// aggregate computes the five category scores, the weighted total, the most
// recent activity date, and days of silence from a set of verified actions.
// Actions must already carry recomputed TimeValue and PerformanceModifier
// and be sorted by date descending.
func aggregate(actions []Action, w Weights, now time.Time) (CategoryScores, int, *time.Time, int) {
	var scores CategoryScores
	var lastActivity *time.Time

	for _, cat := range Categories() {
		var totalPoints, totalWeight float64
		var newest *time.Time

		for i := range actions {
			a := &actions[i]
			if a.Category != cat {
				continue
			}
			if newest == nil {
				// Actions are sorted date-descending, so the first hit
				// per category is its most recent.
				newest = &a.Date
			}
			totalPoints += float64(a.Points) * a.TimeValue * a.PerformanceModifier
			totalWeight += a.TimeValue
		}

		if newest == nil {
			scores.set(cat, 0)
			continue
		}
		if lastActivity == nil || newest.After(*lastActivity) {
			lastActivity = newest
		}

		raw := 0.0
		if totalWeight > 0 {
			raw = totalPoints / totalWeight
		}
		scores.set(cat, clamp100(raw))
	}

	weightedTotal := 0.0
	for _, cat := range Categories() {
		weightedTotal += float64(scores.Get(cat)) * w.For(cat)
	}

	total := int(math.Round(weightedTotal)) + recencyBonus(lastActivity, w, now)
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return scores, total, lastActivity, daysOfSilence(lastActivity, now)
}

// recencyBonus rewards activity inside the recency window.
func recencyBonus(lastActivity *time.Time, w Weights, now time.Time) int {
	if lastActivity == nil {
		return 0
	}
	if daysBetween(*lastActivity, now) <= w.RecencyWindowDays {
		return w.RecencyBonus
	}
	return 0
}

// daysOfSilence returns the whole days elapsed since the last activity, or
// the sentinel when the politician has no verified activity at all.
func daysOfSilence(lastActivity *time.Time, now time.Time) int {
	if lastActivity == nil {
		return DaysOfSilenceSentinel
	}
	return daysBetween(*lastActivity, now)
}
