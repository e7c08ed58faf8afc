package scoring

import "time"

// Decay multipliers by action age. Strict step function, no interpolation.
const (
	decayFresh   = 1.0  // 0-30 days
	decayRecent  = 0.75 // 31-90 days
	decayAging   = 0.5  // 91-180 days
	decayStale   = 0.25 // 180+ days
	hoursPerDay  = 24
)

// TimeValue returns the decay multiplier for an action of the given date,
// evaluated against now. Total and deterministic for a fixed now.
func TimeValue(actionDate, now time.Time) float64 {
	days := daysBetween(actionDate, now)
	switch {
	case days <= 30:
		return decayFresh
	case days <= 90:
		return decayRecent
	case days <= 180:
		return decayAging
	default:
		return decayStale
	}
}

// daysBetween returns the whole number of days from earlier to later,
// truncated toward zero.
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / hoursPerDay)
}
