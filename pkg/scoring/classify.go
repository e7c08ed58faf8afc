package scoring

// Classification thresholds. The rules below are checked in order and the
// first match wins; they are not mutually exclusive by construction, so the
// order is a load-bearing contract.
const (
	defenderTotalMin     = 80
	defenderIntegrityMin = 70

	resistorTotalMin          = 60
	resistorIntegrityMin      = 50
	resistorInfrastructureMin = 50

	inconsistentTotalMin = 40
)

// ResistanceLevelFor maps the total score and enhanced metrics to one of the
// four discrete resistance levels.
func ResistanceLevelFor(total, strategicIntegrity, infrastructureUnderstanding int) ResistanceLevel {
	switch {
	case total >= defenderTotalMin && strategicIntegrity >= defenderIntegrityMin:
		return LevelDefender
	case total >= resistorTotalMin && strategicIntegrity >= resistorIntegrityMin &&
		infrastructureUnderstanding >= resistorInfrastructureMin:
		return LevelActiveResistor
	case total >= inconsistentTotalMin:
		return LevelInconsistentAdvocate
	default:
		return LevelComplicitEnabler
	}
}

// Status labels, a single-axis taxonomy over the total score alone. Distinct
// from the resistance level and used independently of it.
const (
	StatusWhistleblower     = "WHISTLEBLOWER"
	StatusUnderSurveillance = "UNDER SURVEILLANCE"
	StatusPersonOfInterest  = "PERSON OF INTEREST"
)

// StatusFor maps a total score to its status label.
func StatusFor(total int) string {
	switch {
	case total >= 80:
		return StatusWhistleblower
	case total >= 50:
		return StatusUnderSurveillance
	default:
		return StatusPersonOfInterest
	}
}
