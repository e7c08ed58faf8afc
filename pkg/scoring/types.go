// Package scoring implements the Resistwatch resistance scoring engine.
// It turns a politician's verified, dated, categorized actions into
// per-category scores, a weighted total, three enhanced integrity metrics,
// and a discrete resistance-level classification.
package scoring

import (
	"math"
	"time"
)

// Category is one of the five fixed scoring categories.
type Category string

const (
	CategoryPublicStatements  Category = "public_statements"
	CategoryLegislativeAction Category = "legislative_action"
	CategoryPublicEngagement  Category = "public_engagement"
	CategorySocialMedia       Category = "social_media"
	CategoryConsistency       Category = "consistency"
)

// Categories returns all categories in their fixed evaluation order.
// The order is part of the scoring contract: aggregation scans categories
// in this sequence.
func Categories() []Category {
	return []Category{
		CategoryPublicStatements,
		CategoryLegislativeAction,
		CategoryPublicEngagement,
		CategorySocialMedia,
		CategoryConsistency,
	}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPublicStatements, CategoryLegislativeAction,
		CategoryPublicEngagement, CategorySocialMedia, CategoryConsistency:
		return true
	}
	return false
}

// ActionType classifies how an action was observed.
type ActionType string

const (
	ActionStatement   ActionType = "statement"
	ActionVote        ActionType = "vote"
	ActionSponsorship ActionType = "sponsorship"
	ActionSocialPost  ActionType = "social_post"
	ActionPublicEvent ActionType = "public_event"
	ActionInterview   ActionType = "interview"
	ActionOther       ActionType = "other"
)

// Valid reports whether t is a known action type.
func (t ActionType) Valid() bool {
	switch t {
	case ActionStatement, ActionVote, ActionSponsorship, ActionSocialPost,
		ActionPublicEvent, ActionInterview, ActionOther:
		return true
	}
	return false
}

// VerificationStatus is the moderation state of an action.
// Transitions are one-way: pending to verified or rejected.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusRejected VerificationStatus = "rejected"
)

// ResistanceLevel is the headline four-level classification.
type ResistanceLevel string

const (
	LevelDefender             ResistanceLevel = "Defender"
	LevelActiveResistor       ResistanceLevel = "Active Resistor"
	LevelInconsistentAdvocate ResistanceLevel = "Inconsistent Advocate"
	LevelComplicitEnabler     ResistanceLevel = "Complicit Enabler"
)

// Impact/risk/strategic-value grades recorded on actions.
const (
	GradeHigh   = "High"
	GradeMedium = "Medium"
	GradeLow    = "Low"
)

// Action is one verified, dated act attributable to a politician, as
// consumed by the engine. TimeValue and PerformanceModifier are derived
// fields recomputed on every run.
type Action struct {
	ID                  string
	PoliticianID        string
	Type                ActionType
	Date                time.Time
	Description         string
	SourceURL           string
	Points              int
	Category            Category
	SubCategory         string
	ImpactLevel         string
	RiskLevel           string
	StrategicValue      string
	HasFollowUp         bool
	ContradictionFlag   bool
	ContradictionNotes  string
	TimeValue           float64
	PerformanceModifier float64
}

// Committee is a politician's committee membership.
type Committee struct {
	Name               string
	LeadershipPosition string
}

// CategoryScores holds the five per-category scores, each 0-100.
// A struct rather than a map so that adding or removing a category is a
// compile-time-visible change.
type CategoryScores struct {
	PublicStatements  int `json:"public_statements"`
	LegislativeAction int `json:"legislative_action"`
	PublicEngagement  int `json:"public_engagement"`
	SocialMedia       int `json:"social_media"`
	Consistency       int `json:"consistency"`
}

// Get returns the score for a category.
func (s CategoryScores) Get(c Category) int {
	switch c {
	case CategoryPublicStatements:
		return s.PublicStatements
	case CategoryLegislativeAction:
		return s.LegislativeAction
	case CategoryPublicEngagement:
		return s.PublicEngagement
	case CategorySocialMedia:
		return s.SocialMedia
	case CategoryConsistency:
		return s.Consistency
	}
	return 0
}

func (s *CategoryScores) set(c Category, score int) {
	switch c {
	case CategoryPublicStatements:
		s.PublicStatements = score
	case CategoryLegislativeAction:
		s.LegislativeAction = score
	case CategoryPublicEngagement:
		s.PublicEngagement = score
	case CategorySocialMedia:
		s.SocialMedia = score
	case CategoryConsistency:
		s.Consistency = score
	}
}

// DaysOfSilenceSentinel is recorded when a politician has no verified
// actions at all.
const DaysOfSilenceSentinel = 999

// Result is the complete output of one scoring run. Immutable once computed.
type Result struct {
	TotalScore                  int             `json:"total_score"`
	Categories                  CategoryScores  `json:"category_scores"`
	StrategicIntegrity          int             `json:"strategic_integrity_score"`
	InfrastructureUnderstanding int             `json:"infrastructure_understanding_score"`
	PerformanceVsImpact         int             `json:"performance_vs_impact_score"`
	ResistanceLevel             ResistanceLevel `json:"resistance_level"`
	Status                      string          `json:"status"`
	DaysOfSilence               int             `json:"days_of_silence"`
	LastActivityDate            *time.Time      `json:"last_activity_date,omitempty"`

	// Actions carries the input actions with TimeValue and
	// PerformanceModifier recomputed for this run, for write-back.
	Actions []Action `json:"-"`
}

// clamp100 rounds to the nearest integer and clamps to [0, 100].
func clamp100(v float64) int {
	if v <= 0 {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}
