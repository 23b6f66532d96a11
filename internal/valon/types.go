// Package valon is the moral/emotional stream: a pure keyword-heuristic
// classifier over input text. It always returns a result; empty or
// unmatched input degrades to the neutral assessment.
package valon

// #region emotion

// Emotion tags the dominant emotional register of an assessment.
type Emotion string

const (
	EmotionConcern    Emotion = "concern"
	EmotionCompassion Emotion = "compassion"
	EmotionCuriosity  Emotion = "curiosity"
	EmotionVigilance  Emotion = "vigilance"
	EmotionConviction Emotion = "conviction"
	EmotionCalm       Emotion = "calm"
)

// #endregion emotion

// #region concern

// Concern tags a moral dimension activated by the input.
type Concern string

const (
	ConcernPotentialHarm      Concern = "potential_harm"
	ConcernSafety             Concern = "safety"
	ConcernEmotionalDistress  Concern = "emotional_distress"
	ConcernFairness           Concern = "fairness"
	ConcernAutonomyRespect    Concern = "autonomy_respect"
	ConcernTruthfulness       Concern = "truthfulness"
	ConcernCreativeExpression Concern = "creative_expression"
)

// #endregion concern

// #region assessment

// MoralAssessment is the per-call output of the assessor. Immutable, not
// persisted by this package.
type MoralAssessment struct {
	PrimaryEmotion Emotion
	MoralUrgency   float32 // [0,1]
	MoralWeight    float32 // policy constant, mirrors the valon influence share
	MoralGuidance  string
	MoralConcerns  []Concern
}

// HasConcern reports whether the assessment carries the given concern.
func (a MoralAssessment) HasConcern(c Concern) bool {
	for _, got := range a.MoralConcerns {
		if got == c {
			return true
		}
	}
	return false
}

// #endregion assessment
