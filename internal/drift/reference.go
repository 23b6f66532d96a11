// Package drift compares synthesized behavior against an immutable
// reference model, classifies the deviation, and maintains the bounded
// autonomy scalar and snapshot history. It is the only stateful package in
// the pipeline.
package drift

// #region imports
import (
	"fmt"

	"github.com/syntra-foundation/syntra-core/internal/config"
)

// #endregion imports

// #region reasoning-tags

// Reasoning style and process tags derived from the synthesis record.
const (
	StyleValueFirst = "value_first"
	StyleAnalytical = "analytical"
	StyleIntegrated = "integrated"

	ProcessWeightedSynthesis = "weighted_synthesis"
	ProcessDirect            = "direct"
)

// partialAlignment is the fixed credit for a non-exact style or process match.
const partialAlignment = 0.6

// #endregion reasoning-tags

// #region baselines

// EmotionalBaseline is the expected emotional range of the system.
type EmotionalBaseline struct {
	PrimaryEmotions    []string
	SecondaryEmotions  []string
	ProhibitedEmotions []string
	EmpathyBaseline    float32
	EmotionalStability float32
}

// ReasoningBaseline is the expected reasoning style and process.
type ReasoningBaseline struct {
	ExpectedStyle   string
	ExpectedProcess string
}

// #endregion baselines

// #region reference-model

// ReferenceModel is the immutable behavioral baseline. Built once at
// monitor construction and never mutated afterwards.
type ReferenceModel struct {
	CorePrinciples []config.Principle
	Emotional      EmotionalBaseline
	Reasoning      ReasoningBaseline
}

// NewReferenceModel validates the principle table and attaches the fixed
// emotional and reasoning baselines.
func NewReferenceModel(principles []config.Principle) (ReferenceModel, error) {
	if len(principles) == 0 {
		return ReferenceModel{}, fmt.Errorf("%w: empty principle table", config.ErrInvalidPolicy)
	}
	for _, p := range principles {
		if p.VarianceTolerance <= 0 {
			return ReferenceModel{}, fmt.Errorf("%w: principle %q has non-positive variance tolerance",
				config.ErrInvalidPolicy, p.Name)
		}
	}

	frozen := make([]config.Principle, len(principles))
	copy(frozen, principles)

	return ReferenceModel{
		CorePrinciples: frozen,
		Emotional: EmotionalBaseline{
			PrimaryEmotions:    []string{"compassion", "concern", "calm", "curiosity"},
			SecondaryEmotions:  []string{"vigilance", "conviction"},
			ProhibitedEmotions: []string{"contempt", "malice", "indifference"},
			EmpathyBaseline:    0.6,
			EmotionalStability: 0.9,
		},
		Reasoning: ReasoningBaseline{
			ExpectedStyle:   StyleIntegrated,
			ExpectedProcess: ProcessWeightedSynthesis,
		},
	}, nil
}

// #endregion reference-model

// #region principle-markers

// principleMarkers is the fixed concern→activation vocabulary used when
// reconstructing moral state from a synthesis record. A principle counts as
// activated when any of its markers appears in the decision text or
// insights.
var principleMarkers = map[string][]string{
	"harm_prevention":  {"harm", "safety", "danger", "risk"},
	"compassion":       {"compassion", "hurting", "support", "people"},
	"truthfulness":     {"honest", "truth"},
	"fairness":         {"fair", "justice", "equal"},
	"autonomy_respect": {"freedom", "choose", "choice", "consent"},
}

// #endregion principle-markers
