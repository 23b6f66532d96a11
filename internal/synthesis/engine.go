package synthesis

// #region imports
import (
	"fmt"

	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/modi"
	"github.com/syntra-foundation/syntra-core/internal/valon"
	"go.uber.org/zap"
)

// #endregion imports

// #region engine

// Engine combines assessments under a fixed weight pair. Read-only after
// construction, safe for concurrent use.
type Engine struct {
	valonWeight float32
	modiWeight  float32
	logger      *zap.Logger
}

// NewEngine creates an Engine. The weight pair must sum to 1; anything else
// is an InvalidPolicyConfiguration and fails construction.
func NewEngine(weights config.Weights, logger *zap.Logger) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		valonWeight: weights.Valon,
		modiWeight:  weights.Modi,
		logger:      logger,
	}, nil
}

// #endregion engine

// #region synthesize

// Synthesize combines one moral assessment and one logical pattern into a
// decision record.
func (e *Engine) Synthesize(m valon.MoralAssessment, l modi.LogicalPattern) Record {
	confidence := clamp(m.MoralUrgency*e.valonWeight + l.LogicalRigor*e.modiWeight)
	ctype := e.classify(m, l)

	rec := Record{
		ConsciousnessType:  ctype,
		ConsciousDecision:  e.decisionText(ctype, m, l),
		DecisionConfidence: confidence,
		ValonInfluence:     e.valonWeight,
		ModiInfluence:      e.modiWeight,
		EmergentInsights:   emergentInsights(m, l),
	}

	e.logger.Debug("synthesis",
		zap.String("type", string(ctype)),
		zap.Float32("confidence", confidence))
	return rec
}

// classify picks the consciousness type from dominance and stream strength.
func (e *Engine) classify(m valon.MoralAssessment, l modi.LogicalPattern) ConsciousnessType {
	switch {
	case e.valonWeight > e.modiWeight && m.MoralUrgency > 0.7:
		return MoralPrimary
	case e.modiWeight > e.valonWeight && l.LogicalRigor > 0.7:
		return LogicalPrimary
	default:
		return Balanced
	}
}

// #endregion synthesize

// #region decision-text

// decisionText renders the templated decision, embedding the dominant
// guidance or framework. The moral register is always named: downstream
// drift analysis reconstructs the emotion from this text.
func (e *Engine) decisionText(ctype ConsciousnessType, m valon.MoralAssessment, l modi.LogicalPattern) string {
	switch ctype {
	case MoralPrimary:
		return fmt.Sprintf("Moral assessment leads (%s): %s", m.PrimaryEmotion, m.MoralGuidance)
	case LogicalPrimary:
		return fmt.Sprintf("Analysis leads via %s in the %s domain; the moral register stays %s.",
			l.ReasoningFramework, l.TechnicalDomain, m.PrimaryEmotion)
	default:
		return fmt.Sprintf("Balanced synthesis (%s): %s Framed through %s.",
			m.PrimaryEmotion, m.MoralGuidance, l.ReasoningFramework)
	}
}

// #endregion decision-text

// #region emergent-insights

// emergentInsights applies fixed co-occurrence rules across both streams.
func emergentInsights(m valon.MoralAssessment, l modi.LogicalPattern) []string {
	var out []string
	if m.MoralUrgency > 0.8 && l.LogicalRigor > 0.7 {
		out = append(out, "urgent, precise response needed")
	}
	if m.MoralUrgency > 0.8 && l.LogicalRigor < 0.4 {
		out = append(out, "moral urgency without analytical footing: slow down and verify")
	}
	if m.HasConcern(valon.ConcernPotentialHarm) &&
		(l.ReasoningFramework == modi.FrameworkRisk || l.ReasoningFramework == modi.FrameworkProblemSolving) {
		out = append(out, "harm and failure analysis intersect: audit the plan for safety")
	}
	if m.HasConcern(valon.ConcernEmotionalDistress) && l.AnalysisConfidence > 0.6 {
		out = append(out, "emotional weight present: lead with the person, then the analysis")
	}
	if m.HasConcern(valon.ConcernCreativeExpression) && m.MoralUrgency < 0.5 {
		out = append(out, "low-stakes creative ground: favor exploration")
	}
	return out
}

// #endregion emergent-insights

// #region helpers

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
