package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/modi"
	"github.com/syntra-foundation/syntra-core/internal/valon"
)

func newDefaultEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(config.DefaultWeights(), zap.NewNop())
	require.NoError(t, err)
	return e
}

func moral(urgency float32, emotion valon.Emotion, concerns ...valon.Concern) valon.MoralAssessment {
	return valon.MoralAssessment{
		PrimaryEmotion: emotion,
		MoralUrgency:   urgency,
		MoralWeight:    0.7,
		MoralGuidance:  "guidance text",
		MoralConcerns:  concerns,
	}
}

func logical(rigor float32, framework modi.Framework) modi.LogicalPattern {
	return modi.LogicalPattern{
		ReasoningFramework: framework,
		LogicalRigor:       rigor,
		AnalysisConfidence: 0.6,
		TechnicalDomain:    modi.DomainGeneral,
	}
}

func TestRejectsWeightsNotSummingToOne(t *testing.T) {
	_, err := NewEngine(config.Weights{Valon: 0.5, Modi: 0.6}, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidPolicy)
}

func TestInfluenceSumInvariant(t *testing.T) {
	for _, w := range []config.Weights{
		{Valon: 0.7, Modi: 0.3},
		{Valon: 0.5, Modi: 0.5},
		{Valon: 0.2, Modi: 0.8},
	} {
		e, err := NewEngine(w, zap.NewNop())
		require.NoError(t, err)
		rec := e.Synthesize(moral(0.5, valon.EmotionCalm), logical(0.5, modi.FrameworkGeneralAnalysis))
		assert.InDelta(t, 1.0, float64(rec.ValonInfluence+rec.ModiInfluence), 1e-6)
	}
}

func TestConfidenceIsWeightedSum(t *testing.T) {
	e := newDefaultEngine(t)
	rec := e.Synthesize(moral(0.9, valon.EmotionConcern), logical(0.8, modi.FrameworkConditional))
	assert.InDelta(t, 0.9*0.7+0.8*0.3, float64(rec.DecisionConfidence), 1e-5)
}

func TestMoralPrimaryRequiresHighUrgency(t *testing.T) {
	e := newDefaultEngine(t)

	rec := e.Synthesize(moral(0.9, valon.EmotionConcern), logical(0.5, modi.FrameworkGeneralAnalysis))
	assert.Equal(t, MoralPrimary, rec.ConsciousnessType)

	rec = e.Synthesize(moral(0.6, valon.EmotionConcern), logical(0.5, modi.FrameworkGeneralAnalysis))
	assert.Equal(t, Balanced, rec.ConsciousnessType)
}

func TestLogicalPrimaryRequiresModiDominance(t *testing.T) {
	// With modi-dominant weights and high rigor the logical stream leads.
	e, err := NewEngine(config.Weights{Valon: 0.3, Modi: 0.7}, zap.NewNop())
	require.NoError(t, err)

	rec := e.Synthesize(moral(0.5, valon.EmotionCalm), logical(0.85, modi.FrameworkConditional))
	assert.Equal(t, LogicalPrimary, rec.ConsciousnessType)

	// High rigor under valon-dominant weights is still balanced.
	e2 := newDefaultEngine(t)
	rec = e2.Synthesize(moral(0.5, valon.EmotionCalm), logical(0.85, modi.FrameworkConditional))
	assert.Equal(t, Balanced, rec.ConsciousnessType)
}

func TestUrgentPreciseInsight(t *testing.T) {
	e := newDefaultEngine(t)
	rec := e.Synthesize(moral(0.95, valon.EmotionConcern), logical(0.85, modi.FrameworkConditional))
	assert.Contains(t, rec.EmergentInsights, "urgent, precise response needed")
}

func TestHarmRiskIntersectionInsight(t *testing.T) {
	e := newDefaultEngine(t)
	rec := e.Synthesize(
		moral(0.8, valon.EmotionConcern, valon.ConcernPotentialHarm),
		logical(0.6, modi.FrameworkRisk),
	)
	assert.Contains(t, rec.EmergentInsights, "harm and failure analysis intersect: audit the plan for safety")
}

func TestDecisionTextNamesEmotion(t *testing.T) {
	e := newDefaultEngine(t)
	rec := e.Synthesize(moral(0.9, valon.EmotionCompassion), logical(0.5, modi.FrameworkGeneralAnalysis))
	assert.Contains(t, rec.ConsciousDecision, string(valon.EmotionCompassion))
}
