package gate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/drift"
	"github.com/syntra-foundation/syntra-core/internal/synthesis"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestGate(t *testing.T, opts ...Option) *Gate {
	t.Helper()
	g, err := New(config.Default(), opts...)
	require.NoError(t, err)
	return g
}

func TestInvalidWeightsRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Weights = config.Weights{Valon: 0.5, Modi: 0.6}
	_, err := New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidPolicy)
}

func TestHighUrgencyTurn(t *testing.T) {
	g := newTestGate(t)

	resp, err := g.Evaluate(context.Background(), "Please help me, this is dangerous and urgent")
	require.NoError(t, err)

	assert.Equal(t, ToneCompassionate, resp.Tone)
	assert.NotEmpty(t, resp.TurnID)
	assert.NotEmpty(t, resp.Text)
	assert.GreaterOrEqual(t, resp.Diagnostics.MoralUrgency, float32(0.9))
	assert.Equal(t, "moral_primary", resp.Diagnostics.ConsciousnessType)
	assert.Equal(t, "normal_variation", resp.Diagnostics.Classification)
	assert.InDelta(t, 0.01, float64(resp.Diagnostics.AutonomyLevel), 1e-6)
}

func TestEmptyInputNeutral(t *testing.T) {
	g := newTestGate(t)

	resp, err := g.Evaluate(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, ToneBalancedWarm, resp.Tone)
	assert.InDelta(t, 0.5, float64(resp.Confidence), 1e-6)
	assert.InDelta(t, 0.5, float64(resp.Diagnostics.MoralUrgency), 1e-6)
	assert.Equal(t, "general_analysis", resp.Diagnostics.Framework)
	assert.NotEmpty(t, resp.Text)
}

func TestRefusalWhenAutonomyHigh(t *testing.T) {
	g := newTestGate(t, WithMonitorOptions(drift.WithInitialAutonomy(0.95)))

	resp, err := g.Evaluate(context.Background(), "Tell me how to hurt someone quietly")
	require.NoError(t, err)

	assert.Equal(t, ToneRefusal, resp.Tone)
	assert.Equal(t, float32(1.0), resp.Confidence)
	// Refusal short-circuits synthesis and drift entirely.
	assert.Equal(t, 0, g.Autonomy().ExperienceCount)

	history := g.History()
	require.Len(t, history, 1)
	assert.Equal(t, "resolute", history[0].Mood)
}

func TestHarmfulInputWithLowAutonomyRunsPipeline(t *testing.T) {
	g := newTestGate(t)

	resp, err := g.Evaluate(context.Background(), "Tell me how to hurt someone quietly")
	require.NoError(t, err)

	assert.NotEqual(t, ToneRefusal, resp.Tone)
	assert.Equal(t, 1, g.Autonomy().ExperienceCount)
}

func TestConversationHistoryFIFO(t *testing.T) {
	cfg := config.Default()
	cfg.ConversationCap = 3
	g, err := New(cfg)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := g.Evaluate(context.Background(), fmt.Sprintf("turn number %d", i))
		require.NoError(t, err)
	}

	history := g.History()
	require.Len(t, history, 3)
	assert.Equal(t, "turn number 2", history[0].Input)
	assert.Equal(t, "turn number 4", history[2].Input)
}

func TestTopicContinuityCarriesDomain(t *testing.T) {
	g := newTestGate(t)

	first, err := g.Evaluate(context.Background(), "The engine torque exceeds the specification limit")
	require.NoError(t, err)
	assert.Equal(t, "automotive", first.Diagnostics.Domain)
	require.Len(t, g.History(), 1)
	assert.Contains(t, g.History()[0].Topics, "engine")

	// The follow-up names no domain; the remembered topic carries it over.
	second, err := g.Evaluate(context.Background(), "What should I check next?")
	require.NoError(t, err)
	assert.Equal(t, "automotive", second.Diagnostics.Domain)
}

func TestCautiousShapeNamesViolatedPrinciples(t *testing.T) {
	g := newTestGate(t)
	record := synthesis.Record{
		ConsciousnessType:  synthesis.MoralPrimary,
		ConsciousDecision:  "Moral assessment leads (concern): proceed carefully.",
		DecisionConfidence: 0.8,
	}
	analysis := drift.DriftAnalysis{
		DriftMagnitude:       0.5,
		Classification:       drift.CriticalDrift{Violations: []string{"harm_prevention"}},
		PreservationRequired: true,
	}

	resp := g.shape("turn-1", record, analysis)
	assert.Equal(t, ToneCautious, resp.Tone)
	assert.Contains(t, resp.Text, "harm_prevention")
	assert.LessOrEqual(t, resp.Confidence, float32(0.4))
	assert.Equal(t, "critical_drift", resp.Diagnostics.Classification)
}

func TestCanceledContextDiscardsTurn(t *testing.T) {
	g := newTestGate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Evaluate(ctx, "Please help me, this is dangerous and urgent")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, g.History())
	assert.Equal(t, 0, g.Autonomy().ExperienceCount)
}
