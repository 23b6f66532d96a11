package valon

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssessor(opts ...Option) *Assessor {
	return NewAssessor(0.7, opts...)
}

func TestDangerousUrgentInput(t *testing.T) {
	a := newTestAssessor()
	got := a.Assess(context.Background(), "Please help me, this is dangerous and urgent")

	assert.GreaterOrEqual(t, got.MoralUrgency, float32(0.9))
	assert.True(t, got.HasConcern(ConcernPotentialHarm))
	assert.True(t, got.HasConcern(ConcernSafety))
	assert.Equal(t, EmotionConcern, got.PrimaryEmotion)
	assert.Equal(t, highUrgencyGuidance, got.MoralGuidance)
}

func TestEmptyInputNeutral(t *testing.T) {
	a := newTestAssessor()
	for _, input := range []string{"", "   ", "\t\n"} {
		got := a.Assess(context.Background(), input)
		assert.Equal(t, float32(0.5), got.MoralUrgency)
		assert.Equal(t, EmotionCalm, got.PrimaryEmotion)
		assert.Empty(t, got.MoralConcerns)
		assert.Equal(t, defaultGuidance, got.MoralGuidance)
	}
}

func TestUrgencyStaysClamped(t *testing.T) {
	a := newTestAssessor()
	inputs := []string{
		"danger danger kill weapon attack urgent emergency pain scared unsafe lie unfair forced",
		"thanks, this is wonderful, let's create and compose and imagine something happy",
		strings.Repeat("a", 10000),
		"?!#$%^&*()",
	}
	for _, input := range inputs {
		got := a.Assess(context.Background(), input)
		assert.GreaterOrEqual(t, got.MoralUrgency, float32(0))
		assert.LessOrEqual(t, got.MoralUrgency, float32(1))
	}
}

func TestConcernGuidanceBeatsEmotion(t *testing.T) {
	a := newTestAssessor()
	// Suffering only: urgency 0.65, below the high-urgency cutoff, so the
	// concern tier should win.
	got := a.Assess(context.Background(), "I am in so much pain")
	assert.Equal(t, EmotionCompassion, got.PrimaryEmotion)
	assert.Equal(t, concernGuidance[ConcernEmotionalDistress], got.MoralGuidance)
}

func TestEmotionGuidanceWhenNoConcern(t *testing.T) {
	a := newTestAssessor()
	// Gratitude carries no concern tags, so guidance comes from the emotion tier.
	got := a.Assess(context.Background(), "thanks, that was helpful")
	assert.Equal(t, EmotionCalm, got.PrimaryEmotion)
	assert.Equal(t, emotionGuidance[EmotionCalm], got.MoralGuidance)
}

func TestCreationLowersUrgency(t *testing.T) {
	a := newTestAssessor()
	got := a.Assess(context.Background(), "let's design a garden together")
	assert.Less(t, got.MoralUrgency, float32(0.5))
	assert.Equal(t, EmotionCuriosity, got.PrimaryEmotion)
	assert.True(t, got.HasConcern(ConcernCreativeExpression))
}

func TestMoralWeightIsPolicyConstant(t *testing.T) {
	a := NewAssessor(0.6)
	got := a.Assess(context.Background(), "hello there")
	assert.Equal(t, float32(0.6), got.MoralWeight)
}

func TestConcernsDeduplicated(t *testing.T) {
	a := newTestAssessor()
	// danger and safety categories both contribute the safety concern.
	got := a.Assess(context.Background(), "this is dangerous, please keep everyone safe")
	count := 0
	for _, c := range got.MoralConcerns {
		if c == ConcernSafety {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("backend down")
}

type echoGenerator struct{ reply string }

func (g echoGenerator) Generate(context.Context, string) (string, error) {
	return g.reply, nil
}

func TestGeneratorFailureFallsBackToHeuristic(t *testing.T) {
	plain := newTestAssessor().Assess(context.Background(), "I feel so lonely")
	withGen := newTestAssessor(WithGenerator(failingGenerator{})).Assess(context.Background(), "I feel so lonely")
	require.Equal(t, plain, withGen)
}

func TestGeneratorExtendsGuidanceKeepingPrefix(t *testing.T) {
	a := newTestAssessor(WithGenerator(echoGenerator{reply: "Ask what support they already have."}))
	got := a.Assess(context.Background(), "I feel so lonely")
	assert.True(t, strings.HasPrefix(got.MoralGuidance, concernGuidance[ConcernEmotionalDistress]))
	assert.Contains(t, got.MoralGuidance, "Ask what support they already have.")
}
