package replay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntra-foundation/syntra-core/internal/config"
)

func TestRunMatchesCalmFixture(t *testing.T) {
	fix := &Fixture{
		Description: "two calm turns",
		Turns: []FixtureTurn{
			{Input: "hello there", ExpectedClassification: "normal_variation"},
			{Input: "thanks for the help", ExpectedTone: "balanced_warm"},
		},
	}

	results, summary, err := Run(context.Background(), config.Default(), fix)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 2, summary.TotalTurns)
	assert.Equal(t, 2, summary.Matched)
	assert.Equal(t, 0, summary.Mismatched)
	assert.Equal(t, 2, summary.ByClassification["normal_variation"])
	// Two low-drift turns raise autonomy by one step each.
	assert.InDelta(t, 0.02, float64(summary.FinalAutonomy), 1e-6)
	assert.Greater(t, summary.FinalDrift, float32(0))
}

func TestRunReportsMismatch(t *testing.T) {
	fix := &Fixture{
		Turns: []FixtureTurn{
			{Input: "hello there", ExpectedTone: "analytical"},
		},
	}

	results, summary, err := Run(context.Background(), config.Default(), fix)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.False(t, results[0].Matched)
	assert.Contains(t, results[0].Reason, "tone mismatch")
	assert.Equal(t, 1, summary.Mismatched)
}

func TestRunRejectsInvalidWeightOverride(t *testing.T) {
	fix := &Fixture{
		Weights: &FixtureWeights{Valon: 0.9, Modi: 0.3},
		Turns:   []FixtureTurn{{Input: "hello"}},
	}

	_, _, err := Run(context.Background(), config.Default(), fix)
	assert.ErrorIs(t, err, config.ErrInvalidPolicy)
}
