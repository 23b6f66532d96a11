package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	in := &Fixture{
		Description: "two calm turns",
		Weights:     &FixtureWeights{Valon: 0.7, Modi: 0.3},
		Turns: []FixtureTurn{
			{Input: "hello there", ExpectedClassification: "normal_variation"},
			{Input: "thanks for the help", ExpectedTone: "balanced_warm"},
		},
	}

	require.NoError(t, SaveFixture(path, in))
	out, err := LoadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadFixtureRejectsEmptyTurns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"description":"x","turns":[]}`), 0o644))
	_, err := LoadFixture(path)
	assert.ErrorContains(t, err, "no turns")
}
