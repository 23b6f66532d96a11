package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestWeightsMustSumToOne(t *testing.T) {
	w := Weights{Valon: 0.7, Modi: 0.4}
	err := w.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestWeightsRejectNegative(t *testing.T) {
	w := Weights{Valon: 1.3, Modi: -0.3}
	assert.ErrorIs(t, w.Validate(), ErrInvalidPolicy)
}

func TestNonPositiveToleranceRejected(t *testing.T) {
	cfg := Default()
	cfg.Principles[0].VarianceTolerance = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPolicy)
}

func TestEmptyPrincipleTableRejected(t *testing.T) {
	cfg := Default()
	cfg.Principles = nil
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPolicy)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syntra.yaml")
	data := []byte("weights:\n  valon: 0.6\n  modi: 0.4\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, cfg.Weights.Valon, 1e-6)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep defaults.
	assert.Equal(t, 100, cfg.HistoryCap)
	assert.Len(t, cfg.Principles, 5)
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syntra.yaml")
	data := []byte("weights:\n  valon: 0.9\n  modi: 0.9\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
