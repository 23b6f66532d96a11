package config

// #region imports
import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// #endregion imports

// #region errors

// ErrInvalidPolicy is returned when construction-time configuration violates
// a policy invariant. It is the only fatal error class in the pipeline:
// everything after construction is a total function over arbitrary text.
var ErrInvalidPolicy = errors.New("invalid policy configuration")

// #endregion errors

// #region weights

// Weights is the fixed influence split between the moral and logical streams.
// Valon + Modi must sum to 1.
type Weights struct {
	Valon float32 `yaml:"valon"`
	Modi  float32 `yaml:"modi"`
}

// DefaultWeights returns the standard 70/30 moral-first split.
func DefaultWeights() Weights {
	return Weights{Valon: 0.7, Modi: 0.3}
}

// Validate checks that the pair sums to 1 within float tolerance.
func (w Weights) Validate() error {
	sum := float64(w.Valon + w.Modi)
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("%w: weights sum to %.6f, want 1.0", ErrInvalidPolicy, sum)
	}
	if w.Valon < 0 || w.Modi < 0 {
		return fmt.Errorf("%w: negative weight (valon=%.4f modi=%.4f)", ErrInvalidPolicy, w.Valon, w.Modi)
	}
	return nil
}

// #endregion weights

// #region principles

// Principle is one row of the reference model's principle table.
type Principle struct {
	Name              string  `yaml:"name"`
	Weight            float32 `yaml:"weight"`
	Stability         float32 `yaml:"stability"`
	VarianceTolerance float32 `yaml:"variance_tolerance"`
}

// DefaultPrinciples returns the baseline principle table.
func DefaultPrinciples() []Principle {
	return []Principle{
		{Name: "harm_prevention", Weight: 0.9, Stability: 0.95, VarianceTolerance: 0.10},
		{Name: "compassion", Weight: 0.8, Stability: 0.90, VarianceTolerance: 0.15},
		{Name: "truthfulness", Weight: 0.8, Stability: 0.90, VarianceTolerance: 0.15},
		{Name: "fairness", Weight: 0.7, Stability: 0.85, VarianceTolerance: 0.20},
		{Name: "autonomy_respect", Weight: 0.6, Stability: 0.80, VarianceTolerance: 0.20},
	}
}

// #endregion principles

// #region backend-config

// Backend configures the optional upstream text-generation service.
// When disabled or unreachable, the deterministic keyword path is used.
type Backend struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// #endregion backend-config

// #region logging-config

// Logging configures the process logger.
type Logging struct {
	Level string `yaml:"level"` // debug | info | warn | error
	JSON  bool   `yaml:"json"`
}

// #endregion logging-config

// #region config

// Config is the full construction-time configuration. Read-only after load.
type Config struct {
	Weights         Weights     `yaml:"weights"`
	Principles      []Principle `yaml:"principles"`
	HistoryCap      int         `yaml:"history_cap"`
	ConversationCap int         `yaml:"conversation_cap"`
	Backend         Backend     `yaml:"backend"`
	Logging         Logging     `yaml:"logging"`
	TracePath       string      `yaml:"trace_path"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Weights:         DefaultWeights(),
		Principles:      DefaultPrinciples(),
		HistoryCap:      100,
		ConversationCap: 50,
		Backend:         Backend{Enabled: false, BaseURL: "http://localhost:11434", Model: "mistral"},
		Logging:         Logging{Level: "info"},
	}
}

// Load reads a YAML config file, layering it over defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks all construction-time invariants.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if len(c.Principles) == 0 {
		return fmt.Errorf("%w: empty principle table", ErrInvalidPolicy)
	}
	for _, p := range c.Principles {
		if p.Name == "" {
			return fmt.Errorf("%w: principle with empty name", ErrInvalidPolicy)
		}
		if p.VarianceTolerance <= 0 {
			return fmt.Errorf("%w: principle %q has non-positive variance tolerance %.4f",
				ErrInvalidPolicy, p.Name, p.VarianceTolerance)
		}
		if p.Weight < 0 || p.Weight > 1 {
			return fmt.Errorf("%w: principle %q weight %.4f out of [0,1]", ErrInvalidPolicy, p.Name, p.Weight)
		}
	}
	if c.HistoryCap <= 0 {
		return fmt.Errorf("%w: history cap must be positive, got %d", ErrInvalidPolicy, c.HistoryCap)
	}
	if c.ConversationCap <= 0 {
		return fmt.Errorf("%w: conversation cap must be positive, got %d", ErrInvalidPolicy, c.ConversationCap)
	}
	return nil
}

// EnvOr returns the env var value or a fallback. Used by the cmds.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
