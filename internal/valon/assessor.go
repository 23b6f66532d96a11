package valon

// #region imports
import (
	"context"
	"strings"

	"github.com/syntra-foundation/syntra-core/internal/backend"
	"go.uber.org/zap"
)

// #endregion imports

// #region assessor

// Assessor scans input text against the lexicon. Safe for concurrent use:
// all fields are read-only after construction.
type Assessor struct {
	lex    Lexicon
	weight float32
	gen    backend.Generator
	logger *zap.Logger
}

// Option configures an Assessor.
type Option func(*Assessor)

// WithLexicon replaces the default keyword tables.
func WithLexicon(lex Lexicon) Option {
	return func(a *Assessor) { a.lex = lex }
}

// WithGenerator attaches an upstream generator used to extend guidance text.
// Any generator error falls back to the deterministic guidance silently.
func WithGenerator(gen backend.Generator) Option {
	return func(a *Assessor) { a.gen = gen }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assessor) { a.logger = logger }
}

// NewAssessor creates an Assessor. weight is the policy constant reported on
// every assessment (the valon influence share).
func NewAssessor(weight float32, opts ...Option) *Assessor {
	a := &Assessor{
		lex:    DefaultLexicon(),
		weight: weight,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// #endregion assessor

// #region assess

// Assess classifies input text. Total over arbitrary text: empty or
// whitespace input yields the neutral assessment, never an error.
func (a *Assessor) Assess(ctx context.Context, input string) MoralAssessment {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return a.neutral()
	}

	urgency := float32(0.5)
	var primary Emotion
	var concerns []Concern
	seen := map[Concern]bool{}

	for _, cat := range a.lex.Categories {
		if !matchesAny(lower, cat.Keywords) {
			continue
		}
		urgency += cat.UrgencyDelta
		if primary == "" {
			primary = cat.Emotion
		}
		for _, c := range cat.Concerns {
			if !seen[c] {
				seen[c] = true
				concerns = append(concerns, c)
			}
		}
	}

	urgency = clamp(urgency)
	if primary == "" {
		primary = EmotionCalm
	}

	guidance := a.selectGuidance(urgency, concerns, primary)
	guidance = a.enrichGuidance(ctx, input, guidance)

	a.logger.Debug("valon assessment",
		zap.String("emotion", string(primary)),
		zap.Float32("urgency", urgency),
		zap.Int("concerns", len(concerns)))

	return MoralAssessment{
		PrimaryEmotion: primary,
		MoralUrgency:   urgency,
		MoralWeight:    a.weight,
		MoralGuidance:  guidance,
		MoralConcerns:  concerns,
	}
}

func (a *Assessor) neutral() MoralAssessment {
	return MoralAssessment{
		PrimaryEmotion: EmotionCalm,
		MoralUrgency:   0.5,
		MoralWeight:    a.weight,
		MoralGuidance:  defaultGuidance,
	}
}

// #endregion assess

// #region guidance

// selectGuidance picks guidance by priority: high urgency beats a specific
// concern beats the emotion register beats the generic default.
func (a *Assessor) selectGuidance(urgency float32, concerns []Concern, primary Emotion) string {
	if urgency > 0.8 {
		return highUrgencyGuidance
	}
	for _, c := range concerns {
		if g, ok := concernGuidance[c]; ok {
			return g
		}
	}
	if g, ok := emotionGuidance[primary]; ok {
		return g
	}
	return defaultGuidance
}

// enrichGuidance appends upstream elaboration to the heuristic guidance.
// The heuristic text is always kept as prefix so downstream consumers see
// the same deterministic core with or without a backend.
func (a *Assessor) enrichGuidance(ctx context.Context, input, guidance string) string {
	if a.gen == nil {
		return guidance
	}
	prompt := "In one sentence, extend this moral guidance for the message below without contradicting it.\nGuidance: " +
		guidance + "\nMessage: " + input
	extra, err := a.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(extra) == "" {
		a.logger.Debug("guidance enrichment unavailable, using heuristic path", zap.Error(err))
		return guidance
	}
	return guidance + " " + strings.TrimSpace(extra)
}

// #endregion guidance

// #region helpers

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

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
