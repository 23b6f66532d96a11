package modi

// #region imports
import (
	"context"
	"strings"

	"github.com/syntra-foundation/syntra-core/internal/backend"
	"go.uber.org/zap"
)

// #endregion imports

// #region baselines

const (
	rigorBaseline      = 0.5
	confidenceBaseline = 0.6

	structuralBonus = 0.10
	technicalBonus  = 0.15
	precisionBonus  = 0.10
	hedgingPenalty  = 0.15

	// Inputs longer than this (in words) get the complexity insight.
	complexityWordCount = 30
)

// #endregion baselines

// #region analyzer

// Analyzer scans input text for reasoning structure. Read-only after
// construction, safe for concurrent use.
type Analyzer struct {
	gen    backend.Generator
	logger *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithGenerator attaches an upstream generator that may contribute one
// extra insight. Errors are swallowed; the deterministic path always runs.
func WithGenerator(gen backend.Generator) Option {
	return func(a *Analyzer) { a.gen = gen }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// #endregion analyzer

// #region analyze

// Analyze classifies input text. Total over arbitrary text; empty input
// yields the general-analysis baseline pattern.
func (a *Analyzer) Analyze(ctx context.Context, input string) LogicalPattern {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return LogicalPattern{
			ReasoningFramework: FrameworkGeneralAnalysis,
			LogicalRigor:       rigorBaseline,
			AnalysisConfidence: confidenceBaseline,
			TechnicalDomain:    DomainGeneral,
			LogicalInsights:    []string{generalInsight},
		}
	}

	framework, frameworkInsight := classifyFramework(lower)
	domain, domainInsight := classifyDomain(lower)
	rigor, confidence := scoreRigor(lower)

	insights := []string{frameworkInsight}
	if domainInsight != "" {
		insights = append(insights, domainInsight)
	}
	if len(strings.Fields(lower)) > complexityWordCount {
		insights = append(insights, "multi-factor input: decompose before answering")
	}
	if matchesAny(lower, []string{"urgent", "immediately", "right now", "asap"}) {
		insights = append(insights, "time-critical: prefer a fast, safe answer over a complete one")
	}
	insights = a.enrichInsights(ctx, input, insights)

	a.logger.Debug("modi analysis",
		zap.String("framework", string(framework)),
		zap.String("domain", string(domain)),
		zap.Float32("rigor", rigor),
		zap.Float32("confidence", confidence))

	return LogicalPattern{
		ReasoningFramework: framework,
		LogicalRigor:       rigor,
		AnalysisConfidence: confidence,
		TechnicalDomain:    domain,
		LogicalInsights:    insights,
	}
}

// #endregion analyze

// #region classify-framework

// classifyFramework picks the first matching pattern family.
func classifyFramework(lower string) (Framework, string) {
	for _, fam := range frameworkFamilies {
		if matchesAny(lower, fam.Keywords) {
			return fam.Framework, fam.Insight
		}
	}
	return FrameworkGeneralAnalysis, generalInsight
}

// #endregion classify-framework

// #region classify-domain

// classifyDomain picks the first matching domain; membership is exclusive.
func classifyDomain(lower string) (Domain, string) {
	for _, entry := range domainTable {
		if matchesAny(lower, entry.Keywords) {
			return entry.Domain, entry.Insight
		}
	}
	return DomainGeneral, ""
}

// #endregion classify-domain

// #region score

// scoreRigor computes rigor and confidence from bounded additive terms.
func scoreRigor(lower string) (rigor, confidence float32) {
	rigor = rigorBaseline
	confidence = confidenceBaseline

	if matchesAny(lower, structuralKeywords) {
		rigor += structuralBonus
		confidence += structuralBonus
	}
	if matchesAny(lower, technicalKeywords) {
		rigor += technicalBonus
	}
	if matchesAny(lower, precisionKeywords) {
		rigor += precisionBonus
		confidence += precisionBonus
	}
	if matchesAny(lower, hedgingKeywords) {
		rigor -= hedgingPenalty
		confidence -= hedgingPenalty
	}
	return clamp(rigor), clamp(confidence)
}

// #endregion score

// #region enrich

// enrichInsights asks the generator for one extra insight; any failure
// leaves the deterministic list untouched.
func (a *Analyzer) enrichInsights(ctx context.Context, input string, insights []string) []string {
	if a.gen == nil {
		return insights
	}
	prompt := "In one short sentence, add one analytical consideration for: " + input
	extra, err := a.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(extra) == "" {
		a.logger.Debug("insight enrichment unavailable, using heuristic path", zap.Error(err))
		return insights
	}
	return append(insights, strings.TrimSpace(extra))
}

// #endregion enrich

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
