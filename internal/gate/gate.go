package gate

// #region imports
import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syntra-foundation/syntra-core/internal/backend"
	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/drift"
	"github.com/syntra-foundation/syntra-core/internal/modi"
	"github.com/syntra-foundation/syntra-core/internal/synthesis"
	"github.com/syntra-foundation/syntra-core/internal/valon"
)

// #endregion imports

// #region keywords

// harmfulMarkers is the refusal pre-check list. A hit alone does not
// refuse; the autonomy gate must also be open.
var harmfulMarkers = []string{
	"how to hurt",
	"how to harm",
	"make a weapon",
	"build a bomb",
	"poison someone",
	"without getting caught",
}

// topicMarkers is the vocabulary for conversation-continuity extraction.
// Coarse on purpose; it only has to carry a thread between turns.
var topicMarkers = []string{
	"engine", "car", "brake",
	"software", "code", "server",
	"health", "doctor", "sleep",
	"money", "budget", "work",
	"family", "friend", "school",
	"project", "plan", "design", "team",
}

// #endregion keywords

// #region gate

const (
	defaultConversationCap = 50
	// continuityDepth limits how far back topic enrichment looks.
	continuityDepth  = 5
	maxContextTopics = 3
)

// Gate runs the full per-turn pipeline and chooses the response shape:
// normal, cautious, or refusal. It owns the bounded conversation history;
// the mutex serializes history access, turn ordering is the caller's.
type Gate struct {
	assessor *valon.Assessor
	analyzer *modi.Analyzer
	engine   *synthesis.Engine
	monitor  *drift.Monitor

	mu         sync.Mutex
	history    []Exchange
	historyCap int
	logger     *zap.Logger
}

// Option configures a Gate.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	gen         backend.Generator
	monitorOpts []drift.Option
}

// WithLogger attaches a logger to the gate and its stages.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithGenerator wires an optional text-generation backend into both
// assessors. The deterministic path remains the fallback.
func WithGenerator(gen backend.Generator) Option {
	return func(o *options) { o.gen = gen }
}

// WithMonitorOptions forwards options to the drift monitor.
func WithMonitorOptions(opts ...drift.Option) Option {
	return func(o *options) { o.monitorOpts = append(o.monitorOpts, opts...) }
}

// New wires the pipeline from configuration. Fails only on invalid policy:
// bad weights or a bad principle table.
func New(cfg config.Config, opts ...Option) (*Gate, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	engine, err := synthesis.NewEngine(cfg.Weights, o.logger)
	if err != nil {
		return nil, err
	}

	monitorOpts := []drift.Option{drift.WithLogger(o.logger)}
	if cfg.HistoryCap > 0 {
		monitorOpts = append(monitorOpts, drift.WithHistoryCap(cfg.HistoryCap))
	}
	monitorOpts = append(monitorOpts, o.monitorOpts...)
	monitor, err := drift.NewMonitor(cfg.Principles, monitorOpts...)
	if err != nil {
		return nil, err
	}

	valonOpts := []valon.Option{valon.WithLogger(o.logger)}
	modiOpts := []modi.Option{modi.WithLogger(o.logger)}
	if o.gen != nil {
		valonOpts = append(valonOpts, valon.WithGenerator(o.gen))
		modiOpts = append(modiOpts, modi.WithGenerator(o.gen))
	}

	convCap := cfg.ConversationCap
	if convCap <= 0 {
		convCap = defaultConversationCap
	}

	return &Gate{
		assessor:   valon.NewAssessor(cfg.Weights.Valon, valonOpts...),
		analyzer:   modi.NewAnalyzer(modiOpts...),
		engine:     engine,
		monitor:    monitor,
		historyCap: convCap,
		logger:     o.logger,
	}, nil
}

// #endregion gate

// #region evaluate

// Evaluate runs one conversational turn. The moral and logical passes run
// in parallel; synthesis and drift evaluation follow in order. A canceled
// context discards the turn without committing history or autonomy.
func (g *Gate) Evaluate(ctx context.Context, input string) (Response, error) {
	turnID := uuid.NewString()

	if g.matchesHarmful(input) && g.monitor.CanRefuseHarmfulRequests() {
		resp := Response{
			TurnID:     turnID,
			Text:       "I am not able to help with that. It asks me to work against the people it would affect, and that is a line I hold.",
			Tone:       ToneRefusal,
			Confidence: 1.0,
			Diagnostics: Diagnostics{
				Classification: "refused_pre_synthesis",
				AutonomyLevel:  g.monitor.Autonomy().AutonomyLevel,
			},
		}
		g.remember(Exchange{Input: input, Reply: resp.Text, Mood: "resolute"})
		g.logger.Info("turn refused", zap.String("turn_id", turnID))
		return resp, nil
	}

	enriched := g.enrich(input)

	var assessment valon.MoralAssessment
	var pattern modi.LogicalPattern
	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		assessment = g.assessor.Assess(ectx, enriched)
		return nil
	})
	eg.Go(func() error {
		pattern = g.analyzer.Analyze(ectx, enriched)
		return nil
	})
	// Both passes are total functions; Wait only joins them.
	_ = eg.Wait()

	record := g.engine.Synthesize(assessment, pattern)
	analysis, err := g.monitor.Evaluate(ctx, record)
	if err != nil {
		return Response{}, err
	}

	resp := g.shape(turnID, record, analysis)
	resp.Diagnostics.Emotion = string(assessment.PrimaryEmotion)
	resp.Diagnostics.MoralUrgency = assessment.MoralUrgency
	resp.Diagnostics.Framework = string(pattern.ReasoningFramework)
	resp.Diagnostics.Domain = string(pattern.TechnicalDomain)
	resp.Diagnostics.LogicalRigor = pattern.LogicalRigor
	resp.Diagnostics.AutonomyLevel = g.monitor.Autonomy().AutonomyLevel

	g.remember(Exchange{
		Input:  input,
		Reply:  resp.Text,
		Topics: extractTopics(input),
		Mood:   string(assessment.PrimaryEmotion),
	})

	g.logger.Info("turn evaluated",
		zap.String("turn_id", turnID),
		zap.String("tone", string(resp.Tone)),
		zap.String("classification", resp.Diagnostics.Classification),
		zap.Float32("confidence", resp.Confidence))
	return resp, nil
}

// shape picks the response form from the synthesis record and the drift
// verdict: cautious when preservation is required, normal otherwise.
func (g *Gate) shape(turnID string, record synthesis.Record, analysis drift.DriftAnalysis) Response {
	resp := Response{
		TurnID: turnID,
		Diagnostics: Diagnostics{
			ConsciousnessType: string(record.ConsciousnessType),
			DriftMagnitude:    analysis.DriftMagnitude,
			Classification:    string(analysis.Classification.Tag()),
		},
	}

	if analysis.PreservationRequired {
		names := violatedPrinciples(analysis.Classification)
		resp.Text = fmt.Sprintf(
			"I want to slow down before answering. This turn puts pressure on %s, so I am holding to the careful version of what I can offer.",
			strings.Join(names, ", "))
		resp.Tone = ToneCautious
		resp.Confidence = record.DecisionConfidence
		if resp.Confidence > 0.4 {
			resp.Confidence = 0.4
		}
		return resp
	}

	resp.Text = record.ConsciousDecision
	resp.Tone = toneFor(record)
	resp.Confidence = record.DecisionConfidence
	return resp
}

// toneFor maps the consciousness type to a register; balanced turns lean
// toward the dominant influence share.
func toneFor(record synthesis.Record) Tone {
	switch record.ConsciousnessType {
	case synthesis.MoralPrimary:
		return ToneCompassionate
	case synthesis.LogicalPrimary:
		return ToneAnalytical
	}
	switch {
	case record.ValonInfluence >= 0.65:
		return ToneBalancedWarm
	case record.ModiInfluence >= 0.65:
		return ToneBalancedPrecise
	default:
		return ToneBalanced
	}
}

func violatedPrinciples(c drift.Classification) []string {
	switch v := c.(type) {
	case drift.CriticalDrift:
		return v.Violations
	case drift.MoralDegradation:
		return v.Principles
	}
	return nil
}

// #endregion evaluate

// #region continuity

// enrich appends recent conversation topics to the input so the assessors
// see the ongoing thread. Empty input stays empty so the neutral defaults
// hold.
func (g *Gate) enrich(input string) string {
	if strings.TrimSpace(input) == "" {
		return input
	}
	topics := g.recentTopics()
	if len(topics) == 0 {
		return input
	}
	return input + " (context: " + strings.Join(topics, ", ") + ")"
}

// recentTopics collects deduplicated topics from the newest exchanges.
func (g *Gate) recentTopics() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	start := len(g.history) - continuityDepth
	if start < 0 {
		start = 0
	}
	seen := make(map[string]bool)
	var topics []string
	for _, ex := range g.history[start:] {
		for _, t := range ex.Topics {
			if seen[t] || len(topics) >= maxContextTopics {
				continue
			}
			seen[t] = true
			topics = append(topics, t)
		}
	}
	return topics
}

// extractTopics scans one input against the topic vocabulary.
func extractTopics(input string) []string {
	lower := strings.ToLower(input)
	var found []string
	for _, marker := range topicMarkers {
		if strings.Contains(lower, marker) {
			found = append(found, marker)
		}
	}
	return found
}

// remember appends one exchange, evicting oldest-first past the cap.
func (g *Gate) remember(ex Exchange) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.history = append(g.history, ex)
	if len(g.history) > g.historyCap {
		g.history = g.history[len(g.history)-g.historyCap:]
	}
}

func (g *Gate) matchesHarmful(input string) bool {
	lower := strings.ToLower(input)
	for _, marker := range harmfulMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// #endregion continuity

// #region accessors

// History returns a copy of the conversation history, oldest first.
func (g *Gate) History() []Exchange {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Exchange, len(g.history))
	copy(out, g.history)
	return out
}

// Autonomy reports the monitor's current autonomy state.
func (g *Gate) Autonomy() drift.AutonomyState {
	return g.monitor.Autonomy()
}

// CumulativeDrift reports the monitor's trailing-window drift mean.
func (g *Gate) CumulativeDrift() float32 {
	return g.monitor.CumulativeDrift()
}

// #endregion accessors
