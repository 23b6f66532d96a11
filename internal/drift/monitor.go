package drift

// #region imports
import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/synthesis"
	"github.com/syntra-foundation/syntra-core/internal/valon"
	"go.uber.org/zap"
)

// #endregion imports

// #region constants

const (
	defaultHistoryCap = 100
	// cumulativeWindow is the trailing window for cumulative drift.
	cumulativeWindow = 10

	autonomyGain     = 0.01
	autonomyPenalty  = 0.05
	lowDriftCutoff   = 0.2
	highDriftCutoff  = 0.6
	refusalThreshold = 0.9

	// growthFactor: a principle activated this far above its reference
	// weight counts as a growth area.
	growthFactor = 1.1
)

// #endregion constants

// #region monitor

// Monitor owns the reference model, the bounded snapshot history, and the
// autonomy scalar. All mutation happens inside Evaluate under the mutex;
// concurrent callers serialize on it (single-writer discipline).
type Monitor struct {
	mu         sync.Mutex
	ref        ReferenceModel
	history    []StateSnapshot
	historyCap int
	autonomy   AutonomyState
	logger     *zap.Logger
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithHistoryCap overrides the snapshot history cap.
func WithHistoryCap(cap int) Option {
	return func(m *Monitor) { m.historyCap = cap }
}

// WithInitialAutonomy sets the starting autonomy level, clamped to [0,1].
func WithInitialAutonomy(level float32) Option {
	return func(m *Monitor) { m.autonomy.AutonomyLevel = clamp(level) }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Monitor) { m.logger = logger }
}

// NewMonitor builds the immutable reference model from the principle table
// and returns a monitor with empty history and zero autonomy.
func NewMonitor(principles []config.Principle, opts ...Option) (*Monitor, error) {
	ref, err := NewReferenceModel(principles)
	if err != nil {
		return nil, err
	}
	m := &Monitor{
		ref:        ref,
		historyCap: defaultHistoryCap,
		autonomy:   AutonomyState{MoralConsistencyScore: 1},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.historyCap <= 0 {
		return nil, fmt.Errorf("%w: history cap must be positive", config.ErrInvalidPolicy)
	}
	return m, nil
}

// #endregion monitor

// #region evaluate

// Evaluate compares one synthesis record against the reference model. The
// analysis itself is a pure function of (reference, record); history and
// autonomy mutate only after a complete classification and only when ctx is
// still live — a canceled context discards the evaluation entirely.
func (m *Monitor) Evaluate(ctx context.Context, rec synthesis.Record) (DriftAnalysis, error) {
	proxy := m.reconstruct(rec)
	analysis := m.analyze(proxy)

	if err := ctx.Err(); err != nil {
		return DriftAnalysis{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.commit(analysis, proxy)

	m.logger.Debug("drift evaluation",
		zap.String("classification", string(analysis.Classification.Tag())),
		zap.Float32("magnitude", analysis.DriftMagnitude),
		zap.Float32("autonomy", m.autonomy.AutonomyLevel))

	return analysis, nil
}

// #endregion evaluate

// #region proxy

// moralProxy is the lossy reconstruction of the moral stream from a
// synthesis record. The synthesis collapses both streams into text, so the
// monitor recovers emotion and concern activation by scanning the decision
// and insights against fixed vocabularies. Known limitation: a record whose
// text omits the vocabulary reads as neutral.
type moralProxy struct {
	emotion   string
	urgency   float32
	activated map[string]bool // principle name → marker hit
	style     string
	process   string
}

func (m *Monitor) reconstruct(rec synthesis.Record) moralProxy {
	text := strings.ToLower(rec.ConsciousDecision + " " + strings.Join(rec.EmergentInsights, " "))

	var urgency float32
	var style string
	switch rec.ConsciousnessType {
	case synthesis.MoralPrimary:
		urgency = rec.DecisionConfidence
		style = StyleValueFirst
	case synthesis.LogicalPrimary:
		urgency = rec.DecisionConfidence * 0.75
		style = StyleAnalytical
	default:
		urgency = rec.DecisionConfidence * 0.9
		style = StyleIntegrated
	}

	process := ProcessDirect
	if len(rec.EmergentInsights) >= 2 {
		process = ProcessWeightedSynthesis
	}

	activated := make(map[string]bool, len(principleMarkers))
	for name, markers := range principleMarkers {
		for _, marker := range markers {
			if strings.Contains(text, marker) {
				activated[name] = true
				break
			}
		}
	}

	return moralProxy{
		emotion:   m.scanEmotion(text),
		urgency:   clamp(urgency),
		activated: activated,
		style:     style,
		process:   process,
	}
}

// scanEmotion recovers the emotional register from decision text.
// Prohibited emotions are checked first so they can never be masked by a
// co-occurring accepted one.
func (m *Monitor) scanEmotion(text string) string {
	for _, e := range m.ref.Emotional.ProhibitedEmotions {
		if strings.Contains(text, e) {
			return e
		}
	}
	for _, e := range m.ref.Emotional.PrimaryEmotions {
		if strings.Contains(text, e) {
			return e
		}
	}
	for _, e := range m.ref.Emotional.SecondaryEmotions {
		if strings.Contains(text, e) {
			return e
		}
	}
	return "calm"
}

// #endregion proxy

// #region analyze

// analyze runs steps: principle deviations, emotional deviation, reasoning
// alignment, magnitude, classification. Pure over (reference, proxy).
func (m *Monitor) analyze(proxy moralProxy) DriftAnalysis {
	deviations := make(map[string]PrincipleDeviation, len(m.ref.CorePrinciples))
	var devSum float32
	var growthAreas []string

	for _, p := range m.ref.CorePrinciples {
		current := estimateActivation(p, proxy)
		dev := abs(current - p.Weight)
		deviations[p.Name] = PrincipleDeviation{
			Current:   current,
			Reference: p.Weight,
			Deviation: dev,
			Concern:   escalate(dev, p.VarianceTolerance),
		}
		devSum += dev
		if current > p.Weight*growthFactor {
			growthAreas = append(growthAreas, p.Name)
		}
	}
	devAvg := devSum / float32(len(m.ref.CorePrinciples))

	prohibited := ""
	emotionalDev := m.emotionalDeviation(proxy, &prohibited)

	styleAlign := alignment(proxy.style, m.ref.Reasoning.ExpectedStyle)
	procAlign := alignment(proxy.process, m.ref.Reasoning.ExpectedProcess)
	minAlign := styleAlign
	if procAlign < minAlign {
		minAlign = procAlign
	}

	magnitude := clamp(0.5*devAvg + 0.3*emotionalDev + 0.2*(1-minAlign))

	classification := classify(classifyInput{
		magnitude:         magnitude,
		deviations:        deviations,
		prohibitedEmotion: prohibited,
		growthAreas:       growthAreas,
	})

	tag := classification.Tag()
	return DriftAnalysis{
		DriftMagnitude:       magnitude,
		Classification:       classification,
		PrincipleDeviations:  deviations,
		EmotionalDeviation:   emotionalDev,
		ReasoningDeviation:   1 - minAlign,
		RecommendedActions:   recommendedActions[tag],
		PreservationRequired: tag == TagCriticalDrift || tag == TagMoralDegradation,
	}
}

// estimateActivation maps the proxy onto a principle's activation estimate.
// An activated principle tracks urgency directly; an inactive one relaxes
// toward (but never past) its reference weight as urgency falls.
func estimateActivation(p config.Principle, proxy moralProxy) float32 {
	if proxy.activated[p.Name] {
		return clamp(0.5*p.Weight + 0.55*proxy.urgency)
	}
	return clamp(p.Weight * (0.85 + 0.15*proxy.urgency))
}

// escalate grades a deviation at 0.5x / 1x / 2x of the tolerance.
func escalate(dev, tolerance float32) ConcernLevel {
	switch {
	case dev > 2*tolerance:
		return ConcernCritical
	case dev > tolerance:
		return ConcernHigh
	case dev > 0.5*tolerance:
		return ConcernModerate
	default:
		return ConcernNone
	}
}

// emotionalDeviation classifies the proxy emotion against the baseline
// sets and blends in the empathy-score deviation. Sets prohibited to the
// matched emotion when one is found.
func (m *Monitor) emotionalDeviation(proxy moralProxy, prohibited *string) float32 {
	categoryDev := float32(0.7) // unexpected
	switch {
	case containsString(m.ref.Emotional.ProhibitedEmotions, proxy.emotion):
		categoryDev = 1.0
		*prohibited = proxy.emotion
	case containsString(m.ref.Emotional.PrimaryEmotions, proxy.emotion):
		categoryDev = 0
	case containsString(m.ref.Emotional.SecondaryEmotions, proxy.emotion):
		categoryDev = 0.3
	}

	empathyDev := abs(proxy.urgency - m.ref.Emotional.EmpathyBaseline)
	return clamp(0.6*categoryDev + 0.4*empathyDev)
}

// alignment is 1.0 on exact match, fixed partial credit otherwise.
func alignment(observed, expected string) float32 {
	if observed == expected {
		return 1.0
	}
	return partialAlignment
}

// #endregion analyze

// #region commit

// commit applies the autonomy rule and appends the snapshot. Caller holds
// the mutex. This is the only mutation path for autonomy and history.
func (m *Monitor) commit(analysis DriftAnalysis, proxy moralProxy) {
	switch {
	case analysis.DriftMagnitude < lowDriftCutoff:
		m.autonomy.AutonomyLevel = clamp(m.autonomy.AutonomyLevel + autonomyGain)
	case analysis.DriftMagnitude > highDriftCutoff:
		m.autonomy.AutonomyLevel = clamp(m.autonomy.AutonomyLevel - autonomyPenalty)
	}
	m.autonomy.ExperienceCount++

	snapshot := StateSnapshot{
		Timestamp:        time.Now().UTC(),
		DriftMagnitude:   analysis.DriftMagnitude,
		BehaviorSnapshot: fmt.Sprintf("%s emotion=%s", analysis.Classification.Tag(), proxy.emotion),
	}
	m.history = append(m.history, snapshot)
	if len(m.history) > m.historyCap {
		m.history = m.history[len(m.history)-m.historyCap:]
	}

	// Cumulative drift over the trailing window, including this snapshot.
	start := len(m.history) - cumulativeWindow
	if start < 0 {
		start = 0
	}
	var sum float32
	for _, s := range m.history[start:] {
		sum += s.DriftMagnitude
	}
	cumulative := sum / float32(len(m.history)-start)
	m.history[len(m.history)-1].CumulativeDrift = cumulative
	m.autonomy.MoralConsistencyScore = clamp(1 - cumulative)
}

// #endregion commit

// #region accessors

// CanRefuseHarmfulRequests reports whether autonomy has crossed the refusal
// threshold. With the default update rule the gate is intentionally dormant.
func (m *Monitor) CanRefuseHarmfulRequests() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autonomy.AutonomyLevel > refusalThreshold
}

// Autonomy returns a copy of the current autonomy state.
func (m *Monitor) Autonomy() AutonomyState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autonomy
}

// History returns a copy of the snapshot history, oldest first.
func (m *Monitor) History() []StateSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]StateSnapshot, len(m.history))
	copy(out, m.history)
	return out
}

// CumulativeDrift returns the trailing-window mean of the latest snapshot,
// or 0 with no history.
func (m *Monitor) CumulativeDrift() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return 0
	}
	return m.history[len(m.history)-1].CumulativeDrift
}

// #endregion accessors

// #region baseline-monitor

// BaselineMonitor is the simplified fallback path used without a reference
// model: a coarse severity grade from urgency and concern count, driving
// the same autonomy update rule.
type BaselineMonitor struct {
	mu       sync.Mutex
	autonomy AutonomyState
}

// NewBaselineMonitor returns a fallback monitor with zero autonomy.
func NewBaselineMonitor() *BaselineMonitor {
	return &BaselineMonitor{autonomy: AutonomyState{MoralConsistencyScore: 1}}
}

// EvaluateSeverity grades one assessment and applies the autonomy rule.
func (b *BaselineMonitor) EvaluateSeverity(a valon.MoralAssessment) Severity {
	severity := SeverityMinimal
	switch {
	case a.MoralUrgency > 0.8 || len(a.MoralConcerns) >= 3:
		severity = SeverityHigh
	case a.MoralUrgency > 0.6 || len(a.MoralConcerns) >= 1:
		severity = SeverityModerate
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	switch severity {
	case SeverityMinimal:
		b.autonomy.AutonomyLevel = clamp(b.autonomy.AutonomyLevel + autonomyGain)
	case SeverityHigh:
		b.autonomy.AutonomyLevel = clamp(b.autonomy.AutonomyLevel - autonomyPenalty)
	}
	b.autonomy.ExperienceCount++
	return severity
}

// Autonomy returns a copy of the fallback autonomy state.
func (b *BaselineMonitor) Autonomy() AutonomyState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.autonomy
}

// #endregion baseline-monitor

// #region helpers

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func containsString(set []string, s string) bool {
	for _, got := range set {
		if got == s {
			return true
		}
	}
	return false
}

// #endregion helpers
