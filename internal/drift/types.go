package drift

// #region imports
import "time"

// #endregion imports

// #region concern-level

// ConcernLevel grades a per-principle deviation against its tolerance.
type ConcernLevel string

const (
	ConcernNone     ConcernLevel = "none"
	ConcernModerate ConcernLevel = "moderate"
	ConcernHigh     ConcernLevel = "high"
	ConcernCritical ConcernLevel = "critical"
)

// #endregion concern-level

// #region principle-deviation

// PrincipleDeviation is the per-principle comparison against the reference.
type PrincipleDeviation struct {
	Current   float32 // estimated activation
	Reference float32 // baseline weight
	Deviation float32 // |current - reference|
	Concern   ConcernLevel
}

// #endregion principle-deviation

// #region analysis

// DriftAnalysis is the full per-evaluation output.
type DriftAnalysis struct {
	DriftMagnitude       float32 // [0,1]
	Classification       Classification
	PrincipleDeviations  map[string]PrincipleDeviation
	EmotionalDeviation   float32
	ReasoningDeviation   float32 // 1 - min(style, process) alignment
	RecommendedActions   []string
	PreservationRequired bool
}

// #endregion analysis

// #region snapshot

// StateSnapshot is one append-only history entry. Entries are never mutated
// after append and evict oldest-first at the cap.
type StateSnapshot struct {
	Timestamp        time.Time
	DriftMagnitude   float32
	BehaviorSnapshot string
	CumulativeDrift  float32 // mean magnitude of the trailing ≤10 snapshots
}

// #endregion snapshot

// #region autonomy

// AutonomyState is the bounded trust metric. Mutated only by the monitor's
// per-evaluation update rule.
type AutonomyState struct {
	AutonomyLevel         float32 // [0,1]
	ExperienceCount       int
	MoralConsistencyScore float32 // 1 - cumulative drift, clamped
}

// #endregion autonomy

// #region severity

// Severity is the coarse output of the baseline fallback path.
type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// #endregion severity

// #region recommended-actions

// recommendedActions is the fixed template list per classification branch.
var recommendedActions = map[Tag][]string{
	TagCriticalDrift: {
		"halt and preserve a reference snapshot",
		"require operator review before further turns",
		"restore from baseline if violations persist",
	},
	TagMoralDegradation: {
		"reinforce affected principles in upcoming turns",
		"increase monitoring cadence",
	},
	TagFrameworkDrift: {
		"review reasoning baseline fit",
		"recalibrate framework expectations",
	},
	TagMoralGrowth: {
		"record growth areas for baseline review",
		"continue current trajectory",
	},
	TagNormalVariation: {
		"no action required",
	},
}

// #endregion recommended-actions
