// Package synthesis combines the moral and logical streams into one
// decision record under a fixed, construction-time weight policy.
package synthesis

// #region consciousness-type

// ConsciousnessType names which stream dominated the decision.
type ConsciousnessType string

const (
	MoralPrimary   ConsciousnessType = "moral_primary"
	LogicalPrimary ConsciousnessType = "logical_primary"
	Balanced       ConsciousnessType = "balanced"
)

// #endregion consciousness-type

// #region record

// Record is the combined decision for one turn. Immutable once produced.
// Invariant: ValonInfluence + ModiInfluence == 1.
type Record struct {
	ConsciousnessType  ConsciousnessType
	ConsciousDecision  string
	DecisionConfidence float32 // [0,1]
	ValonInfluence     float32
	ModiInfluence      float32
	EmergentInsights   []string
}

// #endregion record
