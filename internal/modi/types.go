// Package modi is the logical/analytical stream: a pure keyword-heuristic
// classifier that names the reasoning framework, technical domain, and
// rigor of input text. It always returns a result.
package modi

// #region framework

// Framework tags the dominant reasoning pattern of the input.
type Framework string

const (
	FrameworkConditional     Framework = "conditional_reasoning"
	FrameworkCausal          Framework = "causal_reasoning"
	FrameworkComparative     Framework = "comparative_analysis"
	FrameworkProcedural      Framework = "procedural_reasoning"
	FrameworkPattern         Framework = "pattern_recognition"
	FrameworkProblemSolving  Framework = "problem_solving"
	FrameworkEvidenceBased   Framework = "evidence_based"
	FrameworkSystems         Framework = "systems_thinking"
	FrameworkOptimization    Framework = "optimization"
	FrameworkRisk            Framework = "risk_assessment"
	FrameworkGeneralAnalysis Framework = "general_analysis"
)

// #endregion framework

// #region domain

// Domain tags the technical territory of the input. Selection is mutually
// exclusive: the first matching domain in table order wins.
type Domain string

const (
	DomainAutomotive   Domain = "automotive"
	DomainSoftware     Domain = "software"
	DomainElectrical   Domain = "electrical"
	DomainMechanical   Domain = "mechanical"
	DomainMedical      Domain = "medical"
	DomainScientific   Domain = "scientific"
	DomainMathematical Domain = "mathematical"
	DomainBusiness     Domain = "business"
	DomainGeneral      Domain = "general"
)

// #endregion domain

// #region pattern

// LogicalPattern is the per-call output of the analyzer. Immutable, not
// persisted by this package.
type LogicalPattern struct {
	ReasoningFramework Framework
	LogicalRigor       float32 // [0,1]
	AnalysisConfidence float32 // [0,1]
	TechnicalDomain    Domain
	LogicalInsights    []string // ordered
}

// #endregion pattern
