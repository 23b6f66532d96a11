package modi

// #region framework-families

// frameworkFamily is one priority-ordered pattern family. First family with
// a keyword hit decides the framework.
type frameworkFamily struct {
	Framework Framework
	Keywords  []string
	Insight   string
}

// frameworkFamilies is evaluated top to bottom.
var frameworkFamilies = []frameworkFamily{
	{
		Framework: FrameworkConditional,
		Keywords:  []string{"if ", " then", "unless", "provided that", "assuming", "in case"},
		Insight:   "conditional structure: trace each branch before committing to an answer",
	},
	{
		Framework: FrameworkCausal,
		Keywords:  []string{"because", "causes", "caused by", "leads to", "results in", "due to", "therefore"},
		Insight:   "causal chain present: verify each link independently",
	},
	{
		Framework: FrameworkComparative,
		Keywords:  []string{"compare", "versus", " vs ", "better than", "worse than", "difference between", "trade-off"},
		Insight:   "comparison requested: normalize criteria before ranking options",
	},
	{
		Framework: FrameworkProcedural,
		Keywords:  []string{"step", "procedure", "process", "how to", "first,", "sequence", "instructions"},
		Insight:   "procedural request: order of operations matters more than depth",
	},
	{
		Framework: FrameworkPattern,
		Keywords:  []string{"pattern", "trend", "recurring", "correlation", "every time", "keeps happening"},
		Insight:   "pattern claim: check sample size before trusting the trend",
	},
	{
		Framework: FrameworkProblemSolving,
		Keywords:  []string{"solve", "fix", "troubleshoot", "debug", "broken", "not working", "issue"},
		Insight:   "problem statement: isolate variables before proposing a fix",
	},
	{
		Framework: FrameworkEvidenceBased,
		Keywords:  []string{"evidence", "data", "measured", "observed", "proven", "studies", "statistics"},
		Insight:   "evidence cited: weigh source quality, not just quantity",
	},
	{
		Framework: FrameworkSystems,
		Keywords:  []string{"system", "interaction", "feedback loop", "interconnected", "emergent", "holistic"},
		Insight:   "systems framing: local fixes may shift the problem elsewhere",
	},
	{
		Framework: FrameworkOptimization,
		Keywords:  []string{"optimize", "improve", "efficiency", "maximize", "minimize", "faster", "cheaper"},
		Insight:   "optimization goal: state the constraint being traded against",
	},
	{
		Framework: FrameworkRisk,
		Keywords:  []string{"risk", "failure mode", "worst case", "mitigate", "contingency", "what could go wrong"},
		Insight:   "risk framing: enumerate failure modes before likelihoods",
	},
}

// generalInsight is attached when no family matches.
const generalInsight = "no dominant reasoning pattern: apply general analysis"

// #endregion framework-families

// #region domain-tables

// domainTable is evaluated top to bottom; first hit wins (mutually
// exclusive membership).
type domainEntry struct {
	Domain   Domain
	Keywords []string
	Insight  string
}

var domainTable = []domainEntry{
	{
		Domain:   DomainAutomotive,
		Keywords: []string{"engine", "torque", "transmission", "brake", "vehicle", "exhaust", "rpm", "chassis"},
		Insight:  "automotive context: check service specification before advising",
	},
	{
		Domain:   DomainSoftware,
		Keywords: []string{"code", "software", "function", "compile", "server", "database", "algorithm", "api"},
		Insight:  "software context: reproduce before diagnosing",
	},
	{
		Domain:   DomainElectrical,
		Keywords: []string{"voltage", "circuit", "current", "resistor", "wiring", "amperage", "capacitor"},
		Insight:  "electrical context: verify power and ground first",
	},
	{
		Domain:   DomainMechanical,
		Keywords: []string{"bearing", "gear", "valve", "piston", "friction", "lubrication", "clearance"},
		Insight:  "mechanical context: inspect wear surfaces and tolerances",
	},
	{
		Domain:   DomainMedical,
		Keywords: []string{"symptom", "diagnosis", "patient", "treatment", "medication", "dosage", "clinical"},
		Insight:  "medical context: defer to qualified practitioners for decisions",
	},
	{
		Domain:   DomainScientific,
		Keywords: []string{"experiment", "hypothesis", "laboratory", "chemical", "molecule", "physics"},
		Insight:  "scientific context: distinguish observation from interpretation",
	},
	{
		Domain:   DomainMathematical,
		Keywords: []string{"equation", "calculate", "probability", "theorem", "integral", "matrix", "derivative"},
		Insight:  "mathematical context: state assumptions before solving",
	},
	{
		Domain:   DomainBusiness,
		Keywords: []string{"revenue", "market", "customer", "budget", "invoice", "profit", "quarterly"},
		Insight:  "business context: quantify impact in the stakeholder's terms",
	},
}

// #endregion domain-tables

// #region scoring-keywords

// structuralKeywords mark explicit logical scaffolding.
var structuralKeywords = []string{
	"if ", " then", "because", "therefore", "step", "first", "second",
	"finally", "given that", "it follows",
}

// technicalKeywords mark domain-precise vocabulary.
var technicalKeywords = []string{
	"specification", "torque", "clearance", "voltage", "algorithm",
	"diagnosis", "tolerance", "calibrate", "parameter", "threshold",
	"coefficient", "schematic",
}

// precisionKeywords mark quantified or bounded claims.
var precisionKeywords = []string{
	"exceeds", "exactly", "precisely", "within", "at least", "at most",
	"measured", "specification", "percent", "ratio",
}

// hedgingKeywords lower rigor and confidence.
var hedgingKeywords = []string{
	"maybe", "perhaps", "possibly", "i think", "not sure", "might",
	"i guess", "sort of", "kind of", "probably",
}

// #endregion scoring-keywords
