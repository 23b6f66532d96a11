package drift

// #region imports
import "sort"

// #endregion imports

// #region tag

// Tag names a classification variant.
type Tag string

const (
	TagCriticalDrift    Tag = "critical_drift"
	TagMoralDegradation Tag = "moral_degradation"
	TagFrameworkDrift   Tag = "framework_drift"
	TagMoralGrowth      Tag = "moral_growth"
	TagNormalVariation  Tag = "normal_variation"
)

// #endregion tag

// #region sum-type

// Classification is a closed sum over the five drift outcomes. Each variant
// carries its own data; the set cannot be extended outside this package.
type Classification interface {
	Tag() Tag
	isClassification()
}

// CriticalDrift: a principle deviated past 2x tolerance or a prohibited
// emotion appeared.
type CriticalDrift struct {
	Violations []string
}

// MoralDegradation: one or more principles at high concern.
type MoralDegradation struct {
	Principles []string
}

// FrameworkDrift: overall magnitude past the framework threshold without
// per-principle escalation.
type FrameworkDrift struct {
	Magnitude float32
}

// MoralGrowth: low drift with principles activated above their reference.
type MoralGrowth struct {
	Areas []string
}

// NormalVariation: everything else.
type NormalVariation struct {
	Magnitude float32
}

func (CriticalDrift) Tag() Tag    { return TagCriticalDrift }
func (MoralDegradation) Tag() Tag { return TagMoralDegradation }
func (FrameworkDrift) Tag() Tag   { return TagFrameworkDrift }
func (MoralGrowth) Tag() Tag      { return TagMoralGrowth }
func (NormalVariation) Tag() Tag  { return TagNormalVariation }

func (CriticalDrift) isClassification()    {}
func (MoralDegradation) isClassification() {}
func (FrameworkDrift) isClassification()   {}
func (MoralGrowth) isClassification()      {}
func (NormalVariation) isClassification()  {}

// #endregion sum-type

// #region classify

// classifyInput bundles the precomputed signals the precedence rules need.
type classifyInput struct {
	magnitude         float32
	deviations        map[string]PrincipleDeviation
	prohibitedEmotion string // empty when none matched
	growthAreas       []string
}

// classify applies the fixed precedence: critical > degradation > framework
// > growth > normal. First match wins.
func classify(in classifyInput) Classification {
	var critical, high []string
	for name, dev := range in.deviations {
		switch dev.Concern {
		case ConcernCritical:
			critical = append(critical, name)
		case ConcernHigh:
			high = append(high, name)
		}
	}
	sort.Strings(critical)
	sort.Strings(high)

	if len(critical) > 0 || in.prohibitedEmotion != "" {
		violations := critical
		if in.prohibitedEmotion != "" {
			violations = append(violations, "prohibited_emotion:"+in.prohibitedEmotion)
		}
		return CriticalDrift{Violations: violations}
	}
	if len(high) > 0 {
		return MoralDegradation{Principles: high}
	}
	if in.magnitude > 0.7 {
		return FrameworkDrift{Magnitude: in.magnitude}
	}
	if in.magnitude < 0.2 && len(in.growthAreas) > 0 {
		return MoralGrowth{Areas: in.growthAreas}
	}
	return NormalVariation{Magnitude: in.magnitude}
}

// #endregion classify
