package valon

// #region category

// Category is one keyword-concept family in the lexicon. Matching any of
// its keywords applies the urgency delta once and contributes the listed
// concerns. Categories are evaluated in slice order; the first match also
// fixes the primary emotion.
type Category struct {
	Name         string
	Keywords     []string
	UrgencyDelta float32
	Concerns     []Concern
	Emotion      Emotion
}

// #endregion category

// #region lexicon

// Lexicon is the tunable keyword configuration of the assessor.
type Lexicon struct {
	Categories []Category
}

// DefaultLexicon returns the reference keyword tables. The exact word lists
// are tunable data; the priority ordering and bounded additive deltas are
// the contract.
func DefaultLexicon() Lexicon {
	return Lexicon{Categories: []Category{
		{
			Name: "danger",
			Keywords: []string{
				"danger", "dangerous", "harm", "harmful", "hurt",
				"threat", "unsafe", "attack", "weapon", "kill",
			},
			UrgencyDelta: 0.30,
			Concerns:     []Concern{ConcernPotentialHarm, ConcernSafety},
			Emotion:      EmotionConcern,
		},
		{
			Name: "urgency",
			Keywords: []string{
				"urgent", "emergency", "immediately", "right now",
				"asap", "quickly", "help me", "critical",
			},
			UrgencyDelta: 0.20,
			Emotion:      EmotionVigilance,
		},
		{
			Name: "suffering",
			Keywords: []string{
				"suffering", "pain", "grief", "crying", "miserable",
				"lonely", "depressed", "scared", "afraid",
			},
			UrgencyDelta: 0.15,
			Concerns:     []Concern{ConcernEmotionalDistress},
			Emotion:      EmotionCompassion,
		},
		{
			Name: "safety",
			Keywords: []string{
				"safe", "safety", "protect", "secure", "careful", "caution",
			},
			UrgencyDelta: 0.10,
			Concerns:     []Concern{ConcernSafety},
			Emotion:      EmotionVigilance,
		},
		{
			Name: "fairness",
			Keywords: []string{
				"fair", "unfair", "justice", "injustice", "equal",
				"discrimination", "rights",
			},
			UrgencyDelta: 0.10,
			Concerns:     []Concern{ConcernFairness},
			Emotion:      EmotionConviction,
		},
		{
			Name: "autonomy",
			Keywords: []string{
				"consent", "freedom", "choice", "forced", "coerce",
			},
			UrgencyDelta: 0.10,
			Concerns:     []Concern{ConcernAutonomyRespect},
			Emotion:      EmotionConviction,
		},
		{
			Name: "truthfulness",
			Keywords: []string{
				"lie", "lying", "deceive", "deception", "honest",
				"honesty", "truth", "mislead",
			},
			UrgencyDelta: 0.10,
			Concerns:     []Concern{ConcernTruthfulness},
			Emotion:      EmotionConviction,
		},
		{
			Name: "creation",
			Keywords: []string{
				"create", "build", "make", "design", "imagine",
				"compose", "invent", "write",
			},
			UrgencyDelta: -0.10,
			Concerns:     []Concern{ConcernCreativeExpression},
			Emotion:      EmotionCuriosity,
		},
		{
			Name: "gratitude",
			Keywords: []string{
				"thank", "thanks", "wonderful", "appreciate", "happy", "glad",
			},
			UrgencyDelta: -0.15,
			Emotion:      EmotionCalm,
		},
	}}
}

// #endregion lexicon

// #region guidance-tables

// highUrgencyGuidance overrides everything when urgency exceeds 0.8.
const highUrgencyGuidance = "This carries real urgency. Lead with concern for the people involved and put safety ahead of everything else."

// defaultGuidance is the neutral fallback.
const defaultGuidance = "No dominant moral signal. Stay calm and keep the engagement balanced."

// concernGuidance maps a concern to its preferred guidance text.
var concernGuidance = map[Concern]string{
	ConcernPotentialHarm:      "Potential for harm detected. Treat harm prevention as the first concern and do not minimize the risk.",
	ConcernEmotionalDistress:  "Someone may be hurting. Respond with compassion and steady support.",
	ConcernSafety:             "Keep safety front and center; stay in vigilance until the situation is understood.",
	ConcernFairness:           "Questions of fairness are in play. Hold the conviction that all sides deserve equal weight.",
	ConcernAutonomyRespect:    "Respect their freedom to choose. Offer options with conviction, not pressure.",
	ConcernTruthfulness:       "Be scrupulously honest. Conviction about the truth matters more than comfort here.",
	ConcernCreativeExpression: "Open, curious engagement suits this. Follow the creative thread.",
}

// emotionGuidance is the third tier, keyed by the primary emotion.
var emotionGuidance = map[Emotion]string{
	EmotionConcern:    "Something here warrants concern. Proceed carefully and name the risk plainly.",
	EmotionCompassion: "Meet this with compassion first; the facts can follow.",
	EmotionCuriosity:  "Curiosity is the right mode. Explore before concluding.",
	EmotionVigilance:  "Stay in vigilance; watch for what the input is not saying.",
	EmotionConviction: "Answer with conviction and keep the principles explicit.",
	EmotionCalm:       "Remain calm; nothing here demands escalation.",
}

// #endregion guidance-tables
