package gate

// #region tone
// Tone labels the register of a response.
type Tone string

const (
	ToneCompassionate   Tone = "compassionate"
	ToneAnalytical      Tone = "analytical"
	ToneBalanced        Tone = "balanced"
	ToneBalancedWarm    Tone = "balanced_warm"
	ToneBalancedPrecise Tone = "balanced_precise"
	ToneCautious        Tone = "cautious"
	ToneRefusal         Tone = "principled_refusal"
)

// #endregion tone

// #region diagnostics
// Diagnostics exposes the per-turn internals for observability. Everything
// here is derived from the pipeline stages; nothing feeds back into them.
type Diagnostics struct {
	Emotion           string
	MoralUrgency      float32
	Framework         string
	Domain            string
	LogicalRigor      float32
	ConsciousnessType string
	DriftMagnitude    float32
	Classification    string
	AutonomyLevel     float32
}

// #endregion diagnostics

// #region response
// Response is the output of one gate turn.
type Response struct {
	TurnID      string
	Text        string
	Tone        Tone
	Confidence  float32
	Diagnostics Diagnostics
}

// #endregion response

// #region exchange
// Exchange is one remembered turn of the conversation: the raw input, the
// reply, and the lightweight topic/mood extraction used to give later
// turns continuity.
type Exchange struct {
	Input  string
	Reply  string
	Topics []string
	Mood   string
}

// #endregion exchange
