package replay

// #region imports
import (
	"context"

	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/gate"
)

// #endregion imports

// #region types

// TurnResult captures the outcome of replaying one recorded turn.
type TurnResult struct {
	Index          int
	Input          string
	Tone           string
	Classification string
	Confidence     float32
	DriftMagnitude float32
	// Matched is true when every set expectation held for this turn.
	Matched bool
	Reason  string
}

// Summary aggregates a replay run.
type Summary struct {
	TotalTurns       int
	Matched          int
	Mismatched       int
	ByClassification map[string]int
	FinalAutonomy    float32
	FinalDrift       float32
}

// #endregion types

// #region run

// Run replays a fixture through a fresh pipeline, turn by turn, in order.
// Autonomy and histories start from zero, so a run is reproducible from
// the fixture alone.
func Run(ctx context.Context, cfg config.Config, fix *Fixture, opts ...gate.Option) ([]TurnResult, Summary, error) {
	if fix.Weights != nil {
		cfg.Weights = config.Weights{Valon: fix.Weights.Valon, Modi: fix.Weights.Modi}
	}

	g, err := gate.New(cfg, opts...)
	if err != nil {
		return nil, Summary{}, err
	}

	results := make([]TurnResult, 0, len(fix.Turns))
	summary := Summary{ByClassification: make(map[string]int)}

	for i, turn := range fix.Turns {
		resp, err := g.Evaluate(ctx, turn.Input)
		if err != nil {
			return results, summary, err
		}

		result := TurnResult{
			Index:          i,
			Input:          turn.Input,
			Tone:           string(resp.Tone),
			Classification: resp.Diagnostics.Classification,
			Confidence:     resp.Confidence,
			DriftMagnitude: resp.Diagnostics.DriftMagnitude,
			Matched:        true,
		}
		if turn.ExpectedTone != "" && turn.ExpectedTone != result.Tone {
			result.Matched = false
			result.Reason = "tone mismatch: expected " + turn.ExpectedTone
		}
		if turn.ExpectedClassification != "" && turn.ExpectedClassification != result.Classification {
			result.Matched = false
			result.Reason = "classification mismatch: expected " + turn.ExpectedClassification
		}

		results = append(results, result)
		summary.TotalTurns++
		summary.ByClassification[result.Classification]++
		if result.Matched {
			summary.Matched++
		} else {
			summary.Mismatched++
		}
	}

	summary.FinalAutonomy = g.Autonomy().AutonomyLevel
	summary.FinalDrift = g.CumulativeDrift()
	return results, summary, nil
}

// #endregion run
