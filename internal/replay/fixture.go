package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
)

// #endregion imports

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded conversation.
type Fixture struct {
	Description string          `json:"description"`
	Weights     *FixtureWeights `json:"weights,omitempty"`
	Turns       []FixtureTurn   `json:"turns"`
}

// FixtureWeights overrides the default synthesis weight pair.
type FixtureWeights struct {
	Valon float32 `json:"valon"`
	Modi  float32 `json:"modi"`
}

// FixtureTurn is one recorded input with optional expectations. Empty
// expectation fields are not checked.
type FixtureTurn struct {
	Input                  string `json:"input"`
	ExpectedTone           string `json:"expected_tone,omitempty"`
	ExpectedClassification string `json:"expected_classification,omitempty"`
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Turns) == 0 {
		return nil, fmt.Errorf("fixture %s: no turns", path)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-io
