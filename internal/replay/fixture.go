package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description  string               `json:"description"`
	Interactions []FixtureInteraction `json:"interactions"`
}

// FixtureContext mirrors state.Context with JSON tags.
type FixtureContext struct {
	Load      float64 `json:"load"`
	Technical bool    `json:"technical"`
}

// FixtureExpect holds the per-turn expectations. Empty fields are skipped.
type FixtureExpect struct {
	Emotion string `json:"emotion,omitempty"`
	Urgency string `json:"urgency,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

// FixtureInteraction is one recorded turn. AdvanceHours moves the simulated
// clock before the turn runs; DecayTick runs a scheduler tick first.
type FixtureInteraction struct {
	TurnID       string         `json:"turn_id"`
	Text         string         `json:"text"`
	Context      FixtureContext `json:"context"`
	AdvanceHours float64        `json:"advance_hours"`
	DecayTick    bool           `json:"decay_tick"`
	Expect       FixtureExpect  `json:"expect"`
}

// #endregion fixture-types

// #region load-fixture

// LoadFixture reads and parses a fixture JSON file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Interactions) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s has no interactions", path)
	}
	return f, nil
}

// #endregion load-fixture
