// Package replay runs recorded interactions through a fresh engine with a
// simulated clock. Because the rule tables are deterministic, a fixture's
// expectations hold on every run; replay is the regression net for lexicon
// and threshold edits.
package replay

import (
	"fmt"
	"time"

	"github.com/danielpatrickdp/limbic-state/internal/config"
	"github.com/danielpatrickdp/limbic-state/internal/engine"
	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region types

// TurnResult captures the outcome of replaying one interaction.
type TurnResult struct {
	TurnID     string
	Emotion    string
	Urgency    string
	Mode       string
	Mismatches []string // empty when all expectations held
}

// Summary aggregates a replay run.
type Summary struct {
	TotalTurns int
	Passed     int
	Failed     int
	FinalState state.AffectiveState
	Results    []TurnResult
}

// #endregion types

// #region run

// Run replays every interaction in the fixture through a new engine built
// from cfg, advancing a simulated clock as the fixture directs.
func Run(fixture Fixture, cfg config.LimbicConfig) (Summary, error) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	eng, err := engine.New(cfg, engine.WithClock(func() time.Time { return clock }))
	if err != nil {
		return Summary{}, fmt.Errorf("build engine: %w", err)
	}

	summary := Summary{TotalTurns: len(fixture.Interactions)}

	for _, turn := range fixture.Interactions {
		clock = clock.Add(time.Duration(turn.AdvanceHours * float64(time.Hour)))
		if turn.DecayTick {
			eng.DecayTick()
		}

		res := eng.ProcessPerception(turn.Text, state.Context{
			Load:      turn.Context.Load,
			Technical: turn.Context.Technical,
		})
		mode := eng.State().Mode

		tr := TurnResult{
			TurnID:  turn.TurnID,
			Emotion: res.Emotion,
			Urgency: string(res.Urgency),
			Mode:    string(mode),
		}
		tr.Mismatches = checkExpectations(turn.Expect, tr)

		if len(tr.Mismatches) == 0 {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, tr)
	}

	summary.FinalState = eng.State()
	return summary, nil
}

// #endregion run

// #region expectations

func checkExpectations(expect FixtureExpect, got TurnResult) []string {
	var mismatches []string
	if expect.Emotion != "" && expect.Emotion != got.Emotion {
		mismatches = append(mismatches, fmt.Sprintf("emotion: want %s, got %s", expect.Emotion, got.Emotion))
	}
	if expect.Urgency != "" && expect.Urgency != got.Urgency {
		mismatches = append(mismatches, fmt.Sprintf("urgency: want %s, got %s", expect.Urgency, got.Urgency))
	}
	if expect.Mode != "" && expect.Mode != got.Mode {
		mismatches = append(mismatches, fmt.Sprintf("mode: want %s, got %s", expect.Mode, got.Mode))
	}
	return mismatches
}

// #endregion expectations
