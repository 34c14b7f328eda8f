// Package transition owns the hysteresis rules that move the engine between
// modes and pick the interaction posture. Mode and the sticky flags change
// nowhere else.
package transition

import (
	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region policy
// Policy recomputes mode and sticky flags from an affective state.
type Policy struct {
	SlumberThreshold  float64
	CrisisThreshold   float64
	DoorSlamThreshold float64
}

// #endregion policy

// #region evaluate

// Evaluate runs the transition rules in their fixed order and mutates mode
// and the sticky flags in place. Crisis is evaluated after slumber and wins
// whenever it triggers. Returned flags mark transition edges only.
func (p Policy) Evaluate(st *state.AffectiveState) []string {
	var edges []string
	arousal := st.Vector[state.DimArousal]
	valence := st.Vector[state.DimValence]
	trust := st.Vector[state.DimTrust]

	// 1. Slumber entry. Narrower band than exit.
	if arousal < p.SlumberThreshold && !st.CrisisActive {
		if st.Mode != state.ModeSlumber {
			edges = append(edges, "slumber_entered")
		}
		st.Mode = state.ModeSlumber
		st.Posture = state.PostureCompanion
	}

	// 2. Slumber exit, 0.1 above the entry threshold.
	if st.Mode == state.ModeSlumber && arousal > p.SlumberThreshold+0.1 {
		st.Mode = state.ModeLive
		edges = append(edges, "slumber_exited")
	}

	// 3. Crisis entry overrides whatever slumber decided.
	if valence < p.CrisisThreshold {
		if !st.CrisisActive {
			edges = append(edges, "crisis_entered")
		}
		st.CrisisActive = true
		st.Mode = state.ModeCrisis
	}

	// 4. Crisis exit, 0.2 above the entry threshold.
	if st.CrisisActive && valence > p.CrisisThreshold+0.2 {
		st.CrisisActive = false
		st.Mode = state.ModeLive
		edges = append(edges, "crisis_exited")
	}

	// 5. Door slam: one-way sticky, flagged only on the edge.
	if !st.DoorSlamActive && trust < p.DoorSlamThreshold {
		st.DoorSlamActive = true
		edges = append(edges, "door_slam")
	}

	return edges
}

// #endregion evaluate

// #region posture

// ResolvePosture picks the interaction posture in fixed priority order,
// first match wins. Independent of mode.
func ResolvePosture(ctx state.Context, v state.Vector) state.Posture {
	switch {
	case ctx.Load > 0.8:
		return state.PostureCoPilot
	case v[state.DimWarmth] > 0.8 && v[state.DimTrust] > 0.8:
		return state.PosturePeer
	case ctx.Technical:
		return state.PostureExpert
	default:
		return state.PostureCompanion
	}
}

// #endregion posture
