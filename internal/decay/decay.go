// Package decay ages an affective vector by elapsed wall-clock time.
// The functions here are pure; the engine owns the ticker and commits the
// result under its lock.
package decay

import (
	"github.com/danielpatrickdp/limbic-state/internal/config"
	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region apply

// Apply returns the vector after hours of inactivity. Arousal decays toward
// the configured floor, valence drifts toward its baseline without
// overshooting, and the five slow dimensions decay toward zero at their own
// per-day rates. Dimensions without a decay rule pass through unchanged.
func Apply(v state.Vector, cfg config.LimbicConfig, hours float64) state.Vector {
	if hours <= 0 {
		return v
	}
	days := hours / 24

	out := v
	out[state.DimArousal] = towardFloor(v[state.DimArousal], cfg.ArousalFloor, cfg.ArousalPerDay*days)
	out[state.DimValence] = towardBaseline(v[state.DimValence], cfg.ValenceBaseline, cfg.ValenceDriftPerHour*hours)
	out[state.DimWarmth] = towardFloor(v[state.DimWarmth], 0, cfg.WarmthPerDay*days)
	out[state.DimEmpathy] = towardFloor(v[state.DimEmpathy], 0, cfg.EmpathyPerDay*days)
	out[state.DimCreativity] = towardFloor(v[state.DimCreativity], 0, cfg.CreativityPerDay*days)
	out[state.DimWisdom] = towardFloor(v[state.DimWisdom], 0, cfg.WisdomPerDay*days)
	out[state.DimHumor] = towardFloor(v[state.DimHumor], 0, cfg.HumorPerDay*days)
	return out
}

// #endregion apply

// #region helpers

// towardFloor subtracts amount but never crosses the floor. Values already
// at or below the floor are left alone.
func towardFloor(v, floor, amount float64) float64 {
	if v <= floor {
		return v
	}
	v -= amount
	if v < floor {
		return floor
	}
	return v
}

// towardBaseline moves v toward baseline by amount, clamping exactly at the
// baseline rather than overshooting past it.
func towardBaseline(v, baseline, amount float64) float64 {
	switch {
	case v > baseline:
		v -= amount
		if v < baseline {
			return baseline
		}
	case v < baseline:
		v += amount
		if v > baseline {
			return baseline
		}
	}
	return v
}

// #endregion helpers
