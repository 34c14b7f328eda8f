package config

import (
	"fmt"
	"time"

	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region limbic-config
// LimbicConfig holds every tunable for the limbic engine. It is built once
// by the caller and read-only for the engine's lifetime.
type LimbicConfig struct {
	// Bootstrap is the initial value for each affective dimension.
	Bootstrap state.Vector

	// Per-day decay rates toward zero for the slow dimensions.
	WarmthPerDay     float64
	EmpathyPerDay    float64
	CreativityPerDay float64
	WisdomPerDay     float64
	HumorPerDay      float64

	// Arousal decays toward ArousalFloor, never below it.
	ArousalPerDay float64
	ArousalFloor  float64

	// Valence drifts toward ValenceBaseline, clamped exactly at it.
	ValenceDriftPerHour float64
	ValenceBaseline     float64

	// Mode transition thresholds.
	SlumberThreshold  float64
	CrisisThreshold   float64
	DoorSlamThreshold float64

	// Behavioral constants.
	ReunionWindowHours float64
	ElasticFactor      float64
	DecayInterval      time.Duration
}

// #endregion limbic-config

// #region defaults
// Default returns the reference configuration.
func Default() LimbicConfig {
	var bootstrap state.Vector
	for i := range bootstrap {
		bootstrap[i] = 0.5
	}
	return LimbicConfig{
		Bootstrap:           bootstrap,
		WarmthPerDay:        0.05,
		EmpathyPerDay:       0.04,
		CreativityPerDay:    0.03,
		WisdomPerDay:        0.01,
		HumorPerDay:         0.04,
		ArousalPerDay:       0.3,
		ArousalFloor:        0.1,
		ValenceDriftPerHour: 0.01,
		ValenceBaseline:     0.5,
		SlumberThreshold:    0.2,
		CrisisThreshold:     0.2,
		DoorSlamThreshold:   0.1,
		ReunionWindowHours:  48,
		ElasticFactor:       3,
		DecayInterval:       60 * time.Second,
	}
}

// #endregion defaults

// #region validation
// ValidationError reports a config field outside its legal range.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s = %v: %s", e.Field, e.Value, e.Reason)
}

// Validate fails fast on bootstrap values or thresholds outside [0,1] and on
// non-positive behavioral constants.
func (c LimbicConfig) Validate() error {
	for i, v := range c.Bootstrap {
		if v < 0 || v > 1 {
			return &ValidationError{
				Field:  "bootstrap." + state.Dimension(i).String(),
				Value:  v,
				Reason: "outside [0,1]",
			}
		}
	}

	unit := []struct {
		name  string
		value float64
	}{
		{"arousal_floor", c.ArousalFloor},
		{"valence_baseline", c.ValenceBaseline},
		{"slumber_threshold", c.SlumberThreshold},
		{"crisis_threshold", c.CrisisThreshold},
		{"door_slam_threshold", c.DoorSlamThreshold},
	}
	for _, f := range unit {
		if f.value < 0 || f.value > 1 {
			return &ValidationError{Field: f.name, Value: f.value, Reason: "outside [0,1]"}
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"warmth_per_day", c.WarmthPerDay},
		{"empathy_per_day", c.EmpathyPerDay},
		{"creativity_per_day", c.CreativityPerDay},
		{"wisdom_per_day", c.WisdomPerDay},
		{"humor_per_day", c.HumorPerDay},
		{"arousal_per_day", c.ArousalPerDay},
		{"valence_drift_per_hour", c.ValenceDriftPerHour},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &ValidationError{Field: f.name, Value: f.value, Reason: "negative rate"}
		}
	}

	if c.ReunionWindowHours <= 0 {
		return &ValidationError{Field: "reunion_window_hours", Value: c.ReunionWindowHours, Reason: "must be positive"}
	}
	if c.ElasticFactor <= 0 {
		return &ValidationError{Field: "elastic_factor", Value: c.ElasticFactor, Reason: "must be positive"}
	}
	if c.DecayInterval <= 0 {
		return &ValidationError{Field: "decay_interval", Value: c.DecayInterval.Seconds(), Reason: "must be positive"}
	}
	return nil
}

// #endregion validation
