package decay

import (
	"math"
	"testing"

	"github.com/danielpatrickdp/limbic-state/internal/config"
	"github.com/danielpatrickdp/limbic-state/internal/state"
)

func TestArousalDecayHalfHour(t *testing.T) {
	cfg := config.Default()
	cfg.ArousalPerDay = 0.3

	var v state.Vector
	v[state.DimArousal] = 0.9

	got := Apply(v, cfg, 0.5)

	want := 0.9 - 0.3*(0.5/24)
	if math.Abs(got[state.DimArousal]-want) > 1e-9 {
		t.Fatalf("arousal: expected %.6f, got %.6f", want, got[state.DimArousal])
	}
}

func TestArousalNeverBelowFloor(t *testing.T) {
	cfg := config.Default()
	cfg.ArousalPerDay = 0.3
	cfg.ArousalFloor = 0.1

	var v state.Vector
	v[state.DimArousal] = 0.12

	got := Apply(v, cfg, 24)
	if got[state.DimArousal] != 0.1 {
		t.Fatalf("expected clamp at floor 0.1, got %f", got[state.DimArousal])
	}

	// already below the floor: left alone, not raised
	v[state.DimArousal] = 0.05
	got = Apply(v, cfg, 24)
	if got[state.DimArousal] != 0.05 {
		t.Fatalf("expected 0.05 untouched, got %f", got[state.DimArousal])
	}
}

func TestValenceDriftsTowardBaselineWithoutOvershoot(t *testing.T) {
	cfg := config.Default()
	cfg.ValenceDriftPerHour = 0.01
	cfg.ValenceBaseline = 0.5

	var v state.Vector
	v[state.DimValence] = 0.9
	got := Apply(v, cfg, 100) // drift amount 1.0, far past baseline
	if got[state.DimValence] != 0.5 {
		t.Fatalf("from above: expected exactly 0.5, got %f", got[state.DimValence])
	}

	v[state.DimValence] = 0.1
	got = Apply(v, cfg, 100)
	if got[state.DimValence] != 0.5 {
		t.Fatalf("from below: expected exactly 0.5, got %f", got[state.DimValence])
	}

	v[state.DimValence] = 0.6
	got = Apply(v, cfg, 1)
	if math.Abs(got[state.DimValence]-0.59) > 1e-9 {
		t.Fatalf("partial drift: expected 0.59, got %f", got[state.DimValence])
	}
}

func TestSlowDimensionsDecayTowardZero(t *testing.T) {
	cfg := config.Default()
	cfg.WarmthPerDay = 0.05
	cfg.HumorPerDay = 0.04

	var v state.Vector
	v[state.DimWarmth] = 0.5
	v[state.DimHumor] = 0.02

	got := Apply(v, cfg, 24)

	if math.Abs(got[state.DimWarmth]-0.45) > 1e-9 {
		t.Fatalf("warmth: expected 0.45, got %f", got[state.DimWarmth])
	}
	if got[state.DimHumor] != 0 {
		t.Fatalf("humor: expected floor 0, got %f", got[state.DimHumor])
	}
}

func TestTrustAndIntuitionDoNotDecay(t *testing.T) {
	cfg := config.Default()

	var v state.Vector
	v[state.DimTrust] = 0.8
	v[state.DimIntuition] = 0.6

	got := Apply(v, cfg, 240)

	if got[state.DimTrust] != 0.8 {
		t.Fatalf("trust decayed: %f", got[state.DimTrust])
	}
	if got[state.DimIntuition] != 0.6 {
		t.Fatalf("intuition decayed: %f", got[state.DimIntuition])
	}
}

func TestZeroElapsedIsNoOp(t *testing.T) {
	cfg := config.Default()
	var v state.Vector
	v[state.DimArousal] = 0.9

	if got := Apply(v, cfg, 0); got != v {
		t.Fatalf("expected unchanged vector, got %v", got)
	}
	if got := Apply(v, cfg, -1); got != v {
		t.Fatalf("negative hours: expected unchanged vector, got %v", got)
	}
}
