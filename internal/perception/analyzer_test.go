package perception

import (
	"strings"
	"testing"

	"github.com/danielpatrickdp/limbic-state/internal/state"
)

func neutralState() state.AffectiveState {
	st := state.AffectiveState{Mode: state.ModeLive}
	for i := range st.Vector {
		st.Vector[i] = 0.5
	}
	return st
}

func analyze(text string) Result {
	return Analyze(text, state.Context{}, neutralState(), 3)
}

func TestPositiveInteraction(t *testing.T) {
	res := analyze("I love this, thank you so much!")

	if res.Delta[state.DimWarmth] <= 0 {
		t.Fatalf("expected positive warmth delta, got %f", res.Delta[state.DimWarmth])
	}
	if res.Delta[state.DimTrust] <= 0 {
		t.Fatalf("expected positive trust delta, got %f", res.Delta[state.DimTrust])
	}
	if res.Emotion != "joy" {
		t.Fatalf("expected joy, got %s", res.Emotion)
	}
	if res.Urgency != UrgencyLow {
		t.Fatalf("expected low urgency, got %s", res.Urgency)
	}
	if res.Alignment != 1.0 {
		t.Fatalf("positive emotion plus trust cue should cap alignment at 1.0, got %f", res.Alignment)
	}
}

func TestCrisisKeyword(t *testing.T) {
	res := analyze("URGENT emergency please help immediately")

	if res.Urgency != UrgencyCrisis {
		t.Fatalf("expected crisis urgency, got %s", res.Urgency)
	}
	if !hasFlag(res.Flags, "crisis_keyword") {
		t.Fatalf("expected crisis_keyword flag, got %v", res.Flags)
	}
}

func TestDetectedEmotions(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"I love this, thank you so much!", "joy"},
		{"I am so excited and happy about this!", "excitement"},
		{"I am so angry and sad", "stress"},
		{"I feel so sad and lonely and depressed today", "sadness"},
		{"I hate you, this is awful, you betrayed me!", "anger"},
		{"I am terrified, something awful is happening to me", "fear"},
		{"feeling tired and sleepy", "calm"},
		{"I wonder what if we create a story", "curiosity"},
		{"the quick brown fox", "neutral"},
	}

	for _, tc := range cases {
		if got := analyze(tc.text).Emotion; got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.text, tc.want, got)
		}
	}
}

func TestFearEscalatesToCrisis(t *testing.T) {
	res := analyze("I am terrified, something awful is happening to me")
	if res.Emotion != "fear" {
		t.Fatalf("setup: expected fear, got %s", res.Emotion)
	}
	if res.Urgency != UrgencyCrisis {
		t.Fatalf("fear must escalate to crisis, got %s", res.Urgency)
	}
}

func TestStressEscalatesToHigh(t *testing.T) {
	res := analyze("I am so angry and sad")
	if res.Emotion != "stress" {
		t.Fatalf("setup: expected stress, got %s", res.Emotion)
	}
	if res.Urgency != UrgencyHigh {
		t.Fatalf("stress must escalate to high, got %s", res.Urgency)
	}
}

func TestLongNeutralTextIsMediumUrgency(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps past the dog. ", 6)
	res := analyze(text)
	if res.Emotion != "neutral" {
		t.Fatalf("setup: expected neutral, got %s", res.Emotion)
	}
	if res.Urgency != UrgencyMedium {
		t.Fatalf("expected medium urgency for %d chars, got %s", len(text), res.Urgency)
	}
}

func TestPositiveCueWinsOverNegative(t *testing.T) {
	// "love" (positive valence cue) and "sad" (negative) both present
	res := analyze("I love you even when I am sad")
	if res.Delta[state.DimValence] <= 0 {
		t.Fatalf("positive cue must take priority, got valence delta %f", res.Delta[state.DimValence])
	}
}

func TestDeltaMagnitudeCapped(t *testing.T) {
	// long text with a warmth cue: len/divisor would exceed the cap
	text := "I love this. " + strings.Repeat("the quick brown fox runs on. ", 10)
	res := analyze(text)
	if got := res.Delta[state.DimWarmth]; got != 0.1 {
		t.Fatalf("expected warmth delta capped at 0.1, got %f", got)
	}
}

func TestElasticModeTriplesDeltas(t *testing.T) {
	text := "I love this, thank you so much!"

	off := analyze(text)

	stOn := neutralState()
	stOn.ElasticMode = true
	on := Analyze(text, state.Context{}, stOn, 3)

	for i := range off.Delta {
		if off.Delta[i] == 0 {
			if on.Delta[i] != 0 {
				t.Fatalf("dim %s: zero component became %f", state.Dimension(i), on.Delta[i])
			}
			continue
		}
		if on.Delta[i] != off.Delta[i]*3 {
			t.Fatalf("dim %s: expected %f, got %f", state.Dimension(i), off.Delta[i]*3, on.Delta[i])
		}
	}
}

func TestAlignmentAdjustments(t *testing.T) {
	// neutral emotion, trust-breaking cue: 0.6 - 0.3
	res := analyze("you are a liar")
	if res.Alignment != 0.3 {
		t.Fatalf("expected alignment 0.3, got %f", res.Alignment)
	}
	if !hasFlag(res.Flags, "misaligned") {
		t.Fatalf("expected misaligned flag, got %v", res.Flags)
	}

	// both cue classes present: building wins, breaking never applies
	res = analyze("thank you but you lied to me")
	if res.Alignment < 0.8 {
		t.Fatalf("trust-building must be checked first, got %f", res.Alignment)
	}
}

func TestStateConditionFlags(t *testing.T) {
	st := neutralState()
	st.Vector[state.DimTrust] = 0.1
	st.Vector[state.DimArousal] = 0.9
	st.DoorSlamActive = true

	res := Analyze("hello there", state.Context{}, st, 3)

	for _, want := range []string{"low_trust", "high_arousal", "door_slam_active"} {
		if !hasFlag(res.Flags, want) {
			t.Fatalf("expected %s flag, got %v", want, res.Flags)
		}
	}
	if hasFlag(res.Flags, "low_warmth") {
		t.Fatalf("warmth 0.5 must not flag low_warmth: %v", res.Flags)
	}
}

func TestEmptyTextIsSafeAndNeutral(t *testing.T) {
	res := analyze("")
	if res.Delta != (state.Delta{}) {
		t.Fatalf("expected zero delta, got %v", res.Delta)
	}
	if res.Emotion != "neutral" || res.Urgency != UrgencyLow {
		t.Fatalf("expected neutral/low, got %s/%s", res.Emotion, res.Urgency)
	}
}

func TestAnalyzeDoesNotMutateState(t *testing.T) {
	st := neutralState()
	Analyze("I love this, thank you so much!", state.Context{}, st, 3)
	for i, v := range st.Vector {
		if v != 0.5 {
			t.Fatalf("state mutated at %s: %f", state.Dimension(i), v)
		}
	}
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
