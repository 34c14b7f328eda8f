package perception

import (
	"strings"

	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region analyze

// Analyze maps raw interaction text plus context to a signed delta and
// classification metadata. Pure with respect to current: it reads the state
// for flag conditions and the elastic multiplier but never writes it.
func Analyze(text string, ctx state.Context, current state.AffectiveState, elasticFactor float64) Result {
	lower := strings.ToLower(text)

	delta := computeDelta(lower, len(text))
	if current.ElasticMode {
		for i := range delta {
			delta[i] *= elasticFactor
		}
	}

	emotion := detectEmotion(delta)
	urgency := detectUrgency(lower, len(text), emotion)
	alignment := scoreAlignment(lower, emotion)
	flags := collectFlags(lower, current, alignment, emotion)

	return Result{
		Delta:     delta,
		Emotion:   emotion,
		Urgency:   urgency,
		Alignment: alignment,
		Flags:     flags,
	}
}

// #endregion analyze

// #region delta

// computeDelta walks the cue rules once per dimension. Positive-cue presence
// takes priority: when both lists fire, only the positive branch applies.
func computeDelta(lower string, textLen int) state.Delta {
	var delta state.Delta
	for _, rule := range cueRules {
		magnitude := float64(textLen) / rule.divisor
		if magnitude > rule.cap {
			magnitude = rule.cap
		}
		switch {
		case containsAny(lower, rule.positive):
			delta[rule.dim] = magnitude
		case containsAny(lower, rule.negative):
			delta[rule.dim] = -magnitude
		}
	}
	return delta
}

// #endregion delta

// #region emotion

// detectEmotion returns the first matching predicate name, or "neutral".
func detectEmotion(delta state.Delta) string {
	for _, p := range emotionPredicates {
		if p.match(delta) {
			return p.name
		}
	}
	return "neutral"
}

// #endregion emotion

// #region urgency

const mediumUrgencyLength = 200

// detectUrgency evaluates the escalation ladder top-down; the first
// satisfied branch wins.
func detectUrgency(lower string, textLen int, emotion string) Urgency {
	switch {
	case containsAny(lower, urgentKeywords) || emotion == "fear":
		return UrgencyCrisis
	case containsAny(lower, highPriorityKeywords) || emotion == "stress":
		return UrgencyHigh
	case textLen > mediumUrgencyLength:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// #endregion urgency

// #region alignment

// scoreAlignment starts from the emotion base score and applies at most one
// trust adjustment, building before breaking.
func scoreAlignment(lower string, emotion string) float64 {
	score := 0.6
	if positiveEmotions[emotion] {
		score = 0.8
	}
	switch {
	case containsAny(lower, trustBuildingCues):
		score += 0.2
		if score > 1.0 {
			score = 1.0
		}
	case containsAny(lower, trustBreakingCues):
		score -= 0.3
		if score < 0.0 {
			score = 0.0
		}
	}
	return score
}

// #endregion alignment

// #region flags

// collectFlags evaluates the independent flag conditions in a fixed order.
// Any subset may fire.
func collectFlags(lower string, current state.AffectiveState, alignment float64, emotion string) []string {
	flags := []string{}
	if current.Vector[state.DimTrust] < 0.3 {
		flags = append(flags, "low_trust")
	}
	if current.Vector[state.DimWarmth] < 0.3 {
		flags = append(flags, "low_warmth")
	}
	if current.Vector[state.DimArousal] > 0.8 {
		flags = append(flags, "high_arousal")
	}
	if current.Vector[state.DimValence] < 0.3 {
		flags = append(flags, "low_valence")
	}
	if alignment < 0.5 {
		flags = append(flags, "misaligned")
	}
	if emotion == "stress" {
		flags = append(flags, "stress_detected")
	}
	if emotion == "fear" {
		flags = append(flags, "fear_detected")
	}
	if containsAny(lower, urgentKeywords) {
		flags = append(flags, "crisis_keyword")
	}
	if current.DoorSlamActive {
		flags = append(flags, "door_slam_active")
	}
	return flags
}

// #endregion flags

// #region helpers

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// #endregion helpers
