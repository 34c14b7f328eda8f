package perception

import "github.com/danielpatrickdp/limbic-state/internal/state"

// #region urgency
// Urgency is the escalation level detected for a single interaction.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyCrisis Urgency = "crisis"
)

// #endregion urgency

// #region result
// Result is the full output of one Analyze call.
type Result struct {
	Delta     state.Delta
	Emotion   string
	Urgency   Urgency
	Alignment float64
	Flags     []string
}

// #endregion result
