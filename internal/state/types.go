package state

import "time"

// #region dimensions
// Dimension indexes one of the nine affective scalars in a Vector.
type Dimension int

const (
	DimTrust Dimension = iota
	DimWarmth
	DimArousal
	DimValence
	DimEmpathy
	DimIntuition
	DimCreativity
	DimWisdom
	DimHumor
	NumDimensions
)

// DimensionNames maps dimension index to its canonical name, in vector order.
var DimensionNames = [NumDimensions]string{
	"trust", "warmth", "arousal", "valence", "empathy",
	"intuition", "creativity", "wisdom", "humor",
}

func (d Dimension) String() string {
	if d < 0 || d >= NumDimensions {
		return "unknown"
	}
	return DimensionNames[d]
}

// #endregion dimensions

// #region vector
// Vector holds the nine affective scalars. As absolute state each element
// is constrained to [0,1]; as a Delta the elements are signed increments.
type Vector [NumDimensions]float64

// Delta is a signed per-dimension increment produced by one perception event.
type Delta = Vector

// #endregion vector

// #region mode
// Mode is the sticky system mode, changed only by the transition policy.
type Mode string

const (
	ModeLive    Mode = "live"
	ModeSlumber Mode = "slumber"
	ModeCrisis  Mode = "crisis"
)

// Posture is the interaction style, recomputed on every perception event.
type Posture string

const (
	PostureCompanion Posture = "companion"
	PostureCoPilot   Posture = "co-pilot"
	PosturePeer      Posture = "peer"
	PostureExpert    Posture = "expert"
)

// #endregion mode

// #region affective-state
// AffectiveState is the full disposition record for one companion instance.
// Mode and the sticky flags change only through the transition policy;
// external reads always receive a copy.
type AffectiveState struct {
	Vector  Vector
	Mode    Mode
	Posture Posture

	DoorSlamActive bool
	CrisisActive   bool
	ElasticMode    bool

	// Flags describe conditions detected on the most recent evaluation.
	// Recomputed each time, not cumulative.
	Flags []string

	InteractionCount int
	LastInteraction  time.Time
	LastDream        time.Time
}

// #endregion affective-state

// #region context
// Context carries lightweight per-interaction context into analysis.
// The zero value is valid and means a plain companion interaction.
type Context struct {
	Load      float64 // cognitive load estimate, 0-1
	Technical bool    // caller flagged a technical exchange
}

// #endregion context

// #region snapshot
// Snapshot is a persisted version of an AffectiveState.
type Snapshot struct {
	SnapshotID string
	ParentID   string
	State      AffectiveState
	CreatedAt  time.Time
}

// #endregion snapshot
