// Package tier maps the continuous trust scalar to a discrete capability
// tier via a static first-match table scan.
package tier

// #region trust-tier
// TrustTier is one row of the static capability table.
type TrustTier struct {
	Index        int
	Name         string
	TrustMin     float64
	TrustMax     float64
	Capabilities []string
}

// #endregion trust-tier

// #region table

// Table is the ordered capability table. Ranges are inclusive on both ends
// and resolution takes the first match.
//
// Known defect, kept on purpose: tiers 3 and 4 overlap on [0.95, 1.0], so
// tier 4 can never win a first-match scan. Product has not decided whether
// Confidant should exist as a reachable tier; do not renumber the ranges
// without that decision.
var Table = []TrustTier{
	{
		Index: 0, Name: "Stranger", TrustMin: 0.0, TrustMax: 0.25,
		Capabilities: []string{"basic_chat"},
	},
	{
		Index: 1, Name: "Acquaintance", TrustMin: 0.25, TrustMax: 0.55,
		Capabilities: []string{"basic_chat", "preference_recall"},
	},
	{
		Index: 2, Name: "Associate", TrustMin: 0.55, TrustMax: 0.9,
		Capabilities: []string{"basic_chat", "preference_recall", "proactive_suggestions", "personal_topics"},
	},
	{
		Index: 3, Name: "Companion", TrustMin: 0.9, TrustMax: 1.0,
		Capabilities: []string{"basic_chat", "preference_recall", "proactive_suggestions", "personal_topics", "deep_disclosure"},
	},
	{
		Index: 4, Name: "Confidant", TrustMin: 0.95, TrustMax: 1.0,
		Capabilities: []string{"basic_chat", "preference_recall", "proactive_suggestions", "personal_topics", "deep_disclosure", "unprompted_checkins"},
	},
}

// #endregion table

// #region resolve

// Resolve scans the table in order and returns the first tier whose
// inclusive range contains trust. Out-of-range values (unreachable given
// the clamping invariant) fall back to tier 0.
func Resolve(trust float64) TrustTier {
	for _, t := range Table {
		if trust >= t.TrustMin && trust <= t.TrustMax {
			return t
		}
	}
	return Table[0]
}

// #endregion resolve
