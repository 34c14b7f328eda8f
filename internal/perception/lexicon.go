package perception

import "github.com/danielpatrickdp/limbic-state/internal/state"

// The rule tables below are the canonical classification data. Matching is
// plain substring containment over the lower-cased input; changing a list
// changes engine behavior, so treat edits as behavior changes, not cleanup.

// #region cue-rules

// cueRule binds one affective dimension to its cue lists and response curve.
// A positive cue always wins over a negative cue for the same dimension.
type cueRule struct {
	dim      state.Dimension
	cap      float64
	divisor  float64
	positive []string
	negative []string
}

var cueRules = []cueRule{
	{
		dim: state.DimTrust, cap: 0.05, divisor: 1000,
		positive: []string{
			"thank you", "thanks", "appreciate", "grateful", "trust you",
			"count on you", "rely on you", "you're right", "you were right",
			"honest",
		},
		negative: []string{
			"liar", "lied to me", "betrayed", "can't trust", "cannot trust",
			"don't trust", "deceived",
		},
	},
	{
		dim: state.DimWarmth, cap: 0.1, divisor: 500,
		positive: []string{
			"love", "miss you", "care about", "sweet", "kind", "warm",
			"hug", "adore", "thank you",
		},
		negative: []string{
			"hate you", "leave me alone", "go away", "cold", "don't care about you",
		},
	},
	{
		dim: state.DimArousal, cap: 0.15, divisor: 400,
		positive: []string{
			"excited", "amazing", "incredible", "wow", "urgent", "emergency",
			"hurry", "right now", "scared", "afraid", "terrified", "panic",
			"hate", "angry", "furious",
		},
		negative: []string{
			"tired", "sleepy", "bored", "exhausted", "calm down", "relax",
		},
	},
	{
		dim: state.DimValence, cap: 0.1, divisor: 500,
		positive: []string{
			"happy", "great", "wonderful", "love", "awesome", "fantastic",
			"thank you", "good news", "delighted",
		},
		negative: []string{
			"sad", "terrible", "awful", "horrible", "depressed", "miserable",
			"hate", "worst", "scared", "afraid", "terrified", "hurts",
		},
	},
	{
		dim: state.DimEmpathy, cap: 0.08, divisor: 600,
		positive: []string{
			"i feel", "feeling", "struggling", "hard for me", "it hurts",
			"understand me", "listen to me", "lonely",
		},
		negative: []string{
			"whatever", "doesn't matter", "forget it",
		},
	},
	{
		dim: state.DimIntuition, cap: 0.05, divisor: 800,
		positive: []string{
			"i sense", "gut feeling", "instinct", "somehow", "i wonder",
			"something tells me", "intuition",
		},
	},
	{
		dim: state.DimCreativity, cap: 0.08, divisor: 600,
		positive: []string{
			"imagine", "what if", "idea", "create", "invent", "story",
			"dream", "design", "brainstorm",
		},
	},
	{
		dim: state.DimWisdom, cap: 0.04, divisor: 1000,
		positive: []string{
			"advice", "meaning", "lesson", "perspective", "wisdom",
			"what should i", "help me understand", "why do",
		},
	},
	{
		dim: state.DimHumor, cap: 0.1, divisor: 400,
		positive: []string{
			"haha", "lol", "lmao", "funny", "hilarious", "joke", "silly",
		},
		negative: []string{
			"not funny", "stop joking", "be serious",
		},
	},
}

// #endregion cue-rules

// #region urgency-keywords

// urgentKeywords escalate urgency straight to crisis.
var urgentKeywords = []string{
	"urgent", "emergency", "immediately", "right now", "crisis",
	"suicide", "kill myself", "hurt myself", "can't go on", "cannot go on",
	"can't breathe",
}

// highPriorityKeywords escalate urgency to high.
var highPriorityKeywords = []string{
	"important", "asap", "deadline", "quickly", "need you",
	"please help", "stressed", "overwhelmed",
}

// #endregion urgency-keywords

// #region trust-cues

// trustBuildingCues raise alignment; checked before trustBreakingCues and
// only one of the two adjustments ever applies.
var trustBuildingCues = []string{
	"thank you", "thanks", "appreciate", "grateful", "trust you", "sorry",
	"you're right", "you were right",
}

var trustBreakingCues = []string{
	"liar", "lied to me", "betrayed", "can't trust", "cannot trust",
	"don't trust", "hate you", "useless", "worthless",
}

// #endregion trust-cues

// #region emotion-predicates

// emotionPredicate names one detectable emotion and its delta test.
// Predicates are evaluated in table order; the first match wins, so ordering
// is precedence on overlapping matches.
type emotionPredicate struct {
	name  string
	match func(d state.Delta) bool
}

var emotionPredicates = []emotionPredicate{
	{"joy", func(d state.Delta) bool {
		return d[state.DimValence] > 0.04 && d[state.DimWarmth] > 0
	}},
	{"excitement", func(d state.Delta) bool {
		return d[state.DimArousal] > 0.06 && d[state.DimValence] > 0
	}},
	// stress is the moderate-arousal band; the high band falls through to fear.
	{"stress", func(d state.Delta) bool {
		return d[state.DimValence] < 0 && d[state.DimArousal] > 0.03 && d[state.DimArousal] <= 0.08
	}},
	{"sadness", func(d state.Delta) bool {
		return d[state.DimValence] < -0.04 && d[state.DimArousal] <= 0
	}},
	{"anger", func(d state.Delta) bool {
		return d[state.DimValence] < -0.04 && d[state.DimArousal] > 0 && d[state.DimWarmth] < 0
	}},
	{"fear", func(d state.Delta) bool {
		return d[state.DimValence] < 0 && d[state.DimArousal] > 0.08
	}},
	{"calm", func(d state.Delta) bool {
		return d[state.DimArousal] < 0 && d[state.DimValence] >= 0
	}},
	{"curiosity", func(d state.Delta) bool {
		return d[state.DimIntuition] > 0.02 || d[state.DimCreativity] > 0.02
	}},
}

// positiveEmotions is the set that earns the higher alignment base score.
var positiveEmotions = map[string]bool{
	"joy":        true,
	"excitement": true,
	"calm":       true,
	"curiosity":  true,
}

// #endregion emotion-predicates
