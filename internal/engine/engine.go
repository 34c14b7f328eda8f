// Package engine wires perception, transitions, decay, and history around a
// single affective state. One Engine instance owns one state; there is no
// process-wide registry. Callers hold the handle and pass it where needed.
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/danielpatrickdp/limbic-state/internal/config"
	"github.com/danielpatrickdp/limbic-state/internal/history"
	"github.com/danielpatrickdp/limbic-state/internal/perception"
	"github.com/danielpatrickdp/limbic-state/internal/state"
	"github.com/danielpatrickdp/limbic-state/internal/tier"
	"github.com/danielpatrickdp/limbic-state/internal/transition"
)

// #region perception-result
// PerceptionResult is returned to the caller after one processed interaction.
type PerceptionResult struct {
	Delta            state.Delta
	Emotion          string
	Urgency          perception.Urgency
	Alignment        float64
	Flags            []string
	ProcessingTimeMs float64
}

// #endregion perception-result

// #region engine-struct
// Engine owns the affective state for one companion instance. A single mutex
// serializes the two writers (caller-invoked perception and the decay loop)
// so no mutation is ever visible half-applied.
type Engine struct {
	mu     sync.Mutex
	cfg    config.LimbicConfig
	policy transition.Policy

	st   state.AffectiveState
	hist *history.Log

	store          *state.Store // optional persistence
	lastSnapshotID string

	now func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// #endregion engine-struct

// #region options
// Option configures an Engine at construction.
type Option func(*Engine)

// WithStore attaches a snapshot store. The engine resumes from the active
// snapshot when one exists and persists after every mutation. The caller
// retains ownership of the store and closes it.
func WithStore(s *state.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithClock overrides the engine's time source. Used by tests and replay.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithHistoryCapacity overrides the in-memory history ring size.
func WithHistoryCapacity(n int) Option {
	return func(e *Engine) { e.hist = history.NewLog(n) }
}

// #endregion options

// #region constructor
const defaultHistoryCapacity = 1000

// New validates cfg and builds an engine at the bootstrap state. When a
// store holds an active snapshot the persisted state is resumed instead.
func New(cfg config.LimbicConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg: cfg,
		policy: transition.Policy{
			SlumberThreshold:  cfg.SlumberThreshold,
			CrisisThreshold:   cfg.CrisisThreshold,
			DoorSlamThreshold: cfg.DoorSlamThreshold,
		},
		hist:   history.NewLog(defaultHistoryCapacity),
		now:    time.Now,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.st = e.bootstrapState()

	if e.store != nil {
		if snap, err := e.store.GetCurrent(); err == nil {
			e.st = state.CopyState(snap.State)
			e.lastSnapshotID = snap.SnapshotID
		} else if snap, err := e.store.CommitSnapshot("", e.st); err == nil {
			e.lastSnapshotID = snap.SnapshotID
		} else {
			log.Printf("[ENGINE] initial snapshot: %v", err)
		}
	}

	return e, nil
}

func (e *Engine) bootstrapState() state.AffectiveState {
	return state.AffectiveState{
		Vector:          e.cfg.Bootstrap,
		Mode:            state.ModeLive,
		Posture:         state.PostureCompanion,
		LastInteraction: e.now(),
	}
}

// #endregion constructor

// #region process-perception

// ProcessPerception is the primary entry point. It analyzes text against the
// current state, applies the resulting delta, recomputes posture and mode,
// and records the interaction. It never fails: empty text and a zero Context
// are valid inputs.
func (e *Engine) ProcessPerception(text string, ctx state.Context) PerceptionResult {
	start := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	res := perception.Analyze(text, ctx, e.st, e.cfg.ElasticFactor)

	e.st.Vector = state.Apply(e.st.Vector, res.Delta)
	e.st.Posture = transition.ResolvePosture(ctx, e.st.Vector)

	flags := append([]string{}, res.Flags...)
	flags = append(flags, e.policy.Evaluate(&e.st)...)
	e.st.Flags = flags

	e.st.InteractionCount++
	e.st.LastInteraction = e.now()

	e.persistLocked()

	durationMs := float64(time.Since(start).Microseconds()) / 1000

	entry := history.Entry{
		SnapshotID: e.lastSnapshotID,
		InputHash:  history.HashInput(text),
		Delta:      res.Delta,
		Emotion:    res.Emotion,
		Urgency:    res.Urgency,
		Alignment:  res.Alignment,
		Flags:      flags,
		DurationMs: durationMs,
		CreatedAt:  e.now(),
	}
	e.hist.Append(entry)
	if e.store != nil {
		if err := history.LogInteraction(e.store.DB(), entry); err != nil {
			log.Printf("[ENGINE] journal: %v", err)
		}
	}

	return PerceptionResult{
		Delta:            res.Delta,
		Emotion:          res.Emotion,
		Urgency:          res.Urgency,
		Alignment:        res.Alignment,
		Flags:            append([]string{}, flags...),
		ProcessingTimeMs: durationMs,
	}
}

// #endregion process-perception

// #region reads

// State returns a copy of the current affective state. Mutating the copy
// has no effect on the engine.
func (e *Engine) State() state.AffectiveState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return state.CopyState(e.st)
}

// CurrentTrustTier resolves the capability tier for the current trust value.
func (e *Engine) CurrentTrustTier() tier.TrustTier {
	e.mu.Lock()
	defer e.mu.Unlock()
	return tier.Resolve(e.st.Vector[state.DimTrust])
}

// History returns up to limit recent interactions, newest last. A
// non-positive limit means the default of 100.
func (e *Engine) History(limit int) []history.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if limit <= 0 {
		limit = 100
	}
	return e.hist.Recent(limit)
}

// #endregion reads

// #region modulators

// EnableElasticMode turns on the sticky delta multiplier.
func (e *Engine) EnableElasticMode() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st.ElasticMode = true
	e.persistLocked()
}

// DisableElasticMode turns the multiplier back off.
func (e *Engine) DisableElasticMode() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st.ElasticMode = false
	e.persistLocked()
}

// TriggerReunionSurge applies the one-shot reunion boost when the idle gap
// exceeds the configured window, and reports whether it fired. There is no
// per-reunion latch: a second call under the same elapsed-time condition
// applies the boost again.
func (e *Engine) TriggerReunionSurge() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	idle := e.now().Sub(e.st.LastInteraction).Hours()
	if idle <= e.cfg.ReunionWindowHours {
		return false
	}

	var boost state.Delta
	boost[state.DimWarmth] = 0.3
	boost[state.DimArousal] = 0.4
	boost[state.DimEmpathy] = 0.2
	e.st.Vector = state.Apply(e.st.Vector, boost)

	flags := []string{"reunion_surge"}
	e.st.Flags = append(flags, e.policy.Evaluate(&e.st)...)

	e.persistLocked()
	log.Printf("[ENGINE] reunion surge after %.1fh idle", idle)
	return true
}

// Reset reinitializes the state to bootstrap values and clears history.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st = e.bootstrapState()
	e.hist.Clear()
	e.persistLocked()
}

// #endregion modulators

// #region persist
// persistLocked commits a snapshot when a store is attached. Persistence
// failures are logged, never surfaced: the in-memory state is authoritative.
func (e *Engine) persistLocked() {
	if e.store == nil {
		return
	}
	snap, err := e.store.CommitSnapshot(e.lastSnapshotID, e.st)
	if err != nil {
		log.Printf("[ENGINE] snapshot: %v", err)
		return
	}
	e.lastSnapshotID = snap.SnapshotID
}

// #endregion persist
