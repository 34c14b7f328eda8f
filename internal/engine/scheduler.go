package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/danielpatrickdp/limbic-state/internal/decay"
)

// #region decay-loop

// StartDecayLoop runs the decay scheduler on the configured interval until
// Close is called. Tick failures are logged and the loop keeps running.
func (e *Engine) StartDecayLoop() {
	go func() {
		defer close(e.doneCh)
		ticker := time.NewTicker(e.cfg.DecayInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := e.safeDecayTick(); err != nil {
					log.Printf("[DECAY] tick error: %v", err)
				}
			case <-e.stopCh:
				return
			}
		}
	}()
}

// Close stops the decay loop and waits for it to exit. Safe to call more
// than once and safe when the loop was never started.
func (e *Engine) Close() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
	})
	select {
	case <-e.doneCh:
	case <-time.After(time.Second):
	}
}

// #endregion decay-loop

// #region tick

// safeDecayTick converts a panic inside a tick into an error so the
// scheduler survives it.
func (e *Engine) safeDecayTick() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	e.DecayTick()
	return nil
}

// DecayTick ages the state by the time elapsed since the last interaction
// and re-evaluates the transition policy. The decayed vector is computed in
// full before it is committed, so a failure can never leave the state
// half-updated. Exported for tests and the replay harness.
func (e *Engine) DecayTick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	if e.st.LastInteraction.IsZero() {
		return
	}
	hours := now.Sub(e.st.LastInteraction).Hours()
	if hours <= 0 {
		return
	}

	next := decay.Apply(e.st.Vector, e.cfg, hours)
	changed := next != e.st.Vector
	e.st.Vector = next
	e.st.LastDream = now

	if edges := e.policy.Evaluate(&e.st); len(edges) > 0 {
		e.st.Flags = append(e.st.Flags, edges...)
		log.Printf("[DECAY] transitions after %.2fh idle: %v", hours, edges)
	}

	if changed {
		e.persistLocked()
	}
}

// #endregion tick
