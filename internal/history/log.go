// Package history keeps the bounded, append-only record of applied
// perception events, with an optional SQLite journal mirror.
package history

import (
	"time"

	"github.com/danielpatrickdp/limbic-state/internal/perception"
	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region entry
// Entry records one applied perception event.
type Entry struct {
	SnapshotID string
	InputHash  string
	Delta      state.Delta
	Emotion    string
	Urgency    perception.Urgency
	Alignment  float64
	Flags      []string
	DurationMs float64
	CreatedAt  time.Time
}

// #endregion entry

// #region log
// Log is a bounded append-only ring. Oldest entries are dropped once the
// capacity is reached. Not safe for concurrent use; the engine serializes
// access under its own lock.
type Log struct {
	entries  []Entry
	capacity int
}

// NewLog creates a log holding at most capacity entries.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = 1
	}
	return &Log{capacity: capacity}
}

// Append adds an entry, evicting the oldest when full.
func (l *Log) Append(e Entry) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = e
		return
	}
	l.entries = append(l.entries, e)
}

// Recent returns up to limit entries, newest last. The slice is a copy.
func (l *Log) Recent(limit int) []Entry {
	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]Entry, limit)
	copy(out, l.entries[len(l.entries)-limit:])
	return out
}

// Len reports the number of retained entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear drops all entries.
func (l *Log) Clear() {
	l.entries = nil
}

// #endregion log
