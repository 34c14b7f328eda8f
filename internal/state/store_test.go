package state

import (
	"path/filepath"
	"testing"
	"time"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleState() AffectiveState {
	var v Vector
	for i := range v {
		v[i] = 0.5
	}
	v[DimTrust] = 0.7
	return AffectiveState{
		Vector:           v,
		Mode:             ModeLive,
		Posture:          PostureCompanion,
		ElasticMode:      true,
		Flags:            []string{"high_arousal"},
		InteractionCount: 3,
		LastInteraction:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCommitAndGetCurrent(t *testing.T) {
	s := tempDB(t)

	snap, err := s.CommitSnapshot("", sampleState())
	if err != nil {
		t.Fatalf("CommitSnapshot: %v", err)
	}
	if snap.SnapshotID == "" {
		t.Fatal("expected non-empty snapshot ID")
	}

	cur, err := s.GetCurrent()
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if cur.SnapshotID != snap.SnapshotID {
		t.Fatalf("expected %s, got %s", snap.SnapshotID, cur.SnapshotID)
	}
	if cur.State.Vector[DimTrust] != 0.7 {
		t.Fatalf("expected trust 0.7, got %f", cur.State.Vector[DimTrust])
	}
	if cur.State.Mode != ModeLive || cur.State.Posture != PostureCompanion {
		t.Fatalf("mode/posture mismatch: %s/%s", cur.State.Mode, cur.State.Posture)
	}
	if !cur.State.ElasticMode {
		t.Fatal("elastic flag lost")
	}
	if len(cur.State.Flags) != 1 || cur.State.Flags[0] != "high_arousal" {
		t.Fatalf("flags mismatch: %v", cur.State.Flags)
	}
	if cur.State.InteractionCount != 3 {
		t.Fatalf("expected 3 interactions, got %d", cur.State.InteractionCount)
	}
	if !cur.State.LastInteraction.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("last interaction mismatch: %v", cur.State.LastInteraction)
	}
}

func TestCommitChainAndRollback(t *testing.T) {
	s := tempDB(t)

	v1, err := s.CommitSnapshot("", sampleState())
	if err != nil {
		t.Fatalf("CommitSnapshot v1: %v", err)
	}

	st2 := sampleState()
	st2.Vector[DimTrust] = 0.9
	v2, err := s.CommitSnapshot(v1.SnapshotID, st2)
	if err != nil {
		t.Fatalf("CommitSnapshot v2: %v", err)
	}
	if v2.ParentID != v1.SnapshotID {
		t.Fatalf("expected parent %s, got %s", v1.SnapshotID, v2.ParentID)
	}

	cur, _ := s.GetCurrent()
	if cur.SnapshotID != v2.SnapshotID {
		t.Fatalf("expected active %s, got %s", v2.SnapshotID, cur.SnapshotID)
	}

	if err := s.Rollback(v1.SnapshotID); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	cur, _ = s.GetCurrent()
	if cur.SnapshotID != v1.SnapshotID {
		t.Fatalf("expected %s after rollback, got %s", v1.SnapshotID, cur.SnapshotID)
	}
	if cur.State.Vector[DimTrust] != 0.7 {
		t.Fatalf("expected trust 0.7 after rollback, got %f", cur.State.Vector[DimTrust])
	}
}

func TestRollbackNonExistent(t *testing.T) {
	s := tempDB(t)
	s.CommitSnapshot("", sampleState())

	if err := s.Rollback("no-such-snapshot"); err == nil {
		t.Fatal("expected error for unknown snapshot")
	}
}

func TestListSnapshots(t *testing.T) {
	s := tempDB(t)

	prev := ""
	for i := 0; i < 3; i++ {
		snap, err := s.CommitSnapshot(prev, sampleState())
		if err != nil {
			t.Fatalf("CommitSnapshot %d: %v", i, err)
		}
		prev = snap.SnapshotID
	}

	snaps, err := s.ListSnapshots(2)
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
}

func TestGetCurrentEmptyStore(t *testing.T) {
	s := tempDB(t)
	if _, err := s.GetCurrent(); err == nil {
		t.Fatal("expected error with no active snapshot")
	}
}
