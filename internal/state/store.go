package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS limbic_snapshots (
	snapshot_id       TEXT PRIMARY KEY,
	parent_id         TEXT,
	vector            BLOB NOT NULL,
	mode              TEXT NOT NULL,
	posture           TEXT NOT NULL,
	door_slam_active  INTEGER NOT NULL DEFAULT 0,
	crisis_active     INTEGER NOT NULL DEFAULT 0,
	elastic_mode      INTEGER NOT NULL DEFAULT 0,
	flags_json        TEXT,
	interaction_count INTEGER NOT NULL DEFAULT 0,
	last_interaction  TEXT,
	last_dream        TEXT,
	created_at        TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES limbic_snapshots(snapshot_id)
);

CREATE TABLE IF NOT EXISTS interaction_log (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	snapshot_id    TEXT NOT NULL,
	input_hash     TEXT,
	emotion        TEXT NOT NULL,
	urgency        TEXT NOT NULL,
	alignment      REAL NOT NULL,
	delta_json     TEXT,
	flags_json     TEXT,
	duration_ms    REAL NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL,
	FOREIGN KEY (snapshot_id) REFERENCES limbic_snapshots(snapshot_id)
);

CREATE TABLE IF NOT EXISTS active_snapshot (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	snapshot_id TEXT NOT NULL,
	FOREIGN KEY (snapshot_id) REFERENCES limbic_snapshots(snapshot_id)
);
`

// #endregion schema

// #region store-struct
// Store persists affective snapshots in SQLite so a companion session can
// resume its disposition across restarts.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. history).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region commit
// CommitSnapshot inserts a new snapshot and updates the active pointer
// atomically. A fresh snapshot ID is assigned and returned.
func (s *Store) CommitSnapshot(parentID string, st AffectiveState) (Snapshot, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	snap := Snapshot{
		SnapshotID: id,
		ParentID:   parentID,
		State:      CopyState(st),
		CreatedAt:  now,
	}

	flagsJSON, err := json.Marshal(st.Flags)
	if err != nil {
		return Snapshot{}, fmt.Errorf("marshal flags: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentPtr interface{}
	if parentID != "" {
		parentPtr = parentID
	}

	_, err = tx.Exec(
		`INSERT INTO limbic_snapshots
		 (snapshot_id, parent_id, vector, mode, posture, door_slam_active, crisis_active, elastic_mode,
		  flags_json, interaction_count, last_interaction, last_dream, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, parentPtr, EncodeVector(st.Vector), string(st.Mode), string(st.Posture),
		boolInt(st.DoorSlamActive), boolInt(st.CrisisActive), boolInt(st.ElasticMode),
		string(flagsJSON), st.InteractionCount,
		timePtr(st.LastInteraction), timePtr(st.LastDream),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_snapshot (id, snapshot_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET snapshot_id = excluded.snapshot_id`,
		id,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("commit: %w", err)
	}

	return snap, nil
}

// #endregion commit

// #region get-current
// GetCurrent reads the active snapshot.
func (s *Store) GetCurrent() (Snapshot, error) {
	var id string
	err := s.db.QueryRow(`SELECT snapshot_id FROM active_snapshot WHERE id = 1`).Scan(&id)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get active: %w", err)
	}
	return s.GetSnapshot(id)
}

// #endregion get-current

// #region get-snapshot
// GetSnapshot retrieves a specific snapshot by ID.
func (s *Store) GetSnapshot(id string) (Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT snapshot_id, parent_id, vector, mode, posture, door_slam_active, crisis_active, elastic_mode,
		        flags_json, interaction_count, last_interaction, last_dream, created_at
		 FROM limbic_snapshots WHERE snapshot_id = ?`, id,
	)
	snap, err := scanSnapshot(row)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	return snap, nil
}

// #endregion get-snapshot

// #region rollback
// Rollback sets the active pointer to a previous snapshot.
func (s *Store) Rollback(targetID string) error {
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM limbic_snapshots WHERE snapshot_id = ?`, targetID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check snapshot: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("snapshot %s not found", targetID)
	}

	_, err = s.db.Exec(`UPDATE active_snapshot SET snapshot_id = ? WHERE id = 1`, targetID)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// #endregion rollback

// #region list
// ListSnapshots returns the most recent snapshots, newest first.
func (s *Store) ListSnapshots(limit int) ([]Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT snapshot_id, parent_id, vector, mode, posture, door_slam_active, crisis_active, elastic_mode,
		        flags_json, interaction_count, last_interaction, last_dream, created_at
		 FROM limbic_snapshots ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// #endregion list

// #region scan-helpers
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var snap Snapshot
	var parentID, flagsJSON, lastInteraction, lastDream sql.NullString
	var vecBlob []byte
	var mode, posture, createdStr string
	var doorSlam, crisis, elastic int

	err := row.Scan(
		&snap.SnapshotID, &parentID, &vecBlob, &mode, &posture,
		&doorSlam, &crisis, &elastic, &flagsJSON,
		&snap.State.InteractionCount, &lastInteraction, &lastDream, &createdStr,
	)
	if err != nil {
		return Snapshot{}, err
	}

	if parentID.Valid {
		snap.ParentID = parentID.String
	}
	snap.State.Vector = DecodeVector(vecBlob)
	snap.State.Mode = Mode(mode)
	snap.State.Posture = Posture(posture)
	snap.State.DoorSlamActive = doorSlam != 0
	snap.State.CrisisActive = crisis != 0
	snap.State.ElasticMode = elastic != 0
	if flagsJSON.Valid && flagsJSON.String != "" {
		if err := json.Unmarshal([]byte(flagsJSON.String), &snap.State.Flags); err != nil {
			return Snapshot{}, fmt.Errorf("unmarshal flags: %w", err)
		}
	}
	if lastInteraction.Valid {
		snap.State.LastInteraction, _ = time.Parse(time.RFC3339Nano, lastInteraction.String)
	}
	if lastDream.Valid {
		snap.State.LastDream, _ = time.Parse(time.RFC3339Nano, lastDream.String)
	}
	snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	return snap, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timePtr(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// #endregion scan-helpers
