package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielpatrickdp/limbic-state/internal/perception"
)

// #region hash-input
// HashInput produces a stable hash of interaction text for the journal, so
// raw text never lands in the database.
func HashInput(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:8])
}

// #endregion hash-input

// #region log-interaction
// LogInteraction writes an entry to the interaction_log table.
func LogInteraction(db *sql.DB, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	deltaJSON, err := json.Marshal(e.Delta)
	if err != nil {
		return fmt.Errorf("marshal delta: %w", err)
	}
	flagsJSON, err := json.Marshal(e.Flags)
	if err != nil {
		return fmt.Errorf("marshal flags: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO interaction_log (snapshot_id, input_hash, emotion, urgency, alignment, delta_json, flags_json, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SnapshotID,
		nullIfEmpty(e.InputHash),
		e.Emotion,
		string(e.Urgency),
		e.Alignment,
		string(deltaJSON),
		string(flagsJSON),
		e.DurationMs,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log interaction: %w", err)
	}
	return nil
}

// #endregion log-interaction

// #region list-interactions
// ListInteractions returns the most recent journal rows, newest first.
func ListInteractions(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT snapshot_id, input_hash, emotion, urgency, alignment, delta_json, flags_json, duration_ms, created_at
		 FROM interaction_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var inputHash, deltaJSON, flagsJSON sql.NullString
		var urgency, createdStr string
		if err := rows.Scan(&e.SnapshotID, &inputHash, &e.Emotion, &urgency, &e.Alignment,
			&deltaJSON, &flagsJSON, &e.DurationMs, &createdStr); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		if inputHash.Valid {
			e.InputHash = inputHash.String
		}
		if deltaJSON.Valid && deltaJSON.String != "" {
			if err := json.Unmarshal([]byte(deltaJSON.String), &e.Delta); err != nil {
				return nil, fmt.Errorf("unmarshal delta: %w", err)
			}
		}
		if flagsJSON.Valid && flagsJSON.String != "" {
			if err := json.Unmarshal([]byte(flagsJSON.String), &e.Flags); err != nil {
				return nil, fmt.Errorf("unmarshal flags: %w", err)
			}
		}
		e.Urgency = perception.Urgency(urgency)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion list-interactions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
