package logging

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion

// #region log-update
// LogUpdate writes a provenance entry to the update_provenance table.
func LogUpdate(db *sql.DB, entry UpdateEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO update_provenance (observation_id, task_type, rate, pairs_json, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(entry.ObservationID),
		entry.TaskType,
		entry.Rate,
		nullIfEmpty(entry.PairsJSON),
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log update: %w", err)
	}
	return nil
}

// #endregion log-update

// #region list-updates
// ListUpdates returns the most recent provenance entries, newest first.
func ListUpdates(db *sql.DB, limit int) ([]UpdateEntry, error) {
	rows, err := db.Query(
		`SELECT id, observation_id, task_type, rate, pairs_json, decision, reason, created_at
		 FROM update_provenance ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()

	var entries []UpdateEntry
	for rows.Next() {
		var e UpdateEntry
		var obsID, pairs, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.ID, &obsID, &e.TaskType, &e.Rate, &pairs, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if obsID.Valid {
			e.ObservationID = obsID.String
		}
		if pairs.Valid {
			e.PairsJSON = pairs.String
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-updates

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
