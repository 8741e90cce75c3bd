package telemetry

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS observations (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL,
	skill       TEXT NOT NULL,
	context     TEXT NOT NULL,
	completed   INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_observations_session
ON observations(session_id);

CREATE TABLE IF NOT EXISTS update_provenance (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	observation_id  TEXT,
	task_type       TEXT NOT NULL,
	rate            REAL NOT NULL,
	pairs_json      TEXT,
	decision        TEXT NOT NULL,
	reason          TEXT,
	created_at      TEXT NOT NULL
);
`

// #endregion schema

// #region event

// Event is one logged task outcome: which skill ran, on what context, and
// whether it completed. The batch learner replays these.
type Event struct {
	ID        string
	SessionID string
	Skill     string
	Context   string
	Completed bool
	CreatedAt time.Time
}

// #endregion event

// #region store-struct

// Store manages the observation log in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store-struct

// #region record-event

// RecordEvent persists one observation, filling in ID and CreatedAt when
// absent, and returns the stored row.
func (s *Store) RecordEvent(ev Event) (Event, error) {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	completed := 0
	if ev.Completed {
		completed = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO observations (id, session_id, skill, context, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.SessionID, ev.Skill, ev.Context, completed,
		ev.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Event{}, fmt.Errorf("insert observation: %w", err)
	}
	return ev, nil
}

// #endregion record-event

// #region list-events

// ListEvents returns observations in chronological order. limit <= 0 means
// no limit.
func (s *Store) ListEvents(limit int) ([]Event, error) {
	q := `SELECT id, session_id, skill, context, completed, created_at
	      FROM observations ORDER BY created_at ASC, id ASC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(q+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var completed int
		var createdStr string
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Skill, &ev.Context, &completed, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		ev.Completed = completed != 0
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountEvents returns the total number of logged observations.
func (s *Store) CountEvents() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM observations`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return n, nil
}

// #endregion list-events
