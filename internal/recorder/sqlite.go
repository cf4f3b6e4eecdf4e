package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists lookup history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lookups (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			source       TEXT,
			ok           INTEGER NOT NULL,
			status       INTEGER,
			message      TEXT,
			points       INTEGER,
			latest_close REAL,
			duration_ms  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_ts ON lookups(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_symbol ON lookups(symbol)`,

		`CREATE TABLE IF NOT EXISTS predictions (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			source          TEXT,
			days            INTEGER,
			predicted_close REAL,
			ok              INTEGER NOT NULL,
			message         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_ts ON predictions(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordLookup(evt *LookupEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO lookups
		(timestamp, symbol, source, ok, status, message, points, latest_close, duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		stamp(evt.Timestamp), evt.Symbol, evt.Source, evt.OK, evt.Status,
		evt.Message, evt.Points, evt.LatestClose, evt.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) RecordPrediction(evt *PredictionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO predictions
		(timestamp, symbol, source, days, predicted_close, ok, message)
		VALUES (?,?,?,?,?,?,?)`,
		stamp(evt.Timestamp), evt.Symbol, evt.Source, evt.Days,
		evt.PredictedClose, evt.OK, evt.Message,
	)
	return err
}

// RecentLookups returns up to limit lookups, newest first.
func (r *SQLiteRecorder) RecentLookups(limit int) ([]LookupEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`SELECT timestamp, symbol, source, ok, status, message,
			points, latest_close, duration_ms
		FROM lookups ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query lookups: %w", err)
	}
	defer rows.Close()

	var out []LookupEvent
	for rows.Next() {
		var (
			evt             LookupEvent
			ts, durMs       int64
			source, message sql.NullString
			status, points  sql.NullInt64
			latest          sql.NullFloat64
		)
		if err := rows.Scan(&ts, &evt.Symbol, &source, &evt.OK, &status, &message,
			&points, &latest, &durMs); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		evt.Timestamp = time.UnixMilli(ts)
		evt.Source = source.String
		evt.Message = message.String
		evt.Status = int(status.Int64)
		evt.Points = int(points.Int64)
		evt.LatestClose = latest.Float64
		evt.Duration = time.Duration(durMs) * time.Millisecond
		out = append(out, evt)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func stamp(t time.Time) int64 {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UnixMilli()
}
