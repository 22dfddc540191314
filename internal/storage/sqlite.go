// Package storage keeps the session's run ledger in an in-memory SQLite
// database. Nothing is written to disk: the ledger lives as long as the
// process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the in-memory database connection.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID           int64
	RunID        string // UUID assigned on save
	Variant      string
	Score        int
	Frogs        int
	Portals      int
	EndReason    string // Game-over message, or "quit"
	DurationSecs float64
	CreatedAt    time.Time
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant      string
	Runs         int
	BestScore    int
	AvgScore     float64
	TotalFrogs   int
	TotalPortals int
	LastPlayed   time.Time
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			frogs INTEGER NOT NULL DEFAULT 0,
			portals INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns it with its identifiers filled in.
func (s *Store) SaveRun(r RunRecord) (RunRecord, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, variant, score, frogs, portals, end_reason, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Variant, r.Score, r.Frogs, r.Portals, r.EndReason, r.DurationSecs, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id
	r.CreatedAt = time.UnixMilli(r.CreatedAt.UnixMilli())

	return r, nil
}

const runColumns = `id, run_id, variant, score, frogs, portals, end_reason, duration_secs, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var r RunRecord
	var createdAt int64
	err := sc.Scan(&r.ID, &r.RunID, &r.Variant, &r.Score, &r.Frogs, &r.Portals,
		&r.EndReason, &r.DurationSecs, &createdAt)
	if err != nil {
		return RunRecord{}, err
	}
	r.CreatedAt = time.UnixMilli(createdAt)
	return r, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// TopRuns retrieves the best N runs, ordered by score descending.
// An empty variant matches every variant.
func (s *Store) TopRuns(variant string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, variant, limit,
	)
}

// RecentRuns retrieves the most recent runs across all variants.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunByID retrieves a run by its UUID.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run: %w", err)
	}
	return &r, nil
}

// BestScore returns the highest score for the given variant.
// Returns 0 if no runs exist.
func (s *Store) BestScore(variant string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get best score: %w", err)
	}
	return int(best.Int64), nil
}

// Stats retrieves statistics for every variant that has been played.
func (s *Store) Stats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), AVG(score), SUM(frogs), SUM(portals), MAX(created_at)
		 FROM runs
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var vs VariantStats
		var lastPlayed int64
		if err := rows.Scan(&vs.Variant, &vs.Runs, &vs.BestScore, &vs.AvgScore,
			&vs.TotalFrogs, &vs.TotalPortals, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastPlayed = time.UnixMilli(lastPlayed)
		stats[vs.Variant] = &vs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Clear deletes every run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
