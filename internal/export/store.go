// Package export persists generated samples: a SQLite run store for
// queryable archives and a JSONL writer for streaming output. It is an
// external collaborator of the generation core: it only consumes the
// dataset API and renders what it gets.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/taskgym/internal/dataset"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	dataset    TEXT NOT NULL,
	seed       INTEGER NOT NULL,
	size       INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	idx      INTEGER NOT NULL,
	question TEXT NOT NULL,
	answer   TEXT NOT NULL,
	metadata TEXT NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`

// Store archives generation runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// Run describes one archived generation run.
type Run struct {
	ID        string
	Dataset   string
	Seed      int64
	Size      int
	CreatedAt time.Time
}

// Open connects to the SQLite database at dsn, applies recommended pragmas,
// and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records a new run and returns its generated ID.
func (s *Store) BeginRun(ctx context.Context, datasetName string, seed int64, size int) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, dataset, seed, size, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, datasetName, seed, size, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// SaveSample archives one sample under a run. Metadata is stored as JSON.
func (s *Store) SaveSample(ctx context.Context, runID string, idx int, smp dataset.Sample) error {
	meta, err := json.Marshal(smp.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO samples (run_id, idx, question, answer, metadata) VALUES (?, ?, ?, ?, ?)`,
		runID, idx, smp.Question, smp.Answer, string(meta))
	if err != nil {
		return fmt.Errorf("insert sample %d: %w", idx, err)
	}
	return nil
}

// GetRun loads a run's header row.
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	var r Run
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, dataset, seed, size, created_at FROM runs WHERE id = ?`, runID).
		Scan(&r.ID, &r.Dataset, &r.Seed, &r.Size, &created)
	if err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", runID, err)
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse run timestamp: %w", err)
	}
	return r, nil
}

// CountSamples returns how many samples are archived under a run.
func (s *Store) CountSamples(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM samples WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count samples: %w", err)
	}
	return n, nil
}

// GetSample loads one archived sample back, metadata decoded from JSON.
func (s *Store) GetSample(ctx context.Context, runID string, idx int) (dataset.Sample, error) {
	var smp dataset.Sample
	var meta string
	err := s.db.QueryRowContext(ctx,
		`SELECT question, answer, metadata FROM samples WHERE run_id = ? AND idx = ?`, runID, idx).
		Scan(&smp.Question, &smp.Answer, &meta)
	if err != nil {
		return dataset.Sample{}, fmt.Errorf("load sample %d: %w", idx, err)
	}
	if err := json.Unmarshal([]byte(meta), &smp.Metadata); err != nil {
		return dataset.Sample{}, fmt.Errorf("decode metadata: %w", err)
	}
	return smp, nil
}

// applyPragmas configures SQLite for single-writer archive use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
