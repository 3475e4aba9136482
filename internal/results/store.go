// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results persists evaluation reports in a SQLite database so
// panel accuracies can be compared across runs. Models themselves are
// never persisted — only their scores.
package results

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// Store manages the report SQLite database.
type Store struct {
	db *sql.DB
}

// Run is a saved report with its database identifier.
type Run struct {
	ID int64 `json:"id" yaml:"id"`
	types.Report `yaml:",inline"`
}

// Open opens or creates the report database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			dataset TEXT,
			network_accuracy REAL
		)`,
		`CREATE TABLE IF NOT EXISTS model_scores (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			model TEXT NOT NULL,
			mean_accuracy REAL NOT NULL,
			std_accuracy REAL NOT NULL,
			folds INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_model_scores_run_id ON model_scores(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveReport writes one report and its scores in a transaction and
// returns the new run ID.
func (s *Store) SaveReport(r types.Report) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var networkAccuracy sql.NullFloat64
	if r.NetworkAccuracy != nil {
		networkAccuracy = sql.NullFloat64{Float64: *r.NetworkAccuracy, Valid: true}
	}

	res, err := tx.Exec(
		`INSERT INTO runs (started_at, dataset, network_accuracy) VALUES (?, ?, ?)`,
		r.StartedAt.UTC().Format(time.RFC3339Nano), r.Dataset, networkAccuracy,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, score := range r.Scores {
		if _, err := tx.Exec(
			`INSERT INTO model_scores (run_id, model, mean_accuracy, std_accuracy, folds)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, score.Model, score.MeanAccuracy, score.StdAccuracy, score.Folds,
		); err != nil {
			return 0, fmt.Errorf("inserting score for %s: %w", score.Model, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing report: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first, with their scores
// in insertion order. limit <= 0 means all runs.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `SELECT id, started_at, dataset, network_accuracy FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt string
		var networkAccuracy sql.NullFloat64
		if err := rows.Scan(&run.ID, &startedAt, &run.Dataset, &networkAccuracy); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			run.StartedAt = t
		}
		if networkAccuracy.Valid {
			v := networkAccuracy.Float64
			run.NetworkAccuracy = &v
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		if err := s.loadScores(&runs[i]); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) loadScores(run *Run) error {
	rows, err := s.db.Query(
		`SELECT model, mean_accuracy, std_accuracy, folds
		 FROM model_scores WHERE run_id = ? ORDER BY rowid`,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("querying scores for run %d: %w", run.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var score types.ModelScore
		if err := rows.Scan(&score.Model, &score.MeanAccuracy, &score.StdAccuracy, &score.Folds); err != nil {
			return fmt.Errorf("scanning score for run %d: %w", run.ID, err)
		}
		run.Scores = append(run.Scores, score)
	}
	return rows.Err()
}

// WriteYAML renders runs as a YAML document, the machine-readable export
// of the report history.
func WriteYAML(w io.Writer, runs []Run) error {
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling runs: %w", err)
	}
	_, err = w.Write(data)
	return err
}
