// Package storage persists analysis runs in a SQLite database so past
// catalogs can be listed and re-read. The analysis core never touches
// it; only the CLI does.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"uilens/internal/logging"
)

// dataDirName is the per-project directory holding the database.
const dataDirName = ".uilens"

// DB is a handle on the run store.
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	path   string
}

// Run is one persisted analysis run.
type Run struct {
	ID             string    `json:"id"`
	SourcePath     string    `json:"sourcePath"`
	SourceDigest   string    `json:"sourceDigest"`
	AnalyzedAt     time.Time `json:"analyzedAt"`
	ObjectCount    int       `json:"objectCount"`
	ComponentCount int       `json:"componentCount"`
	OverallScore   float64   `json:"overallScore"`
	Grade          string    `json:"grade"`
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	source_path     TEXT NOT NULL,
	source_digest   TEXT NOT NULL,
	analyzed_at     TEXT NOT NULL,
	object_count    INTEGER NOT NULL,
	component_count INTEGER NOT NULL,
	overall_score   REAL NOT NULL,
	grade           TEXT NOT NULL,
	catalog_json    BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_analyzed_at ON runs(analyzed_at);
CREATE INDEX IF NOT EXISTS idx_runs_source_digest ON runs(source_digest);
`

// Open opens or creates the run store at <root>/.uilens/uilens.db.
func Open(root string, logger *logging.Logger) (*DB, error) {
	dir := filepath.Join(root, dataDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", dataDirName, err)
	}

	path := filepath.Join(dir, "uilens.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{conn: conn, logger: logger, path: path}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveRun persists a run and its catalog JSON.
func (db *DB) SaveRun(run Run, catalogJSON []byte) error {
	_, err := db.conn.Exec(`
		INSERT INTO runs (id, source_path, source_digest, analyzed_at,
			object_count, component_count, overall_score, grade, catalog_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourcePath, run.SourceDigest,
		run.AnalyzedAt.UTC().Format(time.RFC3339),
		run.ObjectCount, run.ComponentCount, run.OverallScore, run.Grade,
		catalogJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}

	if db.logger != nil {
		db.logger.Debug("Saved analysis run", map[string]interface{}{
			"id":         run.ID,
			"components": run.ComponentCount,
		})
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(`
		SELECT id, source_path, source_digest, analyzed_at,
			object_count, component_count, overall_score, grade
		FROM runs ORDER BY analyzed_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var analyzedAt string
		if err := rows.Scan(&run.ID, &run.SourcePath, &run.SourceDigest, &analyzedAt,
			&run.ObjectCount, &run.ComponentCount, &run.OverallScore, &run.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.AnalyzedAt, _ = time.Parse(time.RFC3339, analyzedAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetCatalog returns the stored catalog JSON for a run.
func (db *DB) GetCatalog(runID string) ([]byte, error) {
	var data []byte
	err := db.conn.QueryRow(`SELECT catalog_json FROM runs WHERE id = ?`, runID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	return data, nil
}
