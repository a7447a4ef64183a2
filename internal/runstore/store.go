package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Record is one alignment run.
type Record struct {
	ID             string
	CreatedAt      time.Time
	ScriptHash     string
	TranscriptHash string
	Granularity    string
	TokenCount     int
	FragmentCount  int
	ResolvedCount  int
	Coverage       float64
	TimelineEnd    float64
	ElapsedMS      int64
	OutputPath     string
}

// Open initializes or connects to the run database at dbPath.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save inserts a run record. A missing ID or CreatedAt is filled in.
func (s *Store) Save(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, created_at, script_hash, transcript_hash, granularity,
            token_count, fragment_count, resolved_count, coverage,
            timeline_end, elapsed_ms, output_path
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.ScriptHash,
		rec.TranscriptHash,
		rec.Granularity,
		rec.TokenCount,
		rec.FragmentCount,
		rec.ResolvedCount,
		rec.Coverage,
		rec.TimelineEnd,
		rec.ElapsedMS,
		rec.OutputPath,
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}

// List returns the most recent runs, newest first. A limit of 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, created_at, script_hash, transcript_hash, granularity,
        token_count, fragment_count, resolved_count, coverage,
        timeline_end, elapsed_ms, output_path
        FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt string
		if err := rows.Scan(
			&rec.ID,
			&createdAt,
			&rec.ScriptHash,
			&rec.TranscriptHash,
			&rec.Granularity,
			&rec.TokenCount,
			&rec.FragmentCount,
			&rec.ResolvedCount,
			&rec.Coverage,
			&rec.TimelineEnd,
			&rec.ElapsedMS,
			&rec.OutputPath,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}
