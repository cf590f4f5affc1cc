// Package db provides PostgreSQL persistence for crawl runs and their
// captured profiles. It is an optional sink, enabled when a database URL is
// configured.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/profile-harvester/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new crawl run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO crawl_runs (role, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a crawl run as completed and records its counters
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, captured, skipped int, elapsedMs int64) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE crawl_runs
		 SET status = 'completed', profile_count = $1, skipped_count = $2,
		     elapsed_ms = $3, completed_at = NOW()
		 WHERE id = $4`,
		captured, skipped, elapsedMs, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveProfiles stores one JSONB record per captured profile for a run.
// Absent fields are omitted from the stored document, so absence survives
// persistence.
func (db *DB) SaveProfiles(ctx context.Context, runID uuid.UUID, profiles []types.Profile) error {
	for _, p := range profiles {
		record, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal profile %s: %w", p.ProfileURL, err)
		}
		_, err = db.pool.Exec(ctx,
			`INSERT INTO profiles (run_id, profile_url, record)
			 VALUES ($1, $2, $3)`,
			runID, p.ProfileURL, record,
		)
		if err != nil {
			return fmt.Errorf("failed to save profile %s: %w", p.ProfileURL, err)
		}
	}
	return nil
}
