// Package db provides PostgreSQL persistence for the job posting catalog.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
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

const jobPostingsSchema = `
CREATE TABLE IF NOT EXISTS job_postings (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	salary_range TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	required_skills JSONB NOT NULL DEFAULT '[]',
	preferred_skills JSONB NOT NULL DEFAULT '[]',
	industry TEXT NOT NULL DEFAULT '',
	experience_level TEXT NOT NULL DEFAULT '',
	employment_type TEXT NOT NULL DEFAULT '',
	remote_work BOOLEAN NOT NULL DEFAULT FALSE,
	company_size TEXT NOT NULL DEFAULT '',
	benefits JSONB NOT NULL DEFAULT '[]',
	requirements JSONB NOT NULL DEFAULT '[]',
	posted_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	application_deadline TIMESTAMPTZ,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_job_postings_is_active ON job_postings (is_active);
CREATE INDEX IF NOT EXISTS idx_job_postings_posted_date ON job_postings (posted_date DESC);
`

// Migrate creates the job_postings table and its indexes if they do not
// exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, jobPostingsSchema); err != nil {
		return fmt.Errorf("failed to migrate job_postings: %w", err)
	}
	return nil
}
