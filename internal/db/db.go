// Package db provides PostgreSQL storage for generation history.
// Persistence is optional: the service runs fully without a database,
// and history write failures are logged, never surfaced to callers.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
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

// EnsureSchema creates the history table when it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS email_generations (
			id UUID PRIMARY KEY,
			company TEXT NOT NULL,
			recruiter TEXT NOT NULL,
			job_title TEXT NOT NULL,
			email_type TEXT NOT NULL,
			tone TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL,
			fallback BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create email_generations table: %w", err)
	}
	return nil
}

// Generation is one recorded email generation
type Generation struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	Recruiter string    `json:"recruiter"`
	JobTitle  string    `json:"jobTitle"`
	EmailType string    `json:"emailType"`
	Tone      string    `json:"tone"`
	Subject   string    `json:"subject"`
	Fallback  bool      `json:"fallback"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveGeneration records one generation and returns its ID
func (db *DB) SaveGeneration(ctx context.Context, gen *Generation) (uuid.UUID, error) {
	id := gen.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO email_generations (id, company, recruiter, job_title, email_type, tone, subject, fallback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, gen.Company, gen.Recruiter, gen.JobTitle, gen.EmailType, gen.Tone, gen.Subject, gen.Fallback,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save generation: %w", err)
	}
	return id, nil
}

// ListRecentGenerations returns the most recent generation records,
// newest first, up to limit.
func (db *DB) ListRecentGenerations(ctx context.Context, limit int) ([]*Generation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, company, recruiter, job_title, email_type, tone, subject, fallback, created_at
		 FROM email_generations
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var generations []*Generation
	for rows.Next() {
		gen := &Generation{}
		if err := rows.Scan(&gen.ID, &gen.Company, &gen.Recruiter, &gen.JobTitle,
			&gen.EmailType, &gen.Tone, &gen.Subject, &gen.Fallback, &gen.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		generations = append(generations, gen)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate generations: %w", err)
	}

	return generations, nil
}
