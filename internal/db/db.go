// Package db provides PostgreSQL storage for named CV snapshots.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahmoud/cv-studio/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// ErrSnapshotNotFound is returned when a snapshot id does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotInfo describes a stored snapshot without its content.
type SnapshotInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is a stored snapshot with its CV content.
type Snapshot struct {
	SnapshotInfo
	CV *types.CVData `json:"cv"`
}

// Connect establishes a connection pool and verifies it.
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

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS cv_snapshots (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name       TEXT NOT NULL,
			content    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	)
	if err != nil {
		return fmt.Errorf("failed to create cv_snapshots table: %w", err)
	}
	return nil
}

// SaveCV stores a named snapshot of the CV and returns its id.
func (db *DB) SaveCV(ctx context.Context, name string, cv *types.CVData) (uuid.UUID, error) {
	content, err := json.Marshal(cv)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal CV: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO cv_snapshots (name, content) VALUES ($1, $2) RETURNING id`,
		name, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return id, nil
}

// GetCV loads a snapshot by id.
func (db *DB) GetCV(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	var (
		snap    Snapshot
		content []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, content, created_at FROM cv_snapshots WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.Name, &content, &snap.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var cv types.CVData
	if err := json.Unmarshal(content, &cv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot content: %w", err)
	}
	snap.CV = &cv
	return &snap, nil
}

// ListCVs returns all snapshots, newest first, without content.
func (db *DB) ListCVs(ctx context.Context) ([]SnapshotInfo, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, created_at FROM cv_snapshots ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	infos := make([]SnapshotInfo, 0)
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return infos, nil
}

// DeleteCV removes a snapshot by id.
func (db *DB) DeleteCV(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM cv_snapshots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}
