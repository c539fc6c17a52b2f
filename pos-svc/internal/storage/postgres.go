package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresSnapshotStore keeps one JSON snapshot row per key in pos_snapshots.
type PostgresSnapshotStore struct {
	DB  *sql.DB
	Key string
}

func NewPostgresSnapshotStore(db *sql.DB, key string) *PostgresSnapshotStore {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &PostgresSnapshotStore{DB: db, Key: key}
}

func (s *PostgresSnapshotStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pos_snapshots (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresSnapshotStore) LoadSnapshot(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT payload FROM pos_snapshots WHERE key = $1", s.Key).
		Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", s.Key, err)
	}
	return payload, nil
}

func (s *PostgresSnapshotStore) SaveSnapshot(ctx context.Context, payload []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO pos_snapshots (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()`,
		s.Key, payload)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.Key, err)
	}
	return nil
}
