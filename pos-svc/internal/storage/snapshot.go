package storage

import (
	"context"
	"errors"
	"sync"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore keeps the serialized floor state under a single key.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) ([]byte, error)
	SaveSnapshot(ctx context.Context, payload []byte) error
}

// MemorySnapshotStore keeps the snapshot in process. Used when no external
// backend is configured.
type MemorySnapshotStore struct {
	mu      sync.Mutex
	payload []byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (m *MemorySnapshotStore) LoadSnapshot(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, ErrSnapshotNotFound
	}
	return append([]byte(nil), m.payload...), nil
}

func (m *MemorySnapshotStore) SaveSnapshot(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = append([]byte(nil), payload...)
	return nil
}

var (
	_ SnapshotStore = (*MemorySnapshotStore)(nil)
	_ SnapshotStore = (*RedisSnapshotStore)(nil)
	_ SnapshotStore = (*PostgresSnapshotStore)(nil)
)
