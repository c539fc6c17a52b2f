package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultSnapshotKey = "agentic-cafe-pos"

type RedisSnapshotStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisSnapshotStore(client *redis.Client, key string) *RedisSnapshotStore {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &RedisSnapshotStore{Client: client, Key: key}
}

func (s *RedisSnapshotStore) LoadSnapshot(ctx context.Context) ([]byte, error) {
	payload, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.Key, err)
	}
	return payload, nil
}

func (s *RedisSnapshotStore) SaveSnapshot(ctx context.Context, payload []byte) error {
	if err := s.Client.Set(ctx, s.Key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.Key, err)
	}
	return nil
}
