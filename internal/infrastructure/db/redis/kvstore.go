package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kusinadelights/recipe-platform/internal/core/ports"
)

// KeyValueStore implements ports.KeyValueStore on a Redis client. Each
// collection key holds one JSON array as a plain string value, with no
// expiry.
type KeyValueStore struct {
	client *redis.Client
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)

// NewKeyValueStore wraps the given Redis client.
func NewKeyValueStore(client *redis.Client) *KeyValueStore {
	return &KeyValueStore{client: client}
}

// GetItem returns the stored value, or the empty string when the key is
// absent.
func (s *KeyValueStore) GetItem(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *KeyValueStore) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KeyValueStore) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
