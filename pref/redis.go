package pref

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "salin:pref:"

// RedisStore persists language preferences in redis so they survive restarts
// and are shared across instances. Keys carry no TTL; a preference lasts
// until the user changes it.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a preference store on an existing redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
}

// Get returns the stored locale for id, or empty when none is saved.
func (s *RedisStore) Get(ctx context.Context, id Identity) (string, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading preference for %s:%s: %w", id.Role, id.ID, err)
	}
	return val, nil
}

// Set stores the locale for id with no expiration.
func (s *RedisStore) Set(ctx context.Context, id Identity, locale string) error {
	if err := s.client.Set(ctx, s.key(id), locale, 0).Err(); err != nil {
		return fmt.Errorf("saving preference for %s:%s: %w", id.Role, id.ID, err)
	}
	return nil
}

func (s *RedisStore) key(id Identity) string {
	return s.keyPrefix + id.Role + ":" + id.ID
}

// Verify RedisStore implements Store
var _ Store = (*RedisStore)(nil)
