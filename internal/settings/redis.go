package settings

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/smartsales365/console/pkg/models"
)

// RedisStore keeps the configuration blob in Redis under StorageKey, for
// deployments where several console instances share one configuration.
// Writes are last-writer-wins; concurrent savers are not synchronized.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore from a Redis URL.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Load(ctx context.Context) (models.StoreSettings, error) {
	data, err := s.client.Get(ctx, StorageKey).Bytes()
	if err == redis.Nil {
		return models.DefaultStoreSettings(), nil
	}
	if err != nil {
		return models.DefaultStoreSettings(), fmt.Errorf("reading settings from redis: %w", err)
	}
	return decode(data), nil
}

func (s *RedisStore) Save(ctx context.Context, cfg models.StoreSettings) error {
	data, err := encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	// No TTL: the configuration lives until overwritten.
	if err := s.client.Set(ctx, StorageKey, data, 0).Err(); err != nil {
		return fmt.Errorf("writing settings to redis: %w", err)
	}
	return nil
}

// Compile-time check that RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
