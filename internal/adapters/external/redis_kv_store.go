package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const (
	// every key written by the service lives under this prefix
	defaultRedisNamespace = "weatherwidget:"
	redisScanBatch        = 100
)

// RedisKeyValueStore implements KeyValueStore using Redis
type RedisKeyValueStore struct {
	client    *redis.Client
	namespace string
	stats     storeStats
}

// NewRedisKeyValueStore connects to Redis and verifies the connection
func NewRedisKeyValueStore(config *ports.RedisConfig) (*RedisKeyValueStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisKeyValueStore{
		client:    client,
		namespace: defaultRedisNamespace,
	}, nil
}

func (r *RedisKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.namespace+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.stats.recordMiss()
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewStorageError("redis get operation failed", err)
	}

	r.stats.recordHit()
	return val, nil
}

func (r *RedisKeyValueStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("store TTL must be positive")
	}

	if err := r.client.Set(ctx, r.namespace+key, value, ttl).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}

	return nil
}

func (r *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	if err := r.client.Del(ctx, r.namespace+key).Err(); err != nil {
		return errors.NewStorageError("redis delete operation failed", err)
	}

	return nil
}

func (r *RedisKeyValueStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("store key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.namespace+key).Result()
	if err != nil {
		return false, errors.NewStorageError("redis exists operation failed", err)
	}

	return count > 0, nil
}

// Clear removes every key under the store namespace; other data in the database is left alone
func (r *RedisKeyValueStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.namespace+"*", redisScanBatch).Result()
		if err != nil {
			return errors.NewStorageError("redis scan operation failed", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return errors.NewStorageError("redis clear operation failed", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *RedisKeyValueStore) GetStats() ports.StoreStats {
	return r.stats.snapshot()
}

// Close closes the Redis client connection
func (r *RedisKeyValueStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisKeyValueStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}
