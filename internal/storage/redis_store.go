package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrcow/mrcow-backend/config"
	"github.com/mrcow/mrcow-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// keyNamespace keeps storefront keys apart from anything else in the database.
const keyNamespace = "mrcow:"

// RedisStore backs the key-value store with Redis for deployments where the
// cart should survive process restarts across hosts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	logger.Info("Initializing Redis storage", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis storage connection established", nil)
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}
	return s.client.Set(context.Background(), keyNamespace+key, raw, 0).Err()
}

func (s *RedisStore) Get(key string, out interface{}) (bool, error) {
	raw, err := s.client.Get(context.Background(), keyNamespace+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to deserialize value for %q: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), keyNamespace+key).Err()
}

func (s *RedisStore) Keys(prefix string) ([]string, error) {
	ctx := context.Background()
	var keys []string

	iter := s.client.Scan(ctx, 0, keyNamespace+prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(keyNamespace):])
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *RedisStore) Close() error {
	logger.Info("Closing Redis storage connection", nil)
	return s.client.Close()
}
