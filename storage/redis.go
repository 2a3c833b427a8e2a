package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alex-pricope/idea-board/logging"
	"github.com/redis/go-redis/v9"
)

type RedisKeyValueStore struct {
	client *redis.Client
	prefix string
}

// NewRedisKeyValueStore connects to redisURL and checks the connection before returning.
func NewRedisKeyValueStore(redisURL, prefix string) (*RedisKeyValueStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisKeyValueStoreWithClient(client, prefix), nil
}

func NewRedisKeyValueStoreWithClient(client *redis.Client, prefix string) *RedisKeyValueStore {
	return &RedisKeyValueStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisKeyValueStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		logging.Log.Errorf("REDIS: get %s failed: %v", key, err)
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (s *RedisKeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		logging.Log.Errorf("REDIS: set %s failed: %v", key, err)
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisKeyValueStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisKeyValueStore) Close() error {
	return s.client.Close()
}
