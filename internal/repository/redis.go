package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"propertychat/pkg/log"
)

// NewRedisClient connects to Redis and pings it
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	log.Infof("Redis client connected to %s", addr)
	return client, nil
}

// RedisStore keeps values as JSON strings under prefix:key with a sliding TTL
type RedisStore[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store. A zero ttl keeps keys forever.
func NewRedisStore[T any](client *redis.Client, prefix string, ttl time.Duration) *RedisStore[T] {
	return &RedisStore[T]{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore[T]) key(k string) string {
	return fmt.Sprintf("%s:%s", s.prefix, k)
}

// Get loads a value; missing keys return nil, nil
func (s *RedisStore[T]) Get(ctx context.Context, key string) (*T, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.key(key), err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", s.key(key), err)
	}
	return &v, nil
}

// Save writes the value and refreshes its TTL
func (s *RedisStore[T]) Save(ctx context.Context, key string, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.key(key), err)
	}
	if err := s.client.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", s.key(key), err)
	}
	return nil
}

func (s *RedisStore[T]) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.key(key), err)
	}
	return nil
}

// List scans every key under the prefix. Keys that expire mid-scan are skipped.
func (s *RedisStore[T]) List(ctx context.Context) ([]*T, error) {
	var out []*T
	iter := s.client.Scan(ctx, 0, s.prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", iter.Val(), err)
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			log.Warnf("Skipping unreadable key %s: %v", iter.Val(), err)
			continue
		}
		out = append(out, &v)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.prefix, err)
	}
	return out, nil
}
