package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/koraytemur/hirdavat/pkg/errors"
)

const keyPrefix = "storefront:"

// KV implements repository.KV backed by Redis. Values expire after the
// configured TTL so abandoned device sessions age out.
type KV struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKV creates a new Redis-backed key-value store.
func NewKV(client *redis.Client, ttl time.Duration) *KV {
	return &KV{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the value stored under key.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("redis get %s: %w", key, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set stores value under key with the configured TTL.
func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *KV) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
