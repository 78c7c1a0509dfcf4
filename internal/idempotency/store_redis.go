package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"payrouter/internal/domain"
)

const keyPrefix = "payrouter:idem:"

// RedisStore implements Store on Redis so multiple instances answer retries
// consistently. Decisions are stored as JSON. TTL of zero keeps entries
// forever, matching the in-memory semantics; a positive TTL lets operators
// bound growth.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*domain.RouteDecision, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var decision domain.RouteDecision
	if err := json.Unmarshal(data, &decision); err != nil {
		return nil, fmt.Errorf("unmarshal cached decision: %w", err)
	}
	return &decision, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, decision *domain.RouteDecision) error {
	data, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
