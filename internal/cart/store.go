// Package cart holds session-scoped cart state in Redis. A cart lives under
// one key per session, expires with the session, and is never written to the
// durable ledger until checkout.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// Store abstracts cart persistence so services can be tested with fakes.
type Store interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, c domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Store with a sliding TTL per cart key.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns the cart for the session. A missing or expired key reads as an
// empty cart, never an error.
func (s *redisStore) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, nil
		}
		return nil, err
	}

	var c domain.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, c domain.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), raw, s.ttl).Err()
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
