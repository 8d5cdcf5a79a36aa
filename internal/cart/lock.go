package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned when another checkout holds the session lock.
var ErrLocked = errors.New("checkout already in progress for session")

// Locker serializes checkouts per session across service instances.
type Locker interface {
	Acquire(ctx context.Context, sessionID string) (release func(), err error)
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker builds a SETNX-based Locker. The TTL bounds lock lifetime if
// a holder dies before releasing.
func NewRedisLocker(client *redis.Client, ttl time.Duration) Locker {
	return &redisLocker{client: client, ttl: ttl}
}

// releaseScript deletes the lock only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)

func (l *redisLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	key := "checkout-lock:" + sessionID
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLocked
	}

	release := func() {
		_, _ = releaseScript.Run(context.Background(), l.client, []string{key}, token).Result()
	}
	return release, nil
}
