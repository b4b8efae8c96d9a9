package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var _ i.Locker = &RedisLocker{}

// RedisLocker hands out redsync mutexes so that writers of the same maze are
// serialized across API instances.
type RedisLocker struct {
	locker *redsync.Redsync
	ttl    time.Duration
	logger i.Logger
}

// NewRedisLocker initializes a RedisLocker with the provided Redis client and lock TTL.
func NewRedisLocker(client *redis.Client, ttlSeconds int, logger i.Logger) *RedisLocker {
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
		logger: logger,
	}
}

// Lock acquires the mutex named key.
func (rl *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := rl.locker.NewMutex(key, redsync.WithExpiry(rl.ttl))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking %s: %w", key, err)
	}

	return func() {
		if _, err := mutex.Unlock(); err != nil {
			rl.logger.Warning(fmt.Sprintf("Releasing lock %s: %s", key, err))
		}
	}, nil
}
