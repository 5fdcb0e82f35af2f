package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rab_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

const keyPrefix = "rab:lock:"

// RedisLocker is a SETNX lock with a random token; release only deletes the key
// while it still holds that token.
type RedisLocker struct {
	client *redis.Client
	script *redis.Script
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
	log    *zap.Logger
}

var _ interfaces.IDocumentLocker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		script: redis.NewScript(releaseScript),
		ttl:    ttl,
		wait:   wait,
		retry:  50 * time.Millisecond,
		log:    zap.L().Named("lock.redis"),
	}
}

// Lock polls until the key is free, the wait timeout elapses or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	if key == "" {
		return nil, errors.New("lock key is empty")
	}
	if l.ttl <= 0 {
		return nil, errors.New("lock ttl must be positive")
	}

	redisKey := keyPrefix + key
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return l.releaser(ctx, redisKey, token), nil
		}
		if !time.Now().Before(deadline) {
			return nil, interfaces.ErrLockNotAcquired
		}

		timer := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %w", interfaces.ErrLockNotAcquired, ctx.Err())
		case <-timer.C:
		}
	}
}

func (l *RedisLocker) releaser(ctx context.Context, key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer cancel()
			if err := l.script.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				l.log.Warn("[lock][redis] release failed", zap.String("key", key), zap.Error(err))
			}
		})
	}
}
