package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
)

// ErrLockNotObtained is returned when another holder owns the key for the whole retry window.
var ErrLockNotObtained = errors.New("lock not obtained")

// ConfirmationLocker serialises payment confirmations for the same checkout session.
type ConfirmationLocker struct {
	locker  *redislock.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
}

// NewConfirmationLocker builds a locker on top of the shared client.
// It returns nil when redis has not been initialized.
func NewConfirmationLocker(ttl time.Duration, retries int) *ConfirmationLocker {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	return &ConfirmationLocker{
		locker:  redislock.New(client),
		ttl:     ttl,
		retries: retries,
		backoff: 100 * time.Millisecond,
	}
}

func lockKey(sessionID string) string {
	return fmt.Sprintf("lock:confirm:%s", sessionID)
}

// Acquire obtains the lock for sessionID. The returned release func is safe to call once.
func (l *ConfirmationLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	opts := &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.backoff), l.retries),
	}
	lock, err := l.locker.Obtain(ctx, lockKey(sessionID), l.ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrLockNotObtained
	}
	if err != nil {
		return nil, err
	}

	return func() {
		// the lock may have expired already; nothing else to do then
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = lock.Release(releaseCtx)
	}, nil
}
