package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrLockNotAcquired means another owner holds the lock.
	ErrLockNotAcquired = errors.New("lock not acquired")
	// ErrLockNotHeld means the lock expired or was taken over before release.
	ErrLockNotHeld = errors.New("lock was not held by this client")
)

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

const refreshScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("PEXPIRE", KEYS[1], ARGV[2])
	else
		return 0
	end
`

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RetryDelay is the delay between retry attempts of Lock
	RetryDelay time.Duration
	// MaxRetries is the maximum number of retry attempts of Lock
	MaxRetries int
	// RefreshInterval is the interval used by AutoRefresh
	RefreshInterval time.Duration
}

// NewLockOptions creates a new lock options with default values
func NewLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             30 * time.Second,
		RetryDelay:      100 * time.Millisecond,
		MaxRetries:      10,
		RefreshInterval: 10 * time.Second,
	}
}

// WithTTL sets the lock expiration time and refreshes at a third of it
func (lo *LockOptions) WithTTL(ttl time.Duration) *LockOptions {
	lo.TTL = ttl
	lo.RefreshInterval = ttl / 3
	return lo
}

// Lock is a distributed lock owned by a random value, released only by its owner.
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock under the client key prefix
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    client.Key("lock", key),
		value:  uuid.NewString(),
		opts:   opts,
	}
}

// TryLock makes a single attempt to acquire the lock.
func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	ok, err := l.client.GetClient().SetNX(ctx, l.key, l.value, l.opts.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return ok, nil
}

// Lock retries TryLock up to MaxRetries times, waiting RetryDelay in between.
func (l *Lock) Lock(ctx context.Context) error {
	for attempt := 0; attempt <= l.opts.MaxRetries; attempt++ {
		ok, err := l.TryLock(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.opts.RetryDelay):
		}
	}

	return fmt.Errorf("%w after %d attempts", ErrLockNotAcquired, l.opts.MaxRetries+1)
}

// Unlock releases the lock
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL
func (l *Lock) Refresh(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, refreshScript, []string{l.key}, l.value, l.opts.TTL.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// AutoRefresh refreshes the lock every RefreshInterval until ctx is done.
// The returned channel receives the error that stopped the refresh.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}
