// Package progress tracks image-generation progress for presentations so
// the UI can show a live percentage while the slide loop runs.
package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnknown is returned when no progress is recorded for an ID.
var ErrUnknown = errors.New("no progress recorded")

// Tracker records and reads completion percentages.
type Tracker interface {
	Set(ctx context.Context, id string, pct int) error
	Get(ctx context.Context, id string) (int, error)
}

// Entries expire so abandoned generations do not accumulate.
const progressTTL = 30 * time.Minute

// RedisTracker stores percentages in Redis/Dragonfly.
type RedisTracker struct {
	client *redis.Client
}

// NewRedisTracker creates a Redis-backed tracker.
func NewRedisTracker(client *redis.Client) *RedisTracker {
	return &RedisTracker{client: client}
}

func progressKey(id string) string {
	return "presentation:progress:" + id
}

func (t *RedisTracker) Set(ctx context.Context, id string, pct int) error {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if err := t.client.Set(ctx, progressKey(id), pct, progressTTL).Err(); err != nil {
		return fmt.Errorf("set progress: %w", err)
	}
	return nil
}

func (t *RedisTracker) Get(ctx context.Context, id string) (int, error) {
	pct, err := t.client.Get(ctx, progressKey(id)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, ErrUnknown
	}
	if err != nil {
		return 0, fmt.Errorf("get progress: %w", err)
	}
	return pct, nil
}

// MemoryTracker is an in-process Tracker for development and tests.
type MemoryTracker struct {
	mu   sync.RWMutex
	pcts map[string]int
}

// NewMemoryTracker creates an empty in-memory tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{pcts: make(map[string]int)}
}

func (t *MemoryTracker) Set(_ context.Context, id string, pct int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pcts[id] = pct
	return nil
}

func (t *MemoryTracker) Get(_ context.Context, id string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pct, ok := t.pcts[id]
	if !ok {
		return 0, ErrUnknown
	}
	return pct, nil
}
