package ai

import "sync"

// UsageRecorder records token consumption per generation feature.
type UsageRecorder interface {
	Record(feature string, tokens int)
}

// NopUsage discards all usage records.
type NopUsage struct{}

func (NopUsage) Record(string, int) {}

// InMemoryUsage tracks per-feature token totals for the usage endpoint.
type InMemoryUsage struct {
	mu        sync.RWMutex
	byFeature map[string]int64
}

// NewInMemoryUsage creates an empty usage tracker.
func NewInMemoryUsage() *InMemoryUsage {
	return &InMemoryUsage{byFeature: make(map[string]int64)}
}

func (u *InMemoryUsage) Record(feature string, tokens int) {
	if tokens <= 0 {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.byFeature[feature] += int64(tokens)
}

// Snapshot returns a copy of the per-feature totals.
func (u *InMemoryUsage) Snapshot() map[string]int64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make(map[string]int64, len(u.byFeature))
	for k, v := range u.byFeature {
		out[k] = v
	}
	return out
}

// Total returns tokens recorded across all features.
func (u *InMemoryUsage) Total() int64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	var total int64
	for _, v := range u.byFeature {
		total += v
	}
	return total
}
