// Package store persists generated content as opaque envelopes behind a
// key-value contract. The store never interprets the payload; listing
// works off the metadata columns alone.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/learnwithai/backend/internal/content"
)

// ErrNotFound is returned when a key has no content.
var ErrNotFound = errors.New("content not found")

// ListItem is one row of a content listing: everything except the payload.
type ListItem struct {
	Key      string                  `json:"key"`
	Type     string                  `json:"type"`
	Metadata content.ContentMetadata `json:"metadata"`
}

// ContentStore is the key-value persistence contract.
type ContentStore interface {
	Save(ctx context.Context, c content.SavedContent) (string, error)
	Get(ctx context.Context, key string) (content.SavedContent, error)
	List(ctx context.Context) ([]ListItem, error)
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-memory ContentStore for development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]content.SavedContent
	order []string // insertion order, newest last
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]content.SavedContent)}
}

func (s *MemoryStore) Save(_ context.Context, c content.SavedContent) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.Key
	if key == "" {
		key = uuid.NewString()
	}
	c.Key = key
	if c.Metadata.CreatedAt.IsZero() {
		c.Metadata.CreatedAt = time.Now()
	}
	if _, exists := s.items[key]; !exists {
		s.order = append(s.order, key)
	}
	s.items[key] = c
	return key, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (content.SavedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[key]
	if !ok {
		return content.SavedContent{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) List(_ context.Context) ([]ListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ListItem, 0, len(s.order))
	// Newest first, matching the Postgres ordering.
	for i := len(s.order) - 1; i >= 0; i-- {
		c := s.items[s.order[i]]
		items = append(items, ListItem{Key: c.Key, Type: c.Type, Metadata: c.Metadata})
	}
	return items, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[key]; !ok {
		return ErrNotFound
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
