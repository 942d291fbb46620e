package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/learnwithai/backend/internal/content"
)

// startPostgres spins up a throwaway PostgreSQL container and returns a
// connected store. Skipped in short mode and when Docker is unavailable.
func startPostgres(t *testing.T) *PostgresStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("lwai_test"),
		postgres.WithUsername("lwai"),
		postgres.WithPassword("lwai"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("connecting pool: %v", err)
	}
	t.Cleanup(pool.Close)

	s, err := NewPostgresStore(pool)
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return s
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()

	c := content.SavedContent{
		Type: content.TypeQuiz,
		Metadata: content.ContentMetadata{
			ChapterName: "Plants",
			ClassLevel:  4,
			Subject:     "Science",
			Board:       "CBSE",
			CreatedAt:   time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		},
		Data: json.RawMessage(`{"questions": []}`),
	}

	key, err := s.Save(ctx, c)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Type != content.TypeQuiz || got.Metadata.ChapterName != "Plants" || got.Metadata.ClassLevel != 4 {
		t.Errorf("Get() = %+v", got)
	}
	var payload map[string]any
	if err := json.Unmarshal(got.Data, &payload); err != nil {
		t.Errorf("stored data unreadable: %v", err)
	}
}

func TestPostgresStore_UpsertListDelete(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()

	first := content.SavedContent{
		Type:     content.TypeSummary,
		Metadata: content.ContentMetadata{ChapterName: "One", CreatedAt: time.Now().Add(-time.Hour)},
		Data:     json.RawMessage(`{}`),
	}
	second := content.SavedContent{
		Type:     content.TypeLessonPlan,
		Metadata: content.ContentMetadata{ChapterName: "Two", CreatedAt: time.Now()},
		Data:     json.RawMessage(`{}`),
	}

	k1, err := s.Save(ctx, first)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	k2, err := s.Save(ctx, second)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 || items[0].Key != k2 || items[1].Key != k1 {
		t.Errorf("List() = %+v, want newest first", items)
	}

	// Saving under an existing key updates in place.
	first.Key = k1
	first.Metadata.ChapterName = "One (edited)"
	if _, err := s.Save(ctx, first); err != nil {
		t.Fatalf("upsert Save() error = %v", err)
	}
	got, _ := s.Get(ctx, k1)
	if got.Metadata.ChapterName != "One (edited)" {
		t.Errorf("upsert did not update: %q", got.Metadata.ChapterName)
	}

	if err := s.Delete(ctx, k1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, k1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, k1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() of missing key error = %v, want ErrNotFound", err)
	}
}
