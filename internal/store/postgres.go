package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnwithai/backend/internal/content"
)

const dbTimeout = 5 * time.Second

// Writes retry a few times with growing pauses; generation is expensive
// enough that losing a result to a transient database blip is worse than
// a short wait.
const (
	saveAttempts  = 3
	saveBaseDelay = 200 * time.Millisecond
)

// PostgresStore is a PostgreSQL-backed ContentStore.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres content store.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the saved_content table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS saved_content (
			key          uuid PRIMARY KEY,
			content_type text NOT NULL,
			chapter_name text NOT NULL DEFAULT '',
			class_level  int NOT NULL DEFAULT 0,
			subject      text NOT NULL DEFAULT '',
			board        text NOT NULL DEFAULT '',
			created_at   timestamptz NOT NULL DEFAULT now(),
			data         jsonb NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create saved_content table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, c content.SavedContent) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	key := c.Key
	if key == "" {
		key = uuid.NewString()
	}
	createdAt := c.Metadata.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var lastErr error
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if attempt > 0 {
			delay := saveBaseDelay << (attempt - 1)
			slog.Warn("retrying content save", "attempt", attempt+1, "delay", delay, "error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, dbTimeout)
		_, err := s.pool.Exec(callCtx,
			`INSERT INTO saved_content (key, content_type, chapter_name, class_level, subject, board, created_at, data)
			 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (key) DO UPDATE SET
			   content_type = EXCLUDED.content_type,
			   chapter_name = EXCLUDED.chapter_name,
			   class_level  = EXCLUDED.class_level,
			   subject      = EXCLUDED.subject,
			   board        = EXCLUDED.board,
			   data         = EXCLUDED.data`,
			key, c.Type,
			c.Metadata.ChapterName, c.Metadata.ClassLevel, c.Metadata.Subject, c.Metadata.Board,
			createdAt, []byte(c.Data),
		)
		cancel()
		if err == nil {
			return key, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("save content: %w", lastErr)
}

func (s *PostgresStore) Get(ctx context.Context, key string) (content.SavedContent, error) {
	callCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var c content.SavedContent
	var data []byte
	err := s.pool.QueryRow(callCtx,
		`SELECT key::text, content_type, chapter_name, class_level, subject, board, created_at, data
		 FROM saved_content WHERE key = $1::uuid`,
		key,
	).Scan(&c.Key, &c.Type,
		&c.Metadata.ChapterName, &c.Metadata.ClassLevel, &c.Metadata.Subject, &c.Metadata.Board,
		&c.Metadata.CreatedAt, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return content.SavedContent{}, ErrNotFound
	}
	if err != nil {
		return content.SavedContent{}, fmt.Errorf("get content: %w", err)
	}
	c.Data = data
	return c, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]ListItem, error) {
	callCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	// Metadata only; the payload stays on disk.
	rows, err := s.pool.Query(callCtx,
		`SELECT key::text, content_type, chapter_name, class_level, subject, board, created_at
		 FROM saved_content ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	var items []ListItem
	for rows.Next() {
		var it ListItem
		if err := rows.Scan(&it.Key, &it.Type,
			&it.Metadata.ChapterName, &it.Metadata.ClassLevel, &it.Metadata.Subject, &it.Metadata.Board,
			&it.Metadata.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan content row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content rows: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	callCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tag, err := s.pool.Exec(callCtx, `DELETE FROM saved_content WHERE key = $1::uuid`, key)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
