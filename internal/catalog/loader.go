// Package catalog loads the board/subject catalog the API validates
// requests against.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader loads and caches board catalogs from the filesystem.
type Loader struct {
	rootDir string
	boards  map[string]Board
	mu      sync.RWMutex
}

// NewLoader creates a catalog loader and loads all board files.
func NewLoader(rootDir string) (*Loader, error) {
	l := &Loader{
		rootDir: rootDir,
		boards:  make(map[string]Board),
	}

	if err := l.loadAll(); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	slog.Info("catalog loaded", "boards", len(l.boards))
	return l, nil
}

// GetBoard returns a board by ID.
func (l *Loader) GetBoard(id string) (Board, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.boards[strings.ToLower(id)]
	return b, ok
}

// AllBoards returns all loaded boards.
func (l *Loader) AllBoards() []Board {
	l.mu.RLock()
	defer l.mu.RUnlock()
	boards := make([]Board, 0, len(l.boards))
	for _, b := range l.boards {
		boards = append(boards, b)
	}
	return boards
}

// HasSubject reports whether a board teaches the subject at the class
// level. An unknown board answers false.
func (l *Loader) HasSubject(boardID, subject string, classLevel int) bool {
	b, ok := l.GetBoard(boardID)
	if !ok {
		return false
	}
	for _, s := range b.Subjects {
		if strings.EqualFold(s.Name, subject) && s.Offers(classLevel) {
			return true
		}
	}
	return false
}

// DisplayName returns the board's full name, or the ID unchanged when the
// board is unknown.
func (l *Loader) DisplayName(boardID string) string {
	if b, ok := l.GetBoard(boardID); ok {
		return b.Name
	}
	return boardID
}

func (l *Loader) loadAll() error {
	return filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		return l.loadBoard(path)
	})
}

func (l *Loader) loadBoard(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var board Board
	if err := yaml.Unmarshal(data, &board); err != nil {
		slog.Warn("skipping invalid board YAML", "path", path, "error", err)
		return nil
	}

	if board.ID == "" {
		return nil // Not a board file
	}

	l.mu.Lock()
	l.boards[strings.ToLower(board.ID)] = board
	l.mu.Unlock()

	return nil
}
