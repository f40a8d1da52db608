package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache is a SQLite-backed cache of fetched corpus documents, keyed by
// URL. It caches an external collaborator's fetched bytes only, never
// Pen state (spec.md's Non-goals still exclude persistent storage
// semantics for the Pen itself).
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates a SQLite database at path, creating parent
// directories if needed.
func OpenCache(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("source: create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("source: open cache database: %w", err)
	}

	c := &Cache{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// OpenCacheInMemory returns a Cache backed by an in-memory database,
// useful for tests.
func OpenCacheInMemory() (*Cache, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("source: open in-memory cache: %w", err)
	}
	c := &Cache{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createSchema() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS documents (
			url TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("source: create cache schema: %w", err)
	}
	return nil
}

// Get returns the cached body for url and whether it was present.
func (c *Cache) Get(ctx context.Context, url string) (string, bool, error) {
	var body string
	err := c.db.QueryRowContext(ctx, "SELECT body FROM documents WHERE url = ?", url).Scan(&body)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("source: query cache: %w", err)
	}
	return body, true, nil
}

// Put stores body under url, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, url, body string) error {
	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO documents (url, body, fetched_at) VALUES (?, ?, ?)",
		url, body, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("source: store cache entry: %w", err)
	}
	return nil
}

// Delete removes the cache entry for url, if any.
func (c *Cache) Delete(ctx context.Context, url string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM documents WHERE url = ?", url)
	if err != nil {
		return fmt.Errorf("source: delete cache entry: %w", err)
	}
	return nil
}

// CachedFetch returns the cached body for url if present, otherwise
// calls fetch, stores the result, and returns it.
func (c *Cache) CachedFetch(ctx context.Context, url string, fetch func(ctx context.Context) (string, error)) (string, error) {
	if body, ok, err := c.Get(ctx, url); err != nil {
		return "", err
	} else if ok {
		return body, nil
	}

	body, err := fetch(ctx)
	if err != nil {
		return "", err
	}
	if err := c.Put(ctx, url, body); err != nil {
		return "", err
	}
	return body, nil
}
