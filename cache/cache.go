// Package cache keeps per file extraction results between runs, so only
// changed content files are rescanned.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS files (
	path    TEXT    NOT NULL PRIMARY KEY,
	size    INTEGER NOT NULL,
	mtime   INTEGER NOT NULL,
	classes TEXT    NOT NULL
) WITHOUT ROWID;
`

// Cache is a SQLite backed map from content file to extracted classes.
// A file hits only when both size and modification time still match.
type Cache struct {
	mu   sync.Mutex
	conn *sqlite.Conn
	log  *zap.Logger

	hits, misses int
}

// Open opens or creates cache database. Empty path keeps the database in
// memory, useful when caching is disabled but the code path stays the same.
func Open(path string, log *zap.Logger) (*Cache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("cache")

	var (
		conn *sqlite.Conn
		err  error
	)
	if len(path) == 0 {
		conn, err = sqlite.OpenConn(":memory:", sqlite.OpenReadWrite, sqlite.OpenMemory)
	} else {
		conn, err = sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open cache database: %w", err)
	}

	if err := sqlitex.ExecuteTransient(conn, strings.TrimSpace(schema), nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare cache database: %w", err)
	}
	return &Cache{conn: conn, log: log}, nil
}

// Close releases the database. Safe to call on nil cache.
func (c *Cache) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	c.log.Debug("Closing cache", zap.Int("hits", c.hits), zap.Int("misses", c.misses))
	return c.conn.Close()
}

// Lookup returns cached classes for a file when its size and modification
// time have not changed since the entry was stored.
func (c *Cache) Lookup(path string, size int64, mtime time.Time) ([]string, bool) {
	if c == nil || c.conn == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		classes []string
		found   bool
	)
	err := sqlitex.Execute(c.conn, `SELECT classes FROM files WHERE path = ? AND size = ? AND mtime = ?`,
		&sqlitex.ExecOptions{
			Args: []any{path, size, mtime.UnixNano()},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				if s := stmt.ColumnText(0); len(s) != 0 {
					classes = strings.Split(s, "\n")
				}
				return nil
			},
		})
	if err != nil {
		c.log.Debug("Cache lookup failed", zap.String("file", path), zap.Error(err))
		return nil, false
	}
	if found {
		c.hits++
	} else {
		c.misses++
	}
	return classes, found
}

// Store saves extraction result for a file, replacing any previous entry.
func (c *Cache) Store(path string, size int64, mtime time.Time, classes []string) {
	if c == nil || c.conn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := sqlitex.Execute(c.conn, `INSERT OR REPLACE INTO files (path, size, mtime, classes) VALUES (?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{path, size, mtime.UnixNano(), strings.Join(classes, "\n")},
		})
	if err != nil {
		// cache is an optimization, failure to store is not fatal
		c.log.Debug("Cache store failed", zap.String("file", path), zap.Error(err))
	}
}

// Prune drops entries for files no longer present in the content set.
func (c *Cache) Prune(current map[string]struct{}) {
	if c == nil || c.conn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var stale []string
	err := sqlitex.Execute(c.conn, `SELECT path FROM files`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				if p := stmt.ColumnText(0); len(p) != 0 {
					if _, ok := current[p]; !ok {
						stale = append(stale, p)
					}
				}
				return nil
			},
		})
	if err != nil {
		c.log.Debug("Cache prune failed", zap.Error(err))
		return
	}

	for _, p := range stale {
		err := sqlitex.Execute(c.conn, `DELETE FROM files WHERE path = ?`,
			&sqlitex.ExecOptions{Args: []any{p}})
		if err != nil {
			c.log.Debug("Cache prune failed", zap.String("file", p), zap.Error(err))
			return
		}
	}
	if len(stale) > 0 {
		c.log.Debug("Pruned cache", zap.Int("removed", len(stale)))
	}
}
