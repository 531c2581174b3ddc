package sqlsyntax

import (
	"context"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/singleflight"
)

// FetchFunc retrieves the ordered column names of a table from a schema
// catalog. It is invoked only on cache miss and is the single blocking
// operation the package performs. Implementations are supplied by the
// database-access layer; the dialect/sql sub-package provides one backed
// by database/sql.
type FetchFunc func(ctx context.Context, connection, table string) ([]string, error)

type cacheKey struct {
	connection string
	table      string
}

// ColumnCache is a concurrent cache mapping (connection name, qualified
// table name) to the table's ordered, lower-cased column names. Population
// is lazy and deduplicated: concurrent first access for the same key issues
// a single fetch whose result every caller observes. Entries are stable
// until explicitly invalidated.
//
// The zero value is not usable; construct with NewColumnCache.
type ColumnCache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]string
	group   singleflight.Group
}

// NewColumnCache returns an empty cache.
func NewColumnCache() *ColumnCache {
	return &ColumnCache{entries: make(map[cacheKey][]string)}
}

// Columns returns the cached column names for the given connection and
// qualified table name, invoking fetch on miss. A fetch returning zero
// columns yields a ConfigurationError and is not cached. Errors from fetch
// are propagated unmodified.
func (c *ColumnCache) Columns(ctx context.Context, connection, table string, fetch FetchFunc) ([]string, error) {
	key := cacheKey{connection: connection, table: table}
	c.mu.RLock()
	columns, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return columns, nil
	}
	v, err, _ := c.group.Do(connection+"\x00"+table, func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// populated the entry before this flight started.
		c.mu.RLock()
		columns, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return columns, nil
		}
		fetched, err := fetch(ctx, connection, table)
		if err != nil {
			return nil, err
		}
		if len(fetched) == 0 {
			return nil, NewConfigurationError(connection, table)
		}
		lowered := make([]string, len(fetched))
		for i, name := range fetched {
			lowered[i] = strings.ToLower(name)
		}
		c.mu.Lock()
		c.entries[key] = lowered
		c.mu.Unlock()
		return lowered, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// Invalidate removes the entry for the given connection and table, if any.
func (c *ColumnCache) Invalidate(connection, table string) {
	c.mu.Lock()
	delete(c.entries, cacheKey{connection: connection, table: table})
	c.mu.Unlock()
}

// ClearConnection removes every entry belonging to the given connection.
func (c *ColumnCache) ClearConnection(connection string) {
	c.mu.Lock()
	for key := range c.entries {
		if key.connection == connection {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *ColumnCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]string)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *ColumnCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheEntry is the serialized form of one cache entry.
type cacheEntry struct {
	Connection string   `msgpack:"connection"`
	Table      string   `msgpack:"table"`
	Columns    []string `msgpack:"columns"`
}

// Snapshot serializes the cache contents for warm start in another
// process. The snapshot observes a single consistent point in time.
func (c *ColumnCache) Snapshot() ([]byte, error) {
	c.mu.RLock()
	entries := make([]cacheEntry, 0, len(c.entries))
	for key, columns := range c.entries {
		entries = append(entries, cacheEntry{Connection: key.connection, Table: key.table, Columns: columns})
	}
	c.mu.RUnlock()
	return msgpack.Marshal(entries)
}

// Restore merges a snapshot produced by Snapshot into the cache. Existing
// entries win over snapshot entries for the same key, preserving the
// populate-once invariant for live entries.
func (c *ColumnCache) Restore(data []byte) error {
	var entries []cacheEntry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return err
	}
	c.mu.Lock()
	for _, e := range entries {
		key := cacheKey{connection: e.Connection, table: e.Table}
		if _, ok := c.entries[key]; !ok && len(e.Columns) > 0 {
			c.entries[key] = e.Columns
		}
	}
	c.mu.Unlock()
	return nil
}
