// Package cache memoizes per-file computations, invalidated by the file's
// modification time.
package cache

import (
	"fmt"
	"os"
	"time"
)

// Stats holds hit/miss counters for the lifetime of a Cache. Reset clears
// entries but never the counters; they describe the whole session.
type Stats struct {
	Hits   int
	Misses int
}

type entry[T any] struct {
	parsedAt time.Time
	value    T
}

// Cache memoizes a file-keyed computation. An entry is served as long as the
// file's on-disk modification time is not newer than the wall-clock time at
// which the entry was computed.
//
// A Cache belongs to a single session and is not safe for concurrent use.
type Cache[T any] struct {
	entries map[string]entry[T]
	stats   Stats
}

// New returns an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]entry[T])}
}

// FetchOrCompute returns the cached value for path, or runs compute and
// caches its result when no entry exists or the file changed since the entry
// was recorded. Stat failures on a cached file propagate to the caller.
func (c *Cache[T]) FetchOrCompute(path string, compute func() (T, error)) (T, error) {
	e, ok := c.entries[path]
	if !ok {
		return c.miss(path, compute)
	}

	info, err := os.Stat(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("stat cached file: %w", err)
	}

	if info.ModTime().After(e.parsedAt) {
		return c.miss(path, compute)
	}

	c.stats.Hits++
	return e.value, nil
}

func (c *Cache[T]) miss(path string, compute func() (T, error)) (T, error) {
	// Record the timestamp before computing so a write that lands while
	// compute runs still invalidates this entry on the next fetch.
	parsedAt := time.Now()

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	c.entries[path] = entry[T]{parsedAt: parsedAt, value: value}
	c.stats.Misses++
	return value, nil
}

// Invalidate removes the entry for path, forcing the next fetch to
// recompute. Call it before rewriting a file so a stale entry recorded
// before the write is never served after it.
func (c *Cache[T]) Invalidate(path string) {
	delete(c.entries, path)
}

// Reset drops every entry. Hit/miss counters are independent session
// statistics and are left untouched.
func (c *Cache[T]) Reset() {
	c.entries = make(map[string]entry[T])
}

// Stats returns the counters accumulated so far.
func (c *Cache[T]) Stats() Stats {
	return c.stats
}
