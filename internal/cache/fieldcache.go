// Package cache memoizes extraction results so reprocessing the same
// document (or retrying after an upload) skips pattern matching and,
// more importantly, repeat LLM calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/claimpilot/fnolagent/internal/model"
)

// FieldCache stores extracted field sets keyed by document text and
// extraction strategy. The memory layer answers repeat lookups within a
// run; the optional disk layer survives restarts.
type FieldCache struct {
	memory  *gocache.Cache
	diskDir string // empty disables the disk layer
	ttl     time.Duration
}

// New creates a field cache. dir may be empty for memory-only caching.
func New(dir string, ttl time.Duration) *FieldCache {
	if ttl == 0 {
		ttl = 1 * time.Hour
	}
	return &FieldCache{
		memory:  gocache.New(ttl, 10*time.Minute),
		diskDir: dir,
		ttl:     ttl,
	}
}

// Key derives the cache key for a document text under a strategy.
func Key(strategy, rawText string) string {
	hash := sha256.Sum256([]byte(rawText))
	return "fnolagent:v1:" + strategy + ":" + hex.EncodeToString(hash[:])
}

// Get returns the cached field set for the key, checking memory first.
func (c *FieldCache) Get(key string) (*model.FieldSet, bool) {
	if v, found := c.memory.Get(key); found {
		fs := v.(model.FieldSet)
		return &fs, true
	}
	if c.diskDir == "" {
		return nil, false
	}

	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(c.path(key))
		return nil, false
	}

	// Promote to the memory layer
	c.memory.Set(key, entry.Fields, gocache.DefaultExpiration)
	fs := entry.Fields
	return &fs, true
}

// Set stores a field set in both layers
func (c *FieldCache) Set(key string, fs *model.FieldSet) error {
	c.memory.Set(key, *fs, gocache.DefaultExpiration)
	if c.diskDir == "" {
		return nil
	}

	entry := diskEntry{
		Fields:    *fs,
		ExpiresAt: time.Now().Add(c.ttl),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := os.MkdirAll(c.diskDir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Clear drops both layers
func (c *FieldCache) Clear() error {
	c.memory.Flush()
	if c.diskDir == "" {
		return nil
	}
	return os.RemoveAll(c.diskDir)
}

type diskEntry struct {
	Fields    model.FieldSet `json:"fields"`
	ExpiresAt time.Time      `json:"expires_at"`
}

func (c *FieldCache) path(key string) string {
	return filepath.Join(c.diskDir, key+".cache")
}
