package depverify

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
)

// outcome is a probe result as recorded in the cache.
type outcome string

const (
	outcomeExists   outcome = "exists"
	outcomeNotFound outcome = "not_found"
	outcomeUnknown  outcome = "unknown"
)

// cacheEntry is one persisted probe result, keyed by (registry,
// canonical name) and valid for ttl from Timestamp.
type cacheEntry struct {
	Outcome   outcome   `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// diskCache is a content-addressed, file-per-entry registry probe
// cache. Each entry lives at dir/<blake3(registry:name)>.json and is
// written via temp-file-plus-rename so concurrent invocations never
// observe a partial write.
type diskCache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// newDiskCache builds a diskCache rooted at dir. Passing enabled=false
// yields a cache that always misses and never writes, so callers can
// unconditionally route through it without a separate disabled path.
func newDiskCache(dir string, ttlHours int, enabled bool) (*diskCache, error) {
	if !enabled {
		return &diskCache{enabled: false}, nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &diskCache{dir: dir, ttl: time.Duration(ttlHours) * time.Hour, enabled: true}, nil
}

// get returns the cached outcome for (reg, name) if present and not
// expired.
func (c *diskCache) get(reg registry, name string) (outcome, bool) {
	if !c.enabled {
		return "", false
	}
	data, err := os.ReadFile(c.entryPath(reg, name))
	if err != nil {
		return "", false
	}
	var e cacheEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", false
	}
	if time.Since(e.Timestamp) > c.ttl {
		return "", false
	}
	return e.Outcome, true
}

// put writes an entry atomically: it stages the bytes in a temp file
// beside the destination, then renames into place.
func (c *diskCache) put(reg registry, name string, o outcome) error {
	if !c.enabled {
		return nil
	}
	entry := cacheEntry{Outcome: o, Timestamp: time.Now()}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	dest := c.entryPath(reg, name)
	tmp, err := os.CreateTemp(c.dir, "probe-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, dest)
}

func (c *diskCache) entryPath(reg registry, name string) string {
	sum := blake3.Sum256([]byte(string(reg) + "\x00" + name))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}
