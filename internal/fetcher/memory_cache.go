package fetcher

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process LRU with a ttl per entry.
type MemoryCache struct {
	entries *lru.Cache[string, memoryEntry]
	now     func() time.Time
}

func NewMemoryCache(size int) (*MemoryCache, error) {
	if size < 1 {
		size = 1
	}
	entries, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, errors.New("creating lru cache error: " + err.Error())
	}
	return &MemoryCache{
		entries: entries,
		now:     time.Now,
	}, nil
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := mc.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !mc.now().Before(entry.expiresAt) {
		mc.entries.Remove(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores a copy of value. A non-positive ttl never expires.
func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = mc.now().Add(ttl)
	}
	mc.entries.Add(key, entry)
	return nil
}

func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.entries.Remove(key)
	return nil
}
