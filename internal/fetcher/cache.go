package fetcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/metrics"
)

// Cache is the shared best-effort store behind Remember.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Namespaced prefixes every key so adapters sharing one backend never collide.
type Namespaced struct {
	cache  Cache
	prefix string
}

func Namespace(cache Cache, prefix string) *Namespaced {
	return &Namespaced{cache: cache, prefix: prefix}
}

func (n *Namespaced) Name() string {
	return n.prefix
}

func (n *Namespaced) key(key string) string {
	return n.prefix + "_" + key
}

func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.cache.Get(ctx, n.key(key))
}

func (n *Namespaced) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return n.cache.Set(ctx, n.key(key), value, ttl)
}

func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.cache.Delete(ctx, n.key(key))
}

// Remember returns the cached value under key or computes, stores and returns it.
// Whatever the producer returns is stored for the full ttl, empty results included,
// unless ctx ended while the producer ran: a cut-short computation is returned but never stored.
// Concurrent misses on one key may each run the producer.
func Remember[T any](ctx context.Context, cache Cache, key string, ttl time.Duration, producer func(context.Context) T) T {
	namespace := "default"
	if n, ok := cache.(interface{ Name() string }); ok {
		namespace = n.Name()
	}
	logger := slog.Default().With(slog.String("cache_namespace", namespace), slog.String("cache_key", key))

	raw, found, err := cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", slog.String("error", err.Error()))
	}
	if found {
		var value T
		if err := sonic.Unmarshal(raw, &value); err == nil {
			metrics.RecordCacheLookup(namespace, true)
			return value
		}
		logger.Warn("cached value can't be decoded, recomputing")
	}
	metrics.RecordCacheLookup(namespace, false)

	value := producer(ctx)
	if ctx.Err() != nil {
		logger.Warn("context ended while computing, value not cached", slog.String("error", ctx.Err().Error()))
		return value
	}
	raw, err = sonic.Marshal(value)
	if err != nil {
		logger.Warn("value can't be encoded for cache", slog.String("error", err.Error()))
		return value
	}
	if err := cache.Set(ctx, key, raw, ttl); err != nil {
		logger.Warn("cache write failed", slog.String("error", err.Error()))
	}
	return value
}

// Forget drops a single cached entry.
func Forget(ctx context.Context, cache Cache, key string) error {
	return cache.Delete(ctx, key)
}

// Optional marks a value that may legitimately be absent, so absence can be cached too.
type Optional[T any] struct {
	Value   T    `json:"value"`
	Present bool `json:"present"`
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}
