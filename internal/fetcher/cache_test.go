package fetcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
)

type chapter struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestRemember(t *testing.T) {
	ctx := context.Background()
	backend, err := fetcher.NewMemoryCache(16)
	require.NoError(t, err)
	cache := fetcher.Namespace(backend, "quran")

	t.Run("computes once then serves cached", func(t *testing.T) {
		calls := 0
		producer := func(context.Context) []chapter {
			calls++
			return []chapter{{ID: 1, Name: "Al-Fatihah"}}
		}
		first := fetcher.Remember(ctx, cache, "chapters", time.Hour, producer)
		second := fetcher.Remember(ctx, cache, "chapters", time.Hour, producer)
		assert.Equal(t, 1, calls)
		assert.Equal(t, first, second)
		assert.Equal(t, "Al-Fatihah", second[0].Name)
	})

	t.Run("absent result is cached too", func(t *testing.T) {
		calls := 0
		producer := func(context.Context) fetcher.Optional[chapter] {
			calls++
			return fetcher.None[chapter]()
		}
		for range 3 {
			v := fetcher.Remember(ctx, cache, "chapter_999", time.Hour, producer)
			_, ok := v.Get()
			assert.False(t, ok)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("keys are namespaced", func(t *testing.T) {
		_, found, err := backend.Get(ctx, "quran_chapters")
		require.NoError(t, err)
		assert.True(t, found)
		other := fetcher.Namespace(backend, "sholat")
		calls := 0
		fetcher.Remember(ctx, other, "chapters", time.Hour, func(context.Context) int {
			calls++
			return 7
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("forget forces recompute", func(t *testing.T) {
		require.NoError(t, fetcher.Forget(ctx, cache, "chapters"))
		calls := 0
		fetcher.Remember(ctx, cache, "chapters", time.Hour, func(context.Context) []chapter {
			calls++
			return nil
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("result of a cut-short producer is not stored", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		v := fetcher.Remember(cctx, cache, "chapter_2", time.Hour, func(context.Context) fetcher.Optional[chapter] {
			cancel()
			return fetcher.None[chapter]()
		})
		_, ok := v.Get()
		assert.False(t, ok)
		_, found, err := backend.Get(ctx, "quran_chapter_2")
		require.NoError(t, err)
		assert.False(t, found)

		v = fetcher.Remember(ctx, cache, "chapter_2", time.Hour, func(context.Context) fetcher.Optional[chapter] {
			return fetcher.Some(chapter{ID: 2, Name: "Al-Baqarah"})
		})
		got, ok := v.Get()
		require.True(t, ok)
		assert.Equal(t, "Al-Baqarah", got.Name)
	})
}

func TestOptional(t *testing.T) {
	v, ok := fetcher.Some("qibla").Get()
	assert.True(t, ok)
	assert.Equal(t, "qibla", v)

	v, ok = fetcher.None[string]().Get()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cache := fetcher.NewRedisCache(client)
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		_, found, err := cache.Get(ctx, "nothing")
		assert.NoError(t, err)
		assert.False(t, found)
	})
	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "kiblat_-6.2_106.8", []byte(`{"value":295.1,"present":true}`), time.Hour))
		raw, found, err := cache.Get(ctx, "kiblat_-6.2_106.8")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"value":295.1,"present":true}`, string(raw))
	})
	t.Run("expires after ttl", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "short", []byte(`1`), time.Minute))
		mr.FastForward(2 * time.Minute)
		_, found, err := cache.Get(ctx, "short")
		assert.NoError(t, err)
		assert.False(t, found)
	})
	t.Run("delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "gone", []byte(`1`), 0))
		require.NoError(t, cache.Delete(ctx, "gone"))
		_, found, err := cache.Get(ctx, "gone")
		assert.NoError(t, err)
		assert.False(t, found)
	})
	t.Run("backend down", func(t *testing.T) {
		mr.Close()
		_, found, err := cache.Get(ctx, "any")
		assert.Error(t, err)
		assert.False(t, found)
		calls := 0
		v := fetcher.Remember(ctx, cache, "any", time.Hour, func(context.Context) int {
			calls++
			return 3
		})
		assert.Equal(t, 3, v)
		assert.Equal(t, 1, calls)
	})
}
