// Package islamic adapts the external Quran, prayer schedule, daily prayer and
// qibla APIs into stable response shapes backed by the shared cache.
package islamic

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/config"
)

// Fetcher is the subset of *fetcher.Client the adapters call.
type Fetcher interface {
	Fetch(ctx context.Context, method fetcher.Method, endpoint string, opts *fetcher.RequestOptions) (gjson.Result, bool)
}

// Adapters groups every content adapter sharing one cache backend.
type Adapters struct {
	Quran    *QuranService
	Schedule *PrayerScheduleService
	Prayers  *DailyPrayersService
	Qibla    *QiblaService
}

// NewAdapters builds one retrying client per upstream and a namespaced view of cache for each adapter.
func NewAdapters(upstream config.UpstreamConfig, cacheCfg config.CacheConfig, cache fetcher.Cache, logger *slog.Logger) *Adapters {
	opts := fetcher.Options{
		Timeout:  upstream.Timeout,
		Attempts: upstream.RetryAttempts,
		Backoff:  upstream.RetryBackoff,
		Logger:   logger,
	}
	return &Adapters{
		Quran: NewQuranService(
			fetcher.New("quran", upstream.QuranBaseURL, opts),
			fetcher.Namespace(cache, "quran"),
			cacheCfg.QuranTTL, cacheCfg.SearchTTL,
		),
		Schedule: NewPrayerScheduleService(
			fetcher.New("sholat", upstream.SholatBaseURL, opts),
			fetcher.Namespace(cache, "sholat"),
			cacheCfg.SholatTTL, cacheCfg.QuranTTL,
		),
		Prayers: NewDailyPrayersService(
			fetcher.New("doa", upstream.DoaBaseURL, opts),
			fetcher.Namespace(cache, "doa"),
			cacheCfg.DoaTTL, cacheCfg.SearchTTL,
		),
		Qibla: NewQiblaService(
			fetcher.New("kiblat", upstream.KiblatBaseURL, opts),
			fetcher.Namespace(cache, "kiblat"),
			cacheCfg.KiblatTTL,
		),
	}
}

func queryKey(query string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(query)))
	return hex.EncodeToString(sum[:])
}

func firstString(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func optionalInt(r gjson.Result) *int {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	v := int(r.Int())
	return &v
}

func ttlOr(ttl, fallback time.Duration) time.Duration {
	if ttl <= 0 {
		return fallback
	}
	return ttl
}
