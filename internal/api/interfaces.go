package api

//go:generate mockgen -destination=mocks/provider_mocks.go -package=mocks . DailyPrayersProvider,PrayerScheduleProvider,QiblaProvider,QuranProvider

import (
	"context"
	"time"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/islamic"
)

// QuranProvider serves surah metadata, verses and search. Upstream failures
// degrade to empty results.
type QuranProvider interface {
	AllSurah(ctx context.Context) []islamic.Surah
	Surah(ctx context.Context, id int) (islamic.Surah, bool)
	SurahVerses(ctx context.Context, id, page, perPage int) []islamic.Verse
	Search(ctx context.Context, query string) islamic.SearchResult
}

type PrayerScheduleProvider interface {
	Cities(ctx context.Context) []islamic.City
	Schedule(ctx context.Context, cityID string, year, month int) (islamic.Schedule, bool)
	Today(ctx context.Context, cityID string, now time.Time) (islamic.TodaySchedule, bool)
}

type DailyPrayersProvider interface {
	DailyPrayers(ctx context.Context) []islamic.Prayer
	BySource(ctx context.Context, source string) []islamic.Prayer
	Search(ctx context.Context, query string) []islamic.Prayer
	MorningEvening(ctx context.Context) []islamic.Dzikir
}

type QiblaProvider interface {
	Direction(ctx context.Context, lat, lng float64) (islamic.Qibla, bool)
}
