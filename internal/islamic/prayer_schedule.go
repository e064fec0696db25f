package islamic

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

type City struct {
	ID     string `json:"id"`
	Lokasi string `json:"lokasi"`
}

type ScheduleDay struct {
	Tanggal string `json:"tanggal"`
	Imsak   string `json:"imsak"`
	Subuh   string `json:"subuh"`
	Terbit  string `json:"terbit"`
	Dhuha   string `json:"dhuha"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
	Date    string `json:"date"`
}

type Schedule struct {
	City     string        `json:"city"`
	Schedule []ScheduleDay `json:"schedule"`
	Month    int           `json:"month"`
	Year     int           `json:"year"`
}

// TodaySchedule is one day of a schedule where date carries the display label.
type TodaySchedule struct {
	Date    string `json:"date"`
	Imsak   string `json:"imsak"`
	Subuh   string `json:"subuh"`
	Terbit  string `json:"terbit"`
	Dhuha   string `json:"dhuha"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
}

type PrayerScheduleService struct {
	client    Fetcher
	cache     fetcher.Cache
	ttl       time.Duration
	citiesTTL time.Duration
}

func NewPrayerScheduleService(client Fetcher, cache fetcher.Cache, ttl, citiesTTL time.Duration) *PrayerScheduleService {
	return &PrayerScheduleService{
		client:    client,
		cache:     cache,
		ttl:       ttlOr(ttl, 24*time.Hour),
		citiesTTL: ttlOr(citiesTTL, 30*24*time.Hour),
	}
}

func (ps *PrayerScheduleService) Cities(ctx context.Context) []City {
	return fetcher.Remember(ctx, ps.cache, "cities", ps.citiesTTL, func(ctx context.Context) []City {
		resp, ok := ps.client.Fetch(ctx, fetcher.MethodGet, "sholat/kota/semua", nil)
		if !ok {
			return []City{}
		}
		items := resp.Get("data").Array()
		cities := make([]City, 0, len(items))
		for _, c := range items {
			cities = append(cities, City{
				ID:     c.Get("id").String(),
				Lokasi: c.Get("lokasi").String(),
			})
		}
		return cities
	})
}

func (ps *PrayerScheduleService) Schedule(ctx context.Context, cityID string, year, month int) (Schedule, bool) {
	key := fmt.Sprintf("schedule_%s_%d_%d", cityID, year, month)
	return fetcher.Remember(ctx, ps.cache, key, ps.ttl, func(ctx context.Context) fetcher.Optional[Schedule] {
		endpoint := fmt.Sprintf("sholat/jadwal/%s/%d/%d", cityID, year, month)
		resp, ok := ps.client.Fetch(ctx, fetcher.MethodGet, endpoint, nil)
		if !ok {
			return fetcher.None[Schedule]()
		}
		data := resp.Get("data")
		if !data.Exists() {
			return fetcher.None[Schedule]()
		}
		schedule := Schedule{
			City:     data.Get("lokasi").String(),
			Schedule: []ScheduleDay{},
			Month:    intOr(data.Get("bulan"), month),
			Year:     intOr(data.Get("tahun"), year),
		}
		days := data.Get("jadwal")
		if days.IsObject() {
			// a single-day lookup answers with an object instead of a list
			schedule.Schedule = append(schedule.Schedule, parseScheduleDay(days))
		} else {
			for _, d := range days.Array() {
				schedule.Schedule = append(schedule.Schedule, parseScheduleDay(d))
			}
		}
		return fetcher.Some(schedule)
	}).Get()
}

// Today picks now's entry out of the monthly schedule for the city.
func (ps *PrayerScheduleService) Today(ctx context.Context, cityID string, now time.Time) (TodaySchedule, bool) {
	schedule, ok := ps.Schedule(ctx, cityID, now.Year(), int(now.Month()))
	if !ok {
		return TodaySchedule{}, false
	}
	today := now.Format(entity.DateLayout)
	for _, day := range schedule.Schedule {
		if day.Date != today {
			continue
		}
		return TodaySchedule{
			Date:    day.Tanggal,
			Imsak:   day.Imsak,
			Subuh:   day.Subuh,
			Terbit:  day.Terbit,
			Dhuha:   day.Dhuha,
			Dzuhur:  day.Dzuhur,
			Ashar:   day.Ashar,
			Maghrib: day.Maghrib,
			Isya:    day.Isya,
		}, true
	}
	return TodaySchedule{}, false
}

func parseScheduleDay(d gjson.Result) ScheduleDay {
	return ScheduleDay{
		Tanggal: d.Get("tanggal").String(),
		Imsak:   d.Get("imsak").String(),
		Subuh:   d.Get("subuh").String(),
		Terbit:  d.Get("terbit").String(),
		Dhuha:   d.Get("dhuha").String(),
		Dzuhur:  d.Get("dzuhur").String(),
		Ashar:   d.Get("ashar").String(),
		Maghrib: d.Get("maghrib").String(),
		Isya:    d.Get("isya").String(),
		Date:    d.Get("date").String(),
	}
}

func intOr(r gjson.Result, fallback int) int {
	if v := r.Int(); v != 0 {
		return int(v)
	}
	return fallback
}
