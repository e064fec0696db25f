package islamic

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
)

type Prayer struct {
	ID       int    `json:"id"`
	Judul    string `json:"judul"`
	Arabic   string `json:"arabic"`
	Latin    string `json:"latin"`
	Arti     string `json:"arti"`
	Source   string `json:"source"`
	Kategori string `json:"kategori"`
}

type Dzikir struct {
	ID     int    `json:"id"`
	Waktu  string `json:"waktu"`
	Judul  string `json:"judul"`
	Arabic string `json:"arabic"`
	Latin  string `json:"latin"`
	Arti   string `json:"arti"`
	Jumlah *int   `json:"jumlah"`
	Source string `json:"source"`
}

// fallbackPrayers is served whenever the upstream can't provide the daily list.
var fallbackPrayers = []Prayer{
	{
		ID:       1,
		Judul:    "Doa Sebelum Tidur",
		Arabic:   "بِسْمِكَ اللَّهُمَّ أَحْيَا وَأَمُوتُ",
		Latin:    "Bismika allahumma ahya wa amut",
		Arti:     "Dengan nama-Mu Ya Allah aku hidup dan aku mati",
		Source:   "harian",
		Kategori: "harian",
	},
	{
		ID:       2,
		Judul:    "Doa Bangun Tidur",
		Arabic:   "الْحَمْدُ لِلَّهِ الَّذِي أَحْيَانَا بَعْدَ مَا أَمَاتَنَا وَإِلَيْهِ النُّشُورُ",
		Latin:    "Alhamdulillahilladzi ahyaana ba'da ma amaatana wa ilaihin nusyur",
		Arti:     "Segala puji bagi Allah yang menghidupkan kami setelah mematikan kami",
		Source:   "harian",
		Kategori: "harian",
	},
	{
		ID:       3,
		Judul:    "Doa Masuk Kamar Mandi",
		Arabic:   "اللَّهُمَّ إِنِّي أَعُوذُ بِكَ مِنَ الْخُبُثِ وَالْخَبَائِثِ",
		Latin:    "Allahumma inni a'udzu bika minal khubutsi wal khabaits",
		Arti:     "Ya Allah, aku berlindung kepada-Mu dari gangguan setan laki-laki dan setan perempuan",
		Source:   "harian",
		Kategori: "harian",
	},
}

// FallbackPrayers returns a copy of the built-in daily prayer list.
func FallbackPrayers() []Prayer {
	return append([]Prayer(nil), fallbackPrayers...)
}

type DailyPrayersService struct {
	client    Fetcher
	cache     fetcher.Cache
	ttl       time.Duration
	searchTTL time.Duration
}

func NewDailyPrayersService(client Fetcher, cache fetcher.Cache, ttl, searchTTL time.Duration) *DailyPrayersService {
	return &DailyPrayersService{
		client:    client,
		cache:     cache,
		ttl:       ttlOr(ttl, 7*24*time.Hour),
		searchTTL: ttlOr(searchTTL, time.Hour),
	}
}

// DailyPrayers never comes back empty: a failed or malformed upstream answer yields the built-in list.
func (ds *DailyPrayersService) DailyPrayers(ctx context.Context) []Prayer {
	return fetcher.Remember(ctx, ds.cache, "daily_prayers", ds.ttl, func(ctx context.Context) []Prayer {
		data, ok := ds.fetchData(ctx, "v1/doa", nil)
		if !ok {
			slog.Default().Warn("daily prayers upstream unavailable, serving built-in list")
			return FallbackPrayers()
		}
		prayers := formatPrayers(data)
		if len(prayers) == 0 {
			return FallbackPrayers()
		}
		return prayers
	})
}

func (ds *DailyPrayersService) BySource(ctx context.Context, source string) []Prayer {
	return fetcher.Remember(ctx, ds.cache, "prayers_source_"+source, ds.ttl, func(ctx context.Context) []Prayer {
		data, ok := ds.fetchData(ctx, "v1/doa", url.Values{"source": {source}})
		if !ok {
			return []Prayer{}
		}
		return formatPrayers(data)
	})
}

func (ds *DailyPrayersService) Search(ctx context.Context, query string) []Prayer {
	return fetcher.Remember(ctx, ds.cache, "search_"+queryKey(query), ds.searchTTL, func(ctx context.Context) []Prayer {
		data, ok := ds.fetchData(ctx, "v1/doa/find", url.Values{"query": {query}})
		if !ok {
			return []Prayer{}
		}
		return formatPrayers(data)
	})
}

// MorningEvening returns the dzikir pagi-petang collection.
func (ds *DailyPrayersService) MorningEvening(ctx context.Context) []Dzikir {
	return fetcher.Remember(ctx, ds.cache, "morning_evening", ds.ttl, func(ctx context.Context) []Dzikir {
		data, ok := ds.fetchData(ctx, "v1/dzikir/pagi-petang", nil)
		if !ok {
			return []Dzikir{}
		}
		items := data.Array()
		result := make([]Dzikir, 0, len(items))
		for i, item := range items {
			waktu := firstString(item, "waktu", "kategori")
			if waktu == "" {
				waktu = "Pagi/Petang"
			}
			result = append(result, Dzikir{
				ID:     idOr(item, i),
				Waktu:  waktu,
				Judul:  stringOr(item, "judul", "Dzikir"),
				Arabic: firstString(item, "arab", "lafadz"),
				Latin:  item.Get("latin").String(),
				Arti:   firstString(item, "indo", "terjemah"),
				Jumlah: optionalInt(item.Get("jumlah")),
				Source: stringOr(item, "source", "Hadits Shahih"),
			})
		}
		return result
	})
}

// fetchData unwraps the provider envelope, which reports success as status 200 in the body.
func (ds *DailyPrayersService) fetchData(ctx context.Context, endpoint string, query url.Values) (gjson.Result, bool) {
	resp, ok := ds.client.Fetch(ctx, fetcher.MethodGet, endpoint, &fetcher.RequestOptions{Query: query})
	if !ok {
		return gjson.Result{}, false
	}
	if resp.Get("status").Int() != 200 {
		slog.Default().Warn("doa upstream answered with unexpected status",
			slog.String("endpoint", endpoint),
			slog.Int64("status", resp.Get("status").Int()),
		)
		return gjson.Result{}, false
	}
	return resp.Get("data"), true
}

func formatPrayers(data gjson.Result) []Prayer {
	items := data.Array()
	result := make([]Prayer, 0, len(items))
	for i, item := range items {
		result = append(result, Prayer{
			ID:       idOr(item, i),
			Judul:    stringOr(item, "judul", "Doa"),
			Arabic:   item.Get("arab").String(),
			Latin:    item.Get("latin").String(),
			Arti:     item.Get("indo").String(),
			Source:   stringOr(item, "source", "umum"),
			Kategori: stringOr(item, "source", "Doa Harian"),
		})
	}
	return result
}

func idOr(item gjson.Result, index int) int {
	if id := item.Get("id"); id.Exists() {
		return int(id.Int())
	}
	return index + 1
}

func stringOr(item gjson.Result, path, fallback string) string {
	if v := item.Get(path).String(); v != "" {
		return v
	}
	return fallback
}
