package islamic

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
)

const (
	SurahCount     = 114
	verseTextTTL   = 30 * 24 * time.Hour
	defaultPerPage = 10
)

type Surah struct {
	ID              int    `json:"id"`
	RevelationPlace string `json:"revelation_place"`
	RevelationOrder int    `json:"revelation_order"`
	BismillahPre    bool   `json:"bismillah_pre"`
	NameSimple      string `json:"name_simple"`
	NameComplex     string `json:"name_complex"`
	NameArabic      string `json:"name_arabic"`
	VersesCount     int    `json:"verses_count"`
	Pages           []int  `json:"pages"`
	TranslatedName  string `json:"translated_name"`
}

type Verse struct {
	ID          int    `json:"id"`
	VerseKey    string `json:"verse_key"`
	TextUthmani string `json:"text_uthmani"`
	PageNumber  *int   `json:"page_number,omitempty"`
	JuzNumber   *int   `json:"juz_number,omitempty"`
}

type SearchHit struct {
	VerseKey     string   `json:"verse_key"`
	VerseID      int      `json:"verse_id"`
	Text         string   `json:"text"`
	Translations []string `json:"translations"`
}

type SearchResult struct {
	Query        string      `json:"query"`
	TotalResults int         `json:"total_results"`
	CurrentPage  int         `json:"current_page"`
	TotalPages   int         `json:"total_pages"`
	Results      []SearchHit `json:"results"`
}

// SurahOption is the compact shape used by pickers.
type SurahOption struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	NameArabic      string `json:"name_arabic"`
	VersesCount     int    `json:"verses_count"`
	RevelationPlace string `json:"revelation_place"`
}

type SurahInfo struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	NameArabic     string `json:"name_arabic"`
	VersesCount    int    `json:"verses_count"`
	TranslatedName string `json:"translated_name"`
}

type VerseText struct {
	TextArabic  string `json:"text_arabic"`
	SurahID     int    `json:"surah_id"`
	VerseNumber int    `json:"verse_number"`
	Juz         *int   `json:"juz"`
	Page        *int   `json:"page"`
}

type QuranService struct {
	client    Fetcher
	cache     fetcher.Cache
	ttl       time.Duration
	searchTTL time.Duration
}

func NewQuranService(client Fetcher, cache fetcher.Cache, ttl, searchTTL time.Duration) *QuranService {
	return &QuranService{
		client:    client,
		cache:     cache,
		ttl:       ttlOr(ttl, 30*24*time.Hour),
		searchTTL: ttlOr(searchTTL, time.Hour),
	}
}

func (qs *QuranService) AllSurah(ctx context.Context) []Surah {
	return fetcher.Remember(ctx, qs.cache, "all_surah", qs.ttl, func(ctx context.Context) []Surah {
		resp, ok := qs.client.Fetch(ctx, fetcher.MethodGet, "chapters", nil)
		if !ok {
			return []Surah{}
		}
		chapters := resp.Get("chapters").Array()
		result := make([]Surah, 0, len(chapters))
		for _, c := range chapters {
			result = append(result, parseSurah(c))
		}
		return result
	})
}

func (qs *QuranService) Surah(ctx context.Context, id int) (Surah, bool) {
	key := "surah_" + strconv.Itoa(id)
	return fetcher.Remember(ctx, qs.cache, key, qs.ttl, func(ctx context.Context) fetcher.Optional[Surah] {
		resp, ok := qs.client.Fetch(ctx, fetcher.MethodGet, "chapters/"+strconv.Itoa(id), nil)
		if !ok {
			return fetcher.None[Surah]()
		}
		chapter := resp.Get("chapter")
		if !chapter.IsObject() {
			return fetcher.None[Surah]()
		}
		return fetcher.Some(parseSurah(chapter))
	}).Get()
}

func (qs *QuranService) SurahVerses(ctx context.Context, id, page, perPage int) []Verse {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	key := fmt.Sprintf("surah_%d_verses_%d_%d", id, page, perPage)
	return fetcher.Remember(ctx, qs.cache, key, qs.ttl, func(ctx context.Context) []Verse {
		resp, ok := qs.client.Fetch(ctx, fetcher.MethodGet, "quran/verses/uthmani", &fetcher.RequestOptions{
			Query: url.Values{
				"chapter_number": {strconv.Itoa(id)},
				"page":           {strconv.Itoa(page)},
				"limit":          {strconv.Itoa(perPage)},
			},
		})
		if !ok {
			return []Verse{}
		}
		verses := resp.Get("verses").Array()
		result := make([]Verse, 0, len(verses))
		for _, v := range verses {
			result = append(result, Verse{
				ID:          int(v.Get("id").Int()),
				VerseKey:    v.Get("verse_key").String(),
				TextUthmani: firstString(v, "text_uthmani", "text"),
				PageNumber:  optionalInt(v.Get("page_number")),
				JuzNumber:   optionalInt(v.Get("juz_number")),
			})
		}
		return result
	})
}

func (qs *QuranService) Search(ctx context.Context, query string) SearchResult {
	return fetcher.Remember(ctx, qs.cache, "search_"+queryKey(query), qs.searchTTL, func(ctx context.Context) SearchResult {
		empty := SearchResult{Query: query, Results: []SearchHit{}}
		resp, ok := qs.client.Fetch(ctx, fetcher.MethodGet, "search", &fetcher.RequestOptions{
			Query: url.Values{"q": {query}},
		})
		if !ok {
			return empty
		}
		search := resp.Get("search")
		if !search.Exists() {
			return empty
		}
		result := SearchResult{
			Query:        firstString(search, "query"),
			TotalResults: int(search.Get("total_results").Int()),
			CurrentPage:  int(search.Get("current_page").Int()),
			TotalPages:   int(search.Get("total_pages").Int()),
			Results:      []SearchHit{},
		}
		if result.Query == "" {
			result.Query = query
		}
		for _, hit := range search.Get("results").Array() {
			translations := []string{}
			for _, tr := range hit.Get("translations").Array() {
				translations = append(translations, tr.Get("text").String())
			}
			result.Results = append(result.Results, SearchHit{
				VerseKey:     hit.Get("verse_key").String(),
				VerseID:      int(hit.Get("verse_id").Int()),
				Text:         hit.Get("text").String(),
				Translations: translations,
			})
		}
		return result
	})
}

func (qs *QuranService) VerseText(ctx context.Context, surah, verse int) (VerseText, bool) {
	key := fmt.Sprintf("verse_text_%d_%d", surah, verse)
	return fetcher.Remember(ctx, qs.cache, key, verseTextTTL, func(ctx context.Context) fetcher.Optional[VerseText] {
		resp, ok := qs.client.Fetch(ctx, fetcher.MethodGet, "quran/verses/uthmani", &fetcher.RequestOptions{
			Query: url.Values{
				"chapter_number": {strconv.Itoa(surah)},
				"verse_number":   {strconv.Itoa(verse)},
				"limit":          {"1"},
			},
		})
		if !ok {
			return fetcher.None[VerseText]()
		}
		v := resp.Get("verses.0")
		if !v.Exists() {
			return fetcher.None[VerseText]()
		}
		return fetcher.Some(VerseText{
			TextArabic:  firstString(v, "text_uthmani", "text"),
			SurahID:     surah,
			VerseNumber: verse,
			Juz:         optionalInt(v.Get("juz_number")),
			Page:        optionalInt(v.Get("page_number")),
		})
	}).Get()
}

// SurahSelector lists every surah for pickers. Without upstream data it still
// offers numbered placeholders so the client can log reading offline.
func (qs *QuranService) SurahSelector(ctx context.Context) []SurahOption {
	all := qs.AllSurah(ctx)
	if len(all) == 0 {
		options := make([]SurahOption, 0, SurahCount)
		for i := 1; i <= SurahCount; i++ {
			options = append(options, SurahOption{
				ID:              i,
				Name:            "Surah " + strconv.Itoa(i),
				RevelationPlace: "makkah",
			})
		}
		return options
	}
	options := make([]SurahOption, 0, len(all))
	for _, s := range all {
		place := s.RevelationPlace
		if place == "" {
			place = "makkah"
		}
		options = append(options, SurahOption{
			ID:              s.ID,
			Name:            s.displayName(),
			NameArabic:      s.NameArabic,
			VersesCount:     s.VersesCount,
			RevelationPlace: place,
		})
	}
	return options
}

func (qs *QuranService) SurahBasicInfo(ctx context.Context, id int) (SurahInfo, bool) {
	s, ok := qs.Surah(ctx, id)
	if !ok {
		return SurahInfo{}, false
	}
	return SurahInfo{
		ID:             s.ID,
		Name:           s.displayName(),
		NameArabic:     s.NameArabic,
		VersesCount:    s.VersesCount,
		TranslatedName: s.TranslatedName,
	}, true
}

func (s Surah) displayName() string {
	switch {
	case s.NameSimple != "":
		return s.NameSimple
	case s.NameArabic != "":
		return s.NameArabic
	default:
		return "Surah " + strconv.Itoa(s.ID)
	}
}

func parseSurah(c gjson.Result) Surah {
	pages := []int{}
	for _, p := range c.Get("pages").Array() {
		pages = append(pages, int(p.Int()))
	}
	return Surah{
		ID:              int(c.Get("id").Int()),
		RevelationPlace: c.Get("revelation_place").String(),
		RevelationOrder: int(c.Get("revelation_order").Int()),
		BismillahPre:    c.Get("bismillah_pre").Bool(),
		NameSimple:      c.Get("name_simple").String(),
		NameComplex:     c.Get("name_complex").String(),
		NameArabic:      c.Get("name_arabic").String(),
		VersesCount:     int(c.Get("verses_count").Int()),
		Pages:           pages,
		TranslatedName:  c.Get("translated_name.name").String(),
	}
}
