package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/islamic"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

type VersesResponse struct {
	SurahID int             `json:"surah_id"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	Verses  []islamic.Verse `json:"verses"`
}

type QiblaResponse struct {
	City string `json:"city"`
	islamic.Qibla
}

// upstreamContext carries no deadline: the fetcher's per-attempt timeout and attempt
// count are the only bounds on upstream calls.
func upstreamContext() context.Context {
	return context.Background()
}

// nowIn is the current time in the caller's timezone.
func (s *Server) nowIn(r *http.Request) time.Time {
	tz := userTimezone(r)
	if tz == "" {
		tz = s.defaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return s.now().In(loc)
}

// requestCity falls back to the caller's profile city.
func requestCity(r *http.Request) string {
	if city := strings.TrimSpace(r.URL.Query().Get("city")); city != "" {
		return city
	}
	if user := GetUserFromContext(r); user != nil {
		return user.City
	}
	return ""
}

func (s *Server) AllSurah(w http.ResponseWriter, r *http.Request) {
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgSurahListFetched), s.quran.AllSurah(ctx))
}

func (s *Server) Surah(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 || id > islamic.SurahCount {
		logger.Error("get surah error: invalid id", slog.String("id", r.PathValue("id")))
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgSurahNotFound), nil)
		return
	}
	ctx := upstreamContext()
	surah, ok := s.quran.Surah(ctx, id)
	if !ok {
		logger.Error("get surah error: not found", slog.Int("id", id))
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgSurahNotFound), nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgSurahFetched), surah)
}

func (s *Server) SurahVerses(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 || id > islamic.SurahCount {
		logger.Error("get verses error: invalid surah id", slog.String("id", r.PathValue("id")))
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgSurahNotFound), nil)
		return
	}
	page, ok := queryInt(r, "page", 1)
	if !ok || page < 1 {
		writeFieldError(w, r, "page", "must be a positive number")
		return
	}
	perPage, ok := queryInt(r, "per_page", 10)
	if !ok || perPage < 1 || perPage > 50 {
		writeFieldError(w, r, "per_page", "must be between 1 and 50")
		return
	}
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgVersesFetched), VersesResponse{
		SurahID: id,
		Page:    page,
		PerPage: perPage,
		Verses:  s.quran.SurahVerses(ctx, id, page, perPage),
	})
}

func (s *Server) SearchQuran(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeFieldError(w, r, "q", "is required")
		return
	}
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgSearchFetched), s.quran.Search(ctx, query))
}

func (s *Server) PrayerSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	city := requestCity(r)
	cityID, ok := islamic.CityID(city)
	if !ok {
		logger.Error("prayer schedule error: unknown city", slog.String("city", city))
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgCityNotFound), nil)
		return
	}
	now := s.nowIn(r)
	month, ok := queryInt(r, "month", int(now.Month()))
	if !ok || month < 1 || month > 12 {
		writeFieldError(w, r, "month", "must be between 1 and 12")
		return
	}
	year, ok := queryInt(r, "year", now.Year())
	if !ok || year < 1 || year > 9999 {
		writeFieldError(w, r, "year", "must be a valid year")
		return
	}
	ctx := upstreamContext()
	schedule, ok := s.schedule.Schedule(ctx, cityID, year, month)
	if !ok {
		logger.Error("prayer schedule error: upstream unavailable", slog.String("city", city))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, message(r, msgScheduleFailed), nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgScheduleFetched), schedule)
}

func (s *Server) TodaySchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	city := requestCity(r)
	cityID, ok := islamic.CityID(city)
	if !ok {
		logger.Error("today schedule error: unknown city", slog.String("city", city))
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgCityNotFound), nil)
		return
	}
	ctx := upstreamContext()
	today, ok := s.schedule.Today(ctx, cityID, s.nowIn(r))
	if !ok {
		logger.Error("today schedule error: upstream unavailable", slog.String("city", city))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, message(r, msgTodayScheduleFailed), nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgTodayScheduleFetched), today)
}

func (s *Server) Cities(w http.ResponseWriter, r *http.Request) {
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgCitiesFetched), s.schedule.Cities(ctx))
}

func (s *Server) DailyPrayers(w http.ResponseWriter, r *http.Request) {
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgDailyPrayersFetched), s.prayers.DailyPrayers(ctx))
}

func (s *Server) SearchDailyPrayers(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeFieldError(w, r, "q", "is required")
		return
	}
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgDailyPrayersFetched), s.prayers.Search(ctx, query))
}

func (s *Server) DailyPrayersBySource(w http.ResponseWriter, r *http.Request) {
	ctx := upstreamContext()
	prayers := s.prayers.BySource(ctx, r.PathValue("source"))
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgDailyPrayersFetched), prayers)
}

func (s *Server) MorningEvening(w http.ResponseWriter, r *http.Request) {
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgMorningEveningFetched), s.prayers.MorningEvening(ctx))
}

func (s *Server) Qibla(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	city := requestCity(r)
	coords, ok := islamic.CityCoordinates(city)
	if !ok {
		logger.Error("qibla error: unknown city coordinates", slog.String("city", city))
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgCoordinatesNotFound), nil)
		return
	}
	ctx := upstreamContext()
	qibla, ok := s.qibla.Direction(ctx, coords.Lat, coords.Lng)
	if !ok {
		logger.Error("qibla error: upstream unavailable", slog.String("city", city))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, message(r, msgQiblaFailed), nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgQiblaFetched), QiblaResponse{City: city, Qibla: qibla})
}
