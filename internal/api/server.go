package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/metrics"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

type Server struct {
	mx               *chi.Mux
	httpServer       *http.Server
	userService      service.UserServiceI
	tokenService     service.TokenServiceI
	ledgerService    service.LedgerServiceI
	bookmarksService service.BookmarksServiceI
	quran            QuranProvider
	schedule         PrayerScheduleProvider
	prayers          DailyPrayersProvider
	qibla            QiblaProvider
	limiter          *ipLimiter
	debug            bool
	defaultTZ        string
	now              func() time.Time
}

type ServicesList struct {
	UserService      service.UserServiceI
	TokenService     service.TokenServiceI
	LedgerService    service.LedgerServiceI
	BookmarksService service.BookmarksServiceI
	Quran            QuranProvider
	Schedule         PrayerScheduleProvider
	Prayers          DailyPrayersProvider
	Qibla            QiblaProvider
	// Debug adds error details to 500 responses
	Debug bool
	// AuthRateLimit is requests per second per client on the public auth routes, 0 disables it
	AuthRateLimit float64
	AuthRateBurst int
	// DefaultTimezone is used for callers without a timezone in their profile
	DefaultTimezone string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		tokenService:     servicesOptions.TokenService,
		ledgerService:    servicesOptions.LedgerService,
		bookmarksService: servicesOptions.BookmarksService,
		quran:            servicesOptions.Quran,
		schedule:         servicesOptions.Schedule,
		prayers:          servicesOptions.Prayers,
		qibla:            servicesOptions.Qibla,
		limiter:          newIPLimiter(servicesOptions.AuthRateLimit, servicesOptions.AuthRateBurst),
		debug:            servicesOptions.Debug,
		defaultTZ:        servicesOptions.DefaultTimezone,
		now:              time.Now,
	}
	s.httpServer = &http.Server{
		Handler:           s.mx,
		ReadHeaderTimeout: time.Second * 10,
		WriteTimeout:      time.Minute * 2,
		IdleTimeout:       time.Second * 120,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(metrics.InstrumentHandler)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.LocaleMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", metrics.Handler())

	s.mx.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.RateLimitMiddleware)
			r.Post("/auth/register", s.Register)
			r.Post("/auth/login", s.Login)
			r.Post("/auth/google", s.GoogleSignIn)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Post("/auth/logout", s.Logout)
			r.Get("/auth/me", s.Me)

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", s.Profile)
				r.Put("/profile", s.UpdateProfile)
				r.Put("/password", s.ChangePassword)
				r.Get("/devices", s.Devices)
				r.Delete("/devices/{id}", s.RevokeDevice)
				r.Post("/logout-all", s.LogoutAll)
				r.Delete("/account", s.DeleteAccount)
			})

			r.Route("/ramadhan", func(r chi.Router) {
				r.Get("/today", s.Today)
				r.Post("/day", s.UpsertDay)
				r.Get("/day/{date}", s.GetDay)
				r.Get("/day/{id}/quran-logs", s.ReadingLogs)
				r.Post("/day/{id}/quran-logs", s.AddReadingLog)
				r.Delete("/day/{id}/quran-logs/{logId}", s.DeleteReadingLog)
				r.Get("/day/{id}/dzikir-logs", s.RecitationLogs)
				r.Post("/day/{id}/dzikir-logs", s.AddRecitationLog)
				r.Put("/day/{id}/dzikir-logs/{logId}", s.UpdateRecitationLog)
				r.Delete("/day/{id}/dzikir-logs/{logId}", s.DeleteRecitationLog)
				r.Get("/bookmarks", s.Bookmarks)
				r.Post("/bookmarks", s.AddBookmark)
				r.Delete("/bookmarks/{id}", s.DeleteBookmark)
				r.Get("/streak", s.Streak)
				r.Get("/summary/monthly", s.MonthlySummary)
				r.Get("/summary/yearly/{year}", s.YearlySummary)
				r.Get("/surah-list", s.SurahList)
			})

			r.Route("/islamic", func(r chi.Router) {
				r.Get("/surah", s.AllSurah)
				r.Get("/surah/{id}", s.Surah)
				r.Get("/surah/{id}/verses", s.SurahVerses)
				r.Get("/quran/search", s.SearchQuran)
				r.Get("/prayer-schedule", s.PrayerSchedule)
				r.Get("/prayer-schedule/today", s.TodaySchedule)
				r.Get("/cities", s.Cities)
				r.Get("/daily-prayers", s.DailyPrayers)
				r.Get("/daily-prayers/search", s.SearchDailyPrayers)
				r.Get("/daily-prayers/source/{source}", s.DailyPrayersBySource)
				r.Get("/morning-evening", s.MorningEvening)
				r.Get("/qibla", s.Qibla)
			})
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(address string) error {
	s.httpServer.Addr = address
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, "ok", map[string]any{
		"time": s.now().UTC(),
	})
}
