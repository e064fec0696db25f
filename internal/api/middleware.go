package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
	tokenIDContextKey    = "Token-ID"
	userContextKey       = "User"
	localeContextKey     = "Locale"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr), slog.String("path", r.URL.Path))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// LocaleMiddleware stores the response language negotiated from Accept-Language.
func (s *Server) LocaleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := matchLocale(r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Language", locale.String())
		ctx := context.WithValue(r.Context(), localeContextKey, locale)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: no bearer token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		// Checking signature and that the token wasn't revoked
		session, err := s.tokenService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("auth failed: invalid or revoked token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
				return
			default:
				logger.Error("auth failed: internal error while checking token", slog.String("error", err.Error()))
				s.writeInternalError(w, r, err)
				return
			}
		}
		// Assuring if user still exists
		user, err := s.userService.GetByID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("auth failed: user doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
		reqCtx := context.WithValue(r.Context(), uidContextKey, session.UserID)
		reqCtx = context.WithValue(reqCtx, tokenIDContextKey, session.TokenID)
		reqCtx = context.WithValue(reqCtx, userContextKey, user)
		r = r.WithContext(reqCtx)
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetLocaleFromCtx(ctx context.Context) language.Tag {
	locale, ok := ctx.Value(localeContextKey).(language.Tag)
	if ok {
		return locale
	}
	return supportedLocales[0]
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

func GetTokenIDFromContext(r *http.Request) (uuid.UUID, error) {
	id, ok := r.Context().Value(tokenIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("token id invalid or doesn't exists")
	}
	return id, nil
}

// GetUserFromContext returns the user loaded by AuthMiddleware, nil outside of it.
func GetUserFromContext(r *http.Request) *entity.User {
	user, _ := r.Context().Value(userContextKey).(*entity.User)
	return user
}

// userTimezone is empty when the request carries no user, the services then use their default.
func userTimezone(r *http.Request) string {
	if user := GetUserFromContext(r); user != nil {
		return user.Timezone
	}
	return ""
}

func deviceName(r *http.Request) string {
	if name := strings.TrimSpace(r.Header.Get("X-Device-Name")); name != "" {
		return name
	}
	return r.UserAgent()
}
