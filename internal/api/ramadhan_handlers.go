package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

func (s *Server) Today(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.ledgerService.Today(ctx, uid, userTimezone(r))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDayNotFound):
			httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgTodayEmpty), nil)
			return
		default:
			logger.Error("get today error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgTodayFetched), day)
}

func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.ledgerService.GetByDate(ctx, uid, r.PathValue("date"))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("get day error: invalid date", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Info("get day: nothing recorded", slog.String("date", r.PathValue("date")))
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		default:
			logger.Error("get day error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgDayFetched), day)
}

func (s *Server) UpsertDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	var req service.UpsertDayRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert day error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.ledgerService.UpsertDay(ctx, uid, userTimezone(r), &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("upsert day error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("upsert day error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgUnauthenticated), nil)
			return
		default:
			logger.Error("upsert day error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, message(r, msgDaySaved), day)
	logger.Info("day saved", slog.String("date", req.Date))
}

func (s *Server) ReadingLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list quran logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	dayID, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logs, err := s.ledgerService.ReadingLogs(ctx, uid, dayID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("list quran logs error: day not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		default:
			logger.Error("list quran logs error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgReadingLogsFetched), logs)
}

func (s *Server) AddReadingLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add quran log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	dayID, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
		return
	}
	var req service.ReadingLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add quran log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.ledgerService.AddReadingLog(ctx, uid, dayID, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("add quran log error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("add quran log error: day not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		default:
			logger.Error("add quran log error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, message(r, msgReadingLogAdded), entry)
	logger.Info("quran log added", slog.Int64("day_id", dayID))
}

func (s *Server) DeleteReadingLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete quran log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	dayID, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
		return
	}
	logID, ok := pathInt64(r, "logId")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgLogNotFound), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.ledgerService.DeleteReadingLog(ctx, uid, dayID, logID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("delete quran log error: day not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		case errors.Is(err, errorvalues.ErrLogNotFound):
			logger.Error("delete quran log error: log not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgLogNotFound), nil)
			return
		default:
			logger.Error("delete quran log error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgReadingLogDeleted), nil)
	logger.Info("quran log deleted", slog.Int64("log_id", logID))
}

func (s *Server) RecitationLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list dzikir logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	dayID, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logs, err := s.ledgerService.RecitationLogs(ctx, uid, dayID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("list dzikir logs error: day not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		default:
			logger.Error("list dzikir logs error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgRecitationLogsFetched), logs)
}

func (s *Server) AddRecitationLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add dzikir log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	dayID, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
		return
	}
	var req service.RecitationLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add dzikir log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.ledgerService.AddRecitationLog(ctx, uid, dayID, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("add dzikir log error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("add dzikir log error: day not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		default:
			logger.Error("add dzikir log error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, message(r, msgRecitationLogAdded), entry)
	logger.Info("dzikir log added", slog.Int64("day_id", dayID))
}

func (s *Server) UpdateRecitationLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update dzikir log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	dayID, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
		return
	}
	logID, ok := pathInt64(r, "logId")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgLogNotFound), nil)
		return
	}
	var req service.UpdateRecitationLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update dzikir log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.ledgerService.UpdateRecitationLog(ctx, uid, dayID, logID, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update dzikir log error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("update dzikir log error: day not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		case errors.Is(err, errorvalues.ErrLogNotFound):
			logger.Error("update dzikir log error: log not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgLogNotFound), nil)
			return
		default:
			logger.Error("update dzikir log error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgRecitationLogUpdated), entry)
	logger.Info("dzikir log updated", slog.Int64("log_id", logID))
}

func (s *Server) DeleteRecitationLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete dzikir log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	dayID, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
		return
	}
	logID, ok := pathInt64(r, "logId")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgLogNotFound), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.ledgerService.DeleteRecitationLog(ctx, uid, dayID, logID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("delete dzikir log error: day not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDayNotFound), nil)
			return
		case errors.Is(err, errorvalues.ErrLogNotFound):
			logger.Error("delete dzikir log error: log not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgLogNotFound), nil)
			return
		default:
			logger.Error("delete dzikir log error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgRecitationLogDeleted), nil)
	logger.Info("dzikir log deleted", slog.Int64("log_id", logID))
}

func (s *Server) Bookmarks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list bookmarks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	bookmarks, err := s.bookmarksService.List(ctx, uid)
	if err != nil {
		logger.Error("list bookmarks error: service error", slog.String("error", err.Error()))
		s.writeInternalError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgBookmarksFetched), bookmarks)
}

func (s *Server) AddBookmark(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add bookmark error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	var req service.BookmarkRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add bookmark error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	bookmark, err := s.bookmarksService.Add(ctx, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("add bookmark error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrBookmarkExists):
			logger.Error("add bookmark error: already bookmarked")
			httputil.WriteErrorResponse(w, http.StatusConflict, message(r, msgBookmarkExists), nil)
			return
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("add bookmark error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgUnauthenticated), nil)
			return
		default:
			logger.Error("add bookmark error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, message(r, msgBookmarkAdded), bookmark)
	logger.Info("bookmark added", slog.Int64("bookmark_id", bookmark.ID))
}

func (s *Server) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete bookmark error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	id, ok := pathInt64(r, "id")
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgBookmarkNotFound), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.bookmarksService.Delete(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBookmarkNotFound):
			logger.Error("delete bookmark error: bookmark not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgBookmarkNotFound), nil)
			return
		default:
			logger.Error("delete bookmark error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgBookmarkDeleted), nil)
	logger.Info("bookmark deleted", slog.Int64("bookmark_id", id))
}

func (s *Server) Streak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.ledgerService.Streak(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("get streak error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgUnauthenticated), nil)
			return
		default:
			logger.Error("get streak error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgStreakFetched), streak)
}

func (s *Server) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("monthly summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.ledgerService.MonthlySummary(ctx, uid, userTimezone(r))
	if err != nil {
		logger.Error("monthly summary error: service error", slog.String("error", err.Error()))
		s.writeInternalError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgMonthlySummary), summary)
}

func (s *Server) YearlySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("yearly summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 || year > 9999 {
		writeFieldError(w, r, "year", "must be a valid year")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.ledgerService.YearlySummary(ctx, uid, year)
	if err != nil {
		logger.Error("yearly summary error: service error", slog.String("error", err.Error()))
		s.writeInternalError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgYearlySummary), summary)
}

func (s *Server) SurahList(w http.ResponseWriter, r *http.Request) {
	ctx := upstreamContext()
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgSurahListFetched), s.ledgerService.SurahList(ctx))
}
