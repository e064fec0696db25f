package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("get profile error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgUnauthenticated), nil)
			return
		default:
			logger.Error("get profile error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgProfileFetched), user)
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	var req service.UpdateProfileRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update profile error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("update profile error: email taken")
			writeFieldError(w, r, "email", message(r, msgEmailTaken))
			return
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("update profile error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgUnauthenticated), nil)
			return
		default:
			logger.Error("update profile error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgProfileUpdated), user)
	logger.Info("profile updated")
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("change password error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	var req service.ChangePasswordRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("change password error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.ChangePassword(ctx, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("change password error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrWrongPassword):
			logger.Error("change password error: wrong current password")
			writeFieldError(w, r, "current_password", message(r, msgWrongPassword))
			return
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("change password error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgUnauthenticated), nil)
			return
		default:
			logger.Error("change password error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgPasswordUpdated), nil)
	logger.Info("password changed")
}

func (s *Server) Devices(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list devices error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	currentID, _ := GetTokenIDFromContext(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	tokens, err := s.tokenService.Devices(ctx, uid)
	if err != nil {
		logger.Error("list devices error: service error", slog.String("error", err.Error()))
		s.writeInternalError(w, r, err)
		return
	}
	devices := make([]DeviceResponse, 0, len(tokens))
	for _, t := range tokens {
		devices = append(devices, DeviceResponse{AuthToken: t, Current: t.ID == currentID})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgDevicesFetched), devices)
}

func (s *Server) RevokeDevice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("revoke device error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	tokenID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("revoke device error: invalid token id")
		httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDeviceNotFound), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tokenService.Revoke(ctx, uid, tokenID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTokenNotFound):
			logger.Error("revoke device error: token not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgDeviceNotFound), nil)
			return
		default:
			logger.Error("revoke device error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgDeviceRevoked), nil)
	logger.Info("device revoked", slog.String("token_id", tokenID.String()))
}

func (s *Server) LogoutAll(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("logout all error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	revoked, err := s.tokenService.RevokeAll(ctx, uid)
	if err != nil {
		logger.Error("logout all error: service error", slog.String("error", err.Error()))
		s.writeInternalError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgLoggedOutAll), map[string]any{
		"revoked": revoked,
	})
	logger.Info("logged out from all devices", slog.Int64("revoked", revoked))
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete account error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("delete account error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	if req.Password == "" {
		writeFieldError(w, r, "password", "is required")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongPassword):
			logger.Error("delete account error: wrong password")
			writeFieldError(w, r, "password", message(r, msgWrongPassword))
			return
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("delete account error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, message(r, msgUnauthenticated), nil)
			return
		default:
			logger.Error("delete account error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgAccountDeleted), nil)
	logger.Info("account deleted")
}
