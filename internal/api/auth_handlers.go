package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	res, err := s.userService.Register(ctx, &req, deviceName(r))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: email taken")
			writeFieldError(w, r, "email", message(r, msgEmailTaken))
			return
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, message(r, msgRegistered), newAuthResponse(res))
	logger.Info("successful registration", slog.String("uid", res.User.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	res, err := s.userService.Login(ctx, &req, deviceName(r))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("login error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgWrongCredentials), nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgLoggedIn), newAuthResponse(res))
	logger.Info("successful login", slog.String("uid", res.User.ID.String()))
}

func (s *Server) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.GoogleSignInRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("google sign-in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, message(r, msgInvalidBody), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	res, err := s.userService.GoogleSignIn(ctx, &req, deviceName(r))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("google sign-in error: invalid request", slog.String("error", err.Error()))
			writeValidationError(w, r, err)
			return
		case errors.Is(err, errorvalues.ErrGoogleTokenInvalid):
			logger.Warn("google sign-in error: token rejected")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgGoogleTokenInvalid), nil)
			return
		default:
			logger.Error("google sign-in error: service error", slog.String("error", err.Error()))
			s.writeInternalError(w, r, err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgGoogleLoggedIn), newAuthResponse(res))
	logger.Info("successful google sign-in", slog.String("uid", res.User.ID.String()))
}

// Logout revokes only the token the request was made with.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("logout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	tokenID, err := GetTokenIDFromContext(r)
	if err != nil {
		logger.Error("logout error: no token id")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, message(r, msgUnauthenticated), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.tokenService.Revoke(ctx, uid, tokenID)
	if err != nil && !errors.Is(err, errorvalues.ErrTokenNotFound) {
		logger.Error("logout error: service error", slog.String("error", err.Error()))
		s.writeInternalError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgLoggedOut), nil)
	logger.Info("logged out")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	if user := GetUserFromContext(r); user != nil {
		httputil.WriteJSONResponse(w, http.StatusOK, message(r, msgProfileFetched), user)
		return
	}
	s.Profile(w, r)
}
