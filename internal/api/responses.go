package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/httputil"
)

type AuthResponse struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

func newAuthResponse(res *service.AuthResult) AuthResponse {
	resp := AuthResponse{User: res.User}
	if res.Token != nil {
		resp.AccessToken = res.Token.AccessToken
		resp.TokenType = res.Token.TokenType
		resp.ExpiresIn = res.Token.ExpiresIn
		resp.ExpiresAt = res.Token.ExpiresAt
	}
	return resp
}

type DeviceResponse struct {
	*entity.AuthToken
	Current bool `json:"is_current"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// writeInternalError hides the cause unless the server runs in debug mode.
func (s *Server) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	var details error
	if s.debug {
		details = err
	}
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, message(r, msgInternalError), details)
}

// writeValidationError reports false when err carries no field errors.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) bool {
	var verr *errorvalues.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	httputil.WriteValidationResponse(w, message(r, msgValidationFailed), verr.Fields)
	return true
}

func writeFieldError(w http.ResponseWriter, r *http.Request, field, msg string) {
	httputil.WriteValidationResponse(w, message(r, msgValidationFailed), map[string]string{field: msg})
}

func pathInt64(r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}

// queryInt returns fallback for a missing parameter and false for a malformed one.
func queryInt(r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
