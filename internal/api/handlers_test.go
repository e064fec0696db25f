package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/api"
	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service/mocks"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
	jwtservice "github.com/ChairulIkhsan23/niyyah-backend/pkg/jwt_service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	userID  = uuid.New()
	tokenID = uuid.New()
	user    = &entity.User{
		ID:       userID,
		Name:     "Fatimah",
		Email:    "fatimah@example.com",
		City:     "Bandung",
		Timezone: "Asia/Jakarta",
	}
	issued = &service.IssuedToken{
		AccessToken: "signed.jwt.token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data"`
	Errors  map[string]string `json:"errors"`
	Details string            `json:"details"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&env))
	return env
}

func authorized(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), "User-ID", userID)
	ctx = context.WithValue(ctx, "Token-ID", tokenID)
	ctx = context.WithValue(ctx, "User", user)
	return r.WithContext(ctx)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	req := service.RegisterRequest{
		Name:                 "Fatimah",
		Email:                "fatimah@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		City:                 "Bandung",
	}
	body, err := sonic.ConfigDefault.Marshal(req)
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
		ErrorField   string
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), &req, "pixel-8").Return(&service.AuthResult{User: user, Token: issued}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "email taken",
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), &req, "pixel-8").Return(nil, errorvalues.ErrUserExists)
			},
			Body:       bytes.NewReader(body),
			ErrorField: "email",
		},
		{
			Desc:         "validation failed",
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), &req, "pixel-8").Return(nil, errorvalues.NewValidationError("city", "is required"))
			},
			Body:       bytes.NewReader(body),
			ErrorField: "city",
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), &req, "pixel-8").Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", tc.Body)
			r.Header.Set("X-Device-Name", "pixel-8")
			serv.Register(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			env := decodeEnvelope(t, rr)
			if tc.ErrorField != "" {
				assert.Contains(t, env.Errors, tc.ErrorField)
			}
			if tc.ExpectedCode == http.StatusCreated {
				data, ok := env.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, issued.AccessToken, data["access_token"])
				assert.Equal(t, "Bearer", data["token_type"])
				assert.Equal(t, "Registrasi berhasil", env.Message)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	req := service.LoginRequest{Email: "fatimah@example.com", Password: "secret123"}
	body, err := sonic.ConfigDefault.Marshal(req)
	require.NoError(t, err)

	testCases := []struct {
		Desc            string
		ExpectedCode    int
		MockPrepFunc    func()
		Body            io.Reader
		AcceptLanguage  string
		ExpectedMessage string
	}{
		{
			Desc:         "logged in",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), &req, gomock.Any()).Return(&service.AuthResult{User: user, Token: issued}, nil)
			},
			Body:            bytes.NewReader(body),
			AcceptLanguage:  "en-US,en;q=0.9",
			ExpectedMessage: "Login successful",
		},
		{
			Desc:         "wrong credentials in english",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), &req, gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials)
			},
			Body:            bytes.NewReader(body),
			AcceptLanguage:  "en",
			ExpectedMessage: "The provided credentials are incorrect.",
		},
		{
			Desc:         "wrong credentials defaults to indonesian",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), &req, gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials)
			},
			Body:            bytes.NewReader(body),
			AcceptLanguage:  "fr-FR",
			ExpectedMessage: "Email atau password salah",
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), &req, gomock.Any()).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         http.NoBody,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", tc.Body)
			if tc.AcceptLanguage != "" {
				r.Header.Set("Accept-Language", tc.AcceptLanguage)
			}
			// Locale is negotiated by middleware, so the handler goes through it here
			serv.LocaleMiddleware(http.HandlerFunc(serv.Login)).ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedMessage != "" {
				assert.Equal(t, tc.ExpectedMessage, decodeEnvelope(t, rr).Message)
			}
		})
	}
}

func TestGoogleSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body := []byte(`{"id_token":"google-id-token"}`)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().GoogleSignIn(gomock.Any(), &service.GoogleSignInRequest{IDToken: "google-id-token"}, gomock.Any()).
					Return(&service.AuthResult{User: user, Token: issued}, nil)
			},
		},
		{
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				uService.EXPECT().GoogleSignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrGoogleTokenInvalid)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().GoogleSignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/google", bytes.NewReader(body))
		serv.GoogleSignIn(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestInternalErrorDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	body := []byte(`{"email":"fatimah@example.com","password":"secret123"}`)
	uService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(2)

	t.Run("hidden in production", func(t *testing.T) {
		serv := api.New(&api.ServicesList{UserService: uService})
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))
		assert.Empty(t, decodeEnvelope(t, rr).Details)
	})
	t.Run("shown in debug mode", func(t *testing.T) {
		serv := api.New(&api.ServicesList{UserService: uService, Debug: true})
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))
		assert.Equal(t, "connection refused", decodeEnvelope(t, rr).Details)
	})
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTokenServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TokenService: tService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().Revoke(gomock.Any(), userID, tokenID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().Revoke(gomock.Any(), userID, tokenID).Return(errorvalues.ErrTokenNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().Revoke(gomock.Any(), userID, tokenID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
		serv.Logout(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Logout(rr, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	req := service.UpdateProfileRequest{Name: "Fatimah Az-Zahra", Email: "fatimah@example.com"}
	body, err := sonic.ConfigDefault.Marshal(req)
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().UpdateProfile(gomock.Any(), userID, &req).Return(user, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				uService.EXPECT().UpdateProfile(gomock.Any(), userID, &req).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().UpdateProfile(gomock.Any(), userID, &req).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("{")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPut, "/api/user/profile", tc.Body))
		serv.UpdateProfile(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body := []byte(`{"current_password":"secret123","new_password":"secret456","new_password_confirmation":"secret456"}`)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		ErrorField   string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().ChangePassword(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				uService.EXPECT().ChangePassword(gomock.Any(), userID, gomock.Any()).Return(errorvalues.ErrWrongPassword)
			},
			ErrorField: "current_password",
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().ChangePassword(gomock.Any(), userID, gomock.Any()).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPut, "/api/user/password", bytes.NewReader(body)))
		serv.ChangePassword(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if tc.ErrorField != "" {
			assert.Contains(t, decodeEnvelope(t, rr).Errors, tc.ErrorField)
		}
	}
}

func TestDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTokenServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TokenService: tService,
	})
	otherID := uuid.New()

	t.Run("current device flagged", func(t *testing.T) {
		tService.EXPECT().Devices(gomock.Any(), userID).Return([]*entity.AuthToken{
			{ID: tokenID, UserID: userID, Name: "pixel-8"},
			{ID: otherID, UserID: userID, Name: "ipad"},
		}, nil)
		rr := httptest.NewRecorder()
		serv.Devices(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/user/devices", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		devices, ok := decodeEnvelope(t, rr).Data.([]any)
		require.True(t, ok)
		require.Len(t, devices, 2)
		assert.Equal(t, true, devices[0].(map[string]any)["is_current"])
		assert.Equal(t, false, devices[1].(map[string]any)["is_current"])
	})

	revokeCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		ID           string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().Revoke(gomock.Any(), userID, otherID).Return(nil)
			},
			ID: otherID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				tService.EXPECT().Revoke(gomock.Any(), userID, otherID).Return(errorvalues.ErrTokenNotFound)
			},
			ID: otherID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {},
			ID:           "not-a-uuid",
		},
	}
	for _, tc := range revokeCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodDelete, "/api/user/devices/"+tc.ID, nil))
		r.SetPathValue("id", tc.ID)
		serv.RevokeDevice(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}

	t.Run("logout everywhere", func(t *testing.T) {
		tService.EXPECT().RevokeAll(gomock.Any(), userID).Return(int64(2), nil)
		rr := httptest.NewRecorder()
		serv.LogoutAll(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/user/logout-all", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		data := decodeEnvelope(t, rr).Data.(map[string]any)
		assert.EqualValues(t, 2, data["revoked"])
	})
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, "secret123").Return(nil)
			},
			Body: `{"password":"secret123"}`,
		},
		{
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, "wrong").Return(errorvalues.ErrWrongPassword)
			},
			Body: `{"password":"wrong"}`,
		},
		{
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {},
			Body:         `{}`,
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, "secret123").Return(errors.New("service error"))
			},
			Body: `{"password":"secret123"}`,
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodDelete, "/api/user/account", bytes.NewReader([]byte(tc.Body))))
		serv.DeleteAccount(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	tService := mocks.NewMockTokenServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService:  uService,
		TokenService: tService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := api.GetUIDFromContext(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		tid, err := api.GetTokenIDFromContext(r)
		if err != nil || api.GetUserFromContext(r) == nil {
			http.Error(w, "incomplete context", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"uid":"` + uid.String() + `","tid":"` + tid.String() + `"}`))
	}))

	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "authenticated",
			Header:       "Bearer good",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().Authenticate(gomock.Any(), "good").Return(&service.Session{UserID: userID, TokenID: tokenID}, nil)
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
			},
		},
		{
			Desc:         "no header",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "wrong scheme",
			Header:       "Basic Zm9vOmJhcg==",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "revoked token",
			Header:       "Bearer revoked",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				tService.EXPECT().Authenticate(gomock.Any(), "revoked").Return(nil, errorvalues.ErrInvalidToken)
			},
		},
		{
			Desc:         "user deleted",
			Header:       "Bearer orphan",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				tService.EXPECT().Authenticate(gomock.Any(), "orphan").Return(&service.Session{UserID: userID, TokenID: tokenID}, nil)
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:         "token store down",
			Header:       "Bearer good",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().Authenticate(gomock.Any(), "good").Return(nil, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				r.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService:   uService,
		AuthRateLimit: 0.001,
		AuthRateBurst: 2,
	})
	uService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials).Times(2)
	body := []byte(`{"email":"fatimah@example.com","password":"secret123"}`)
	codes := make([]int, 0, 3)
	for range 3 {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		r.RemoteAddr = "10.1.2.3:5555"
		serv.Handler().ServeHTTP(rr, r)
		codes = append(codes, rr.Result().StatusCode)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)

	t.Run("other client unaffected", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		r.RemoteAddr = "10.9.9.9:5555"
		serv.Handler().ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	rr := httptest.NewRecorder()
	serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, "id", rr.Header().Get("Content-Language"))

	rr = httptest.NewRecorder()
	serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}

func TestLedgerFlowIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg := setupTestDB(t)
	tokens := service.NewTokenService(repository.NewTokensRepo(cfg), jwtservice.New("test_secret"), time.Hour)
	users := service.NewUserService(repository.NewUsersRepo(cfg), tokens, nil, "Asia/Jakarta")
	ledger := service.NewLedgerService(repository.NewDaysRepo(cfg), repository.NewStreaksRepo(cfg), nil, "Asia/Jakarta")
	serv := api.New(&api.ServicesList{
		UserService:     users,
		TokenService:    tokens,
		LedgerService:   ledger,
		DefaultTimezone: "Asia/Jakarta",
	})
	handler := serv.Handler()
	do := func(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
		var reader io.Reader = http.NoBody
		if body != nil {
			raw, err := sonic.ConfigDefault.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
		r := httptest.NewRequest(method, path, reader)
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, r)
		var env envelope
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &env))
		return rr, env
	}

	var token string
	t.Run("registered", func(t *testing.T) {
		rr, env := do(http.MethodPost, "/api/auth/register", "", service.RegisterRequest{
			Name:                 "Fatimah",
			Email:                "fatimah@example.com",
			Password:             "secret123",
			PasswordConfirmation: "secret123",
			City:                 "Bandung",
		})
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		token, _ = env.Data.(map[string]any)["access_token"].(string)
		require.NotEmpty(t, token)
	})
	t.Run("nothing recorded today", func(t *testing.T) {
		rr, env := do(http.MethodGet, "/api/ramadhan/today", token, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Nil(t, env.Data)
	})
	t.Run("fasting day advances streak", func(t *testing.T) {
		loc, err := time.LoadLocation("Asia/Jakarta")
		require.NoError(t, err)
		today := time.Now().In(loc).Format(entity.DateLayout)
		rr, _ := do(http.MethodPost, "/api/ramadhan/day", token, map[string]any{"date": today, "fasting": true, "subuh": true})
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)

		rr, env := do(http.MethodGet, "/api/ramadhan/streak", token, nil)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.EqualValues(t, 1, env.Data.(map[string]any)["current_streak"])
	})
	t.Run("logged out token rejected", func(t *testing.T) {
		rr, _ := do(http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		rr, _ = do(http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("niyyah"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
