package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository/mocks"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	svcmocks "github.com/ChairulIkhsan23/niyyah-backend/internal/service/mocks"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.ErrorIs(t, err, errorvalues.ErrValidation)
	var verr *errorvalues.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Fields
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv := service.NewUserService(mocks.NewMockUsersRepositoryI(ctrl), svcmocks.NewMockTokenServiceI(ctrl), nil, "Asia/Jakarta")
	tomorrow := time.Now().AddDate(0, 0, 2).Format(entity.DateLayout)

	testCases := []struct {
		Desc   string
		Req    *service.RegisterRequest
		Fields []string
	}{
		{
			Desc:   "everything missing",
			Req:    &service.RegisterRequest{},
			Fields: []string{"name", "email", "password", "password_confirmation", "city"},
		},
		{
			Desc: "bad email, short password and mismatched confirmation",
			Req: &service.RegisterRequest{
				Name:                 "Aisyah",
				Email:                "not-an-email",
				Password:             "123",
				PasswordConfirmation: "1234",
				City:                 "Bandung",
			},
			Fields: []string{"email", "password", "password_confirmation"},
		},
		{
			Desc: "unknown gender, timezone and future birth date",
			Req: &service.RegisterRequest{
				Name:                 "Aisyah",
				Email:                "aisyah@example.com",
				Password:             "secret123",
				PasswordConfirmation: "secret123",
				City:                 "Bandung",
				Timezone:             "Mars/Olympus",
				Gender:               strPtr("other"),
				DateOfBirth:          strPtr(tomorrow),
			},
			Fields: []string{"timezone", "gender", "date_of_birth"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := serv.Register(context.Background(), tc.Req, "")
			fields := validationFields(t, err)
			assert.Len(t, fields, len(tc.Fields))
			for _, f := range tc.Fields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestLedgerValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv := service.NewLedgerService(mocks.NewMockDaysRepositoryI(ctrl), mocks.NewMockStreaksRepositoryI(ctrl), nil, "Asia/Jakarta")
	bookmarks := service.NewBookmarksService(mocks.NewMockBookmarksRepositoryI(ctrl), nil)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("reading log bounds", func(t *testing.T) {
		_, err := serv.AddReadingLog(ctx, uid, 1, &service.ReadingLogRequest{Surah: 115, Ayah: intPtr(287), Pages: 605, Minutes: 0})
		fields := validationFields(t, err)
		assert.Equal(t, map[string]string{
			"surah":   "must be at most 114",
			"ayah":    "must be at most 286",
			"pages":   "must be at most 604",
			"minutes": "is required",
		}, fields)
	})
	t.Run("unknown dzikir type", func(t *testing.T) {
		_, err := serv.AddRecitationLog(ctx, uid, 1, &service.RecitationLogRequest{Type: "salawat", Count: 33})
		fields := validationFields(t, err)
		assert.Contains(t, fields, "type")
	})
	t.Run("recitation count too large", func(t *testing.T) {
		_, err := serv.UpdateRecitationLog(ctx, uid, 1, 1, &service.UpdateRecitationLogRequest{Count: 100001})
		fields := validationFields(t, err)
		assert.Equal(t, "must be at most 100000", fields["count"])
	})
	t.Run("malformed day date", func(t *testing.T) {
		_, err := serv.UpsertDay(ctx, uid, "Asia/Jakarta", &service.UpsertDayRequest{Date: "18-02-2026"})
		fields := validationFields(t, err)
		assert.Contains(t, fields, "date")
	})
	t.Run("negative totals", func(t *testing.T) {
		_, err := serv.UpsertDay(ctx, uid, "Asia/Jakarta", &service.UpsertDayRequest{Date: "2026-02-18", QuranPages: intPtr(-1)})
		fields := validationFields(t, err)
		assert.Contains(t, fields, "quran_pages")
	})
	t.Run("bookmark without ayah and page", func(t *testing.T) {
		_, err := bookmarks.Add(ctx, uid, &service.BookmarkRequest{Surah: 2})
		fields := validationFields(t, err)
		assert.Equal(t, "ayah or page is required", fields["ayah"])
	})
}
