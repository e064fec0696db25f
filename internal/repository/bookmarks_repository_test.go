package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

func TestCreateBookmark(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBookmarksRepoWithConn(conn)
	uid := uuid.New()
	ayah := 255
	now := time.Now().UTC()
	query := regexp.QuoteMeta(`INSERT INTO bookmarks (user_id, surah, ayah, page) VALUES ($1, $2, $3, $4)`)

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "created",
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid, 2, &ayah, (*int)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))
			},
		},
		{
			Desc:  "duplicate reference",
			Error: errorvalues.ErrBookmarkExists,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid, 2, &ayah, (*int)(nil)).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating bookmark error: db error"),
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid, 2, &ayah, (*int)(nil)).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			b := &entity.Bookmark{UserID: uid, Surah: 2, Ayah: &ayah}
			err := repo.Create(context.Background(), b)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(1), b.ID)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestBookmarkExistsAndList(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBookmarksRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	page := 40
	now := time.Now().UTC()

	conn.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).WithArgs(uid, 3, (*int)(nil), &page).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := repo.Exists(ctx, &entity.Bookmark{UserID: uid, Surah: 3, Page: &page})
	require.NoError(t, err)
	assert.True(t, exists)

	conn.ExpectQuery(regexp.QuoteMeta(`FROM bookmarks`)).WithArgs(uid).WillReturnRows(
		pgxmock.NewRows([]string{"id", "user_id", "surah", "ayah", "page", "created_at", "updated_at"}).
			AddRow(int64(2), uid, 1, (*int)(nil), &page, now, now).
			AddRow(int64(1), uid, 2, (*int)(nil), (*int)(nil), now, now),
	)
	list, err := repo.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Surah)
	assert.Equal(t, 40, *list[0].Page)

	del := regexp.QuoteMeta(`DELETE FROM bookmarks WHERE id = $1 AND user_id = $2;`)
	conn.ExpectExec(del).WithArgs(int64(9), uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, uid, 9), errorvalues.ErrBookmarkNotFound)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStreaksRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	now := time.Now().UTC()
	ensure := regexp.QuoteMeta(`INSERT INTO streaks (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	sel := regexp.QuoteMeta(`FROM streaks WHERE user_id = $1;`)

	t.Run("fresh user gets zero streak", func(t *testing.T) {
		conn.ExpectExec(ensure).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectQuery(sel).WithArgs(uid).WillReturnRows(
			pgxmock.NewRows(streakRowColumns).AddRow(uid, 0, 0, (*time.Time)(nil), now, now),
		)
		s, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 0, s.CurrentStreak)
		assert.Nil(t, s.LastActiveDate)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectExec(ensure).WithArgs(uid).WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Get(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
