package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

var dayRowColumns = []string{
	"id", "user_id", "date", "ramadhan_year", "fasting", "subuh", "dzuhur", "ashar",
	"maghrib", "isya", "tarawih", "quran_pages", "dzikir_total", "created_at", "updated_at",
}

var streakRowColumns = []string{"user_id", "current_streak", "longest_streak", "last_active_date", "created_at", "updated_at"}

func dayRow(d entity.ObservanceDay) *pgxmock.Rows {
	return pgxmock.NewRows(dayRowColumns).AddRow(
		d.ID, d.UserID, d.Date, d.RamadhanYear, d.Fasting, d.Subuh, d.Dzuhur, d.Ashar,
		d.Maghrib, d.Isya, d.Tarawih, d.QuranPages, d.DzikirTotal, d.CreatedAt, d.UpdatedAt,
	)
}

func testDay(uid uuid.UUID) entity.ObservanceDay {
	now := time.Now().UTC()
	return entity.ObservanceDay{
		ID:           7,
		UserID:       uid,
		Date:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		RamadhanYear: 2026,
		Fasting:      true,
		Subuh:        true,
		QuranPages:   4,
		DzikirTotal:  33,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestGetDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDaysRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	day := testDay(uid)

	byDate := regexp.QuoteMeta(`FROM ramadhan_days WHERE user_id = $1 AND date = $2;`)
	conn.ExpectQuery(byDate).WithArgs(uid, day.Date).WillReturnRows(dayRow(day))
	got, err := repo.GetByDate(ctx, uid, day.Date)
	require.NoError(t, err)
	assert.Equal(t, day, *got)

	conn.ExpectQuery(byDate).WithArgs(uid, day.Date).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByDate(ctx, uid, day.Date)
	assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)

	byID := regexp.QuoteMeta(`FROM ramadhan_days WHERE id = $1 AND user_id = $2;`)
	conn.ExpectQuery(byID).WithArgs(day.ID, uid).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(ctx, uid, day.ID)
	assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)

	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpsertDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDaysRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	day := testDay(uid)
	pages := 4
	upsertQuery := regexp.QuoteMeta(`INSERT INTO ramadhan_days`)
	ensureQuery := regexp.QuoteMeta(`INSERT INTO streaks (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	lockQuery := regexp.QuoteMeta(`FROM streaks WHERE user_id = $1 FOR UPDATE;`)
	streakUpdate := regexp.QuoteMeta(`UPDATE streaks SET current_streak = $1`)
	created := time.Now().UTC()

	advancedTo := 0
	advance := func(s entity.Streak, date time.Time) entity.Streak {
		s.CurrentStreak++
		if s.CurrentStreak > s.LongestStreak {
			s.LongestStreak = s.CurrentStreak
		}
		s.LastActiveDate = &date
		advancedTo = s.CurrentStreak
		return s
	}

	testCases := []struct {
		Desc         string
		Fasting      bool
		Error        error
		Advanced     int
		MockPrepFunc func(in *entity.DayUpsert)
	}{
		{
			Desc:    "not fasting leaves streak alone",
			Fasting: false,
			MockPrepFunc: func(in *entity.DayUpsert) {
				d := day
				d.Fasting = false
				conn.ExpectBegin()
				conn.ExpectQuery(upsertQuery).WithArgs(uid, in.Date, 2026, false, true, false, false, false, false, false, &pages, (*int)(nil)).
					WillReturnRows(dayRow(d))
				conn.ExpectCommit()
			},
		},
		{
			Desc:     "fasting advances streak in the same transaction",
			Fasting:  true,
			Advanced: 3,
			MockPrepFunc: func(in *entity.DayUpsert) {
				last := in.Date.AddDate(0, 0, -1)
				conn.ExpectBegin()
				conn.ExpectQuery(upsertQuery).WithArgs(uid, in.Date, 2026, true, true, false, false, false, false, false, &pages, (*int)(nil)).
					WillReturnRows(dayRow(day))
				conn.ExpectExec(ensureQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				conn.ExpectQuery(lockQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows(streakRowColumns).AddRow(uid, 2, 5, &last, created, created))
				conn.ExpectExec(streakUpdate).WithArgs(3, 5, pgxmock.AnyArg(), uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				conn.ExpectCommit()
			},
		},
		{
			Desc:    "streak update failure rolls back",
			Fasting: true,
			Error:   errors.New("updating streak error: db error"),
			MockPrepFunc: func(in *entity.DayUpsert) {
				conn.ExpectBegin()
				conn.ExpectQuery(upsertQuery).WillReturnRows(dayRow(day))
				conn.ExpectExec(ensureQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				conn.ExpectQuery(lockQuery).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows(streakRowColumns).AddRow(uid, 0, 0, (*time.Time)(nil), created, created))
				conn.ExpectExec(streakUpdate).WillReturnError(errors.New("db error"))
				conn.ExpectRollback()
			},
		},
		{
			Desc:    "unknown user",
			Fasting: true,
			Error:   errorvalues.ErrUserNotFound,
			MockPrepFunc: func(in *entity.DayUpsert) {
				conn.ExpectBegin()
				conn.ExpectQuery(upsertQuery).WillReturnError(&pgconn.PgError{Code: "23503"})
				conn.ExpectRollback()
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			advancedTo = 0
			in := &entity.DayUpsert{
				UserID:       uid,
				Date:         day.Date,
				RamadhanYear: 2026,
				Fasting:      tc.Fasting,
				Subuh:        true,
				QuranPages:   &pages,
			}
			tc.MockPrepFunc(in)
			got, err := repo.Upsert(ctx, in, advance)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.NoError(t, conn.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, day.ID, got.ID)
			assert.Equal(t, tc.Advanced, advancedTo)
			assert.NoError(t, conn.ExpectationsWereMet())
		})
	}
}

func TestAddReadingLog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDaysRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	ayah := 5
	incQuery := regexp.QuoteMeta(`UPDATE ramadhan_days SET quran_pages = quran_pages + $1`)
	insQuery := regexp.QuoteMeta(`INSERT INTO quran_logs`)
	now := time.Now().UTC()

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "added",
			MockPrepFunc: func() {
				conn.ExpectBegin()
				conn.ExpectExec(incQuery).WithArgs(3, int64(7), uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				conn.ExpectQuery(insQuery).WithArgs(int64(7), 2, &ayah, 3, 15).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))
				conn.ExpectCommit()
			},
		},
		{
			Desc:  "day of another user",
			Error: errorvalues.ErrDayNotFound,
			MockPrepFunc: func() {
				conn.ExpectBegin()
				conn.ExpectExec(incQuery).WithArgs(3, int64(7), uid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				conn.ExpectRollback()
			},
		},
		{
			Desc:  "insert fails and increment is undone",
			Error: errors.New("creating quran log error: db error"),
			MockPrepFunc: func() {
				conn.ExpectBegin()
				conn.ExpectExec(incQuery).WithArgs(3, int64(7), uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				conn.ExpectQuery(insQuery).WillReturnError(errors.New("db error"))
				conn.ExpectRollback()
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			log := &entity.ReadingLog{DayID: 7, Surah: 2, Ayah: &ayah, Pages: 3, Minutes: 15}
			err := repo.AddReadingLog(ctx, uid, log)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(11), log.ID)
			}
			assert.NoError(t, conn.ExpectationsWereMet())
		})
	}
}

func TestDeleteReadingLog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDaysRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	delQuery := regexp.QuoteMeta(`DELETE FROM quran_logs l USING ramadhan_days d`)
	decQuery := regexp.QuoteMeta(`UPDATE ramadhan_days SET quran_pages = quran_pages - $1`)

	t.Run("deleted", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(delQuery).WithArgs(int64(11), int64(7), uid).WillReturnRows(pgxmock.NewRows([]string{"pages"}).AddRow(3))
		conn.ExpectExec(decQuery).WithArgs(3, int64(7)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		assert.NoError(t, repo.DeleteReadingLog(ctx, uid, 7, 11))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(delQuery).WithArgs(int64(11), int64(7), uid).WillReturnError(pgx.ErrNoRows)
		conn.ExpectRollback()
		assert.ErrorIs(t, repo.DeleteReadingLog(ctx, uid, 7, 11), errorvalues.ErrLogNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRecitationLogs(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDaysRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	now := time.Now().UTC()

	t.Run("add", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE ramadhan_days SET dzikir_total = dzikir_total + $1`)).
			WithArgs(33, int64(7), uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(regexp.QuoteMeta(`INSERT INTO dzikir_logs`)).WithArgs(int64(7), "tasbih", 33).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))
		conn.ExpectCommit()
		log := &entity.RecitationLog{DayID: 7, Type: "tasbih", Count: 33}
		require.NoError(t, repo.AddRecitationLog(ctx, uid, log))
		assert.Equal(t, int64(3), log.ID)
	})

	t.Run("update moves total by the difference", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(regexp.QuoteMeta(`SELECT l.count FROM dzikir_logs l`)).WithArgs(int64(3), int64(7), uid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(33))
		conn.ExpectQuery(regexp.QuoteMeta(`UPDATE dzikir_logs SET count = $1`)).WithArgs(100, int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ramadhan_day_id", "type", "count", "created_at", "updated_at"}).
				AddRow(int64(3), int64(7), "tasbih", 100, now, now))
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE ramadhan_days SET dzikir_total = dzikir_total + $1`)).
			WithArgs(67, int64(7)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		log, err := repo.UpdateRecitationLog(ctx, uid, 7, 3, 100)
		require.NoError(t, err)
		assert.Equal(t, 100, log.Count)
	})

	t.Run("update of missing log", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(regexp.QuoteMeta(`SELECT l.count FROM dzikir_logs l`)).WithArgs(int64(3), int64(7), uid).
			WillReturnError(pgx.ErrNoRows)
		conn.ExpectRollback()
		_, err := repo.UpdateRecitationLog(ctx, uid, 7, 3, 100)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(regexp.QuoteMeta(`DELETE FROM dzikir_logs l USING ramadhan_days d`)).WithArgs(int64(3), int64(7), uid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(100))
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE ramadhan_days SET dzikir_total = dzikir_total - $1`)).
			WithArgs(100, int64(7)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		assert.NoError(t, repo.DeleteRecitationLog(ctx, uid, 7, 3))
	})

	t.Run("list", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM dzikir_logs WHERE ramadhan_day_id = $1`)).WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ramadhan_day_id", "type", "count", "created_at", "updated_at"}).
				AddRow(int64(1), int64(7), "tahmid", 33, now, now).
				AddRow(int64(2), int64(7), "takbir", 34, now, now))
		logs, err := repo.RecitationLogs(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestTotals(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDaysRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	cols := []string{"days", "fasting", "subuh", "dzuhur", "ashar", "maghrib", "isya", "tarawih", "pages", "dzikir"}
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	conn.ExpectQuery(regexp.QuoteMeta(`date BETWEEN $2 AND $3;`)).WithArgs(uid, from, to).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(10, 9, 10, 8, 8, 10, 9, 7, 120, 3300))
	totals, err := repo.TotalsBetween(ctx, uid, from, to)
	require.NoError(t, err)
	assert.Equal(t, entity.ObservanceTotals{
		Days: 10, Fasting: 9, Subuh: 10, Dzuhur: 8, Ashar: 8, Maghrib: 10, Isya: 9, Tarawih: 7, QuranPages: 120, DzikirTotal: 3300,
	}, totals)

	conn.ExpectQuery(regexp.QuoteMeta(`ramadhan_year = $2;`)).WithArgs(uid, 2026).
		WillReturnError(errors.New("db error"))
	_, err = repo.TotalsForYear(ctx, uid, 2026)
	assert.EqualError(t, err, "summarizing year error: db error")
	assert.NoError(t, conn.ExpectationsWereMet())
}
