package repository_test

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/service"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestLedgerIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg := setupLedgerTestDB(t)
	ctx := context.Background()

	users := repository.NewUsersRepo(cfg)
	days := repository.NewDaysRepo(cfg)
	bookmarks := repository.NewBookmarksRepo(cfg)
	streaks := repository.NewStreaksRepo(cfg)

	user := &entity.User{
		Name:         "Fatimah",
		Email:        "fatimah@example.com",
		PasswordHash: "pass_hash",
		City:         "jakarta",
		Timezone:     "Asia/Jakarta",
	}
	require.NoError(t, users.Create(ctx, user))
	date := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)

	t.Run("upsert round trip", func(t *testing.T) {
		in := &entity.DayUpsert{UserID: user.ID, Date: date, RamadhanYear: 2026, Subuh: true, Maghrib: true, Tarawih: true}
		_, err := days.Upsert(ctx, in, nil)
		require.NoError(t, err)
		got, err := days.GetByDate(ctx, user.ID, date)
		require.NoError(t, err)
		assert.Equal(t, date, got.Date.UTC())
		assert.True(t, got.Subuh)
		assert.True(t, got.Maghrib)
		assert.True(t, got.Tarawih)
		assert.False(t, got.Fasting)
		assert.Equal(t, 0, got.QuranPages)

		again, err := days.Upsert(ctx, &entity.DayUpsert{UserID: user.ID, Date: date, RamadhanYear: 2026, Isya: true}, nil)
		require.NoError(t, err)
		assert.Equal(t, got.ID, again.ID)
		assert.False(t, again.Subuh)
		assert.True(t, again.Isya)
	})

	t.Run("reading totals follow logs", func(t *testing.T) {
		day, err := days.GetByDate(ctx, user.ID, date)
		require.NoError(t, err)
		rnd := rand.New(rand.NewSource(42))
		live := make([]*entity.ReadingLog, 0)
		for i := 0; i < 40; i++ {
			if len(live) > 0 && rnd.Intn(3) == 0 {
				idx := rnd.Intn(len(live))
				require.NoError(t, days.DeleteReadingLog(ctx, user.ID, day.ID, live[idx].ID))
				live = append(live[:idx], live[idx+1:]...)
				continue
			}
			log := &entity.ReadingLog{DayID: day.ID, Surah: 1 + rnd.Intn(114), Pages: 1 + rnd.Intn(20), Minutes: 1 + rnd.Intn(60)}
			require.NoError(t, days.AddReadingLog(ctx, user.ID, log))
			live = append(live, log)
		}
		want := 0
		for _, l := range live {
			want += l.Pages
		}
		day, err = days.GetByID(ctx, user.ID, day.ID)
		require.NoError(t, err)
		assert.Equal(t, want, day.QuranPages)
		logs, err := days.ReadingLogs(ctx, day.ID)
		require.NoError(t, err)
		assert.Len(t, logs, len(live))
	})

	t.Run("recitation update moves total by delta", func(t *testing.T) {
		day, err := days.GetByDate(ctx, user.ID, date)
		require.NoError(t, err)
		before := day.DzikirTotal
		log := &entity.RecitationLog{DayID: day.ID, Type: "tasbih", Count: 33}
		require.NoError(t, days.AddRecitationLog(ctx, user.ID, log))
		_, err = days.UpdateRecitationLog(ctx, user.ID, day.ID, log.ID, 100)
		require.NoError(t, err)
		day, err = days.GetByID(ctx, user.ID, day.ID)
		require.NoError(t, err)
		assert.Equal(t, before+100, day.DzikirTotal)
		require.NoError(t, days.DeleteRecitationLog(ctx, user.ID, day.ID, log.ID))
		day, err = days.GetByID(ctx, user.ID, day.ID)
		require.NoError(t, err)
		assert.Equal(t, before, day.DzikirTotal)
	})

	t.Run("logs of foreign days are invisible", func(t *testing.T) {
		day, err := days.GetByDate(ctx, user.ID, date)
		require.NoError(t, err)
		err = days.AddReadingLog(ctx, uuid.New(), &entity.ReadingLog{DayID: day.ID, Surah: 1, Pages: 1, Minutes: 1})
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})

	t.Run("fasting days advance streak", func(t *testing.T) {
		advance := func(s entity.Streak, d time.Time) entity.Streak {
			if s.LastActiveDate != nil && s.LastActiveDate.UTC().AddDate(0, 0, 1).Equal(d) {
				s.CurrentStreak++
			} else {
				s.CurrentStreak = 1
			}
			if s.CurrentStreak > s.LongestStreak {
				s.LongestStreak = s.CurrentStreak
			}
			s.LastActiveDate = &d
			return s
		}
		start := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			_, err := days.Upsert(ctx, &entity.DayUpsert{UserID: user.ID, Date: start.AddDate(0, 0, i), RamadhanYear: 2026, Fasting: true}, advance)
			require.NoError(t, err)
		}
		s, err := streaks.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, s.CurrentStreak)
		assert.Equal(t, 3, s.LongestStreak)
		_, err = days.Upsert(ctx, &entity.DayUpsert{UserID: user.ID, Date: start.AddDate(0, 0, 5), RamadhanYear: 2026, Fasting: true}, advance)
		require.NoError(t, err)
		s, err = streaks.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 3, s.LongestStreak)

		totals, err := days.TotalsForYear(ctx, user.ID, 2026)
		require.NoError(t, err)
		assert.Equal(t, 5, totals.Days)
		assert.Equal(t, 4, totals.Fasting)
	})

	t.Run("duplicate bookmark", func(t *testing.T) {
		b := &entity.Bookmark{UserID: user.ID, Surah: 18}
		require.NoError(t, bookmarks.Create(ctx, b))
		exists, err := bookmarks.Exists(ctx, &entity.Bookmark{UserID: user.ID, Surah: 18})
		require.NoError(t, err)
		assert.True(t, exists)
		err = bookmarks.Create(ctx, &entity.Bookmark{UserID: user.ID, Surah: 18})
		assert.ErrorIs(t, err, errorvalues.ErrBookmarkExists)
		list, err := bookmarks.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("concurrent writes keep totals and streak", func(t *testing.T) {
		other := &entity.User{
			Name:         "Khadijah",
			Email:        "khadijah@example.com",
			PasswordHash: "pass_hash",
			City:         "bandung",
			Timezone:     "Asia/Jakarta",
		}
		require.NoError(t, users.Create(ctx, other))
		day2 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := days.Upsert(ctx, &entity.DayUpsert{UserID: other.ID, Date: day2.AddDate(0, 0, -1), RamadhanYear: 2026, Fasting: true}, service.AdvanceStreak)
		require.NoError(t, err)
		day, err := days.Upsert(ctx, &entity.DayUpsert{UserID: other.ID, Date: day2, RamadhanYear: 2026}, nil)
		require.NoError(t, err)

		const readers, reciters, upserts = 20, 10, 8
		recitations := make([]*entity.RecitationLog, reciters)
		for i := range recitations {
			recitations[i] = &entity.RecitationLog{DayID: day.ID, Type: "tahmid", Count: 10}
			require.NoError(t, days.AddRecitationLog(ctx, other.ID, recitations[i]))
		}

		g, gctx := errgroup.WithContext(ctx)
		wantPages, wantDzikir := 0, 0
		for i := 0; i < readers; i++ {
			pages := i + 1
			wantPages += pages
			g.Go(func() error {
				return days.AddReadingLog(gctx, other.ID, &entity.ReadingLog{DayID: day.ID, Surah: 2, Pages: pages, Minutes: 10})
			})
		}
		for i, l := range recitations {
			count := 10 + i
			wantDzikir += count
			g.Go(func() error {
				_, err := days.UpdateRecitationLog(gctx, other.ID, day.ID, l.ID, count)
				return err
			})
		}
		for i := 0; i < upserts; i++ {
			g.Go(func() error {
				_, err := days.Upsert(gctx, &entity.DayUpsert{UserID: other.ID, Date: day2, RamadhanYear: 2026, Fasting: true, Subuh: true}, service.AdvanceStreak)
				return err
			})
		}
		require.NoError(t, g.Wait())

		got, err := days.GetByID(ctx, other.ID, day.ID)
		require.NoError(t, err)
		assert.Equal(t, wantPages, got.QuranPages)
		assert.Equal(t, wantDzikir, got.DzikirTotal)
		assert.True(t, got.Fasting)
		logs, err := days.ReadingLogs(ctx, day.ID)
		require.NoError(t, err)
		assert.Len(t, logs, readers)

		s, err := streaks.Get(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, s.CurrentStreak)
		assert.Equal(t, 2, s.LongestStreak)
		require.NotNil(t, s.LastActiveDate)
		assert.True(t, day2.Equal(s.LastActiveDate.UTC()))
	})

	t.Run("deleting user cascades", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, user.ID))
		_, err := days.GetByDate(ctx, user.ID, date)
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})
}

func setupLedgerTestDB(t *testing.T) *testPGConfig {
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
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
