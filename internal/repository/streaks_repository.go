package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

const streakColumns = `user_id, current_streak, longest_streak, last_active_date, created_at, updated_at`

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	return &StreaksRepository{
		conn: mustConnect(cfg, "streaksRepo"),
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	if err := ensureStreakRow(ctx, sr.conn, uid); err != nil {
		return nil, err
	}
	row := sr.conn.QueryRow(ctx, `SELECT `+streakColumns+` FROM streaks WHERE user_id = $1;`, uid)
	streak, err := scanStreak(row)
	if err != nil {
		return nil, errors.New("searching streak error: " + err.Error())
	}
	return streak, nil
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func ensureStreakRow(ctx context.Context, conn execer, uid uuid.UUID) error {
	_, err := conn.Exec(ctx, `INSERT INTO streaks (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, uid)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating streak error: " + err.Error())
	}
	return nil
}

// advanceStreakTx locks the user's streak row and stores advance's result.
func advanceStreakTx(ctx context.Context, tx pgx.Tx, uid uuid.UUID, date time.Time, advance StreakAdvancer) (*entity.Streak, error) {
	if err := ensureStreakRow(ctx, tx, uid); err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `SELECT `+streakColumns+` FROM streaks WHERE user_id = $1 FOR UPDATE;`, uid)
	current, err := scanStreak(row)
	if err != nil {
		return nil, errors.New("locking streak error: " + err.Error())
	}
	next := advance(*current, date)
	_, err = tx.Exec(ctx,
		`UPDATE streaks SET current_streak = $1, longest_streak = $2, last_active_date = $3, updated_at = now() WHERE user_id = $4;`,
		next.CurrentStreak, next.LongestStreak, next.LastActiveDate, uid,
	)
	if err != nil {
		return nil, errors.New("updating streak error: " + err.Error())
	}
	return &next, nil
}

func scanStreak(row pgx.Row) (*entity.Streak, error) {
	var s entity.Streak
	if err := row.Scan(&s.UserID, &s.CurrentStreak, &s.LongestStreak, &s.LastActiveDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
