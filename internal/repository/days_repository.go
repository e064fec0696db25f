package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

const dayColumns = `id, user_id, date, ramadhan_year, fasting, subuh, dzuhur, ashar, maghrib, isya, tarawih, quran_pages, dzikir_total, created_at, updated_at`

const totalsColumns = `count(*),
	count(*) FILTER (WHERE fasting),
	count(*) FILTER (WHERE subuh),
	count(*) FILTER (WHERE dzuhur),
	count(*) FILTER (WHERE ashar),
	count(*) FILTER (WHERE maghrib),
	count(*) FILTER (WHERE isya),
	count(*) FILTER (WHERE tarawih),
	COALESCE(sum(quran_pages), 0),
	COALESCE(sum(dzikir_total), 0)`

type DaysRepository struct {
	conn PgConnection
}

func NewDaysRepo(cfg DBConfig) *DaysRepository {
	return &DaysRepository{
		conn: mustConnect(cfg, "daysRepo"),
	}
}

func NewDaysRepoWithConn(conn PgConnection) *DaysRepository {
	mustPing(conn, "daysRepo")
	return &DaysRepository{
		conn: conn,
	}
}

func (dr *DaysRepository) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.ObservanceDay, error) {
	row := dr.conn.QueryRow(ctx, `SELECT `+dayColumns+` FROM ramadhan_days WHERE user_id = $1 AND date = $2;`, uid, date)
	day, err := scanDay(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayNotFound
		}
		return nil, errors.New("searching day by date error: " + err.Error())
	}
	return day, nil
}

func (dr *DaysRepository) GetByID(ctx context.Context, uid uuid.UUID, dayID int64) (*entity.ObservanceDay, error) {
	row := dr.conn.QueryRow(ctx, `SELECT `+dayColumns+` FROM ramadhan_days WHERE id = $1 AND user_id = $2;`, dayID, uid)
	day, err := scanDay(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayNotFound
		}
		return nil, errors.New("searching day by id error: " + err.Error())
	}
	return day, nil
}

func (dr *DaysRepository) Upsert(ctx context.Context, in *entity.DayUpsert, advance StreakAdvancer) (*entity.ObservanceDay, error) {
	if in == nil {
		return nil, errors.New("day is nil")
	}
	var day *entity.ObservanceDay
	err := withTx(ctx, dr.conn, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO ramadhan_days (user_id, date, ramadhan_year, fasting, subuh, dzuhur, ashar, maghrib, isya, tarawih, quran_pages, dzikir_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11::int, 0), COALESCE($12::int, 0))
			ON CONFLICT (user_id, date) DO UPDATE SET
				ramadhan_year = EXCLUDED.ramadhan_year,
				fasting = EXCLUDED.fasting,
				subuh = EXCLUDED.subuh,
				dzuhur = EXCLUDED.dzuhur,
				ashar = EXCLUDED.ashar,
				maghrib = EXCLUDED.maghrib,
				isya = EXCLUDED.isya,
				tarawih = EXCLUDED.tarawih,
				quran_pages = COALESCE($11::int, ramadhan_days.quran_pages),
				dzikir_total = COALESCE($12::int, ramadhan_days.dzikir_total),
				updated_at = now()
			RETURNING `+dayColumns+`;`,
			in.UserID,
			in.Date,
			in.RamadhanYear,
			in.Fasting,
			in.Subuh,
			in.Dzuhur,
			in.Ashar,
			in.Maghrib,
			in.Isya,
			in.Tarawih,
			in.QuranPages,
			in.DzikirTotal,
		)
		var err error
		day, err = scanDay(row)
		if err != nil {
			if pgErrCode(err) == pgForeignKeyViolation {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("upserting day error: " + err.Error())
		}
		if in.Fasting && advance != nil {
			if _, err := advanceStreakTx(ctx, tx, in.UserID, in.Date, advance); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (dr *DaysRepository) ReadingLogs(ctx context.Context, dayID int64) ([]*entity.ReadingLog, error) {
	rows, err := dr.conn.Query(ctx,
		`SELECT id, ramadhan_day_id, surah, ayah, pages, minutes, created_at, updated_at
		FROM quran_logs WHERE ramadhan_day_id = $1 ORDER BY created_at, id;`,
		dayID,
	)
	if err != nil {
		return nil, errors.New("listing quran logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]*entity.ReadingLog, 0)
	for rows.Next() {
		var l entity.ReadingLog
		if err := rows.Scan(&l.ID, &l.DayID, &l.Surah, &l.Ayah, &l.Pages, &l.Minutes, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, errors.New("scanning quran log error: " + err.Error())
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing quran logs error: " + err.Error())
	}
	return logs, nil
}

func (dr *DaysRepository) RecitationLogs(ctx context.Context, dayID int64) ([]*entity.RecitationLog, error) {
	rows, err := dr.conn.Query(ctx,
		`SELECT id, ramadhan_day_id, type, count, created_at, updated_at
		FROM dzikir_logs WHERE ramadhan_day_id = $1 ORDER BY created_at, id;`,
		dayID,
	)
	if err != nil {
		return nil, errors.New("listing dzikir logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]*entity.RecitationLog, 0)
	for rows.Next() {
		var l entity.RecitationLog
		if err := rows.Scan(&l.ID, &l.DayID, &l.Type, &l.Count, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, errors.New("scanning dzikir log error: " + err.Error())
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing dzikir logs error: " + err.Error())
	}
	return logs, nil
}

func (dr *DaysRepository) AddReadingLog(ctx context.Context, uid uuid.UUID, log *entity.ReadingLog) error {
	if log == nil {
		return errors.New("quran log is nil")
	}
	return withTx(ctx, dr.conn, func(tx pgx.Tx) error {
		// the increment doubles as the ownership check and locks the day row
		ct, err := tx.Exec(ctx,
			`UPDATE ramadhan_days SET quran_pages = quran_pages + $1, updated_at = now() WHERE id = $2 AND user_id = $3;`,
			log.Pages, log.DayID, uid,
		)
		if err != nil {
			return errors.New("incrementing quran pages error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrDayNotFound
		}
		row := tx.QueryRow(ctx,
			`INSERT INTO quran_logs (ramadhan_day_id, surah, ayah, pages, minutes) VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at;`,
			log.DayID, log.Surah, log.Ayah, log.Pages, log.Minutes,
		)
		if err := row.Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt); err != nil {
			return errors.New("creating quran log error: " + err.Error())
		}
		return nil
	})
}

func (dr *DaysRepository) DeleteReadingLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error {
	return withTx(ctx, dr.conn, func(tx pgx.Tx) error {
		var pages int
		row := tx.QueryRow(ctx,
			`DELETE FROM quran_logs l USING ramadhan_days d
			WHERE l.id = $1 AND l.ramadhan_day_id = $2 AND d.id = l.ramadhan_day_id AND d.user_id = $3
			RETURNING l.pages;`,
			logID, dayID, uid,
		)
		if err := row.Scan(&pages); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrLogNotFound
			}
			return errors.New("deleting quran log error: " + err.Error())
		}
		_, err := tx.Exec(ctx,
			`UPDATE ramadhan_days SET quran_pages = quran_pages - $1, updated_at = now() WHERE id = $2;`,
			pages, dayID,
		)
		if err != nil {
			return errors.New("decrementing quran pages error: " + err.Error())
		}
		return nil
	})
}

func (dr *DaysRepository) AddRecitationLog(ctx context.Context, uid uuid.UUID, log *entity.RecitationLog) error {
	if log == nil {
		return errors.New("dzikir log is nil")
	}
	return withTx(ctx, dr.conn, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx,
			`UPDATE ramadhan_days SET dzikir_total = dzikir_total + $1, updated_at = now() WHERE id = $2 AND user_id = $3;`,
			log.Count, log.DayID, uid,
		)
		if err != nil {
			return errors.New("incrementing dzikir total error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrDayNotFound
		}
		row := tx.QueryRow(ctx,
			`INSERT INTO dzikir_logs (ramadhan_day_id, type, count) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;`,
			log.DayID, log.Type, log.Count,
		)
		if err := row.Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt); err != nil {
			return errors.New("creating dzikir log error: " + err.Error())
		}
		return nil
	})
}

// UpdateRecitationLog sets a new count and moves the day's total by the difference.
func (dr *DaysRepository) UpdateRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64, count int) (*entity.RecitationLog, error) {
	var updated entity.RecitationLog
	err := withTx(ctx, dr.conn, func(tx pgx.Tx) error {
		var old int
		row := tx.QueryRow(ctx,
			`SELECT l.count FROM dzikir_logs l JOIN ramadhan_days d ON d.id = l.ramadhan_day_id
			WHERE l.id = $1 AND l.ramadhan_day_id = $2 AND d.user_id = $3 FOR UPDATE OF l;`,
			logID, dayID, uid,
		)
		if err := row.Scan(&old); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrLogNotFound
			}
			return errors.New("locking dzikir log error: " + err.Error())
		}
		row = tx.QueryRow(ctx,
			`UPDATE dzikir_logs SET count = $1, updated_at = now() WHERE id = $2
			RETURNING id, ramadhan_day_id, type, count, created_at, updated_at;`,
			count, logID,
		)
		err := row.Scan(&updated.ID, &updated.DayID, &updated.Type, &updated.Count, &updated.CreatedAt, &updated.UpdatedAt)
		if err != nil {
			return errors.New("updating dzikir log error: " + err.Error())
		}
		_, err = tx.Exec(ctx,
			`UPDATE ramadhan_days SET dzikir_total = dzikir_total + $1, updated_at = now() WHERE id = $2;`,
			count-old, dayID,
		)
		if err != nil {
			return errors.New("adjusting dzikir total error: " + err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (dr *DaysRepository) DeleteRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error {
	return withTx(ctx, dr.conn, func(tx pgx.Tx) error {
		var count int
		row := tx.QueryRow(ctx,
			`DELETE FROM dzikir_logs l USING ramadhan_days d
			WHERE l.id = $1 AND l.ramadhan_day_id = $2 AND d.id = l.ramadhan_day_id AND d.user_id = $3
			RETURNING l.count;`,
			logID, dayID, uid,
		)
		if err := row.Scan(&count); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrLogNotFound
			}
			return errors.New("deleting dzikir log error: " + err.Error())
		}
		_, err := tx.Exec(ctx,
			`UPDATE ramadhan_days SET dzikir_total = dzikir_total - $1, updated_at = now() WHERE id = $2;`,
			count, dayID,
		)
		if err != nil {
			return errors.New("decrementing dzikir total error: " + err.Error())
		}
		return nil
	})
}

func (dr *DaysRepository) TotalsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) (entity.ObservanceTotals, error) {
	row := dr.conn.QueryRow(ctx,
		`SELECT `+totalsColumns+` FROM ramadhan_days WHERE user_id = $1 AND date BETWEEN $2 AND $3;`,
		uid, from, to,
	)
	totals, err := scanTotals(row)
	if err != nil {
		return entity.ObservanceTotals{}, errors.New("summarizing days error: " + err.Error())
	}
	return totals, nil
}

func (dr *DaysRepository) TotalsForYear(ctx context.Context, uid uuid.UUID, year int) (entity.ObservanceTotals, error) {
	row := dr.conn.QueryRow(ctx,
		`SELECT `+totalsColumns+` FROM ramadhan_days WHERE user_id = $1 AND ramadhan_year = $2;`,
		uid, year,
	)
	totals, err := scanTotals(row)
	if err != nil {
		return entity.ObservanceTotals{}, errors.New("summarizing year error: " + err.Error())
	}
	return totals, nil
}

func scanDay(row pgx.Row) (*entity.ObservanceDay, error) {
	var d entity.ObservanceDay
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Date,
		&d.RamadhanYear,
		&d.Fasting,
		&d.Subuh,
		&d.Dzuhur,
		&d.Ashar,
		&d.Maghrib,
		&d.Isya,
		&d.Tarawih,
		&d.QuranPages,
		&d.DzikirTotal,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanTotals(row pgx.Row) (entity.ObservanceTotals, error) {
	var t entity.ObservanceTotals
	err := row.Scan(
		&t.Days,
		&t.Fasting,
		&t.Subuh,
		&t.Dzuhur,
		&t.Ashar,
		&t.Maghrib,
		&t.Isya,
		&t.Tarawih,
		&t.QuranPages,
		&t.DzikirTotal,
	)
	return t, err
}
