package repository

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks . BookmarksRepositoryI,DaysRepositoryI,StreaksRepositoryI,TokensRepositoryI,UsersRepositoryI

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user. ID, CreatedAt and UpdatedAt are filled from the database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	// Updates profile fields (name, email, city, timezone, gender, date of birth, bio)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error
	LinkGoogle(ctx context.Context, uid uuid.UUID, googleID string, avatar *string) error
	// Deletes user with everything owned by them
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TokensRepositoryI interface {
	Create(ctx context.Context, token *entity.AuthToken) error
	// Returns a live (not expired) token
	Find(ctx context.Context, id uuid.UUID) (*entity.AuthToken, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.AuthToken, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
	// Revokes every token of user, returns the number revoked
	DeleteAllByUser(ctx context.Context, uid uuid.UUID) (int64, error)
}

// StreakAdvancer computes the next streak state for a qualifying date.
type StreakAdvancer func(current entity.Streak, date time.Time) entity.Streak

type DaysRepositoryI interface {
	GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.ObservanceDay, error)
	GetByID(ctx context.Context, uid uuid.UUID, dayID int64) (*entity.ObservanceDay, error)
	// Inserts or updates the (user, date) record. When day.Fasting is set and advance isn't nil
	// the user's streak is advanced in the same transaction
	Upsert(ctx context.Context, day *entity.DayUpsert, advance StreakAdvancer) (*entity.ObservanceDay, error)
	ReadingLogs(ctx context.Context, dayID int64) ([]*entity.ReadingLog, error)
	RecitationLogs(ctx context.Context, dayID int64) ([]*entity.RecitationLog, error)
	// Log mutations keep the parent day's totals in step within one transaction
	AddReadingLog(ctx context.Context, uid uuid.UUID, log *entity.ReadingLog) error
	DeleteReadingLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error
	AddRecitationLog(ctx context.Context, uid uuid.UUID, log *entity.RecitationLog) error
	UpdateRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64, count int) (*entity.RecitationLog, error)
	DeleteRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error
	// Aggregates days with from <= date <= to
	TotalsBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) (entity.ObservanceTotals, error)
	TotalsForYear(ctx context.Context, uid uuid.UUID, year int) (entity.ObservanceTotals, error)
}

type BookmarksRepositoryI interface {
	// Ordered by surah then ayah
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Bookmark, error)
	// Reports whether the same reference is already bookmarked, comparing absent ayah/page as equal
	Exists(ctx context.Context, bookmark *entity.Bookmark) (bool, error)
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	Delete(ctx context.Context, uid uuid.UUID, id int64) error
}

type StreaksRepositoryI interface {
	// Returns user's streak, creating a zero row first if there is none
	Get(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
