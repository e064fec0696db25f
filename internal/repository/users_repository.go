package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

const userColumns = `id, name, email, password_hash, city, timezone, gender, date_of_birth, avatar, bio, google_id, created_at, updated_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return &UsersRepository{
		conn: mustConnect(cfg, "usersRepo"),
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, city, timezone, gender, date_of_birth, avatar, bio, google_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at;`,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.City,
		user.Timezone,
		user.Gender,
		user.DateOfBirth,
		user.Avatar,
		user.Bio,
		user.GoogleID,
	)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1;`, googleID)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by google id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	row := ur.conn.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2, city = $3, timezone = $4, gender = $5, date_of_birth = $6, bio = $7, updated_at = now()
		WHERE id = $8 RETURNING updated_at;`,
		user.Name,
		user.Email,
		user.City,
		user.Timezone,
		user.Gender,
		user.DateOfBirth,
		user.Bio,
		user.ID,
	)
	if err := row.Scan(&user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrUserNotFound
		}
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2;`, passwordHash, uid)
	if err != nil {
		return errors.New("updating password error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) LinkGoogle(ctx context.Context, uid uuid.UUID, googleID string, avatar *string) error {
	ct, err := ur.conn.Exec(ctx,
		`UPDATE users SET google_id = $1, avatar = COALESCE(avatar, $2), updated_at = now() WHERE id = $3;`,
		googleID, avatar, uid,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("linking google account error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.City,
		&user.Timezone,
		&user.Gender,
		&user.DateOfBirth,
		&user.Avatar,
		&user.Bio,
		&user.GoogleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
