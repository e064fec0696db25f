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

type TokensRepository struct {
	conn PgConnection
}

func NewTokensRepo(cfg DBConfig) *TokensRepository {
	return &TokensRepository{
		conn: mustConnect(cfg, "tokensRepo"),
	}
}

func NewTokensRepoWithConn(conn PgConnection) *TokensRepository {
	mustPing(conn, "tokensRepo")
	return &TokensRepository{
		conn: conn,
	}
}

func (tr *TokensRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	if token == nil {
		return errors.New("token is nil")
	}
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO auth_tokens (id, user_id, name, expires_at) VALUES ($1, $2, $3, $4) RETURNING created_at;`,
		token.ID, token.UserID, token.Name, token.ExpiresAt,
	)
	if err := row.Scan(&token.CreatedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating token error: " + err.Error())
	}
	return nil
}

func (tr *TokensRepository) Find(ctx context.Context, id uuid.UUID) (*entity.AuthToken, error) {
	var token entity.AuthToken
	row := tr.conn.QueryRow(ctx,
		`SELECT id, user_id, name, last_used_at, expires_at, created_at FROM auth_tokens WHERE id = $1 AND expires_at > now();`,
		id,
	)
	if err := row.Scan(&token.ID, &token.UserID, &token.Name, &token.LastUsedAt, &token.ExpiresAt, &token.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTokenNotFound
		}
		return nil, errors.New("searching token error: " + err.Error())
	}
	return &token, nil
}

func (tr *TokensRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := tr.conn.Exec(ctx, `UPDATE auth_tokens SET last_used_at = $1 WHERE id = $2;`, at, id)
	if err != nil {
		return errors.New("touching token error: " + err.Error())
	}
	return nil
}

func (tr *TokensRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.AuthToken, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT id, user_id, name, last_used_at, expires_at, created_at FROM auth_tokens
		WHERE user_id = $1 AND expires_at > now() ORDER BY created_at DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing tokens error: " + err.Error())
	}
	defer rows.Close()
	tokens := make([]*entity.AuthToken, 0)
	for rows.Next() {
		var t entity.AuthToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.LastUsedAt, &t.ExpiresAt, &t.CreatedAt); err != nil {
			return nil, errors.New("scanning token error: " + err.Error())
		}
		tokens = append(tokens, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing tokens error: " + err.Error())
	}
	return tokens, nil
}

func (tr *TokensRepository) Delete(ctx context.Context, uid, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM auth_tokens WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting token error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTokenNotFound
	}
	return nil
}

func (tr *TokensRepository) DeleteAllByUser(ctx context.Context, uid uuid.UUID) (int64, error) {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM auth_tokens WHERE user_id = $1;`, uid)
	if err != nil {
		return 0, errors.New("deleting user's tokens error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
