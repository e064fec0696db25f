package repository

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ChairulIkhsan23/niyyah-backend/pkg/cleanup"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NewPool opens a pgx pool and registers its closing as a cleanup job.
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging pgxpool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func mustConnect(cfg DBConfig, repoName string) *pgxpool.Pool {
	pool, err := NewPool(context.Background(), cfg)
	if err != nil {
		log.Fatal("connecting " + repoName + " error: " + err.Error())
	}
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	if err := conn.Ping(context.Background()); err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// withTx runs fn in a transaction, rolling back on any error from fn.
func withTx(ctx context.Context, conn PgConnection, fn func(tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			slog.Default().Error("transaction rollback failed", slog.String("error", rbErr.Error()))
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}
