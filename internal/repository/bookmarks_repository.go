package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

type BookmarksRepository struct {
	conn PgConnection
}

func NewBookmarksRepo(cfg DBConfig) *BookmarksRepository {
	return &BookmarksRepository{
		conn: mustConnect(cfg, "bookmarksRepo"),
	}
}

func NewBookmarksRepoWithConn(conn PgConnection) *BookmarksRepository {
	mustPing(conn, "bookmarksRepo")
	return &BookmarksRepository{
		conn: conn,
	}
}

func (br *BookmarksRepository) List(ctx context.Context, uid uuid.UUID) ([]*entity.Bookmark, error) {
	rows, err := br.conn.Query(ctx,
		`SELECT id, user_id, surah, ayah, page, created_at, updated_at FROM bookmarks
		WHERE user_id = $1 ORDER BY surah, ayah NULLS FIRST, id;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing bookmarks error: " + err.Error())
	}
	defer rows.Close()
	bookmarks := make([]*entity.Bookmark, 0)
	for rows.Next() {
		var b entity.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Surah, &b.Ayah, &b.Page, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, errors.New("scanning bookmark error: " + err.Error())
		}
		bookmarks = append(bookmarks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing bookmarks error: " + err.Error())
	}
	return bookmarks, nil
}

func (br *BookmarksRepository) Exists(ctx context.Context, bookmark *entity.Bookmark) (bool, error) {
	var exists bool
	row := br.conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookmarks WHERE user_id = $1 AND surah = $2
		AND ayah IS NOT DISTINCT FROM $3::smallint AND page IS NOT DISTINCT FROM $4::smallint);`,
		bookmark.UserID, bookmark.Surah, bookmark.Ayah, bookmark.Page,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("checking bookmark existence error: " + err.Error())
	}
	return exists, nil
}

func (br *BookmarksRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	if bookmark == nil {
		return errors.New("bookmark is nil")
	}
	row := br.conn.QueryRow(ctx,
		`INSERT INTO bookmarks (user_id, surah, ayah, page) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;`,
		bookmark.UserID, bookmark.Surah, bookmark.Ayah, bookmark.Page,
	)
	if err := row.Scan(&bookmark.ID, &bookmark.CreatedAt, &bookmark.UpdatedAt); err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrBookmarkExists
		case pgForeignKeyViolation:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating bookmark error: " + err.Error())
	}
	return nil
}

func (br *BookmarksRepository) Delete(ctx context.Context, uid uuid.UUID, id int64) error {
	ct, err := br.conn.Exec(ctx, `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting bookmark error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBookmarkNotFound
	}
	return nil
}
