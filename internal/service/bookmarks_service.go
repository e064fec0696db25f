package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/google/uuid"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

type BookmarksService struct {
	repo  repository.BookmarksRepositoryI
	quran QuranLookup
}

func NewBookmarksService(bookmarksRepo repository.BookmarksRepositoryI, quran QuranLookup) *BookmarksService {
	if bookmarksRepo == nil {
		log.Fatal("provided nil bookmarksRepo")
	}
	return &BookmarksService{
		repo:  bookmarksRepo,
		quran: quran,
	}
}

func (bs *BookmarksService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Bookmark, error) {
	bookmarks, err := bs.repo.List(ctx, uid)
	if err != nil {
		return nil, errors.New("bookmarks repository error: " + err.Error())
	}
	for _, b := range bookmarks {
		bs.enrich(ctx, b)
	}
	return bookmarks, nil
}

func (bs *BookmarksService) Add(ctx context.Context, uid uuid.UUID, req *BookmarkRequest) (*entity.Bookmark, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	b := &entity.Bookmark{
		UserID: uid,
		Surah:  req.Surah,
		Ayah:   req.Ayah,
		Page:   req.Page,
	}
	exists, err := bs.repo.Exists(ctx, b)
	if err != nil {
		return nil, errors.New("bookmarks repository error: " + err.Error())
	}
	if exists {
		return nil, errorvalues.ErrBookmarkExists
	}
	if err = bs.repo.Create(ctx, b); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBookmarkExists), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("bookmarks repository error: " + err.Error())
	}
	bs.enrich(ctx, b)
	return b, nil
}

func (bs *BookmarksService) Delete(ctx context.Context, uid uuid.UUID, id int64) error {
	err := bs.repo.Delete(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookmarkNotFound) {
			return err
		}
		return errors.New("bookmarks repository error: " + err.Error())
	}
	return nil
}

func (bs *BookmarksService) enrich(ctx context.Context, b *entity.Bookmark) {
	b.SurahName = "Surah " + strconv.Itoa(b.Surah)
	if bs.quran == nil {
		return
	}
	if info, ok := bs.quran.SurahBasicInfo(context.WithoutCancel(ctx), b.Surah); ok {
		b.SurahName = info.Name
		b.SurahNameArabic = info.NameArabic
	}
}
