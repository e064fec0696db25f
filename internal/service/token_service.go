package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

const (
	bearerTokenType = "Bearer"
	maxDeviceName   = 255
	defaultDevice   = "mobile"
)

type TokenService struct {
	repo   repository.TokensRepositoryI
	signer TokenSigner
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(tokensRepo repository.TokensRepositoryI, signer TokenSigner, ttl time.Duration) *TokenService {
	if tokensRepo == nil || signer == nil {
		log.Fatal("provided nil tokensRepo or signer")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &TokenService{
		repo:   tokensRepo,
		signer: signer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (ts *TokenService) Issue(ctx context.Context, user *entity.User, device string) (*IssuedToken, error) {
	// the column limit counts characters, header values may carry any bytes
	device = strings.ToValidUTF8(device, "")
	if device == "" {
		device = defaultDevice
	}
	if utf8.RuneCountInString(device) > maxDeviceName {
		device = string([]rune(device)[:maxDeviceName])
	}
	row := entity.AuthToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      device,
		ExpiresAt: ts.now().Add(ts.ttl).UTC(),
	}
	if err := ts.repo.Create(ctx, &row); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("tokens repository error: " + err.Error())
	}
	signed, err := ts.signer.GenerateToken(row.ID, user.ID, user.Email, row.ExpiresAt)
	if err != nil {
		return nil, errors.New("signing token error: " + err.Error())
	}
	return &IssuedToken{
		AccessToken: signed,
		TokenType:   bearerTokenType,
		ExpiresIn:   int64(ts.ttl.Seconds()),
		ExpiresAt:   row.ExpiresAt,
	}, nil
}

func (ts *TokenService) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := ts.signer.ParseToken(token)
	if err != nil {
		return nil, errorvalues.ErrInvalidToken
	}
	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, errorvalues.ErrInvalidToken
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errorvalues.ErrInvalidToken
	}
	row, err := ts.repo.Find(ctx, tokenID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTokenNotFound) {
			return nil, errorvalues.ErrInvalidToken
		}
		return nil, errors.New("tokens repository error: " + err.Error())
	}
	if row.UserID != uid {
		return nil, errorvalues.ErrInvalidToken
	}
	if err = ts.repo.Touch(ctx, tokenID, ts.now().UTC()); err != nil {
		return nil, errors.New("tokens repository error: " + err.Error())
	}
	return &Session{UserID: uid, TokenID: tokenID}, nil
}

func (ts *TokenService) Revoke(ctx context.Context, uid, tokenID uuid.UUID) error {
	err := ts.repo.Delete(ctx, uid, tokenID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTokenNotFound) {
			return err
		}
		return errors.New("tokens repository error: " + err.Error())
	}
	return nil
}

func (ts *TokenService) Devices(ctx context.Context, uid uuid.UUID) ([]*entity.AuthToken, error) {
	tokens, err := ts.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("tokens repository error: " + err.Error())
	}
	return tokens, nil
}

func (ts *TokenService) RevokeAll(ctx context.Context, uid uuid.UUID) (int64, error) {
	n, err := ts.repo.DeleteAllByUser(ctx, uid)
	if err != nil {
		return 0, errors.New("tokens repository error: " + err.Error())
	}
	return n, nil
}
