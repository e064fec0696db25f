package service

//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks . BookmarksServiceI,IdentityVerifier,LedgerServiceI,QuranLookup,TokenServiceI,TokenSigner,UserServiceI

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/islamic"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
	jwtservice "github.com/ChairulIkhsan23/niyyah-backend/pkg/jwt_service"
)

type RegisterRequest struct {
	Name                 string  `json:"name" validate:"required,max=100"`
	Email                string  `json:"email" validate:"required,email,max=255"`
	Password             string  `json:"password" validate:"required,min=6,max=72"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required,eqfield=Password"`
	City                 string  `json:"city" validate:"required,max=100"`
	Timezone             string  `json:"timezone" validate:"omitempty,max=100,timezone"`
	Gender               *string `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth          *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02,before_today"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleSignInRequest struct {
	IDToken     string  `json:"id_token" validate:"required"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Timezone    *string `json:"timezone" validate:"omitempty,max=100,timezone"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02,before_today"`
}

// UpdateProfileRequest replaces name and email. Nil optional fields keep the stored value,
// except timezone which falls back to the default.
type UpdateProfileRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Timezone    *string `json:"timezone" validate:"omitempty,max=100,timezone"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02,before_today"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password" validate:"required"`
	NewPassword             string `json:"new_password" validate:"required,min=8,max=72"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}

type UpsertDayRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Fasting     bool   `json:"fasting"`
	Subuh       bool   `json:"subuh"`
	Dzuhur      bool   `json:"dzuhur"`
	Ashar       bool   `json:"ashar"`
	Maghrib     bool   `json:"maghrib"`
	Isya        bool   `json:"isya"`
	Tarawih     bool   `json:"tarawih"`
	QuranPages  *int   `json:"quran_pages" validate:"omitempty,min=0"`
	DzikirTotal *int   `json:"dzikir_total" validate:"omitempty,min=0"`
}

type ReadingLogRequest struct {
	Surah   int  `json:"surah" validate:"required,min=1,max=114"`
	Ayah    *int `json:"ayah" validate:"omitempty,min=1,max=286"`
	Pages   int  `json:"pages" validate:"required,min=1,max=604"`
	Minutes int  `json:"minutes" validate:"required,min=1,max=1440"`
}

type RecitationLogRequest struct {
	Type  string `json:"type" validate:"required,dzikir_type"`
	Count int    `json:"count" validate:"required,min=1,max=100000"`
}

type UpdateRecitationLogRequest struct {
	Count int `json:"count" validate:"required,min=1,max=100000"`
}

// BookmarkRequest needs at least one of ayah and page.
type BookmarkRequest struct {
	Surah int  `json:"surah" validate:"required,min=1,max=114"`
	Ayah  *int `json:"ayah" validate:"omitempty,min=1,max=286"`
	Page  *int `json:"page" validate:"omitempty,min=1,max=604"`
}

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token *IssuedToken `json:"-"`
}

// Session identifies the authenticated caller of a request.
type Session struct {
	UserID  uuid.UUID
	TokenID uuid.UUID
}

type UserServiceI interface {
	// Validates request, creates user and issues the first token
	Register(ctx context.Context, req *RegisterRequest, device string) (*AuthResult, error)
	// Checks credentials by email. Unknown email and wrong password both give ErrWrongCredentials
	Login(ctx context.Context, req *LoginRequest, device string) (*AuthResult, error)
	// Verifies google id token, finds, links or creates the user and issues a token
	GoogleSignIn(ctx context.Context, req *GoogleSignInRequest, device string) (*AuthResult, error)
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	ChangePassword(ctx context.Context, uid uuid.UUID, req *ChangePasswordRequest) error
	// Deletes account after password check. Everything owned by the user cascades
	DeleteAccount(ctx context.Context, uid uuid.UUID, password string) error
}

type TokenServiceI interface {
	Issue(ctx context.Context, user *entity.User, device string) (*IssuedToken, error)
	// Parses bearer token, checks that its row is alive and marks it used
	Authenticate(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, uid, tokenID uuid.UUID) error
	Devices(ctx context.Context, uid uuid.UUID) ([]*entity.AuthToken, error)
	RevokeAll(ctx context.Context, uid uuid.UUID) (int64, error)
}

type LedgerServiceI interface {
	// Day for today's date in tz. ErrDayNotFound when nothing was recorded yet
	Today(ctx context.Context, uid uuid.UUID, tz string) (*entity.ObservanceDay, error)
	GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.ObservanceDay, error)
	UpsertDay(ctx context.Context, uid uuid.UUID, tz string, req *UpsertDayRequest) (*entity.ObservanceDay, error)
	ReadingLogs(ctx context.Context, uid uuid.UUID, dayID int64) ([]*entity.ReadingLog, error)
	AddReadingLog(ctx context.Context, uid uuid.UUID, dayID int64, req *ReadingLogRequest) (*entity.ReadingLog, error)
	DeleteReadingLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error
	RecitationLogs(ctx context.Context, uid uuid.UUID, dayID int64) ([]*entity.RecitationLog, error)
	AddRecitationLog(ctx context.Context, uid uuid.UUID, dayID int64, req *RecitationLogRequest) (*entity.RecitationLog, error)
	UpdateRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64, req *UpdateRecitationLogRequest) (*entity.RecitationLog, error)
	DeleteRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error
	Streak(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
	MonthlySummary(ctx context.Context, uid uuid.UUID, tz string) (*entity.MonthlySummary, error)
	YearlySummary(ctx context.Context, uid uuid.UUID, year int) (*entity.YearlySummary, error)
	SurahList(ctx context.Context) []islamic.SurahOption
}

type BookmarksServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Bookmark, error)
	// Rejects a reference the user already bookmarked with ErrBookmarkExists
	Add(ctx context.Context, uid uuid.UUID, req *BookmarkRequest) (*entity.Bookmark, error)
	Delete(ctx context.Context, uid uuid.UUID, id int64) error
}

// QuranLookup is the part of the Quran adapter used to enrich logs and bookmarks.
type QuranLookup interface {
	SurahBasicInfo(ctx context.Context, id int) (islamic.SurahInfo, bool)
	VerseText(ctx context.Context, surah, verse int) (islamic.VerseText, bool)
	SurahSelector(ctx context.Context) []islamic.SurahOption
}

// IdentityVerifier checks third party id tokens.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// TokenSigner signs and parses bearer tokens.
type TokenSigner interface {
	GenerateToken(tokenID, userID uuid.UUID, email string, expiresAt time.Time) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}
