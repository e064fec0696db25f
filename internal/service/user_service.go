package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

type UserService struct {
	repo      repository.UsersRepositoryI
	tokens    TokenServiceI
	google    IdentityVerifier
	defaultTZ string
}

func NewUserService(usersRepo repository.UsersRepositoryI, tokens TokenServiceI, google IdentityVerifier, defaultTZ string) *UserService {
	if usersRepo == nil || tokens == nil {
		log.Fatal("provided nil usersRepo or tokens service")
	}
	if defaultTZ == "" {
		defaultTZ = "Asia/Jakarta"
	}
	return &UserService{
		repo:      usersRepo,
		tokens:    tokens,
		google:    google,
		defaultTZ: defaultTZ,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest, device string) (*AuthResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		City:         req.City,
		Timezone:     us.timezoneOr(req.Timezone),
		Gender:       req.Gender,
		DateOfBirth:  parseOptionalDate(req.DateOfBirth),
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	token, err := us.tokens.Issue(ctx, user, device)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (us *UserService) Login(ctx context.Context, req *LoginRequest, device string) (*AuthResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	token, err := us.tokens.Issue(ctx, user, device)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (us *UserService) GoogleSignIn(ctx context.Context, req *GoogleSignInRequest, device string) (*AuthResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if us.google == nil {
		return nil, errors.New("google sign-in isn't configured")
	}
	identity, err := us.google.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}
	user, err := us.findOrCreateGoogleUser(ctx, identity, req)
	if err != nil {
		return nil, err
	}
	if device == "" {
		device = "google_auth"
	}
	token, err := us.tokens.Issue(ctx, user, device)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (us *UserService) findOrCreateGoogleUser(ctx context.Context, identity *GoogleIdentity, req *GoogleSignInRequest) (*entity.User, error) {
	var picture *string
	if identity.Picture != "" {
		picture = &identity.Picture
	}
	user, err := us.repo.FindByGoogleID(ctx, identity.Subject)
	switch {
	case err == nil:
		if picture != nil && user.Avatar == nil {
			if err = us.repo.LinkGoogle(ctx, user.ID, identity.Subject, picture); err != nil {
				return nil, errors.New("repository updating error: " + err.Error())
			}
			user.Avatar = picture
		}
		return user, nil
	case !errors.Is(err, errorvalues.ErrUserNotFound):
		return nil, errors.New("repository searching error: " + err.Error())
	}

	email := strings.ToLower(identity.Email)
	user, err = us.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err = us.repo.LinkGoogle(ctx, user.ID, identity.Subject, picture); err != nil {
			return nil, errors.New("repository updating error: " + err.Error())
		}
		user.GoogleID = &identity.Subject
		if user.Avatar == nil {
			user.Avatar = picture
		}
		slog.Default().Info("google account linked to existing user", slog.String("uid", user.ID.String()))
		return user, nil
	case !errors.Is(err, errorvalues.ErrUserNotFound):
		return nil, errors.New("repository searching error: " + err.Error())
	}

	name := identity.Name
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	passwordHash, err := Hash(uuid.NewString())
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	city := ""
	if req.City != nil {
		city = *req.City
	}
	tz := ""
	if req.Timezone != nil {
		tz = *req.Timezone
	}
	user = &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		City:         city,
		Timezone:     us.timezoneOr(tz),
		Gender:       req.Gender,
		DateOfBirth:  parseOptionalDate(req.DateOfBirth),
		Avatar:       picture,
		GoogleID:     &identity.Subject,
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	slog.Default().Info("user created via google sign-in", slog.String("uid", user.ID.String()))
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.City != nil {
		user.City = *req.City
	}
	tz := ""
	if req.Timezone != nil {
		tz = *req.Timezone
	}
	user.Timezone = us.timezoneOr(tz)
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = parseOptionalDate(req.DateOfBirth)
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if err = us.repo.Update(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) ChangePassword(ctx context.Context, uid uuid.UUID, req *ChangePasswordRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	user, err := us.GetByID(ctx, uid)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errorvalues.ErrWrongPassword
	}
	passwordHash, err := Hash(req.NewPassword)
	if err != nil {
		return errors.New("hashing password error: " + err.Error())
	}
	if err = us.repo.UpdatePassword(ctx, uid, passwordHash); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongPassword
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (us *UserService) timezoneOr(tz string) string {
	if tz == "" {
		return us.defaultTZ
	}
	return tz
}

// parseOptionalDate expects an already validated YYYY-MM-DD string.
func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(entity.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
