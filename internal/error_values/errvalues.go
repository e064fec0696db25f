package errorvalues

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrWrongPassword    = errors.New("current password doesn't match")

	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token doesn't exist or was revoked")
	ErrGoogleTokenInvalid = errors.New("google id token rejected")

	ErrDayNotFound      = errors.New("observance day doesn't exist")
	ErrLogNotFound      = errors.New("log entry doesn't exist")
	ErrBookmarkNotFound = errors.New("bookmark doesn't exist")
	ErrBookmarkExists   = errors.New("bookmark already exists")
	ErrFutureDate       = errors.New("date is in the future")
	ErrInvalidDate      = errors.New("invalid date")

	ErrCityNotFound  = errors.New("city isn't known")
	ErrSurahNotFound = errors.New("surah not found")

	ErrValidation = errors.New("validation error")
)

// ValidationError keeps a message per offending request field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
