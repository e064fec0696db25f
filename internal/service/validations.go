package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

var dzikirTypes = map[string]struct{}{
	"tasbih":    {},
	"tahmid":    {},
	"takbir":    {},
	"tahlil":    {},
	"istighfar": {},
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Errors are reported with json names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		validate.RegisterValidation("dzikir_type", func(fl validator.FieldLevel) bool {
			_, ok := dzikirTypes[fl.Field().String()]
			return ok
		})
		validate.RegisterValidation("before_today", func(fl validator.FieldLevel) bool {
			date, err := time.Parse(entity.DateLayout, fl.Field().String())
			if err != nil {
				return false
			}
			return date.Before(calendarDay(time.Now()))
		})
		validate.RegisterStructValidation(func(sl validator.StructLevel) {
			req := sl.Current().Interface().(BookmarkRequest)
			if req.Ayah == nil && req.Page == nil {
				sl.ReportError(req.Ayah, "ayah", "Ayah", "ayah_or_page", "")
			}
		}, BookmarkRequest{})
	})
}

// validateStruct turns validator failures into a ValidationError keyed by field.
func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if _, ok := fields[fieldErr.Field()]; ok {
			continue
		}
		fields[fieldErr.Field()] = describe(fieldErr)
	}
	return &errorvalues.ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "eqfield":
		return "confirmation doesn't match"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "before_today":
		return "must be a date before today"
	case "timezone":
		return "must be a valid IANA timezone"
	case "dzikir_type":
		return "must be one of: tasbih tahmid takbir tahlil istighfar"
	case "ayah_or_page":
		return "ayah or page is required"
	default:
		return "is invalid"
	}
}
