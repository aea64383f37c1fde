// Package validation checks request payloads with validator/v10 and turns
// failures into apperr field errors.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"tripplanner-api/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// CrossFieldValidator is implemented by requests whose rules span fields.
type CrossFieldValidator interface {
	ValidateFields() []apperr.FieldError
}

var (
	once     sync.Once
	validate *validator.Validate

	nicknamePattern = regexp.MustCompile(`^[가-힣a-zA-Z0-9]+$`)
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("nickname", func(fl validator.FieldLevel) bool {
			return nicknamePattern.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return isStrongPassword(fl.Field().String())
		})
	})
	return validate
}

// Struct validates v and returns an InvalidInputValue error listing every
// failing field, or nil.
func Struct(v any) error {
	var fields []apperr.FieldError

	if err := engine().Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); !ok {
			return apperr.Wrap(apperr.InvalidInputValue, err)
		}
		for _, fe := range verrs {
			fields = append(fields, apperr.FieldError{
				Field:  fe.Field(),
				Value:  fmt.Sprintf("%v", derefValue(fe.Value())),
				Reason: reason(fe),
			})
		}
	}

	if cv, ok := v.(CrossFieldValidator); ok {
		fields = append(fields, cv.ValidateFields()...)
	}

	if len(fields) > 0 {
		return apperr.WithFields(apperr.InvalidInputValue, fields)
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func derefValue(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		return rv.Elem().Interface()
	}
	return v
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "nickname":
		return "may only contain Korean, English letters and digits"
	case "password":
		return "must contain a letter, a digit and a special character"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func isStrongPassword(s string) bool {
	var letter, digit, special bool
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			letter = true
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@$!%*#?&", r):
			special = true
		default:
			return false
		}
	}
	return letter && digit && special
}
