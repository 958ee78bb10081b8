// internal/validator/validator.go
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var (
	nonSpaceRe  = regexp.MustCompile(`\S`)
	snakeCaseRe = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
)

func init() {
	Validate = validator.New()

	// "2024-12"
	_ = Validate.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})

	// not empty and not only whitespace
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpaceRe.MatchString(fl.Field().String())
	})

	// catalog ids: "pet_supplies", "smart_home2"
	_ = Validate.RegisterValidation("snakecase", func(fl validator.FieldLevel) bool {
		return snakeCaseRe.MatchString(fl.Field().String())
	})
}

// IsSnakeCase reports whether s is a valid catalog identifier.
func IsSnakeCase(s string) bool {
	return snakeCaseRe.MatchString(s)
}

// Struct validates v and folds all field errors into one message.
func Struct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldErrorToString(e))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func fieldErrorToString(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "yearmonth":
		return fmt.Sprintf("%s must be in YYYY-MM format", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "snakecase":
		return fmt.Sprintf("%s must be snake_case", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, e.Param())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", field)
		}
		return fmt.Sprintf("%s is too short", field)
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", field)
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
