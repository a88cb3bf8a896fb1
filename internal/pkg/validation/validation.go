package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var loginNamePattern = regexp.MustCompile(`^\w+$`)

// validate is the shared validator instance. validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// login names may only contain word characters: [a-zA-Z0-9_]
	_ = v.RegisterValidation("loginname", func(fl validator.FieldLevel) bool {
		return loginNamePattern.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates a request struct against its validate tags, returning a
// single human-readable message listing each failed field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]string, len(errs))
	for i, fe := range errs {
		messages[i] = fieldMessage(fe)
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "loginname":
		return fmt.Sprintf("%s can only contain word characters: [a-zA-Z0-9_]", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
