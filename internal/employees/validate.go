package employees

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

type commandValidator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
}

func newCommandValidator() *commandValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("text", validText)

	return &commandValidator{
		validate: v,
		policy:   bluemonday.StrictPolicy(),
	}
}

// sanitize strips markup and surrounding whitespace. The result is plain
// text; escaping is left to whatever renders it.
func (cv *commandValidator) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(cv.policy.Sanitize(s)))
}

// prepare sanitizes cmd and validates the result.
func (cv *commandValidator) prepare(cmd CreateCommand) (CreateCommand, error) {
	cmd.Name = cv.sanitize(cmd.Name)
	cmd.Department = cv.sanitize(cmd.Department)
	cmd.Language = cv.sanitize(cmd.Language)
	cmd.Role = Role(strings.ToLower(cv.sanitize(string(cmd.Role))))

	if err := cv.validate.Struct(cmd); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return cmd, fmt.Errorf("%w: %s", ErrInvalidCommand, describe(fieldErrs[0]))
		}
		return cmd, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	return cmd, nil
}

// validText rejects strings a TEXT column cannot hold: invalid UTF-8 and NUL.
func validText(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "text":
		return fe.Field() + " must be valid UTF-8 text without NUL characters"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}
