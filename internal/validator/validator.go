package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var messages = map[string]string{
	"required": "{field} cannot be empty",
	"gt":       "{field} must be greater than {param}",
	"max":      "{field} must be at most {param} characters",
}

// Error is returned for a struct that fails its validate tags.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// ValidateStruct checks data against its validate tags and reports the first
// failing field as a readable *Error.
func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return &Error{Message: message(err)}
	}
	return nil
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}
	for _, valErr := range valErrors {
		msg := messages[valErr.Tag()]
		if msg == "" {
			continue
		}
		msg = strings.ReplaceAll(msg, "{field}", valErr.Field())
		return strings.ReplaceAll(msg, "{param}", valErr.Param())
	}
	return valErrors.Error()
}
