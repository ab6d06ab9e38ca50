// Package validation validates request payloads and route identifiers.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		return models.Urgency(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("macroname", func(fl validator.FieldLevel) bool {
		return ValidateMacroName(fl.Field().String()) == nil
	})
}

// Struct validates s against its `validate` tags and returns a validation
// AppError listing every failing field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return models.NewValidationError(strings.Join(messages, "; "))
}

// Slice validates each element of items.
func Slice[T any](items []T) error {
	for i := range items {
		if err := Struct(&items[i]); err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) {
				return models.NewValidationError(fmt.Sprintf("item %d: %s", i, appErr.Message))
			}
			return err
		}
	}
	return nil
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "urgency":
		return fmt.Sprintf("%s must be one of Low, Medium, High, Urgent", field)
	case "macroname":
		return fmt.Sprintf("%s is not a valid macro name", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var guildIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateGuildID checks the tenant key taken from the route.
func ValidateGuildID(id string) error {
	if !guildIDRegex.MatchString(id) {
		return errors.New("guild_id must be 1-64 characters of letters, digits, '-' or '_'")
	}
	return nil
}

// reservedMacroNames collide with fixed routes under /macros.
var reservedMacroNames = map[string]struct{}{
	"quick-access": {},
}

// ValidateMacroName checks that a macro name is usable as a single path segment.
func ValidateMacroName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name must not be blank")
	}
	if len(name) > 100 {
		return errors.New("name must be at most 100 characters")
	}
	if strings.ContainsAny(name, "/?#") {
		return errors.New("name must not contain '/', '?' or '#'")
	}
	if _, reserved := reservedMacroNames[strings.ToLower(name)]; reserved {
		return fmt.Errorf("name %q is reserved", name)
	}
	return nil
}
