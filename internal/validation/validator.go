// Package validation holds the shared struct validator used for the content
// catalog and the settings.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their YAML names so errors point into the document.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			return IsLink(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsLink accepts absolute http(s) URLs with a host and mailto: addresses.
func IsLink(raw string) bool {
	if strings.TrimSpace(raw) != raw || raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.Host != ""
	case "mailto":
		return parsed.Opaque != ""
	default:
		return false
	}
}

// Struct validates v against its `validate` tags and converts the first
// failure into a ValidationError.
func Struct(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		return convert(err)
	}
	return nil
}

func convert(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return folioerrors.NewValidationError(field, msg, err)
	}
	return folioerrors.NewValidationError("", err.Error(), err)
}

// fieldName drops the root struct name from the namespace.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
