package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct tags of cfg and reports every failing field.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	fields := FormatValidationError(err)
	msgs := make([]string, 0, len(fields))
	for field, msg := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)

	return fmt.Errorf("%s: %s", ErrContextValidation, strings.Join(msgs, "; "))
}

// fieldEnv maps struct fields to the environment variable that sets them
var fieldEnv = map[string]string{
	"Mode":           EnvLootMode,
	"StartItemLevel": EnvStartItemLevel,
	"LogLevel":       EnvLogLevel,
	"LogFormat":      EnvLogFormat,
	"Environment":    EnvEnvironment,
	"ServiceName":    EnvServiceName,
}

// FormatValidationError formats validation errors into a map keyed by the
// environment variable name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field, ok := fieldEnv[e.Field()]
		if !ok {
			field = e.Field()
		}
		switch e.Tag() {
		case "required":
			errs[field] = "must be set"
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s], got %q", e.Param(), e.Value())
		case "gte":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}
