package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid key at once.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := keyFor(e.Namespace())

	switch e.Tag() {
	case "required":
		if field == "api.token" {
			return fmt.Sprintf("%s is required (set %sAPI_TOKEN or pass --token)", field, EnvPrefix)
		}
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

var fieldKeys = map[string]string{
	"API":        "api",
	"BaseURL":    "base_url",
	"Token":      "token",
	"Timeout":    "timeout",
	"Log":        "log",
	"Level":      "level",
	"Format":     "format",
	"File":       "file",
	"Path":       "path",
	"MaxSizeMB":  "max_size",
	"MaxBackups": "max_backups",
	"MaxAgeDays": "max_age",
}

// keyFor converts "Config.API.BaseURL" to "api.base_url".
func keyFor(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		if key, ok := fieldKeys[part]; ok {
			parts[i] = key
		} else {
			parts[i] = strings.ToLower(part)
		}
	}

	return strings.Join(parts, ".")
}
