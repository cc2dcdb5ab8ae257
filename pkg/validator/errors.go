package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidConfig is returned when an email validation is declared with
	// options that cannot be resolved. It signals a programming error.
	ErrInvalidConfig = errors.New("invalid email validation config")
)

// ConfigError reports the option key that made resolution fail.
// It matches ErrInvalidConfig with errors.Is.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q", ErrInvalidConfig, e.Key)
	}
	return fmt.Sprintf("%s: %q: %s", ErrInvalidConfig, e.Key, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErr(key, format string, args ...any) error {
	return &ConfigError{Key: key, Reason: fmt.Sprintf(format, args...)}
}
