package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	KindInvalidFormat ErrorKind = "invalid_format"
	KindTooShort      ErrorKind = "too_short"
	KindTooLong       ErrorKind = "too_long"
	KindWrongLength   ErrorKind = "wrong_length"
)

// ValidationError represents a single validation error with translation support.
// Bound carries the length limit for length errors and is zero otherwise.
type ValidationError struct {
	Field             string
	Kind              ErrorKind
	Message           string
	Bound             int
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the ordered result of a validation. An empty slice
// means the value is valid.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasKind reports whether any error of the given kind is present.
func (ve ValidationErrors) HasKind(kind ErrorKind) bool {
	for _, err := range ve {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

// Kinds returns the error kinds in result order.
func (ve ValidationErrors) Kinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, len(ve))
	for _, err := range ve {
		kinds = append(kinds, err.Kind)
	}
	return kinds
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func (ve ValidationErrors) GetTranslatableErrors() []ValidationError {
	return ve
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := collect(rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// collect runs every rule in order and keeps the errors of the failing ones.
func collect(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
