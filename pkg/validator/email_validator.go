package validator

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// FieldGetter returns the current value of a declared field, nil when the
// value is absent.
type FieldGetter func(field string) *string

// EmailValidator is the result of an email validation declaration. The host
// keeps it next to its other field validators and calls it during its own
// lifecycle. It holds no mutable state and is safe for concurrent use.
type EmailValidator struct {
	fields []string
	config Config
}

// Declare registers an email validation of fields with the default messages.
func Declare(fields []string, opts Options) (*EmailValidator, error) {
	return defaultResolver.Declare(fields, opts)
}

// DeclareMap is like Declare for options given as a dynamic map.
func DeclareMap(fields []string, raw map[string]any) (*EmailValidator, error) {
	return defaultResolver.DeclareMap(fields, raw)
}

// MustDeclare is like Declare but panics on an invalid declaration.
func MustDeclare(fields []string, opts Options) *EmailValidator {
	v, err := Declare(fields, opts)
	if err != nil {
		panic(fmt.Sprintf("email validation declaration: %v", err))
	}
	return v
}

// Declare registers an email validation of fields using the resolver's
// message table.
func (r *Resolver) Declare(fields []string, opts Options) (*EmailValidator, error) {
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	cfg, err := r.Resolve(opts)
	if err != nil {
		return nil, err
	}
	return NewEmailValidator(fields, cfg), nil
}

// DeclareMap is like Declare for options given as a dynamic map.
func (r *Resolver) DeclareMap(fields []string, raw map[string]any) (*EmailValidator, error) {
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	cfg, err := r.ResolveMap(raw)
	if err != nil {
		return nil, err
	}
	return NewEmailValidator(fields, cfg), nil
}

func checkFields(fields []string) error {
	if len(fields) == 0 {
		return &ConfigError{Key: "fields", Reason: "at least one field is required"}
	}
	if lo.Contains(fields, "") {
		return &ConfigError{Key: "fields", Reason: "field name must not be empty"}
	}
	return nil
}

// NewEmailValidator binds an already resolved config to fields. Duplicate
// field names are validated once.
func NewEmailValidator(fields []string, cfg Config) *EmailValidator {
	return &EmailValidator{
		fields: lo.Uniq(fields),
		config: cfg,
	}
}

// Fields returns the declared fields in declaration order.
func (v *EmailValidator) Fields() []string {
	return append([]string(nil), v.fields...)
}

// Config returns the resolved configuration.
func (v *EmailValidator) Config() Config {
	return v.config
}

// ValidateValue validates a single candidate for field.
func (v *EmailValidator) ValidateValue(field string, candidate *string, isActive bool) ValidationErrors {
	return Validate(field, candidate, v.config, isActive)
}

// Validate validates every declared field, in declaration order.
func (v *EmailValidator) Validate(get FieldGetter, isActive bool) ValidationErrors {
	var errs ValidationErrors
	for _, field := range v.fields {
		errs = append(errs, Validate(field, get(field), v.config, isActive)...)
	}
	return errs
}

// ValidateOn validates every declared field when the declaration is active
// for event.
func (v *EmailValidator) ValidateOn(event Event, get FieldGetter) ValidationErrors {
	return v.Validate(get, v.config.ActiveOn(event))
}

// Rules returns the format and length checks of value as rules, for use
// with Apply. Skip rules are not applied.
func (v *EmailValidator) Rules(field, value string) []Rule {
	return rules(field, value, v.config)
}

// Err returns the validation result of get as an error, nil when valid.
func (v *EmailValidator) Err(get FieldGetter, isActive bool) error {
	if errs := v.Validate(get, isActive); !errs.IsEmpty() {
		return errors.Join(ErrValidationFailed, errs)
	}
	return nil
}

// Validate runs the email checks of cfg on candidate. Nothing is checked when
// isActive is false or a skip rule applies. Otherwise the format and length
// checks both run and the result holds the format error first, then the
// length errors. An absent candidate that is not skipped is checked as "".
func Validate(field string, candidate *string, cfg Config, isActive bool) ValidationErrors {
	if !isActive || cfg.skip(candidate) {
		return nil
	}

	var value string
	if candidate != nil {
		value = *candidate
	}
	return collect(rules(field, value, cfg)...)
}

func rules(field, value string, cfg Config) []Rule {
	return append(
		[]Rule{ValidEmail(field, value, cfg.strict, cfg.wrongFormat)},
		LengthRules(field, value, cfg.bounds, cfg.tokenizer, cfg.messages)...,
	)
}
