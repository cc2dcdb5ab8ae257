package validator

import "github.com/dmitrymomot/emailaddr/pkg/address"

// ValidEmail validates that value is an RFC 822 address. With strict set the
// domain must also follow RFC 1035. An empty message uses the default one.
func ValidEmail(field, value string, strict bool, message string) Rule {
	if message == "" {
		message = DefaultMessages().InvalidFormat
	}
	return Rule{
		Check: func() bool {
			return address.Recognize(value, strict)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindInvalidFormat,
			Message:        message,
			TranslationKey: KeyInvalidFormat,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
