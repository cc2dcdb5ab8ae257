package validator

import (
	"context"
	"embed"
	"strconv"
	"strings"

	"github.com/dmitrymomot/emailaddr/pkg/i18n"
)

// Translation keys of the email validation messages.
const (
	KeyInvalidFormat = "validation.email.invalid"
	KeyTooShort      = "validation.email.too_short"
	KeyTooLong       = "validation.email.too_long"
	KeyWrongLength   = "validation.email.wrong_length"
)

// countPlaceholder is replaced with the length bound of a length error.
// It uses the named substitution syntax of package i18n.
const countPlaceholder = "%{count}"

//go:embed locales/*.yaml
var locales embed.FS

// Messages is the default message table, one template per error kind.
// Tables are plain values: build one at startup and pass it to NewResolver.
type Messages struct {
	InvalidFormat string
	TooShort      string
	TooLong       string
	WrongLength   string
}

// DefaultMessages returns the built-in English messages.
func DefaultMessages() Messages {
	return Messages{
		InvalidFormat: "is an invalid email address",
		TooShort:      "is too short (minimum is %{count} characters)",
		TooLong:       "is too long (maximum is %{count} characters)",
		WrongLength:   "is the wrong length (should be %{count} characters)",
	}
}

// merge returns m with empty entries taken from fallback.
func (m Messages) merge(fallback Messages) Messages {
	if m.InvalidFormat == "" {
		m.InvalidFormat = fallback.InvalidFormat
	}
	if m.TooShort == "" {
		m.TooShort = fallback.TooShort
	}
	if m.TooLong == "" {
		m.TooLong = fallback.TooLong
	}
	if m.WrongLength == "" {
		m.WrongLength = fallback.WrongLength
	}
	return m
}

// MessagesFromTranslator builds a message table for lang. Keys missing from
// the translations keep their default English text.
func MessagesFromTranslator(t *i18n.Translator, lang string) Messages {
	def := DefaultMessages()
	if t == nil {
		return def
	}
	return Messages{
		InvalidFormat: t.Td(lang, KeyInvalidFormat, def.InvalidFormat),
		TooShort:      t.Td(lang, KeyTooShort, def.TooShort),
		TooLong:       t.Td(lang, KeyTooLong, def.TooLong),
		WrongLength:   t.Td(lang, KeyWrongLength, def.WrongLength),
	}
}

// LocaleAdapter serves the embedded translations of the messages. Chain it
// with other adapters to override single keys.
func LocaleAdapter() i18n.TranslationAdapter {
	return i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), locales, "locales")
}

// LoadTranslator returns a translator loaded with the embedded locales.
func LoadTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, LocaleAdapter(), opts...)
}

func formatMessage(tmpl string, count int) string {
	return strings.ReplaceAll(tmpl, countPlaceholder, strconv.Itoa(count))
}
