package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailaddr/pkg/i18n"
)

func testTranslations() map[string]map[string]any {
	return map[string]map[string]any{
		"en": {
			"welcome": "Hello, %{name}!",
			"validation": map[string]any{
				"email": map[string]any{
					"invalid":   "is an invalid email address",
					"too_short": "is too short (minimum is %{count} characters)",
				},
			},
			"number": 42,
		},
		"de": {
			"welcome": "Hallo, %{name}!",
			"validation": map[string]any{
				"email": map[string]any{
					"invalid": "ist keine gültige E-Mail-Adresse",
				},
			},
		},
		"fr": {
			"welcome": "Bonjour, %{name} !",
		},
	}
}

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: testTranslations()}, opts...)
	require.NoError(t, err)
	return tr
}

type failingAdapter struct{ err error }

func (a failingAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return nil, a.err
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), nil)
		assert.Error(t, err)
		assert.Nil(t, tr)
	})

	t.Run("adapter error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := i18n.NewTranslator(context.Background(), failingAdapter{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
		assert.Error(t, err)
	})

	t.Run("nil language map", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}})
		assert.Error(t, err)
	})

	t.Run("empty adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.Match("de"))
	})
}

func TestTranslatorSupportedLanguages(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, []string{"de", "en", "fr"}, tr.SupportedLanguages())

	langs := tr.SupportedLanguages()
	langs[0] = "xx"
	assert.Equal(t, "de", tr.SupportedLanguages()[0])
}

func TestTranslatorHasTranslation(t *testing.T) {
	tr := newTranslator(t)

	assert.True(t, tr.HasTranslation("en", "welcome"))
	assert.True(t, tr.HasTranslation("en", "validation.email.invalid"))
	assert.True(t, tr.HasTranslation("en", "validation.email"))
	assert.False(t, tr.HasTranslation("de", "validation.email.too_short"))
	assert.False(t, tr.HasTranslation("en", "welcome.nested"))
	assert.False(t, tr.HasTranslation("es", "welcome"))
}

func TestTranslatorT(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"simple", "en", "welcome", []string{"name", "John"}, "Hello, John!"},
		{"other language", "de", "welcome", []string{"name", "Jan"}, "Hallo, Jan!"},
		{"nested key", "de", "validation.email.invalid", nil, "ist keine gültige E-Mail-Adresse"},
		{"unknown placeholder kept", "en", "validation.email.too_short", []string{"name", "x"}, "is too short (minimum is %{count} characters)"},
		{"placeholder filled", "en", "validation.email.too_short", []string{"count", "3"}, "is too short (minimum is 3 characters)"},
		{"odd argument ignored", "en", "welcome", []string{"name", "John", "extra"}, "Hello, John!"},
		{"missing key falls back to key", "en", "missing.key", nil, "missing.key"},
		{"missing language falls back to key", "es", "welcome", nil, "welcome"},
		{"subtree falls back to key", "en", "validation.email", nil, "validation.email"},
		{"non string falls back to key", "en", "number", nil, "number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}

	t.Run("without fallback to key", func(t *testing.T) {
		tr := newTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, tr.T("en", "missing.key"))
		assert.Equal(t, "Hello, Ann!", tr.T("en", "welcome", "name", "Ann"))
	})
}

func TestTranslatorTd(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Hallo, Jan!", tr.Td("de", "welcome", "Hi", "name", "Jan"))
	assert.Equal(t, "too short: 3", tr.Td("de", "validation.email.too_short", "too short: %{count}", "count", "3"))
	assert.Equal(t, "fallback", tr.Td("es", "welcome", "fallback"))
	assert.Equal(t, "fallback", tr.Td("en", "number", "fallback"))
	assert.Equal(t, "is too short (minimum is %{count} characters)",
		tr.Td("en", "validation.email.too_short", "default"),
		"placeholders stay in place without arguments")
}

func TestTranslatorMatch(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name      string
		preferred []string
		want      string
	}{
		{"exact", []string{"de"}, "de"},
		{"region", []string{"de-CH"}, "de"},
		{"posix locale", []string{"fr_FR.UTF-8"}, "fr"},
		{"first supported preference wins", []string{"ja", "fr", "de"}, "fr"},
		{"unsupported", []string{"ja"}, "en"},
		{"unparsable", []string{"C"}, "en"},
		{"nothing", nil, "en"},
		{"empty", []string{""}, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.preferred...))
		})
	}

	t.Run("custom default", func(t *testing.T) {
		tr := newTranslator(t, i18n.WithDefaultLanguage("de"))
		assert.Equal(t, "de", tr.DefaultLanguage())
		assert.Equal(t, "de", tr.Match("ja"))
		assert.Equal(t, "en", tr.Match("en-GB"))
	})
}

func TestTranslatorMissingTranslationsLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr := newTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))
	buf.Reset()

	tr.T("en", "missing.key")
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=missing.key")

	buf.Reset()
	tr.T("es", "welcome")
	assert.Contains(t, buf.String(), "language not supported")

	buf.Reset()
	tr.T("en", "welcome", "name", "x")
	assert.Empty(t, buf.String())
}

func TestTranslatorReload(t *testing.T) {
	data := map[string]map[string]any{"en": {"greeting": "Hi"}}
	adapter := &i18n.MapAdapter{Data: data}
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, tr.SupportedLanguages())

	adapter.Data = map[string]map[string]any{
		"en": {"greeting": "Hello"},
		"es": {"greeting": "Hola"},
	}
	require.NoError(t, tr.Reload(context.Background()))
	assert.Equal(t, "Hola", tr.T("es", "greeting"))
	assert.Equal(t, "es", tr.Match("es-MX"))

	adapter.Data = map[string]map[string]any{"": {}}
	assert.Error(t, tr.Reload(context.Background()))
	assert.Equal(t, "Hello", tr.T("en", "greeting"), "failed reload keeps translations")
}

func TestTranslatorConcurrency(t *testing.T) {
	tr := newTranslator(t)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user%d", i)
			assert.Equal(t, "Hello, "+name+"!", tr.T("en", "welcome", "name", name))
			assert.Equal(t, "de", tr.Match("de-AT"))
			if i%10 == 0 {
				assert.NoError(t, tr.Reload(context.Background()))
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkTranslatorTd(b *testing.B) {
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: testTranslations()})
	require.NoError(b, err)

	b.ResetTimer()
	for b.Loop() {
		tr.Td("en", "validation.email.too_short", "default", "count", "3")
	}
}
