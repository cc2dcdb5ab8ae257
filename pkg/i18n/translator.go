package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/emailaddr/pkg/logger"
)

// DefaultLanguage is used when no default language is configured.
const DefaultLanguage = "en"

// Translator looks up translation templates by language and dot separated
// key. It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter

	mu        sync.RWMutex
	languages []string
	matcher   language.Matcher
}

// NewTranslator creates a Translator and loads its translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is nil")
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload loads the translations from the adapter again and swaps them in
// atomically. On error the current translations are kept.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateTranslations(translations); err != nil {
		return err
	}

	languages := make([]string, 0, len(translations))
	for lang := range translations {
		languages = append(languages, lang)
	}
	slices.Sort(languages)

	t.mu.Lock()
	t.translations = translations
	t.languages = languages
	t.matcher = newMatcher(t.defaultLang, languages)
	t.mu.Unlock()

	if len(languages) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded", logger.Component("i18n"))
		return nil
	}
	t.logger.DebugContext(ctx, "translations loaded", logger.Component("i18n"), slog.Any("languages", languages))
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the language used when nothing better matches.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether key is translated for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// lookup traverses a nested map using dot separated keys, so
// "validation.email.invalid" reads m["validation"]["email"]["invalid"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// template returns the translation template of key in lang.
func (t *Translator) template(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	val, ok := lookup(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	if t.missingLogMode {
		t.logger.Warn("translation is not a string",
			slog.String("lang", lang),
			slog.String("key", key),
			slog.String("type", fmt.Sprintf("%T", val)),
		)
	}
	return "", false
}

// T translates key for lang, substituting "%{name}" placeholders from args
// given as name, value pairs:
//
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
//
// A missing translation returns the key when fallback to key is enabled,
// otherwise "".
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.template(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td is like T but returns defaultValue, formatted with args, when the
// translation is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.template(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// Match returns the supported language that best fits the preferences, in
// order of preference. Preferences may be BCP 47 tags ("de-CH") or POSIX
// locales ("de_DE.UTF-8"). The default language is returned when nothing
// matches.
func (t *Translator) Match(preferred ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(normalizeLocale(p)); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 || t.matcher == nil {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.candidates()[idx]
}

// candidates lists the default language first followed by the supported
// languages, in the order the matcher was built with.
func (t *Translator) candidates() []string {
	out := make([]string, 0, len(t.languages)+1)
	out = append(out, t.defaultLang)
	for _, lang := range t.languages {
		if lang != t.defaultLang {
			out = append(out, lang)
		}
	}
	return out
}

func newMatcher(defaultLang string, languages []string) language.Matcher {
	tags := []language.Tag{language.Make(defaultLang)}
	for _, lang := range languages {
		if lang != defaultLang {
			tags = append(tags, language.Make(lang))
		}
	}
	return language.NewMatcher(tags)
}

// normalizeLocale turns a POSIX locale such as "de_DE.UTF-8@euro" into a
// BCP 47 tag.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces "%{name}" placeholders with the values of args, given as
// name, value pairs. Unknown placeholders are kept and an odd trailing
// argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
