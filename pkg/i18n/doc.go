// Package i18n loads translation templates and renders them by language.
//
// Translations are read through a TranslationAdapter: MapAdapter for
// in-memory tables, FileAdapter for a single YAML or JSON file,
// EmbeddedFsAdapter for a directory of an embed.FS and ChainAdapter to
// layer several sources, later ones overriding earlier ones. Every file
// holds one top-level key per language:
//
//	en:
//	  validation:
//	    email:
//	      invalid: "is an invalid email address"
//
// Keys are dot separated paths into that tree. Templates use named
// placeholders, "%{name}", filled from name/value argument pairs:
//
//	t, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	lang := t.Match(os.Getenv("LANG"))
//	msg := t.Td(lang, "validation.email.too_short", "is too short", "count", "3")
//
// Match picks the best supported language for a list of preferences using
// golang.org/x/text/language, accepting BCP 47 tags and POSIX locales.
package i18n
