package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses translation files with one top-level key per language.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data, "YAML")
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// byLanguage checks that every top-level value is a map of translations.
func byLanguage(data map[string]any, format string) (map[string]map[string]any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no valid translations found in %s content", format)
	}
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		translations, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid %s structure for language '%s': expected map, got %T", format, lang, val)
		}
		result[lang] = translations
	}
	return result, nil
}
