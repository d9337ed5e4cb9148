// Package localization provides the string tables for public-facing API
// messages. Tables are JSON files embedded at build time, one per language
// code.
package localization

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// Localizer resolves message keys to localized strings. English is the
// fallback language; an unknown key falls back to the key itself.
type Localizer struct {
	translations map[string]map[string]string
}

// NewLocalizer loads all embedded locale tables.
func NewLocalizer() (*Localizer, error) {
	l := &Localizer{
		translations: make(map[string]map[string]string),
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), ".json")

		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", entry.Name(), err)
		}
		l.translations[lang] = table
	}

	return l, nil
}

// GetString returns the localized string for a given key and language.
func (l *Localizer) GetString(lang, key string) string {
	if table, ok := l.translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}

	if lang != "en" {
		if table, ok := l.translations["en"]; ok {
			if value, ok := table[key]; ok {
				return value
			}
		}
	}

	return key
}
