// Package i18n is the flat translation table for the public site plus the
// supported-language set. The CRM screens are English only.
package i18n

import "strings"

type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
	LangHE Language = "he"
	LangRU Language = "ru"
)

// DefaultLanguage used when nothing recognizable was requested.
const DefaultLanguage = LangEN

// ParseLanguage validates a raw language code. Region suffixes like "fr-FR"
// are accepted and reduced to the base code.
func ParseLanguage(raw string) (Language, bool) {
	code := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	switch Language(code) {
	case LangEN, LangFR, LangHE, LangRU:
		return Language(code), true
	}
	return DefaultLanguage, false
}

// Languages all supported codes.
func Languages() []Language {
	return []Language{LangEN, LangFR, LangHE, LangRU}
}

// IsRTL reports whether the language is written right to left. Hebrew is the
// only RTL locale the site supports.
func IsRTL(lang Language) bool {
	return lang == LangHE
}

// Translate returns the localized string for key. A key missing from the
// requested language falls back to the English table; a key missing there as
// well comes back verbatim, so the UI shows something greppable instead of an
// empty label.
func Translate(key string, lang Language) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[LangEN][key]; ok {
		return s
	}
	return key
}

// Table returns the full translation map for lang, with English filling any
// holes. The public site fetches this once per language switch.
func Table(lang Language) map[string]string {
	out := make(map[string]string, len(tables[LangEN]))
	for k, v := range tables[LangEN] {
		out[k] = v
	}
	if lang != LangEN {
		for k, v := range tables[lang] {
			out[k] = v
		}
	}
	return out
}

// Keys enumerates the translation keys (the English table is the reference
// key set).
func Keys() []string {
	keys := make([]string, 0, len(tables[LangEN]))
	for k := range tables[LangEN] {
		keys = append(keys, k)
	}
	return keys
}
