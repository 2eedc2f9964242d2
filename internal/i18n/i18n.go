// Package i18n provides the static storefront translation table and the
// language-aware lookup used across the service. All lookups are pure
// functions over static data.
package i18n

import (
	"golang.org/x/text/language"
)

// Supported language codes.
const (
	LangNL = "nl"
	LangFR = "fr"
	LangEN = "en"
	LangTR = "tr"
)

// DefaultLanguage is the storefront default (the store's home market).
const DefaultLanguage = LangNL

// fallbackLanguage is consulted when the active language lacks a key.
const fallbackLanguage = LangEN

var supported = []string{LangNL, LangFR, LangEN, LangTR}

var matcher = language.NewMatcher([]language.Tag{
	language.Dutch,
	language.French,
	language.English,
	language.Turkish,
})

// IsSupported reports whether the given code is one of the four storefront
// languages.
func IsSupported(lang string) bool {
	for _, l := range supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Supported returns the storefront language codes in display order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Normalize maps an arbitrary BCP 47 tag ("nl-BE", "fr_FR", "TR") to one of
// the four storefront language codes. Unrecognized input yields the default
// language.
func Normalize(lang string) string {
	if IsSupported(lang) {
		return lang
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultLanguage
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage
	}
	return supported[idx]
}

// T returns the translation of key for the given language. Falls back to
// English when the active language lacks the key, and to the raw key when no
// language has it.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[fallbackLanguage][key]; ok {
		return s
	}
	return key
}

// Table returns the full translation table for the given language, with
// English entries filling any gaps. The returned map is a copy.
func Table(lang string) map[string]string {
	base := translations[fallbackLanguage]
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	if lang != fallbackLanguage {
		for k, v := range translations[lang] {
			out[k] = v
		}
	}
	return out
}
