package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported content language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"

	// Default is used whenever a language cannot be resolved.
	Default = English
)

// Supported lists the languages content is authored in, in matcher priority order.
var Supported = []Language{English, Hindi}

var rtlLanguages = map[string]bool{"ar": true, "he": true, "ur": true}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Hindi})

// Parse validates a language code. Region subtags are ignored ("en-IN" is English).
func Parse(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if base, _, ok := strings.Cut(code, "-"); ok {
		code = base
	}
	for _, l := range Supported {
		if string(l) == code {
			return l, nil
		}
	}
	return "", ErrUnsupportedLanguage
}

// OrDefault returns l when it is supported, English otherwise.
func OrDefault(l Language) Language {
	if parsed, err := Parse(string(l)); err == nil {
		return parsed
	}
	return Default
}

// FromAcceptLanguage picks the best supported language for an Accept-Language header.
// ok is false when the header names no supported language.
func FromAcceptLanguage(header string) (Language, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return Supported[idx], true
}

// IsRTL reports whether the language is written right to left.
func IsRTL(l Language) bool {
	return rtlLanguages[string(l)]
}
