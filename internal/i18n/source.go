package i18n

import (
	"context"
	"sync"
)

// Source answers which language the caller is currently using.
type Source interface {
	CurrentLanguage() Language
}

// Fixed is a Source that always answers the same language.
type Fixed Language

func (f Fixed) CurrentLanguage() Language { return OrDefault(Language(f)) }

// Selector remembers the selected language of one session.
type Selector struct {
	mu   sync.RWMutex
	lang Language
}

// NewSelector returns a Selector starting at lang, or English when lang is unsupported.
func NewSelector(lang Language) *Selector {
	return &Selector{lang: OrDefault(lang)}
}

func (s *Selector) CurrentLanguage() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Switch changes the selected language. It reports whether the language changed.
func (s *Selector) Switch(code string) (bool, error) {
	lang, err := Parse(code)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if lang == s.lang {
		return false, nil
	}
	s.lang = lang
	return true, nil
}

// Preference is the language information carried by an incoming request.
type Preference struct {
	// Explicit is set when the caller asked for a language directly (?lang=).
	Explicit Language
	// Accepted is the best match from Accept-Language.
	Accepted Language
}

// Initial is the language a new session should start in.
func (p Preference) Initial(fallback Language) Language {
	switch {
	case p.Explicit != "":
		return p.Explicit
	case p.Accepted != "":
		return p.Accepted
	default:
		return OrDefault(fallback)
	}
}

type preferenceKey struct{}

func WithPreference(ctx context.Context, p Preference) context.Context {
	return context.WithValue(ctx, preferenceKey{}, p)
}

func PreferenceFromContext(ctx context.Context) Preference {
	p, _ := ctx.Value(preferenceKey{}).(Preference)
	return p
}
