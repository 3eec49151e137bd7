package chatbot

import (
	"fmt"
	"sort"
	"sync"

	"dbt-guide/internal/i18n"
)

// Bot answers chat input from per-language intent tables. It is shared by all
// conversations and safe for concurrent use.
type Bot struct {
	mu     sync.RWMutex
	tables Tables
}

// NewBot validates tables and returns a Bot over them. An English table is required
// since every other language falls back to it.
func NewBot(tables Tables) (*Bot, error) {
	if _, ok := tables[i18n.English]; !ok {
		return nil, ErrMissingEnglish
	}
	own := make(Tables, len(tables))
	for lang, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTable, lang, err)
		}
		own[lang] = t.Clone()
	}
	return &Bot{tables: own}, nil
}

// Table returns the table used for lang. Callers must not modify it.
func (b *Bot) Table(lang i18n.Language) *IntentTable {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tables.For(lang)
}

// Languages lists the languages that have their own table.
func (b *Bot) Languages() []i18n.Language {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []i18n.Language
	for _, l := range i18n.Supported {
		if _, ok := b.tables[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Greeting is the first bot message of a conversation in lang.
func (b *Bot) Greeting(lang i18n.Language) string {
	return b.Table(lang).Greeting
}

// Respond normalizes text and matches it against the table of lang.
func (b *Bot) Respond(lang i18n.Language, text string) MatchResult {
	return Match(Normalize(text), b.Table(lang))
}

// UpdateResponses merges responses into the table of lang. Existing keys are replaced,
// new keys are appended to the matching order.
func (b *Bot) UpdateResponses(lang i18n.Language, responses map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.tables[lang]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, lang)
	}

	keys := make([]string, 0, len(responses))
	for k := range responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	next := current.Clone()
	for _, k := range keys {
		next.Set(k, responses[k])
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidTable, lang, err)
	}
	b.tables[lang] = next
	return nil
}
