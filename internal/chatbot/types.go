package chatbot

import (
	"sort"
	"time"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/model"
)

// --- Intent Table ---

// IntentTable holds the canned conversation content of one language.
// Response keys keep the order they were added in; fuzzy matching visits them in that order.
type IntentTable struct {
	Greeting    string
	Fallback    string
	Suggestions string

	responses map[string]string
	keys      []string
}

// NewIntentTable builds a table from a map. Maps carry no order, so keys are sorted
// lexicographically to keep tie-breaking reproducible.
func NewIntentTable(greeting, fallback, suggestions string, responses map[string]string) *IntentTable {
	t := &IntentTable{
		Greeting:    greeting,
		Fallback:    fallback,
		Suggestions: suggestions,
		responses:   make(map[string]string, len(responses)),
	}
	keys := make([]string, 0, len(responses))
	for k := range responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.Set(k, responses[k])
	}
	return t
}

// Set adds or replaces a response. New keys go to the end of the iteration order.
func (t *IntentTable) Set(key, response string) {
	if t.responses == nil {
		t.responses = make(map[string]string)
	}
	if _, ok := t.responses[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.responses[key] = response
}

// Lookup returns the response stored under key verbatim.
func (t *IntentTable) Lookup(key string) (string, bool) {
	r, ok := t.responses[key]
	return r, ok
}

// Keys returns the response keys in iteration order.
func (t *IntentTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *IntentTable) Len() int {
	return len(t.keys)
}

// FallbackText is the reply used when nothing matches.
func (t *IntentTable) FallbackText() string {
	return t.Fallback + "<br><br>" + t.Suggestions
}

// Clone returns a deep copy.
func (t *IntentTable) Clone() *IntentTable {
	c := &IntentTable{
		Greeting:    t.Greeting,
		Fallback:    t.Fallback,
		Suggestions: t.Suggestions,
		responses:   make(map[string]string, len(t.responses)),
		keys:        t.Keys(),
	}
	for k, v := range t.responses {
		c.responses[k] = v
	}
	return c
}

// Validate checks that the table can answer every input.
func (t *IntentTable) Validate() error {
	if t.Fallback == "" {
		return ErrEmptyFallback
	}
	if len(t.keys) == 0 {
		return ErrEmptyResponses
	}
	for _, k := range t.keys {
		if k == "" || t.responses[k] == "" {
			return ErrEmptyResponse
		}
	}
	return nil
}

// Tables holds one IntentTable per language.
type Tables map[i18n.Language]*IntentTable

// For returns the table of lang, or the English table when lang has none.
func (ts Tables) For(lang i18n.Language) *IntentTable {
	if t, ok := ts[lang]; ok {
		return t
	}
	return ts[i18n.English]
}

// --- Matching ---

// MatchKind tells which path produced a reply.
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchFuzzy    MatchKind = "fuzzy"
	MatchFallback MatchKind = "fallback"
)

// MatchResult is the outcome of matching one normalized input.
type MatchResult struct {
	Kind     MatchKind
	Key      string
	Score    float64
	Response string
}

// --- Conversation ---

// Turn is one message of a conversation.
type Turn struct {
	Role      model.Role
	Text      string
	Timestamp time.Time
}

// Exchange is a user message together with the reply it produced.
type Exchange struct {
	User  Turn
	Bot   Turn
	Match MatchResult
}

// --- UseCase Inputs ---

type CreateSessionInput struct {
	Language i18n.Language
}

type SendMessageInput struct {
	SessionID string
	Text      string
}

type SwitchLanguageInput struct {
	SessionID string
	Language  string
}

type MatchInput struct {
	Text     string
	Language i18n.Language
}

// --- UseCase Outputs ---

type SessionOutput struct {
	ID        string
	Language  i18n.Language
	History   []Turn
	CreatedAt time.Time
}

type SendMessageOutput struct {
	Session  SessionOutput
	Exchange Exchange
}

type MatchOutput struct {
	Input      string
	Normalized string
	Language   i18n.Language
	Result     MatchResult
}
