package chatbot

import (
	"sync"
	"time"

	"dbt-guide/internal/i18n"
)

// Session is one chat widget: its language selection and transcript.
// Hold the session lock while using Conversation.
type Session struct {
	mu sync.Mutex

	ID           string
	Language     *i18n.Selector
	Conversation *Conversation
	CreatedAt    time.Time
}

// NewSession starts a conversation in lang.
func NewSession(id string, bot *Bot, lang i18n.Language) *Session {
	sel := i18n.NewSelector(lang)
	return &Session{
		ID:           id,
		Language:     sel,
		Conversation: NewConversation(bot, sel),
		CreatedAt:    time.Now(),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }
