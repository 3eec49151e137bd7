package chatbot

import (
	"strings"
	"time"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/model"
)

// Conversation is the transcript of one chat widget. It reads the active language
// from its Source on every message and never changes it.
// A Conversation is not safe for concurrent use.
type Conversation struct {
	bot   *Bot
	lang  i18n.Source
	now   func() time.Time
	turns []Turn
}

// NewConversation starts a transcript holding the greeting of the current language.
func NewConversation(bot *Bot, lang i18n.Source) *Conversation {
	c := &Conversation{bot: bot, lang: lang, now: time.Now}
	c.greet()
	return c
}

// Send records text as a user turn and appends the bot reply.
// Blank text is ignored and ok is false.
func (c *Conversation) Send(text string) (ex Exchange, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Exchange{}, false
	}

	user := c.append(model.RoleUser, text)
	result := c.bot.Respond(c.lang.CurrentLanguage(), text)
	bot := c.append(model.RoleBot, result.Response)

	return Exchange{User: user, Bot: bot, Match: result}, true
}

// Reset clears the transcript and greets again in the current language.
func (c *Conversation) Reset() {
	c.turns = nil
	c.greet()
}

// History returns a copy of the transcript, oldest turn first.
func (c *Conversation) History() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

func (c *Conversation) greet() {
	c.append(model.RoleBot, c.bot.Greeting(c.lang.CurrentLanguage()))
}

func (c *Conversation) append(role model.Role, text string) Turn {
	t := Turn{Role: role, Text: text, Timestamp: c.now()}
	c.turns = append(c.turns, t)
	return t
}
