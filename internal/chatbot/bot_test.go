package chatbot_test

import (
	"errors"
	"testing"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/i18n"
)

func newTestBot(t *testing.T) *chatbot.Bot {
	t.Helper()
	bot, err := chatbot.NewBot(defaultTables(t))
	if err != nil {
		t.Fatalf("NewBot: %v", err)
	}
	return bot
}

func TestNewBot(t *testing.T) {
	t.Run("Missing English", func(t *testing.T) {
		tables := chatbot.Tables{
			i18n.Hindi: chatbot.NewIntentTable("g", "f", "s", map[string]string{"a": "b"}),
		}
		if _, err := chatbot.NewBot(tables); !errors.Is(err, chatbot.ErrMissingEnglish) {
			t.Errorf("expected ErrMissingEnglish, got %v", err)
		}
	})

	t.Run("Empty Fallback", func(t *testing.T) {
		tables := chatbot.Tables{
			i18n.English: chatbot.NewIntentTable("g", "", "s", map[string]string{"a": "b"}),
		}
		_, err := chatbot.NewBot(tables)
		if !errors.Is(err, chatbot.ErrInvalidTable) || !errors.Is(err, chatbot.ErrEmptyFallback) {
			t.Errorf("expected ErrInvalidTable wrapping ErrEmptyFallback, got %v", err)
		}
	})

	t.Run("Empty Responses", func(t *testing.T) {
		tables := chatbot.Tables{
			i18n.English: chatbot.NewIntentTable("g", "f", "s", nil),
		}
		if _, err := chatbot.NewBot(tables); !errors.Is(err, chatbot.ErrEmptyResponses) {
			t.Errorf("expected ErrEmptyResponses, got %v", err)
		}
	})
}

func TestBotRespond(t *testing.T) {
	bot := newTestBot(t)

	got := bot.Respond(i18n.English, "What is DBT?")
	want, _ := bot.Table(i18n.English).Lookup("what is dbt")
	if got.Response != want {
		t.Errorf("unexpected response %q", got.Response)
	}

	unsupported := bot.Respond("ta", "hello")
	if unsupported.Kind != chatbot.MatchExact {
		t.Errorf("unsupported language should answer from the English table, got %+v", unsupported)
	}

	if bot.Greeting(i18n.Hindi) == bot.Greeting(i18n.English) {
		t.Error("expected a hindi greeting")
	}
	if langs := bot.Languages(); len(langs) != 2 {
		t.Errorf("expected en and hi tables, got %v", langs)
	}
}

func TestBotUpdateResponses(t *testing.T) {
	bot := newTestBot(t)
	before := bot.Table(i18n.English)
	count := before.Len()

	err := bot.UpdateResponses(i18n.English, map[string]string{
		"nsp helpline": "Call 0120-6619540",
		"hello":        "Welcome back!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := bot.Table(i18n.English)
	if after.Len() != count+1 {
		t.Errorf("expected %d keys, got %d", count+1, after.Len())
	}
	if got := bot.Respond(i18n.English, "NSP helpline"); got.Response != "Call 0120-6619540" {
		t.Errorf("new key should match exactly, got %+v", got)
	}
	if got := bot.Respond(i18n.English, "hello"); got.Response != "Welcome back!" {
		t.Errorf("existing key should be replaced, got %q", got.Response)
	}
	if r, _ := before.Lookup("hello"); r == "Welcome back!" {
		t.Error("tables handed out earlier must not change")
	}

	keys := after.Keys()
	if keys[len(keys)-1] != "nsp helpline" {
		t.Errorf("new keys go last, got %q", keys[len(keys)-1])
	}

	if err := bot.UpdateResponses("ta", map[string]string{"a": "b"}); !errors.Is(err, chatbot.ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
	if err := bot.UpdateResponses(i18n.English, map[string]string{"blank": ""}); !errors.Is(err, chatbot.ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}
