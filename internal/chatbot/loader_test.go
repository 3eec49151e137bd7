package chatbot_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/i18n"
)

const sampleIntents = `
en:
  greeting: Hello
  fallback: Sorry
  suggestions: Topics
  responses:
    zebra: z
    apple: a
    "what is dbt": dbt
hi:
  greeting: नमस्ते
  fallback: माफ़ करें
  responses:
    मदद: help
`

func TestLoadTables(t *testing.T) {
	tables, err := chatbot.LoadTables(strings.NewReader(sampleIntents))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	en := tables.For(i18n.English)
	if diff := cmp.Diff([]string{"zebra", "apple", "what is dbt"}, en.Keys()); diff != "" {
		t.Errorf("document order must be kept (-want +got):\n%s", diff)
	}
	if en.Greeting != "Hello" || en.FallbackText() != "Sorry<br><br>Topics" {
		t.Errorf("unexpected table %+v", en)
	}
	if r, _ := tables.For(i18n.Hindi).Lookup("मदद"); r != "help" {
		t.Errorf("unexpected hindi response %q", r)
	}
}

func TestLoadTablesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "Unknown Field",
			doc:  "en:\n  fallback: f\n  greetings: g\n  responses:\n    a: b\n",
			want: chatbot.ErrInvalidTable,
		},
		{
			name: "Duplicate Key",
			doc:  "en:\n  fallback: f\n  responses:\n    a: b\n    a: c\n",
			want: chatbot.ErrInvalidTable,
		},
		{
			name: "Unsupported Language",
			doc:  "en:\n  fallback: f\n  responses:\n    a: b\nfr:\n  fallback: f\n  responses:\n    a: b\n",
			want: i18n.ErrUnsupportedLanguage,
		},
		{
			name: "Missing English",
			doc:  "hi:\n  fallback: f\n  responses:\n    a: b\n",
			want: chatbot.ErrMissingEnglish,
		},
		{
			name: "Empty Fallback",
			doc:  "en:\n  responses:\n    a: b\n",
			want: chatbot.ErrEmptyFallback,
		},
		{
			name: "Not A Mapping",
			doc:  "- en\n- hi\n",
			want: chatbot.ErrInvalidTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chatbot.LoadTables(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadTablesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.yaml")
	if err := os.WriteFile(path, []byte(sampleIntents), 0o600); err != nil {
		t.Fatal(err)
	}
	tables, err := chatbot.LoadTablesFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tables.For(i18n.English).Len() != 3 {
		t.Errorf("expected 3 english keys")
	}

	if _, err := chatbot.LoadTablesFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultTables(t *testing.T) {
	tables := defaultTables(t)
	for _, lang := range i18n.Supported {
		table, ok := tables[lang]
		if !ok {
			t.Fatalf("missing %s table", lang)
		}
		if table.Greeting == "" || table.Suggestions == "" {
			t.Errorf("%s table needs greeting and suggestions", lang)
		}
	}
	if first := tables.For(i18n.English).Keys()[0]; first != "hello" {
		t.Errorf("expected hello first, got %q", first)
	}
}
