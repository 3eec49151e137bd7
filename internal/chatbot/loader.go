package chatbot

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dbt-guide/internal/i18n"
)

//go:embed data/intents.yaml
var defaultIntents []byte

var tableFields = map[string]bool{
	"greeting":    true,
	"fallback":    true,
	"suggestions": true,
	"responses":   true,
}

// DefaultTables returns the intent tables shipped with the binary.
func DefaultTables() (Tables, error) {
	return LoadTables(bytes.NewReader(defaultIntents))
}

// LoadTablesFile reads intent tables from a YAML file.
func LoadTablesFile(path string) (Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open intents: %w", err)
	}
	defer f.Close()
	return LoadTables(f)
}

// LoadTables decodes intent tables keyed by language code. Response keys keep the
// order of the document. Unknown fields, duplicate keys, and unsupported languages
// are rejected.
func LoadTables(r io.Reader) (Tables, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document must be a mapping of languages", ErrInvalidTable)
	}

	root := doc.Content[0]
	tables := make(Tables)
	for i := 0; i+1 < len(root.Content); i += 2 {
		code := root.Content[i].Value
		lang, err := i18n.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: language %q: %w", ErrInvalidTable, root.Content[i].Line, code, err)
		}
		if _, dup := tables[lang]; dup {
			return nil, fmt.Errorf("%w: line %d: language %q defined twice", ErrInvalidTable, root.Content[i].Line, code)
		}

		t, err := decodeTable(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, lang, err)
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTable, lang, err)
		}
		tables[lang] = t
	}

	if _, ok := tables[i18n.English]; !ok {
		return nil, ErrMissingEnglish
	}
	return tables, nil
}

func decodeTable(node *yaml.Node) (*IntentTable, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	t := &IntentTable{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i], node.Content[i+1]
		if !tableFields[name.Value] {
			return nil, fmt.Errorf("line %d: unknown field %q", name.Line, name.Value)
		}

		if name.Value == "responses" {
			if err := decodeResponses(value, t); err != nil {
				return nil, err
			}
			continue
		}

		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: %s must be a string", value.Line, name.Value)
		}
		switch name.Value {
		case "greeting":
			t.Greeting = value.Value
		case "fallback":
			t.Fallback = value.Value
		case "suggestions":
			t.Suggestions = value.Value
		}
	}
	return t, nil
}

func decodeResponses(node *yaml.Node, t *IntentTable) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: responses must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: response for %q must be a string", value.Line, key.Value)
		}
		if _, dup := t.Lookup(key.Value); dup {
			return fmt.Errorf("line %d: duplicate key %q", key.Line, key.Value)
		}
		t.Set(key.Value, value.Value)
	}
	return nil
}
