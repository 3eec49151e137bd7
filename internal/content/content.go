// Package content loads the guide's chatbot tables, procedure cases and UI translations,
// either from disk or from the copies built into the binary.
package content

import (
	"fmt"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
)

// Paths locate on-disk content. Empty paths select the embedded content.
type Paths struct {
	Chatbot      string
	Procedure    string
	Translations string // directory holding <lang>.yaml
}

// Bundle is validated content ready to serve.
type Bundle struct {
	Bot     *chatbot.Bot
	Catalog *procedure.Catalog
	Texts   *i18n.Catalog
}

// Load reads and validates every content source.
func Load(p Paths) (Bundle, error) {
	tables, err := loadTables(p.Chatbot)
	if err != nil {
		return Bundle{}, fmt.Errorf("chatbot content: %w", err)
	}
	bot, err := chatbot.NewBot(tables)
	if err != nil {
		return Bundle{}, fmt.Errorf("chatbot content: %w", err)
	}

	cases, err := loadCases(p.Procedure)
	if err != nil {
		return Bundle{}, fmt.Errorf("procedure content: %w", err)
	}
	catalog, err := procedure.NewCatalog(cases, procedure.DefaultRegistry())
	if err != nil {
		return Bundle{}, fmt.Errorf("procedure content: %w", err)
	}

	texts, err := loadTexts(p.Translations)
	if err != nil {
		return Bundle{}, fmt.Errorf("translations: %w", err)
	}

	return Bundle{Bot: bot, Catalog: catalog, Texts: texts}, nil
}

func loadTables(path string) (chatbot.Tables, error) {
	if path == "" {
		return chatbot.DefaultTables()
	}
	return chatbot.LoadTablesFile(path)
}

func loadCases(path string) ([]procedure.Case, error) {
	if path == "" {
		return procedure.DefaultCases()
	}
	return procedure.LoadCasesFile(path)
}

func loadTexts(dir string) (*i18n.Catalog, error) {
	if dir == "" {
		return i18n.DefaultCatalog()
	}
	return i18n.LoadCatalogDir(dir)
}
