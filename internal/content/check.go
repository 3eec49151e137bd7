package content

import (
	"fmt"

	"dbt-guide/internal/checklist"
	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
)

// Report summarizes a content check.
type Report struct {
	Intents  map[i18n.Language]int
	Cases    int
	Steps    int
	Warnings []string
}

// Check loads p like Load and reports what was found. Untranslated UI keys, languages
// without a chatbot table and checklist exports that do not read back are warnings,
// not errors.
func Check(p Paths) (Report, error) {
	b, err := Load(p)
	if err != nil {
		return Report{}, err
	}

	r := Report{Intents: make(map[i18n.Language]int)}
	for _, lang := range b.Bot.Languages() {
		r.Intents[lang] = b.Bot.Table(lang).Len()
	}
	for _, lang := range i18n.Supported {
		if _, ok := r.Intents[lang]; !ok {
			r.Warnings = append(r.Warnings, fmt.Sprintf("no chatbot table for %s, English is used", lang))
		}
	}

	for _, c := range b.Catalog.Summaries(i18n.English) {
		r.Cases++
		r.Steps += c.Steps
	}

	exports, err := checkExports(b.Catalog)
	if err != nil {
		return Report{}, err
	}
	r.Warnings = append(r.Warnings, exports...)

	for _, lang := range i18n.Supported {
		if lang == i18n.English {
			continue
		}
		for _, key := range b.Texts.Missing(lang) {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %s is not translated", lang, key))
		}
	}
	return r, nil
}

// checkExports renders the checklist export of every case in every language, once
// unmarked and once fully marked, and parses it back. A mismatch means some item
// text breaks the checkbox line format.
func checkExports(catalog *procedure.Catalog) ([]string, error) {
	var warnings []string
	for _, c := range catalog.Summaries(i18n.English) {
		for _, lang := range i18n.Supported {
			n, err := procedure.NewNavigator(catalog, i18n.Fixed(lang), c.ID)
			if err != nil {
				return nil, err
			}
			title := n.View().CaseTitle

			for _, marked := range []bool{false, true} {
				sections, want := n.Checklist()
				if marked {
					if err := markAll(n, sections); err != nil {
						return nil, err
					}
					sections, want = n.Checklist()
				}
				got := checklist.GetStats(checklist.Render(title, sections))
				if got != want {
					warnings = append(warnings, fmt.Sprintf("%s: checklist export of %s reads back %d/%d items, expected %d/%d",
						lang, c.ID, got.Completed, got.Total, want.Completed, want.Total))
					break
				}
			}
		}
	}
	return warnings, nil
}

func markAll(n *procedure.Navigator, sections []checklist.Section) error {
	for i, s := range sections {
		for j := range s.Items {
			if err := n.SetItem(i+1, j, true); err != nil {
				return err
			}
		}
	}
	return nil
}
