package procedure

import (
	"fmt"

	"dbt-guide/internal/checklist"
	"dbt-guide/internal/i18n"
)

// View describes the current step in the navigator's current language.
func (n *Navigator) View() View {
	lang := i18n.OrDefault(n.lang.CurrentLanguage())
	st := n.current.Steps[n.step-1]
	total := n.TotalSteps()

	items := make([]ChecklistItem, len(st.Checklist))
	for i, text := range st.Checklist {
		items[i] = ChecklistItem{Index: i, Text: text.Get(lang), Completed: n.marks.Done(n.step-1, i)}
	}

	indicators := make([]StepIndicator, total)
	for i, s := range n.current.Steps {
		status := StepPending
		switch {
		case i+1 < n.step:
			status = StepCompleted
		case i+1 == n.step:
			status = StepActive
		}
		indicators[i] = StepIndicator{Number: i + 1, Title: s.Title.Get(lang), Status: status}
	}

	var mode Mode
	if s, err := n.catalog.Strategy(st.Action); err == nil {
		mode = s.Mode
	}

	return View{
		Language:       lang,
		CaseID:         n.current.ID,
		CaseTitle:      n.current.Title.Get(lang),
		Step:           n.step,
		TotalSteps:     total,
		Title:          st.Title.Get(lang),
		Content:        st.Content.Get(lang),
		Action:         st.Action,
		Mode:           mode,
		Checklist:      items,
		ChecklistStats: n.marks.StepStats(n.step - 1),
		CanPrevious:    n.step > 1,
		CanNext:        n.step < total,
		CanFinish:      n.step == total,
		Progress:       float64(n.step) / float64(total),
		Steps:          indicators,
	}
}

// Checklist returns every step's checklist with its marks, one section per step,
// and the statistics across all steps.
func (n *Navigator) Checklist() ([]checklist.Section, checklist.Stats) {
	lang := i18n.OrDefault(n.lang.CurrentLanguage())
	sections := make([]checklist.Section, len(n.current.Steps))
	for i, st := range n.current.Steps {
		items := make([]checklist.Checkbox, len(st.Checklist))
		for j, text := range st.Checklist {
			items[j] = checklist.Checkbox{Line: j, Text: text.Get(lang), Checked: n.marks.Done(i, j)}
		}
		sections[i] = checklist.Section{
			Title: fmt.Sprintf("%d. %s", i+1, st.Title.Get(lang)),
			Items: items,
		}
	}
	return sections, n.marks.Stats()
}
