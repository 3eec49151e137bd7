package procedure

import (
	"fmt"
	"maps"

	"dbt-guide/internal/checklist"
	"dbt-guide/internal/i18n"
)

// Navigator walks one user through the steps of a case. Steps are numbered from 1,
// checklist items from 0. Checklist marks are kept per step and survive navigation;
// they never block moving on.
// A Navigator is not safe for concurrent use.
type Navigator struct {
	catalog *Catalog
	lang    i18n.Source

	current Case
	step    int
	marks   *checklist.Tracker
	entered Fields
}

// NewNavigator starts at step 1 of caseID, or of the first case when caseID is empty.
func NewNavigator(catalog *Catalog, lang i18n.Source, caseID string) (*Navigator, error) {
	n := &Navigator{catalog: catalog, lang: lang}
	if caseID == "" {
		caseID = catalog.Default().ID
	}
	if err := n.SelectCase(caseID); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Navigator) CaseID() string  { return n.current.ID }
func (n *Navigator) Step() int       { return n.step }
func (n *Navigator) TotalSteps() int { return len(n.current.Steps) }

// SelectCase switches to id and always starts over at step 1 with nothing marked,
// even when id is the current case. An unknown id leaves the state unchanged.
func (n *Navigator) SelectCase(id string) error {
	pc, err := n.catalog.Case(id)
	if err != nil {
		return err
	}
	n.current = pc
	n.reset()
	return nil
}

// Restart returns to step 1 of the current case with nothing marked.
func (n *Navigator) Restart() {
	n.step = 1
	n.marks.Reset()
	n.entered = make(Fields)
}

func (n *Navigator) reset() {
	counts := make([]int, len(n.current.Steps))
	for i, st := range n.current.Steps {
		counts[i] = len(st.Checklist)
	}
	n.step = 1
	n.marks = checklist.NewTracker(counts)
	n.entered = make(Fields)
}

// Next moves one step forward. It reports false and does nothing on the last step.
func (n *Navigator) Next() bool {
	if n.step >= n.TotalSteps() {
		return false
	}
	n.step++
	return true
}

// Previous moves one step back. It reports false and does nothing on the first step.
func (n *Navigator) Previous() bool {
	if n.step <= 1 {
		return false
	}
	n.step--
	return true
}

// SetItem marks item of step complete or incomplete.
func (n *Navigator) SetItem(step, item int, done bool) error {
	if step < 1 || step > n.TotalSteps() {
		return fmt.Errorf("%w: %d of %d", ErrInvalidStepIndex, step, n.TotalSteps())
	}
	if err := n.marks.Set(step-1, item, done); err != nil {
		return fmt.Errorf("%w: step %d item %d", ErrInvalidChecklistItem, step, item)
	}
	return nil
}

// ItemDone reports whether item of step is marked.
func (n *Navigator) ItemDone(step, item int) bool {
	return n.marks.Done(step-1, item)
}

// Validate runs the current step's strategy over fields and applies its marks.
// Bad input is reported in the Validation, never as an error.
func (n *Navigator) Validate(fields Fields) (Validation, error) {
	st := n.current.Steps[n.step-1]
	s, err := n.catalog.Strategy(st.Action)
	if err != nil {
		return Validation{}, err
	}

	entered := maps.Clone(n.entered)
	maps.Copy(entered, fields)
	v := s.Validate(Input{Fields: fields, Entered: entered})

	maps.Copy(entered, v.Fields)
	n.entered = entered

	for item, done := range v.Marks {
		if err := n.SetItem(n.step, item, done); err != nil {
			return v, err
		}
	}
	return v, nil
}

// Entered returns a copy of the values collected by validation so far.
func (n *Navigator) Entered() Fields {
	return maps.Clone(n.entered)
}
