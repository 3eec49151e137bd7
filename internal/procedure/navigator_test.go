package procedure_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
)

func defaultCatalog(t *testing.T) *procedure.Catalog {
	t.Helper()
	cases, err := procedure.DefaultCases()
	if err != nil {
		t.Fatalf("DefaultCases: %v", err)
	}
	c, err := procedure.NewCatalog(cases, procedure.DefaultRegistry())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func newNavigator(t *testing.T, caseID string) *procedure.Navigator {
	t.Helper()
	n, err := procedure.NewNavigator(defaultCatalog(t), i18n.Fixed(i18n.English), caseID)
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return n
}

func TestNavigatorBounds(t *testing.T) {
	n := newNavigator(t, "fresh")
	if n.Step() != 1 || n.TotalSteps() != 5 {
		t.Fatalf("expected step 1 of 5, got %d of %d", n.Step(), n.TotalSteps())
	}

	if n.Previous() {
		t.Error("previous on the first step must be a no-op")
	}
	if n.Step() != 1 {
		t.Errorf("expected step 1, got %d", n.Step())
	}

	for i := 2; i <= 5; i++ {
		if !n.Next() {
			t.Fatalf("next to step %d should move", i)
		}
		if n.Step() != i {
			t.Fatalf("expected step %d, got %d", i, n.Step())
		}
	}

	if n.Next() {
		t.Error("next on the last step must be a no-op")
	}
	if n.Step() != 5 {
		t.Errorf("expected step 5, got %d", n.Step())
	}

	if !n.Previous() || n.Step() != 4 {
		t.Errorf("previous from the last step should reach 4, got %d", n.Step())
	}
}

func TestNavigatorStaysInRange(t *testing.T) {
	n := newNavigator(t, "reseeding")
	moves := "nnpnnnnnnpppppppnpnpnnnnnnnppp"
	for i, m := range moves {
		before := n.Step()
		var moved bool
		if m == 'n' {
			moved = n.Next()
			if moved && n.Step() != before+1 {
				t.Fatalf("move %d: next must add exactly one", i)
			}
		} else {
			moved = n.Previous()
			if moved && n.Step() != before-1 {
				t.Fatalf("move %d: previous must subtract exactly one", i)
			}
		}
		if !moved && n.Step() != before {
			t.Fatalf("move %d: no-op changed the step", i)
		}
		if n.Step() < 1 || n.Step() > n.TotalSteps() {
			t.Fatalf("move %d: step %d out of range", i, n.Step())
		}
	}
}

func TestNavigatorChecklistPersists(t *testing.T) {
	n := newNavigator(t, "fresh")
	if err := n.SetItem(3, 2, true); err != nil {
		t.Fatalf("SetItem: %v", err)
	}

	n.Next()
	n.Next()
	n.Next()
	if n.Step() != 4 {
		t.Fatalf("expected step 4, got %d", n.Step())
	}
	n.Previous()

	if !n.ItemDone(3, 2) {
		t.Error("item 2 of step 3 should still be complete")
	}
	view := n.View()
	if !view.Checklist[2].Completed || view.Checklist[0].Completed {
		t.Errorf("unexpected checklist %+v", view.Checklist)
	}
}

func TestNavigatorSelectCase(t *testing.T) {
	n := newNavigator(t, "fresh")
	n.Next()
	_ = n.SetItem(1, 0, true)

	if err := n.SelectCase("fresh"); err != nil {
		t.Fatal(err)
	}
	if n.Step() != 1 {
		t.Errorf("reselecting must reset to step 1, got %d", n.Step())
	}
	if err := n.SelectCase("fresh"); err != nil || n.Step() != 1 {
		t.Errorf("second reselect must keep step 1, got %d", n.Step())
	}
	if n.ItemDone(1, 0) {
		t.Error("selecting a case clears the checklist")
	}

	n.Next()
	if err := n.SelectCase("missing"); !errors.Is(err, procedure.ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound, got %v", err)
	}
	if n.CaseID() != "fresh" || n.Step() != 2 {
		t.Errorf("unknown case must not change state, got %s step %d", n.CaseID(), n.Step())
	}

	if err := n.SelectCase("bankchange"); err != nil || n.CaseID() != "bankchange" || n.Step() != 1 {
		t.Errorf("expected bankchange at step 1, got %s %d (%v)", n.CaseID(), n.Step(), err)
	}
}

func TestNavigatorRestart(t *testing.T) {
	n := newNavigator(t, "")
	if n.CaseID() != "fresh" {
		t.Fatalf("default case should be fresh, got %s", n.CaseID())
	}
	n.Next()
	n.Next()
	_ = n.SetItem(2, 1, true)

	n.Restart()
	if n.Step() != 1 || n.ItemDone(2, 1) {
		t.Errorf("restart should return to step 1 with nothing marked")
	}
}

func TestNavigatorSetItemErrors(t *testing.T) {
	n := newNavigator(t, "fresh")
	if err := n.SetItem(0, 0, true); !errors.Is(err, procedure.ErrInvalidStepIndex) {
		t.Errorf("expected ErrInvalidStepIndex, got %v", err)
	}
	if err := n.SetItem(6, 0, true); !errors.Is(err, procedure.ErrInvalidStepIndex) {
		t.Errorf("expected ErrInvalidStepIndex, got %v", err)
	}
	if err := n.SetItem(1, 3, true); !errors.Is(err, procedure.ErrInvalidChecklistItem) {
		t.Errorf("expected ErrInvalidChecklistItem, got %v", err)
	}
}

func TestNavigatorCompletionIsInformational(t *testing.T) {
	n := newNavigator(t, "fresh")
	for n.Next() {
	}
	if n.Step() != n.TotalSteps() {
		t.Errorf("unchecked items must not block navigation, stopped at %d", n.Step())
	}
}

func TestNavigatorView(t *testing.T) {
	n := newNavigator(t, "fresh")
	n.Next()
	n.Next()

	v := n.View()
	if v.Step != 3 || v.Action != procedure.ActionAadhaar || v.Mode != procedure.ModeAadhaarEntry {
		t.Errorf("unexpected view %+v", v)
	}
	if !v.CanPrevious || !v.CanNext || v.CanFinish {
		t.Errorf("unexpected navigation flags %+v", v)
	}
	if v.Progress != 0.6 {
		t.Errorf("expected progress 0.6, got %v", v.Progress)
	}

	var statuses []procedure.StepStatus
	for _, s := range v.Steps {
		statuses = append(statuses, s.Status)
	}
	want := []procedure.StepStatus{
		procedure.StepCompleted, procedure.StepCompleted, procedure.StepActive,
		procedure.StepPending, procedure.StepPending,
	}
	if diff := cmp.Diff(want, statuses); diff != "" {
		t.Errorf("step indicators mismatch (-want +got):\n%s", diff)
	}

	n.Next()
	n.Next()
	last := n.View()
	if last.CanNext || !last.CanFinish || last.Progress != 1 {
		t.Errorf("last step should only allow finish, got %+v", last)
	}
}

func TestNavigatorViewLanguage(t *testing.T) {
	sel := i18n.NewSelector(i18n.English)
	n, err := procedure.NewNavigator(defaultCatalog(t), sel, "fresh")
	if err != nil {
		t.Fatal(err)
	}
	en := n.View()

	_, _ = sel.Switch("hi")
	hi := n.View()
	if hi.Language != i18n.Hindi || hi.CaseTitle == en.CaseTitle || hi.Title == en.Title {
		t.Errorf("view should follow the selected language, got %q", hi.CaseTitle)
	}
	if hi.Step != en.Step {
		t.Error("switching language must not move the navigator")
	}
}

func TestNavigatorChecklistExport(t *testing.T) {
	n := newNavigator(t, "bankchange")
	_ = n.SetItem(1, 0, true)
	_ = n.SetItem(5, 2, true)

	sections, stats := n.Checklist()
	if len(sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(sections))
	}
	if sections[0].Title != "1. Prepare Documentation" || !sections[0].Items[0].Checked {
		t.Errorf("unexpected first section %+v", sections[0])
	}
	if stats.Total != 15 || stats.Completed != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
