package usecase

import (
	"context"

	"dbt-guide/internal/checklist"
	"dbt-guide/internal/procedure"
)

// SetItem marks one checklist item of any step.
func (uc *implUseCase) SetItem(ctx context.Context, input procedure.SetItemInput) (procedure.SessionOutput, error) {
	var out procedure.SessionOutput
	err := uc.withSession(ctx, input.SessionID, func(s *procedure.Session) error {
		if err := s.Navigator.SetItem(input.Step, input.Item, input.Completed); err != nil {
			return err
		}
		out = uc.toSessionOutput(s)
		return nil
	})
	return out, err
}

// Validate checks the fields entered on the current step and marks the items they satisfy.
func (uc *implUseCase) Validate(ctx context.Context, input procedure.ValidateInput) (procedure.ValidateOutput, error) {
	var out procedure.ValidateOutput
	err := uc.withSession(ctx, input.SessionID, func(s *procedure.Session) error {
		v, err := s.Navigator.Validate(input.Fields)
		if err != nil {
			uc.l.Errorf(ctx, "procedure.usecase.Validate: id=%s: %v", s.ID, err)
			return err
		}
		uc.l.Debugf(ctx, "procedure.usecase.Validate: id=%s step=%d valid=%t marks=%v",
			s.ID, s.Navigator.Step(), v.Valid, v.Marks)

		out.Validation = v
		out.Session = uc.toSessionOutput(s)
		out.Messages = uc.localize(out.Session.View.Language, v.Messages)
		return nil
	})
	return out, err
}

// ExportChecklist renders every step's checklist as Markdown.
func (uc *implUseCase) ExportChecklist(ctx context.Context, id string) (procedure.ExportChecklistOutput, error) {
	var out procedure.ExportChecklistOutput
	err := uc.withSession(ctx, id, func(s *procedure.Session) error {
		sections, stats := s.Navigator.Checklist()
		title := s.Navigator.View().CaseTitle
		out = procedure.ExportChecklistOutput{
			Markdown: checklist.Render(title, sections),
			Stats:    stats,
		}
		return nil
	})
	return out, err
}
