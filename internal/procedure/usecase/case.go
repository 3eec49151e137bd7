package usecase

import (
	"context"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
)

// ListCases returns the available cases in the preferred language.
func (uc *implUseCase) ListCases(ctx context.Context) (procedure.ListCasesOutput, error) {
	lang := i18n.PreferenceFromContext(ctx).Initial(uc.opt.DefaultLanguage)
	return procedure.ListCasesOutput{
		Language: lang,
		Cases:    uc.catalog.Summaries(lang),
	}, nil
}

// SelectCase switches the session to another case and starts it over.
func (uc *implUseCase) SelectCase(ctx context.Context, input procedure.SelectCaseInput) (procedure.SessionOutput, error) {
	var out procedure.SessionOutput
	err := uc.withSession(ctx, input.SessionID, func(s *procedure.Session) error {
		if err := s.Navigator.SelectCase(input.CaseID); err != nil {
			return err
		}
		uc.l.Infof(ctx, "procedure.usecase.SelectCase: id=%s case=%s", s.ID, input.CaseID)
		out = uc.toSessionOutput(s)
		return nil
	})
	return out, err
}
