package usecase

import (
	"context"
	"errors"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
	"dbt-guide/internal/procedure/repository"
	"dbt-guide/pkg/session"
)

// CreateSession starts a guide at step 1 of the requested case, or of the first case.
func (uc *implUseCase) CreateSession(ctx context.Context, input procedure.CreateSessionInput) (procedure.SessionOutput, error) {
	lang := input.Language
	if lang == "" {
		lang = i18n.PreferenceFromContext(ctx).Initial(uc.opt.DefaultLanguage)
	}

	s, err := procedure.NewSession(session.NewID(), uc.catalog, input.CaseID, lang)
	if err != nil {
		return procedure.SessionOutput{}, err
	}
	if err := uc.repo.SaveSession(ctx, s); err != nil {
		uc.l.Errorf(ctx, "procedure.usecase.CreateSession.SaveSession: %v", err)
		return procedure.SessionOutput{}, err
	}

	uc.l.Infof(ctx, "procedure.usecase.CreateSession: id=%s case=%s lang=%s",
		s.ID, s.Navigator.CaseID(), s.Language.CurrentLanguage())

	s.Lock()
	defer s.Unlock()
	return uc.toSessionOutput(s), nil
}

// GetSession returns the current view of a session.
func (uc *implUseCase) GetSession(ctx context.Context, id string) (procedure.SessionOutput, error) {
	var out procedure.SessionOutput
	err := uc.withSession(ctx, id, func(s *procedure.Session) error {
		out = uc.toSessionOutput(s)
		return nil
	})
	return out, err
}

// DeleteSession discards a guide and its checklist marks.
func (uc *implUseCase) DeleteSession(ctx context.Context, id string) error {
	if err := uc.repo.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return procedure.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "procedure.usecase.DeleteSession: %v", err)
		return err
	}
	uc.l.Infof(ctx, "procedure.usecase.DeleteSession: id=%s", id)
	return nil
}

// SwitchLanguage changes the display language. Position and checklist are kept.
func (uc *implUseCase) SwitchLanguage(ctx context.Context, input procedure.SwitchLanguageInput) (procedure.SessionOutput, error) {
	s, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return procedure.SessionOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	changed, err := s.Language.Switch(input.Language)
	if err != nil {
		return procedure.SessionOutput{}, err
	}
	if changed {
		uc.l.Infof(ctx, "procedure.usecase.SwitchLanguage: id=%s lang=%s", s.ID, s.Language.CurrentLanguage())
	}
	return uc.toSessionOutput(s), nil
}
