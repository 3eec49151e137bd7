package usecase

import (
	"context"
	"errors"
	"strconv"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
	"dbt-guide/internal/procedure/repository"
)

func (uc *implUseCase) getSession(ctx context.Context, id string) (*procedure.Session, error) {
	s, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, procedure.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

// withSession locks the session for fn. An explicit language in the request switches
// the session first.
func (uc *implUseCase) withSession(ctx context.Context, id string, fn func(s *procedure.Session) error) error {
	s, err := uc.getSession(ctx, id)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	uc.applyPreference(ctx, s)
	return fn(s)
}

// applyPreference must be called with the session locked.
func (uc *implUseCase) applyPreference(ctx context.Context, s *procedure.Session) {
	p := i18n.PreferenceFromContext(ctx)
	if p.Explicit == "" {
		return
	}
	if changed, _ := s.Language.Switch(string(p.Explicit)); changed {
		uc.l.Infof(ctx, "procedure.usecase: session %s switched to %s", s.ID, p.Explicit)
	}
}

// toSessionOutput must be called with the session locked.
func (uc *implUseCase) toSessionOutput(s *procedure.Session) procedure.SessionOutput {
	view := s.Navigator.View()
	return procedure.SessionOutput{
		ID:        s.ID,
		View:      view,
		Labels:    uc.labels(view),
		CreatedAt: s.CreatedAt,
	}
}

func (uc *implUseCase) labels(v procedure.View) procedure.Labels {
	t := func(key string, vars map[string]string) string {
		return uc.texts.T(v.Language, key, vars)
	}
	return procedure.Labels{
		StepLabel: t("guide.step_label", map[string]string{
			"current": strconv.Itoa(v.Step),
			"total":   strconv.Itoa(v.TotalSteps),
		}),
		Previous: t("guide.previous", nil),
		Next:     t("guide.next", nil),
		Finish:   t("guide.finish", nil),
		Restart:  t("guide.restart", nil),
		Statuses: map[procedure.StepStatus]string{
			procedure.StepCompleted: t("guide.status.completed", nil),
			procedure.StepActive:    t("guide.status.active", nil),
			procedure.StepPending:   t("guide.status.pending", nil),
		},
		CompletedTitle: t("guide.completed_title", nil),
		CompletedBody:  t("guide.completed_body", map[string]string{"case": v.CaseTitle}),
	}
}

// localize resolves the translation keys of a validation.
func (uc *implUseCase) localize(lang i18n.Language, keys map[string]string) map[string]string {
	out := make(map[string]string, len(keys))
	for field, key := range keys {
		out[field] = uc.texts.T(lang, key, nil)
	}
	return out
}
