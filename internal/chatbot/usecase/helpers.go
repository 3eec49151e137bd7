package usecase

import (
	"context"
	"errors"
	"time"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/chatbot/repository"
	"dbt-guide/internal/i18n"
)

func (uc *implUseCase) getSession(ctx context.Context, id string) (*chatbot.Session, error) {
	s, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, chatbot.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

// applyPreference switches the session when the request names a language explicitly.
// Must be called with the session locked.
func (uc *implUseCase) applyPreference(ctx context.Context, s *chatbot.Session) {
	p := i18n.PreferenceFromContext(ctx)
	if p.Explicit == "" {
		return
	}
	if changed, _ := s.Language.Switch(string(p.Explicit)); changed {
		uc.l.Infof(ctx, "chatbot.usecase: session %s switched to %s", s.ID, p.Explicit)
	}
}

// toSessionOutput must be called with the session locked.
func toSessionOutput(s *chatbot.Session) chatbot.SessionOutput {
	return chatbot.SessionOutput{
		ID:        s.ID,
		Language:  s.Language.CurrentLanguage(),
		History:   s.Conversation.History(),
		CreatedAt: s.CreatedAt,
	}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
