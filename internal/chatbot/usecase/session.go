package usecase

import (
	"context"
	"errors"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/chatbot/repository"
	"dbt-guide/internal/i18n"
	"dbt-guide/pkg/session"
)

// CreateSession opens a conversation greeted in the requested or preferred language.
func (uc *implUseCase) CreateSession(ctx context.Context, input chatbot.CreateSessionInput) (chatbot.SessionOutput, error) {
	lang := input.Language
	if lang == "" {
		lang = i18n.PreferenceFromContext(ctx).Initial(uc.opt.DefaultLanguage)
	}

	s := chatbot.NewSession(session.NewID(), uc.bot, lang)
	if err := uc.repo.SaveSession(ctx, s); err != nil {
		uc.l.Errorf(ctx, "chatbot.usecase.CreateSession.SaveSession: %v", err)
		return chatbot.SessionOutput{}, err
	}

	uc.l.Infof(ctx, "chatbot.usecase.CreateSession: id=%s lang=%s", s.ID, s.Language.CurrentLanguage())

	s.Lock()
	defer s.Unlock()
	return toSessionOutput(s), nil
}

// GetSession returns the transcript of a session.
func (uc *implUseCase) GetSession(ctx context.Context, id string) (chatbot.SessionOutput, error) {
	s, err := uc.getSession(ctx, id)
	if err != nil {
		return chatbot.SessionOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	uc.applyPreference(ctx, s)
	return toSessionOutput(s), nil
}

// DeleteSession discards a conversation. Later requests for id answer ErrSessionNotFound.
func (uc *implUseCase) DeleteSession(ctx context.Context, id string) error {
	if err := uc.repo.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chatbot.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "chatbot.usecase.DeleteSession: %v", err)
		return err
	}
	uc.l.Infof(ctx, "chatbot.usecase.DeleteSession: id=%s", id)
	return nil
}

// ResetSession clears the transcript and greets again.
func (uc *implUseCase) ResetSession(ctx context.Context, id string) (chatbot.SessionOutput, error) {
	s, err := uc.getSession(ctx, id)
	if err != nil {
		return chatbot.SessionOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	uc.applyPreference(ctx, s)
	s.Conversation.Reset()

	uc.l.Infof(ctx, "chatbot.usecase.ResetSession: id=%s", id)
	return toSessionOutput(s), nil
}

// SwitchLanguage changes the language used for later replies. The transcript is kept.
func (uc *implUseCase) SwitchLanguage(ctx context.Context, input chatbot.SwitchLanguageInput) (chatbot.SessionOutput, error) {
	s, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return chatbot.SessionOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	changed, err := s.Language.Switch(input.Language)
	if err != nil {
		return chatbot.SessionOutput{}, err
	}
	if changed {
		uc.l.Infof(ctx, "chatbot.usecase.SwitchLanguage: id=%s lang=%s", s.ID, s.Language.CurrentLanguage())
	}
	return toSessionOutput(s), nil
}
