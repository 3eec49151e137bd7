package usecase

import (
	"context"

	"dbt-guide/internal/chatbot"
)

// SendMessage records the user message and the bot reply.
// The configured reply delay runs before the session is locked and is cut short by ctx.
func (uc *implUseCase) SendMessage(ctx context.Context, input chatbot.SendMessageInput) (chatbot.SendMessageOutput, error) {
	s, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return chatbot.SendMessageOutput{}, err
	}

	if err := wait(ctx, uc.opt.ReplyDelay); err != nil {
		return chatbot.SendMessageOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	uc.applyPreference(ctx, s)

	ex, ok := s.Conversation.Send(input.Text)
	if !ok {
		return chatbot.SendMessageOutput{}, chatbot.ErrEmptyMessage
	}

	uc.l.Debugf(ctx, "chatbot.usecase.SendMessage: id=%s kind=%s key=%q score=%.2f",
		s.ID, ex.Match.Kind, ex.Match.Key, ex.Match.Score)

	return chatbot.SendMessageOutput{
		Session:  toSessionOutput(s),
		Exchange: ex,
	}, nil
}
