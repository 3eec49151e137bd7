package memory

import (
	"context"
	"fmt"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/chatbot/repository"
)

func (r *implRepository) SaveSession(ctx context.Context, s *chatbot.Session) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("%w: session id is required", repository.ErrFailedToInsert)
	}
	r.sessions.Add(s.ID, s)
	r.l.Debugf(ctx, "chatbot.repository.memory.SaveSession: id=%s live=%d", s.ID, r.sessions.Len())
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (*chatbot.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if !r.sessions.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
