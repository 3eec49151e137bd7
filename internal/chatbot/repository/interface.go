package repository

import (
	"context"

	"dbt-guide/internal/chatbot"
)

// Repository is the composed interface for the chatbot data store.
type Repository interface {
	SessionRepository
}

// SessionRepository keeps live chat sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, s *chatbot.Session) error
	GetSession(ctx context.Context, id string) (*chatbot.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
