package repository

import (
	"context"

	"dbt-guide/internal/procedure"
)

// Repository is the composed interface for the guide data store.
type Repository interface {
	SessionRepository
}

// SessionRepository keeps live guide sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, s *procedure.Session) error
	GetSession(ctx context.Context, id string) (*procedure.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
