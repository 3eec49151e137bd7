package memory

import (
	"time"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/chatbot/repository"
	"dbt-guide/pkg/log"
	"dbt-guide/pkg/session"
)

type implRepository struct {
	sessions *session.Store[*chatbot.Session]
	l        log.Logger
}

// New creates an in-memory session repository holding at most size sessions for ttl each.
func New(l log.Logger, size int, ttl time.Duration) repository.Repository {
	return &implRepository{
		sessions: session.NewStore[*chatbot.Session](size, ttl),
		l:        l,
	}
}
