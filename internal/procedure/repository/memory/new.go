package memory

import (
	"time"

	"dbt-guide/internal/procedure"
	"dbt-guide/internal/procedure/repository"
	"dbt-guide/pkg/log"
	"dbt-guide/pkg/session"
)

type implRepository struct {
	sessions *session.Store[*procedure.Session]
	l        log.Logger
}

// New creates an in-memory guide session repository.
func New(l log.Logger, size int, ttl time.Duration) repository.Repository {
	return &implRepository{
		sessions: session.NewStore[*procedure.Session](size, ttl),
		l:        l,
	}
}
