package http

import (
	"dbt-guide/internal/procedure"
	"dbt-guide/pkg/log"
)

type handler struct {
	l  log.Logger
	uc procedure.UseCase
}

// New creates a new HTTP handler for the guide domain.
func New(l log.Logger, uc procedure.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
