package http

import (
	"dbt-guide/internal/chatbot"
	"dbt-guide/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chatbot.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chatbot.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
