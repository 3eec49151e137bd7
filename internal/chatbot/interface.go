package chatbot

import (
	"context"

	"dbt-guide/internal/i18n"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversations
	CreateSession(ctx context.Context, input CreateSessionInput) (SessionOutput, error)
	GetSession(ctx context.Context, id string) (SessionOutput, error)
	DeleteSession(ctx context.Context, id string) error
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	ResetSession(ctx context.Context, id string) (SessionOutput, error)
	SwitchLanguage(ctx context.Context, input SwitchLanguageInput) (SessionOutput, error)

	// Stateless matching and content
	Match(ctx context.Context, input MatchInput) (MatchOutput, error)
	UpdateResponses(ctx context.Context, lang i18n.Language, responses map[string]string) error
}
