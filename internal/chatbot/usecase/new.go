package usecase

import (
	"time"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/chatbot/repository"
	"dbt-guide/internal/i18n"
	"dbt-guide/pkg/log"
)

// Options tunes the chat use case.
type Options struct {
	// DefaultLanguage is used for new sessions when the request states no preference.
	DefaultLanguage i18n.Language
	// ReplyDelay postpones every bot reply. Zero replies immediately.
	ReplyDelay time.Duration
}

// implUseCase is the private implementation of chatbot.UseCase.
type implUseCase struct {
	repo repository.Repository
	bot  *chatbot.Bot
	l    log.Logger
	opt  Options
}

// New creates a new chatbot UseCase implementation.
func New(repo repository.Repository, bot *chatbot.Bot, l log.Logger, opt Options) chatbot.UseCase {
	opt.DefaultLanguage = i18n.OrDefault(opt.DefaultLanguage)
	return &implUseCase{
		repo: repo,
		bot:  bot,
		l:    l,
		opt:  opt,
	}
}
