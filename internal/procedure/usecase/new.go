package usecase

import (
	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
	"dbt-guide/internal/procedure/repository"
	"dbt-guide/pkg/log"
)

// Options tunes the guide use case.
type Options struct {
	// DefaultLanguage is used for new sessions when the request states no preference.
	DefaultLanguage i18n.Language
}

// implUseCase is the private implementation of procedure.UseCase.
type implUseCase struct {
	repo    repository.Repository
	catalog *procedure.Catalog
	texts   *i18n.Catalog
	l       log.Logger
	opt     Options
}

// New creates a new procedure UseCase implementation.
// texts supplies the localized labels and validation messages.
func New(repo repository.Repository, catalog *procedure.Catalog, texts *i18n.Catalog, l log.Logger, opt Options) procedure.UseCase {
	opt.DefaultLanguage = i18n.OrDefault(opt.DefaultLanguage)
	return &implUseCase{
		repo:    repo,
		catalog: catalog,
		texts:   texts,
		l:       l,
		opt:     opt,
	}
}
