package http

import (
	"errors"
	"net/http"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/i18n"
	pkgErrors "dbt-guide/pkg/errors"
)

var (
	errSessionIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	errEmptyResponses    = pkgErrors.NewHTTPError(http.StatusBadRequest, "responses must not be empty")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chatbot.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "chat session not found")
	case errors.Is(err, chatbot.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is empty")
	case errors.Is(err, i18n.ErrUnsupportedLanguage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported language")
	case errors.Is(err, chatbot.ErrTableNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no intent table for language")
	case errors.Is(err, chatbot.ErrInvalidTable):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
