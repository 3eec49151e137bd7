package http

import (
	"errors"
	"net/http"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
	pkgErrors "dbt-guide/pkg/errors"
)

var (
	errSessionIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	errInvalidStep       = pkgErrors.NewHTTPError(http.StatusBadRequest, "step must be a positive number")
	errInvalidItem       = pkgErrors.NewHTTPError(http.StatusBadRequest, "item must be a non-negative number")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, procedure.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "guide session not found")
	case errors.Is(err, procedure.ErrCaseNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "procedure case not found")
	case errors.Is(err, procedure.ErrInvalidStepIndex),
		errors.Is(err, procedure.ErrInvalidChecklistItem):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, i18n.ErrUnsupportedLanguage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported language")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
