package middleware

import (
	"github.com/gin-gonic/gin"

	"dbt-guide/internal/i18n"
)

const (
	LanguageQuery        = "lang"
	AcceptLanguageHeader = "Accept-Language"
)

// Language reads the caller's language preference and stores it in the request context.
// ?lang= is an explicit choice; Accept-Language only seeds new sessions.
// Unsupported values are ignored.
func (mw Middleware) Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p i18n.Preference
		if q := c.Query(LanguageQuery); q != "" {
			if lang, err := i18n.Parse(q); err == nil {
				p.Explicit = lang
			} else {
				mw.l.Debugf(c.Request.Context(), "middleware.Language: ignoring %s=%q", LanguageQuery, q)
			}
		}
		if lang, ok := i18n.FromAcceptLanguage(c.GetHeader(AcceptLanguageHeader)); ok {
			p.Accepted = lang
		}

		c.Request = c.Request.WithContext(i18n.WithPreference(c.Request.Context(), p))
		c.Next()
	}
}
