package http

import (
	"github.com/gin-gonic/gin"

	"dbt-guide/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Message and match routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.POST("/:id/messages", mw.RateLimit(), h.SendMessage)
		sessions.DELETE("/:id/messages", h.ResetSession)
		sessions.PUT("/:id/language", h.SwitchLanguage)
	}

	rg.POST("/match", mw.RateLimit(), h.Match)
	rg.PUT("/intents/:lang", h.UpdateResponses)
}
