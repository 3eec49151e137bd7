package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/cases", h.ListCases)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.POST("/:id/next", h.Next)
		sessions.POST("/:id/previous", h.Previous)
		sessions.POST("/:id/restart", h.Restart)
		sessions.PUT("/:id/case", h.SelectCase)
		sessions.PUT("/:id/steps/:step/items/:item", h.SetItem)
		sessions.POST("/:id/validate", h.Validate)
		sessions.GET("/:id/checklist", h.ExportChecklist)
		sessions.PUT("/:id/language", h.SwitchLanguage)
	}
}
