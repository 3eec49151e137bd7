package httpserver

import (
	"github.com/gin-gonic/gin"

	"dbt-guide/pkg/response"
)

const (
	HealthMessage = "DBT guide API"
	HealthVersion = "1.0.0"
	ServiceName   = "dbt-guide"
)

// healthBody is the body shared by the health endpoints.
func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary     Health check
// @Description Reports the service name and version.
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "healthy"
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck godoc
// @Summary     Readiness check
// @Description Ready once the chatbot tables, procedure cases and translations are loaded.
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "ready"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, healthBody("ready"))
}

// liveCheck godoc
// @Summary     Liveness check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "alive"
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
