package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbt-guide/internal/i18n"
	pkgErrors "dbt-guide/pkg/errors"
)

// hasBody reports whether the request carries a body, including chunked ones
// whose length is unknown.
func hasBody(c *gin.Context) bool {
	return c.Request.ContentLength != 0 && c.Request.Body != nil && c.Request.Body != http.NoBody
}

func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}

// processCreateSessionReq binds the optional create session body.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if hasBody(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, badRequest(err)
		}
	}
	return req, req.validate()
}

// processSendMessageReq binds the message body + URI param.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errSessionIDRequired
	}
	return req, req.validate()
}

// processSwitchLanguageReq binds the language body + URI param.
func (h *handler) processSwitchLanguageReq(c *gin.Context) (switchLanguageReq, error) {
	var req switchLanguageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errSessionIDRequired
	}
	return req, req.validate()
}

// processMatchReq binds the stateless match body.
func (h *handler) processMatchReq(c *gin.Context) (matchReq, error) {
	var req matchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, req.validate()
}

// processUpdateResponsesReq binds the responses body + language URI param.
func (h *handler) processUpdateResponsesReq(c *gin.Context) (updateResponsesReq, error) {
	var req updateResponsesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	lang, err := i18n.Parse(c.Param("lang"))
	if err != nil {
		return req, err
	}
	req.Language = lang
	return req, req.validate()
}
