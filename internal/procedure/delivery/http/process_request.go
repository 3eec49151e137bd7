package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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

func sessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errSessionIDRequired
	}
	return id, nil
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

// processSelectCaseReq binds the case body + URI param.
func (h *handler) processSelectCaseReq(c *gin.Context) (selectCaseReq, error) {
	var req selectCaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	id, err := sessionID(c)
	if err != nil {
		return req, err
	}
	req.SessionID = id
	return req, req.validate()
}

// processSetItemReq binds the completion body + session, step and item URI params.
func (h *handler) processSetItemReq(c *gin.Context) (setItemReq, error) {
	var req setItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	id, err := sessionID(c)
	if err != nil {
		return req, err
	}
	req.SessionID = id

	if req.Step, err = strconv.Atoi(c.Param("step")); err != nil {
		return req, errInvalidStep
	}
	if req.Item, err = strconv.Atoi(c.Param("item")); err != nil {
		return req, errInvalidItem
	}
	return req, req.validate()
}

// processValidateReq binds the entered fields + URI param.
func (h *handler) processValidateReq(c *gin.Context) (validateReq, error) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	id, err := sessionID(c)
	if err != nil {
		return req, err
	}
	req.SessionID = id
	return req, req.validate()
}

// processSwitchLanguageReq binds the language body + URI param.
func (h *handler) processSwitchLanguageReq(c *gin.Context) (switchLanguageReq, error) {
	var req switchLanguageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	id, err := sessionID(c)
	if err != nil {
		return req, err
	}
	req.SessionID = id
	return req, req.validate()
}
