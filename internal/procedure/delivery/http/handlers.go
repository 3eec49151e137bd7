package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbt-guide/pkg/response"
)

const markdownContentType = "text/markdown; charset=utf-8"

// ListCases godoc
// @Summary     List procedure cases
// @Tags        Guide
// @Produce     json
// @Param       lang query string false "Language code"
// @Success     200 {object} listCasesResp
// @Router      /api/v1/guide/cases [GET]
func (h *handler) ListCases(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCases(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCases: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListCasesResp(output))
}

// CreateSession godoc
// @Summary     Start a guide
// @Description Starts at step 1 of the requested case, or of the first case when none is given.
// @Tags        Guide
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq false "Optional case and language"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Unknown case"
// @Router      /api/v1/guide/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}

// GetSession godoc
// @Summary     Get the current step
// @Tags        Guide
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetSession(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.GetSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}

// DeleteSession godoc
// @Summary     Discard a guide
// @Tags        Guide
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := sessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteSession(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Next godoc
// @Summary     Go to the next step
// @Description On the last step nothing changes and moved is false.
// @Tags        Guide
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} navigateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/next [POST]
func (h *handler) Next(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Next(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Next: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newNavigateResp(output))
}

// Previous godoc
// @Summary     Go to the previous step
// @Description On the first step nothing changes and moved is false.
// @Tags        Guide
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} navigateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/previous [POST]
func (h *handler) Previous(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Previous(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Previous: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newNavigateResp(output))
}

// Restart godoc
// @Summary     Restart the guide
// @Tags        Guide
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/restart [POST]
func (h *handler) Restart(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Restart(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Restart: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}

// SelectCase godoc
// @Summary     Switch to another case
// @Description Always starts the chosen case over at step 1, even when it is the current one.
// @Tags        Guide
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Session ID"
// @Param       body body selectCaseReq true "Case"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/case [PUT]
func (h *handler) SelectCase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectCaseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SelectCase(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SelectCase: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}

// SetItem godoc
// @Summary     Mark a checklist item
// @Description Steps are numbered from 1, items from 0. Marks never block navigation.
// @Tags        Guide
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       step path int        true "Step number"
// @Param       item path int        true "Item index"
// @Param       body body setItemReq true "Completion"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/steps/{step}/items/{item} [PUT]
func (h *handler) SetItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetItem(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SetItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}

// Validate godoc
// @Summary     Validate entered details
// @Description Checks the fields of the current step and marks the checklist items they satisfy. Invalid input is reported with valid=false.
// @Tags        Guide
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body validateReq true "Entered fields"
// @Success     200  {object} validateResp
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Validate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Validate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newValidateResp(output))
}

// ExportChecklist godoc
// @Summary     Export the checklist
// @Description Returns every step's checklist as Markdown. With format=md the document is sent as text/markdown.
// @Tags        Guide
// @Produce     json
// @Produce     text/markdown
// @Param       id     path  string true  "Session ID"
// @Param       format query string false "md for a raw Markdown response"
// @Success     200 {object} exportChecklistResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/checklist [GET]
func (h *handler) ExportChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportChecklist(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportChecklist: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if c.Query("format") == "md" {
		c.Data(http.StatusOK, markdownContentType, []byte(output.Markdown))
		return
	}
	response.OK(c, exportChecklistResp{Markdown: output.Markdown, Stats: output.Stats})
}

// SwitchLanguage godoc
// @Summary     Switch the guide language
// @Description The current step and checklist are kept.
// @Tags        Guide
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Session ID"
// @Param       body body switchLanguageReq true "Language"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Unsupported language"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/guide/sessions/{id}/language [PUT]
func (h *handler) SwitchLanguage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSwitchLanguageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SwitchLanguage(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SwitchLanguage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}
