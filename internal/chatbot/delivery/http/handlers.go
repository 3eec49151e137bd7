package http

import (
	"github.com/gin-gonic/gin"

	"dbt-guide/pkg/response"
)

// CreateSession godoc
// @Summary     Open a chat session
// @Description Creates a conversation greeted in the requested language, the ?lang= query, Accept-Language, or the default language.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq false "Optional language"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}

// GetSession godoc
// @Summary     Get a chat transcript
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [GET]
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

// SendMessage godoc
// @Summary     Send a chat message
// @Description Records the message and returns the bot reply. Unmatched messages get the fallback text with suggestions.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "Message"
// @Success     200  {object} sendMessageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// DeleteSession godoc
// @Summary     Discard a chat session
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteSession(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ResetSession godoc
// @Summary     Clear a chat transcript
// @Description Removes every message and greets again in the session language.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/messages [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResetSession(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ResetSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output))
}

// SwitchLanguage godoc
// @Summary     Switch the chat language
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Session ID"
// @Param       body body switchLanguageReq true "Language"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Unsupported language"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/language [PUT]
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

// Match godoc
// @Summary     Match a message without a session
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body matchReq true "Message and language"
// @Success     200  {object} matchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/match [POST]
func (h *handler) Match(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Match(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Match: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMatchResp(output))
}

// UpdateResponses godoc
// @Summary     Merge custom responses
// @Description Adds or replaces canned responses of one language. New keys are matched after the existing ones.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       lang path string             true "Language code"
// @Param       body body updateResponsesReq true "Responses keyed by phrase"
// @Success     200  {object} response.Resp "OK"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/chat/intents/{lang} [PUT]
func (h *handler) UpdateResponses(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateResponsesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateResponses(ctx, req.Language, req.Responses); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
