package http

import (
	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/i18n"
	"dbt-guide/pkg/response"
)

// --- Request DTOs ---

type createSessionReq struct {
	Language string `json:"lang"`
}

func (r createSessionReq) validate() error {
	if r.Language == "" {
		return nil
	}
	_, err := i18n.Parse(r.Language)
	return err
}

func (r createSessionReq) toInput() chatbot.CreateSessionInput {
	return chatbot.CreateSessionInput{Language: i18n.Language(r.Language)}
}

// ---

type sendMessageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Text      string `json:"text" binding:"required,max=1000"`
}

func (r sendMessageReq) validate() error { return nil }

func (r sendMessageReq) toInput() chatbot.SendMessageInput {
	return chatbot.SendMessageInput{SessionID: r.SessionID, Text: r.Text}
}

// ---

type switchLanguageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Language  string `json:"lang" binding:"required"`
}

func (r switchLanguageReq) validate() error { return nil }

func (r switchLanguageReq) toInput() chatbot.SwitchLanguageInput {
	return chatbot.SwitchLanguageInput{SessionID: r.SessionID, Language: r.Language}
}

// ---

type matchReq struct {
	Text     string `json:"text" binding:"max=1000"`
	Language string `json:"lang"`
}

func (r matchReq) validate() error { return nil }

func (r matchReq) toInput() chatbot.MatchInput {
	return chatbot.MatchInput{Text: r.Text, Language: i18n.Language(r.Language)}
}

// ---

type updateResponsesReq struct {
	Language  i18n.Language     `json:"-"` // populated from URI param
	Responses map[string]string `json:"responses" binding:"required"`
}

func (r updateResponsesReq) validate() error {
	if len(r.Responses) == 0 {
		return errEmptyResponses
	}
	return nil
}

// --- Response DTOs ---

type turnResp struct {
	Role      string            `json:"role"`
	Text      string            `json:"text"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newTurnResp(t chatbot.Turn) turnResp {
	return turnResp{
		Role:      string(t.Role),
		Text:      t.Text,
		Timestamp: response.DateTime(t.Timestamp),
	}
}

type sessionResp struct {
	ID        string            `json:"id"`
	Language  string            `json:"lang"`
	RTL       bool              `json:"rtl"`
	History   []turnResp        `json:"history"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newSessionResp(out chatbot.SessionOutput) sessionResp {
	history := make([]turnResp, len(out.History))
	for i, t := range out.History {
		history[i] = newTurnResp(t)
	}
	return sessionResp{
		ID:        out.ID,
		Language:  string(out.Language),
		RTL:       i18n.IsRTL(out.Language),
		History:   history,
		CreatedAt: response.DateTime(out.CreatedAt),
	}
}

type matchResultResp struct {
	Kind  string  `json:"kind"`
	Key   string  `json:"key,omitempty"`
	Score float64 `json:"score"`
}

func newMatchResultResp(r chatbot.MatchResult) matchResultResp {
	return matchResultResp{Kind: string(r.Kind), Key: r.Key, Score: r.Score}
}

type sendMessageResp struct {
	Session sessionResp     `json:"session"`
	Reply   turnResp        `json:"reply"`
	Match   matchResultResp `json:"match"`
}

func (h *handler) newSendMessageResp(out chatbot.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Session: newSessionResp(out.Session),
		Reply:   newTurnResp(out.Exchange.Bot),
		Match:   newMatchResultResp(out.Exchange.Match),
	}
}

type matchResp struct {
	Input      string          `json:"input"`
	Normalized string          `json:"normalized"`
	Language   string          `json:"lang"`
	Response   string          `json:"response"`
	Match      matchResultResp `json:"match"`
}

func (h *handler) newMatchResp(out chatbot.MatchOutput) matchResp {
	return matchResp{
		Input:      out.Input,
		Normalized: out.Normalized,
		Language:   string(out.Language),
		Response:   out.Result.Response,
		Match:      newMatchResultResp(out.Result),
	}
}
