package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dbt-guide/internal/chatbot"
	chatHTTP "dbt-guide/internal/chatbot/delivery/http"
	"dbt-guide/internal/chatbot/repository/memory"
	"dbt-guide/internal/chatbot/usecase"
	"dbt-guide/internal/middleware"
	"dbt-guide/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type sessionBody struct {
	ID      string `json:"id"`
	Lang    string `json:"lang"`
	History []struct {
		Role string `json:"role"`
		Text string `json:"text"`
	} `json:"history"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tables, err := chatbot.DefaultTables()
	if err != nil {
		t.Fatal(err)
	}
	bot, err := chatbot.NewBot(tables)
	if err != nil {
		t.Fatal(err)
	}
	l := log.NewNop()
	uc := usecase.New(memory.New(l, 100, time.Minute), bot, l, usecase.Options{})
	mw := middleware.New(l, middleware.Config{})

	r := gin.New()
	r.Use(mw.Language())
	chatHTTP.RegisterRoutes(r.Group("/api/v1/chat"), chatHTTP.New(l, uc), mw)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestChatFlow(t *testing.T) {
	r := newRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/chat/sessions?lang=hi", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", w.Code)
	}
	var s sessionBody
	_ = json.Unmarshal(env.Data, &s)
	if s.ID == "" || s.Lang != "hi" || len(s.History) != 1 {
		t.Fatalf("unexpected session %+v", s)
	}

	w, env = do(t, r, http.MethodPost, "/api/v1/chat/sessions/"+s.ID+"/messages?lang=en", map[string]string{"text": "What is DBT?"})
	if w.Code != http.StatusOK {
		t.Fatalf("send: expected 200, got %d: %s", w.Code, env.Message)
	}
	var sent struct {
		Session sessionBody `json:"session"`
		Reply   struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"reply"`
		Match struct {
			Kind string `json:"kind"`
		} `json:"match"`
	}
	_ = json.Unmarshal(env.Data, &sent)
	if sent.Match.Kind != "exact" || sent.Reply.Role != "bot" || sent.Session.Lang != "en" {
		t.Errorf("unexpected send response %+v", sent)
	}

	w, _ = do(t, r, http.MethodDelete, "/api/v1/chat/sessions/"+s.ID+"/messages", nil)
	if w.Code != http.StatusOK {
		t.Errorf("reset: expected 200, got %d", w.Code)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/chat/sessions/"+s.ID, nil)
	_ = json.Unmarshal(env.Data, &s)
	if len(s.History) != 1 {
		t.Errorf("expected only the greeting after reset, got %d turns", len(s.History))
	}

	if w, _ = do(t, r, http.MethodDelete, "/api/v1/chat/sessions/"+s.ID, nil); w.Code != http.StatusOK {
		t.Errorf("delete: expected 200, got %d", w.Code)
	}
	if w, _ = do(t, r, http.MethodGet, "/api/v1/chat/sessions/"+s.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("deleted session: expected 404, got %d", w.Code)
	}
}

func TestChatErrors(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{name: "Unknown Session", method: http.MethodGet, path: "/api/v1/chat/sessions/nope", want: http.StatusNotFound},
		{name: "Delete Unknown Session", method: http.MethodDelete, path: "/api/v1/chat/sessions/nope", want: http.StatusNotFound},
		{name: "Send To Unknown Session", method: http.MethodPost, path: "/api/v1/chat/sessions/nope/messages", body: map[string]string{"text": "hi"}, want: http.StatusNotFound},
		{name: "Missing Text", method: http.MethodPost, path: "/api/v1/chat/sessions/nope/messages", body: map[string]string{}, want: http.StatusBadRequest},
		{name: "Bad Create Language", method: http.MethodPost, path: "/api/v1/chat/sessions", body: map[string]string{"lang": "xx"}, want: http.StatusBadRequest},
		{name: "Bad Intent Language", method: http.MethodPut, path: "/api/v1/chat/intents/xx", body: map[string]any{"responses": map[string]string{"a": "b"}}, want: http.StatusBadRequest},
		{name: "Empty Intents", method: http.MethodPut, path: "/api/v1/chat/intents/en", body: map[string]any{"responses": map[string]string{}}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d (%s)", tt.want, w.Code, env.Message)
			}
			if env.ErrorCode == 0 {
				t.Error("error responses carry a non-zero error_code")
			}
		})
	}
}

func TestMatchAndIntents(t *testing.T) {
	r := newRouter(t)

	_, env := do(t, r, http.MethodPost, "/api/v1/chat/match", map[string]string{"text": "xyz completely unrelated gibberish"})
	var m struct {
		Response string `json:"response"`
		Match    struct {
			Kind string `json:"kind"`
		} `json:"match"`
	}
	_ = json.Unmarshal(env.Data, &m)
	if m.Match.Kind != "fallback" {
		t.Errorf("expected fallback, got %+v", m)
	}

	w, _ := do(t, r, http.MethodPut, "/api/v1/chat/intents/en", map[string]any{
		"responses": map[string]string{"csc centre": "Visit your nearest CSC"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", w.Code)
	}

	_, env = do(t, r, http.MethodPost, "/api/v1/chat/match", map[string]string{"text": "CSC centre", "lang": "en"})
	_ = json.Unmarshal(env.Data, &m)
	if m.Response != "Visit your nearest CSC" || m.Match.Kind != "exact" {
		t.Errorf("merged response not matched, got %+v", m)
	}
}

func TestCreateSessionChunkedBody(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions", strings.NewReader(`{"lang":"fr"}`))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("a chunked body must be validated: expected 400, got %d", w.Code)
	}
}
