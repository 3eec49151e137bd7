package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/middleware"
	"dbt-guide/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		header string
		want   i18n.Preference
	}{
		{name: "Nothing", url: "/", want: i18n.Preference{}},
		{name: "Query", url: "/?lang=hi", want: i18n.Preference{Explicit: i18n.Hindi}},
		{name: "Header", url: "/", header: "hi-IN,hi;q=0.9", want: i18n.Preference{Accepted: i18n.Hindi}},
		{name: "Both", url: "/?lang=en", header: "hi", want: i18n.Preference{Explicit: i18n.English, Accepted: i18n.Hindi}},
		{name: "Unsupported Query", url: "/?lang=fr", want: i18n.Preference{}},
	}

	mw := middleware.New(log.NewNop(), middleware.Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got i18n.Preference
			r := gin.New()
			r.Use(mw.Language())
			r.GET("/", func(c *gin.Context) {
				got = i18n.PreferenceFromContext(c.Request.Context())
			})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.header != "" {
				req.Header.Set(middleware.AcceptLanguageHeader, tt.header)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	var ctx context.Context
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) { ctx = c.Request.Context() })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(middleware.RequestIDHeader) != "req-1" {
		t.Errorf("expected the request id to be echoed")
	}
	if ctx == nil {
		t.Fatal("handler not reached")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("Blocks After Burst", func(t *testing.T) {
		mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 10})
		r := gin.New()
		r.Use(mw.RateLimit())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		// burst is 1 for 10 requests per minute
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("first request should pass, got %d", w.Code)
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		mw := middleware.New(log.NewNop(), middleware.Config{})
		r := gin.New()
		r.Use(mw.RateLimit())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d rejected with %d", i, w.Code)
			}
		}
	})
}
