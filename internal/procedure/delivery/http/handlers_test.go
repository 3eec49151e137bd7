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

	"dbt-guide/internal/i18n"
	"dbt-guide/internal/middleware"
	"dbt-guide/internal/procedure"
	guideHTTP "dbt-guide/internal/procedure/delivery/http"
	"dbt-guide/internal/procedure/repository/memory"
	"dbt-guide/internal/procedure/usecase"
	"dbt-guide/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type sessionBody struct {
	ID   string `json:"id"`
	Lang string `json:"lang"`
	View struct {
		CaseID    string `json:"case_id"`
		Step      int    `json:"step"`
		Action    string `json:"action"`
		Checklist []struct {
			Completed bool `json:"completed"`
		} `json:"checklist"`
		CanNext bool `json:"can_next"`
	} `json:"view"`
	Labels struct {
		StepLabel string `json:"step_label"`
	} `json:"labels"`
}

type navigateBody struct {
	Moved   bool        `json:"moved"`
	Session sessionBody `json:"session"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cases, err := procedure.DefaultCases()
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := procedure.NewCatalog(cases, procedure.DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	texts, err := i18n.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	l := log.NewNop()
	uc := usecase.New(memory.New(l, 100, time.Minute), catalog, texts, l, usecase.Options{})

	r := gin.New()
	r.Use(middleware.New(l, middleware.Config{}).Language())
	guideHTTP.RegisterRoutes(r.Group("/api/v1/guide"), guideHTTP.New(l, uc))
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
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func create(t *testing.T, r *gin.Engine, body any) sessionBody {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/v1/guide/sessions", body)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, env.Message)
	}
	var s sessionBody
	if err := json.Unmarshal(env.Data, &s); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestGuideNavigation(t *testing.T) {
	r := newRouter(t)
	s := create(t, r, nil)
	base := "/api/v1/guide/sessions/" + s.ID

	if s.View.CaseID != "fresh" || s.View.Step != 1 || s.Labels.StepLabel != "Step 1 of 5" {
		t.Fatalf("unexpected session %+v", s)
	}

	_, env := do(t, r, http.MethodPost, base+"/previous", nil)
	var nav navigateBody
	_ = json.Unmarshal(env.Data, &nav)
	if nav.Moved || nav.Session.View.Step != 1 {
		t.Errorf("previous on step 1 must not move, got %+v", nav)
	}

	w, env := do(t, r, http.MethodPut, base+"/steps/3/items/2", map[string]bool{"completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("set item: expected 200, got %d: %s", w.Code, env.Message)
	}

	for i := 0; i < 3; i++ {
		do(t, r, http.MethodPost, base+"/next", nil)
	}
	_, env = do(t, r, http.MethodPost, base+"/previous", nil)
	_ = json.Unmarshal(env.Data, &nav)
	if !nav.Moved || nav.Session.View.Step != 3 || !nav.Session.View.Checklist[2].Completed {
		t.Errorf("expected step 3 with item 2 marked, got %+v", nav.Session.View)
	}

	do(t, r, http.MethodPost, base+"/next", nil)
	do(t, r, http.MethodPost, base+"/next", nil)
	_, env = do(t, r, http.MethodPost, base+"/next", nil)
	_ = json.Unmarshal(env.Data, &nav)
	if nav.Moved || nav.Session.View.Step != 5 || nav.Session.View.CanNext {
		t.Errorf("next on the last step must not move, got %+v", nav)
	}

	_, env = do(t, r, http.MethodPost, base+"/restart", nil)
	_ = json.Unmarshal(env.Data, &s)
	if s.View.Step != 1 {
		t.Errorf("expected step 1 after restart, got %d", s.View.Step)
	}
}

func TestGuideSelectCaseAndLanguage(t *testing.T) {
	r := newRouter(t)
	s := create(t, r, map[string]string{"lang": "hi"})
	base := "/api/v1/guide/sessions/" + s.ID

	if s.Lang != "hi" || s.Labels.StepLabel != "चरण 1 / 5" {
		t.Errorf("unexpected hindi session %+v", s)
	}

	w, _ := do(t, r, http.MethodPut, base+"/case", map[string]string{"case_id": "nope"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown case: expected 404, got %d", w.Code)
	}

	_, env := do(t, r, http.MethodPut, base+"/case", map[string]string{"case_id": "reseeding"})
	_ = json.Unmarshal(env.Data, &s)
	if s.View.CaseID != "reseeding" || s.View.Action != "status" {
		t.Errorf("unexpected view %+v", s.View)
	}

	_, env = do(t, r, http.MethodGet, base+"?lang=en", nil)
	_ = json.Unmarshal(env.Data, &s)
	if s.Lang != "en" {
		t.Errorf("?lang= should switch the session, got %s", s.Lang)
	}

	w, _ = do(t, r, http.MethodPut, base+"/language", map[string]string{"lang": "xx"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad language: expected 400, got %d", w.Code)
	}
}

func TestGuideValidateAndExport(t *testing.T) {
	r := newRouter(t)
	s := create(t, r, map[string]string{"case_id": "bankchange"})
	base := "/api/v1/guide/sessions/" + s.ID

	for i := 0; i < 3; i++ {
		do(t, r, http.MethodPost, base+"/next", nil)
	}

	_, env := do(t, r, http.MethodPost, base+"/validate", map[string]any{
		"fields": map[string]string{"bank": "sbi", "account": "12", "holder": "Asha"},
	})
	var v struct {
		Valid    bool              `json:"valid"`
		Fields   map[string]string `json:"fields"`
		Messages map[string]string `json:"messages"`
		Session  sessionBody       `json:"session"`
	}
	_ = json.Unmarshal(env.Data, &v)
	if v.Valid || v.Fields["ifsc"] != "SBIN0001234" {
		t.Errorf("unexpected validation %+v", v)
	}
	if v.Messages["account"] != "Account number must be 9 to 18 digits" {
		t.Errorf("expected localized account message, got %v", v.Messages)
	}
	if v.Session.View.Checklist[0].Completed || !v.Session.View.Checklist[1].Completed || !v.Session.View.Checklist[2].Completed {
		t.Errorf("unexpected checklist %+v", v.Session.View.Checklist)
	}

	w, _ := do(t, r, http.MethodGet, base+"/checklist?format=md", nil)
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/markdown") {
		t.Errorf("expected markdown, got %s", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "# Bank Account Change") || strings.Count(w.Body.String(), "- [x]") != 2 {
		t.Errorf("unexpected markdown:\n%s", w.Body.String())
	}
}

func TestGuideErrors(t *testing.T) {
	r := newRouter(t)
	s := create(t, r, nil)
	base := "/api/v1/guide/sessions/" + s.ID

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{name: "Unknown Session", method: http.MethodGet, path: "/api/v1/guide/sessions/nope", want: http.StatusNotFound},
		{name: "Delete Unknown Session", method: http.MethodDelete, path: "/api/v1/guide/sessions/nope", want: http.StatusNotFound},
		{name: "Next Unknown Session", method: http.MethodPost, path: "/api/v1/guide/sessions/nope/next", want: http.StatusNotFound},
		{name: "Unknown Case On Create", method: http.MethodPost, path: "/api/v1/guide/sessions", body: map[string]string{"case_id": "nope"}, want: http.StatusNotFound},
		{name: "Bad Create Language", method: http.MethodPost, path: "/api/v1/guide/sessions", body: map[string]string{"lang": "xx"}, want: http.StatusBadRequest},
		{name: "Step Zero", method: http.MethodPut, path: base + "/steps/0/items/0", body: map[string]bool{"completed": true}, want: http.StatusBadRequest},
		{name: "Step Out Of Range", method: http.MethodPut, path: base + "/steps/6/items/0", body: map[string]bool{"completed": true}, want: http.StatusBadRequest},
		{name: "Item Out Of Range", method: http.MethodPut, path: base + "/steps/1/items/3", body: map[string]bool{"completed": true}, want: http.StatusBadRequest},
		{name: "Non Numeric Step", method: http.MethodPut, path: base + "/steps/x/items/0", body: map[string]bool{"completed": true}, want: http.StatusBadRequest},
		{name: "Missing Completed", method: http.MethodPut, path: base + "/steps/1/items/0", body: map[string]string{}, want: http.StatusBadRequest},
		{name: "Missing Case", method: http.MethodPut, path: base + "/case", body: map[string]string{}, want: http.StatusBadRequest},
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

func TestListCases(t *testing.T) {
	r := newRouter(t)
	_, env := do(t, r, http.MethodGet, "/api/v1/guide/cases?lang=hi", nil)
	var out struct {
		Lang  string `json:"lang"`
		Cases []struct {
			ID string `json:"id"`
		} `json:"cases"`
	}
	_ = json.Unmarshal(env.Data, &out)
	if out.Lang != "hi" || len(out.Cases) != 3 || out.Cases[0].ID != "fresh" {
		t.Errorf("unexpected cases %+v", out)
	}
}

func TestGuideDeleteSession(t *testing.T) {
	r := newRouter(t)
	s := create(t, r, nil)
	base := "/api/v1/guide/sessions/" + s.ID

	if w, env := do(t, r, http.MethodDelete, base, nil); w.Code != http.StatusOK || env.ErrorCode != 0 {
		t.Fatalf("delete: expected 200, got %d (%s)", w.Code, env.Message)
	}
	if w, _ := do(t, r, http.MethodPost, base+"/next", nil); w.Code != http.StatusNotFound {
		t.Errorf("deleted session: expected 404, got %d", w.Code)
	}
}

func TestGuideCreateChunkedBody(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "Unsupported Language", body: `{"lang":"fr"}`, want: http.StatusBadRequest},
		{name: "Requested Case", body: `{"case_id":"reseeding"}`, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/guide/sessions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.ContentLength = -1
			req.TransferEncoding = []string{"chunked"}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
			if tt.want == http.StatusOK && !strings.Contains(w.Body.String(), `"case_id":"reseeding"`) {
				t.Errorf("chunked body was not bound: %s", w.Body.String())
			}
		})
	}
}
