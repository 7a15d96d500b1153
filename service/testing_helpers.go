package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/loganlanou/academy/internal/boundary"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/metrics"
	"github.com/loganlanou/academy/internal/middleware"
	"github.com/loganlanou/academy/internal/session"
)

// reportRecorder collects the failures sent to the error reporter.
type reportRecorder struct {
	mu    sync.Mutex
	infos []boundary.Info
}

func (r *reportRecorder) Report(_ context.Context, _ error, info boundary.Info) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, info)
}

func (r *reportRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.infos)
}

type testEnv struct {
	e       *echo.Echo
	svc     *Service
	store   *session.MemoryStore
	reports *reportRecorder
	metrics *metrics.Metrics
}

func testConfig() *Config {
	return &Config{
		Environment:         "test",
		Port:                "8000",
		BaseURL:             "http://localhost:8000",
		SessionSecret:       "test-secret",
		SessionStore:        StoreMemory,
		SessionTTL:          time.Hour,
		ContentSource:       ContentStatic,
		ContentPollInterval: time.Second,
		SignInRate:          1,
	}
}

// setupTestEcho creates an Echo instance with the production middleware
// chain and routes registered, serving the built-in content.
func setupTestEcho(t *testing.T) *testEnv {
	t.Helper()
	return setupTestEchoWithSource(t, content.NewStatic())
}

func setupTestEchoWithSource(t *testing.T, source content.Source) *testEnv {
	t.Helper()

	store := session.NewMemoryStore()
	reports := &reportRecorder{}
	m := metrics.New()
	svc := New(testConfig(), source, session.NewManager("test-secret", store, false), m, reports)
	svc.now = func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) }

	e := echo.New()
	e.HTTPErrorHandler = svc.HTTPErrorHandler
	e.Pre(middleware.PathRewrite())
	e.Use(echomw.Recover())
	e.Use(middleware.Viewport())
	svc.RegisterRoutes(e)

	return &testEnv{e: e, svc: svc, store: store, reports: reports, metrics: m}
}

// do serves one request, carrying cookies when given.
func (env *testEnv) do(method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}
