package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicRoutes tests that every page route exists and renders
func TestPublicRoutes(t *testing.T) {
	env := setupTestEcho(t)

	tests := []struct {
		name     string
		path     string
		contains string
	}{
		{"Home page", "/", "Upcoming events"},
		{"Calendar", "/calendar", "School Calendar"},
		{"Events", "/events", "Annual Science Fair"},
		{"Event detail", "/events/2", "Spring Concert"},
		{"News", "/news", "New Library Wing Opens"},
		{"News detail", "/news/1", "Robotics Team Advances"},
		{"Student life", "/student-life", "Student Life"},
		{"Clubs", "/student-life/clubs", "Clubs"},
		{"Student events", "/student-life/events", "Homecoming Game"},
		{"Sports", "/student-life/sports", "Sports"},
		{"Leadership", "/about/leadership", "Our Leadership"},
		{"Teacher portal", "/teacher-portal", "Emily Johnson"},
		{"Teacher classes", "/teacher-portal/classes", "My Classes"},
		{"Accountant portal", "/accountant-portal", "Michael Brown"},
		{"Academic board", "/academic-board", "Dr. James Carter"},
		{"Admin portal", "/admin-portal", "System Administrator"},
		{"Events fragment", "/fragments/home/events", "Parent-Teacher Conferences"},
		{"News fragment", "/fragments/home/news", "Scholarship Recipients Announced"},
		{"Leadership fragment", "/fragments/leadership", "Dr. Sarah Mitchell"},
		{"Health check", "/health", `"status":"healthy"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusOK, rec.Code,
				"Route GET %s should return 200, got %d", tt.path, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestVersionPrefixIsStripped(t *testing.T) {
	env := setupTestEcho(t)

	for _, path := range []string{"/@v0", "/@v0/", "/@v0/events/1", "/@v0/teacher-portal/gradebook?term=2"} {
		rec := env.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}

	rec := env.do(http.MethodGet, "/@v0x", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotFoundIsScoped(t *testing.T) {
	env := setupTestEcho(t)

	tests := []struct {
		name     string
		path     string
		contains []string
	}{
		{"unknown event", "/events/999", []string{"Event not found", `href="/events"`}},
		{"unknown article", "/news/999", []string{"Article not found", `href="/news"`}},
		{"unknown portal page", "/teacher-portal/nope", []string{"Back to dashboard", `href="/teacher-portal"`, "data-portal-sidebar"}},
		{"unknown page", "/this-route-does-not-exist", []string{"Page not found", `href="/"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
			assert.Contains(t, rec.Body.String(), `content="noindex"`)
		})
	}
}

func TestNotFound_APIReturnsJSON(t *testing.T) {
	env := setupTestEcho(t)

	rec := env.do(http.MethodGet, "/api/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body["error"])
}

func TestPanicRendersRuntimeErrorPage(t *testing.T) {
	env := setupTestEcho(t)
	env.e.GET("/boom", func(echo.Context) error { panic("kaboom") })

	rec := env.do(http.MethodGet, "/boom?x=1", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.Contains(t, rec.Body.String(), `href="/boom?x=1"`)
	assert.Equal(t, 1, env.reports.count())
}

type brokenSource struct{}

func (brokenSource) Catalog(context.Context) (*content.Catalog, error) {
	return nil, errors.New("database is locked")
}

func TestContentFailure(t *testing.T) {
	env := setupTestEchoWithSource(t, brokenSource{})

	rec := env.do(http.MethodGet, "/events", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-runtime-error")

	rec = env.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// portals do not depend on content
	rec = env.do(http.MethodGet, "/admin-portal/users", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignInFlow(t *testing.T) {
	env := setupTestEcho(t)

	rec := env.do(http.MethodGet, "/auth/session", nil)
	assert.JSONEq(t, `{"state":"unauthenticated"}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/auth/sign-in", url.Values{"return_to": {"/teacher-portal"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/teacher-portal", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, 1, env.store.Len())

	rec = env.do(http.MethodGet, "/auth/session", nil, cookies...)
	assert.Contains(t, rec.Body.String(), `"state":"authenticated"`)

	// the shell shows the session user instead of the configured name
	rec = env.do(http.MethodGet, "/teacher-portal", nil, cookies...)
	assert.Contains(t, rec.Body.String(), session.DemoUser().Name)
	assert.NotContains(t, rec.Body.String(), "Emily Johnson")

	rec = env.do(http.MethodPost, "/auth/sign-out", url.Values{}, cookies...)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 0, env.store.Len())

	rec = env.do(http.MethodGet, "/auth/session", nil, cookies...)
	assert.Contains(t, rec.Body.String(), `"state":"unauthenticated"`)
}

func TestSignInIsRateLimited(t *testing.T) {
	env := setupTestEcho(t)

	var last int
	for i := 0; i < signInBurst+1; i++ {
		last = env.do(http.MethodPost, "/auth/sign-in", url.Values{}).Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestEcho(t)
	env.do(http.MethodPost, "/auth/sign-in", url.Values{})

	rec := env.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "academy_sign_ins_total 1")

	count, err := testutil.GatherAndCount(env.metrics.Registry, "academy_sign_ins_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClientHintsMountHomeSections(t *testing.T) {
	env := setupTestEcho(t)

	rec := env.do(http.MethodGet, "/", nil)
	assert.Contains(t, rec.Body.String(), `data-lazy-src="/fragments/home/news"`)

	req := newRequest(http.MethodGet, "/")
	req.Header.Set("Sec-CH-Viewport-Width", "1440")
	req.Header.Set("Sec-CH-Viewport-Height", "2400")
	rec = serve(env, req)
	assert.NotContains(t, rec.Body.String(), "data-lazy-src")
	assert.Contains(t, rec.Body.String(), "Robotics Team Advances")

	req = newRequest(http.MethodGet, "/about/leadership")
	req.Header.Set("User-Agent", "Googlebot/2.1")
	rec = serve(env, req)
	assert.Contains(t, rec.Body.String(), "Dr. Sarah Mitchell")
}

func TestPortalSidebarHiddenOnMobile(t *testing.T) {
	env := setupTestEcho(t)

	req := newRequest(http.MethodGet, "/accountant-portal/fees")
	req.Header.Set("Sec-CH-Viewport-Width", "390")
	rec := serve(env, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<aside hidden")
}

func TestFragmentFallbackRetriesEmbeddingPage(t *testing.T) {
	env := setupTestEcho(t)
	broken := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("leaders unavailable")
	})

	render := func(req *http.Request) string {
		c := env.e.NewContext(req, httptest.NewRecorder())
		var buf bytes.Buffer
		require.NoError(t, env.svc.guard(c).Wrap("leadership", broken).Render(context.Background(), &buf))
		return buf.String()
	}

	out := render(newRequest(http.MethodGet, "/fragments/leadership"))
	assert.Contains(t, out, "data-boundary-fallback")
	assert.NotContains(t, out, `href="/fragments/leadership">Try again`)
	assert.Contains(t, out, `onclick="window.location.reload()"`)

	req := newRequest(http.MethodGet, "/fragments/leadership")
	req.Header.Set("Referer", "http://localhost:8000/about/leadership")
	out = render(req)
	assert.Contains(t, out, `href="/about/leadership">Try again`)
	assert.Equal(t, 2, env.reports.count())
}

func TestHomeEventsUseServiceClock(t *testing.T) {
	env := setupTestEcho(t)
	env.svc.now = func() time.Time { return time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC) }

	rec := env.do(http.MethodGet, "/fragments/home/events", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parent-Teacher Conferences", "built-in events never age out")

	path := filepath.Join(t.TempDir(), "content.yaml")
	writeFile(t, path, "events:\n  - id: \"1\"\n    title: Past Gala\n    date: 2029-05-02\n  - id: \"2\"\n    title: Future Gala\n    date: 2030-07-02\n")
	src, err := content.NewFileSource(path)
	require.NoError(t, err)

	env = setupTestEchoWithSource(t, src)
	env.svc.now = func() time.Time { return time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC) }
	body := env.do(http.MethodGet, "/fragments/home/events", nil).Body.String()
	assert.Contains(t, body, "Future Gala")
	assert.NotContains(t, body, "Past Gala")
}
