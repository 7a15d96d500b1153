package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/lazy"
	"github.com/loganlanou/academy/internal/metrics"
	"github.com/loganlanou/academy/internal/session"
	"github.com/loganlanou/academy/internal/viewport"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoPath returns the path the router saw.
func echoPath(c echo.Context) error {
	return c.String(http.StatusOK, c.Request().URL.RequestURI())
}

func TestPathRewrite(t *testing.T) {
	e := echo.New()
	e.Pre(PathRewrite())
	e.GET("/*", echoPath)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"nested path", "/@v0/foo/bar", "/foo/bar"},
		{"bare prefix", "/@v0", "/"},
		{"bare prefix with slash", "/@v0/", "/"},
		{"query is kept", "/@v0/events?month=3", "/events?month=3"},
		{"query on bare prefix", "/@v0?x=1", "/?x=1"},
		{"api is skipped", "/api/@v0/x", "/api/@v0/x"},
		{"public is skipped", "/public/@v0/app.css", "/public/@v0/app.css"},
		{"unprefixed path", "/dashboard", "/dashboard"},
		{"longer segment", "/@v0x", "/@v0x"},
		{"prefix later in path", "/events/@v0/1", "/events/@v0/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestSkipRewrite(t *testing.T) {
	e := echo.New()
	for path, want := range map[string]bool{
		"/api/users":              true,
		"/_next/static/chunk.js":  true,
		"/_next/image?url=x":      true,
		"/favicon.ico":            true,
		"/public/images/logo.png": true,
		"/@v0/api":                false,
		"/events":                 false,
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		assert.Equal(t, want, skipRewrite(c), path)
	}
}

func sessionServer(manager *session.Manager) *echo.Echo {
	e := echo.New()
	e.Use(Session(manager))
	e.GET("/whoami", func(c echo.Context) error {
		sc := session.MustFrom(c)
		if u := sc.User(); u != nil {
			return c.String(http.StatusOK, u.Name)
		}
		return c.String(http.StatusOK, sc.State().String())
	})
	e.POST("/sign-in", func(c echo.Context) error {
		if err := session.MustFrom(c).SignIn(); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func serve(e *echo.Echo, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSession_RestoresAcrossRequests(t *testing.T) {
	manager := session.NewManager("test-secret", session.NewMemoryStore(), false)
	e := sessionServer(manager)

	rec := serve(e, http.MethodGet, "/whoami", nil)
	assert.Equal(t, "unauthenticated", rec.Body.String())

	rec = serve(e, http.MethodPost, "/sign-in", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = serve(e, http.MethodGet, "/whoami", cookies)
	assert.Equal(t, session.DemoUser().Name, rec.Body.String())
}

type corruptStore struct {
	*session.MemoryStore
	cleared []string
}

func (s *corruptStore) Get(context.Context, string) (*session.User, error) {
	return nil, session.ErrInvalidRecord
}

func (s *corruptStore) Clear(ctx context.Context, id string) error {
	s.cleared = append(s.cleared, id)
	return s.MemoryStore.Clear(ctx, id)
}

func TestSession_UnreadableRecordIsCleared(t *testing.T) {
	store := &corruptStore{MemoryStore: session.NewMemoryStore()}
	manager := session.NewManager("test-secret", store, false)
	e := sessionServer(manager)

	rec := serve(e, http.MethodPost, "/sign-in", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(e, http.MethodGet, "/whoami", rec.Result().Cookies())
	assert.Equal(t, "unauthenticated", rec.Body.String())
	assert.Len(t, store.cleared, 1)
}

func TestViewport_ClientHints(t *testing.T) {
	e := echo.New()
	e.Use(Viewport())

	var frame *viewport.Frame
	var eager bool
	e.GET("/", func(c echo.Context) error {
		frame = viewport.FromContext(c.Request().Context())
		eager = lazy.Eager(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(viewport.HeaderViewportWidth, "390")
	req.Header.Set(viewport.HeaderViewportHeight, "844")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.NotNil(t, frame)
	w, _ := frame.Width()
	assert.Equal(t, 390, w)
	assert.True(t, viewport.IsMobile(frame))
	assert.False(t, eager)
	assert.Contains(t, rec.Header().Get("Accept-CH"), viewport.HeaderViewportWidth)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1)")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, frame)
	assert.True(t, eager)
}

func TestIsCrawler(t *testing.T) {
	assert.True(t, IsCrawler("Mozilla/5.0 (compatible; bingbot/2.0)"))
	assert.True(t, IsCrawler("facebookexternalhit/1.1"))
	assert.False(t, IsCrawler("Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0"))
	assert.False(t, IsCrawler(""))
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/events/:eventId", func(c echo.Context) error {
		if c.Param("eventId") == "missing" {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return c.NoContent(http.StatusOK)
	})

	serve(e, http.MethodGet, "/events/1", nil)
	serve(e, http.MethodGet, "/events/2", nil)
	serve(e, http.MethodGet, "/events/missing", nil)

	n, err := testutil.GatherAndCount(m.Registry, "academy_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per status")
}

func TestSecurityHeadersAndTiming(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeaders(), Timing(), RequestLog())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := serve(e, http.MethodGet, "/", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Server-Timing"), "render;dur=")
}
