package layout

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/portal"
	"github.com/loganlanou/academy/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

var body = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, "<p>page body</p>")
	return err
})

func testPage(path string) Page {
	return Page{
		Meta: PageMeta{Title: "Test - Academy", Description: "desc"},
		Site: DefaultSite,
		Path: path,
	}
}

func TestBase_ServiceWorkerOnlyOutsideDevelopment(t *testing.T) {
	p := testPage("/")
	out := render(t, Base(p, body))
	assert.Contains(t, out, "page body")
	assert.Contains(t, out, "'serviceWorker' in navigator")

	p.Site.Dev = true
	out = render(t, Base(p, body))
	assert.NotContains(t, out, "serviceWorker")
}

func TestBase_SessionControls(t *testing.T) {
	p := testPage("/events")
	out := render(t, Base(p, body))
	assert.Contains(t, out, `action="/auth/sign-in"`)
	assert.Contains(t, out, `name="return_to" value="/events"`)

	u := session.DemoUser()
	p.User = &u
	out = render(t, Base(p, body))
	assert.Contains(t, out, "Demo User")
	assert.Contains(t, out, `action="/auth/sign-out"`)
	assert.NotContains(t, out, `action="/auth/sign-in"`)
}

func TestBase_ActiveNav(t *testing.T) {
	out := render(t, Base(testPage("/events/2"), body))
	assert.Contains(t, out, `href="/events" class="text-sm font-medium text-indigo-700" aria-current="page"`)
	assert.False(t, isActive("/", "/events"))
	assert.True(t, isActive("/news", "/news"))
	assert.False(t, isActive("/news", "/newsletter"))
}

func TestShell_UsesPortalConfig(t *testing.T) {
	cfg := portal.Accountant()
	out := render(t, Shell(testPage("/accountant-portal/fees"), ShellProps{Portal: cfg}, body))

	assert.Contains(t, out, "Accountant Portal")
	assert.Contains(t, out, "Michael Brown")
	assert.Contains(t, out, "Senior Accountant")
	assert.Contains(t, out, "data-notification-count>5<")
	assert.Contains(t, out, "page body")
	// desktop sidebar plus the mobile copy
	assert.Equal(t, 2, strings.Count(out, `href="/accountant-portal/payroll"`))
	assert.Contains(t, out, `href="/accountant-portal/fees" data-icon="wallet" aria-current="page"`)
	assert.NotContains(t, out, "<aside hidden")
}

func TestShell_SessionUserAndMobile(t *testing.T) {
	u := session.DemoUser()
	p := testPage("/teacher-portal")
	p.User = &u

	out := render(t, Shell(p, ShellProps{Portal: portal.Teacher(), Mobile: true}, body))
	assert.Contains(t, out, "Demo User")
	assert.NotContains(t, out, "Emily Johnson")
	assert.Contains(t, out, "<aside hidden")
	assert.Contains(t, out, "data-portal-menu")
}

func TestNotFoundAndErrorPage(t *testing.T) {
	out := render(t, NotFound(NotFoundScope{
		Heading: "Event not found",
		Message: "It may have been moved.",
		Links:   []Link{{Label: "All events", Href: "/events"}, {Label: "Home", Href: "/"}},
	}))
	assert.Contains(t, out, "Event not found")
	assert.Contains(t, out, `href="/events"`)

	out = render(t, ErrorPage("/news", "/"))
	assert.Contains(t, out, "Try again")
	assert.Contains(t, out, `href="/news"`)
	assert.Contains(t, out, "Go home")

	out = render(t, ErrorPage("", "/"))
	assert.Contains(t, out, `onclick="window.location.reload()">Try again</button>`)
	assert.NotContains(t, out, `href="">`)
}

func TestShell_ActiveAndUserOverrides(t *testing.T) {
	u := session.User{Name: "Pat Lee"}
	props := ShellProps{Portal: portal.Accountant(), Active: "/accountant-portal/payroll", User: &u}

	out := render(t, Shell(testPage("/fragments/other"), props, body))
	assert.Contains(t, out, `href="/accountant-portal/payroll" data-icon="users" aria-current="page"`)
	assert.Contains(t, out, "Pat Lee")
	assert.NotContains(t, out, "Michael Brown")
	assert.Equal(t, 2, strings.Count(out, `aria-current="page"`))
}

func TestPageMeta(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/events/1", nil), httptest.NewRecorder())
	site := Site{Name: "Academy", URL: "https://academy.example/", Description: "School site"}

	pm := NewPageMeta(c, site)
	assert.Equal(t, "https://academy.example/events/1", pm.CanonicalURL)
	assert.Equal(t, "Academy", pm.Title)

	e := content.Event{Title: "Gala", Summary: "Dinner", Location: "Hall", Image: "/public/images/gala.jpg", Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}
	pm = pm.FromEvent(e)
	assert.Equal(t, "Gala - Academy", pm.Title)
	assert.Equal(t, "https://academy.example/public/images/gala.jpg", pm.OGImageURL)
	assert.Contains(t, pm.SchemaJSON, `"startDate":"2025-05-01"`)

	out := render(t, Document(Page{Meta: pm, Site: site}, ""))
	assert.Contains(t, out, `<script type="application/ld+json">`)
	assert.Contains(t, out, `<meta property="og:title" content="Gala">`)
}

func TestBuildAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://a.example/x", BuildAbsoluteURL("https://a.example/", "x"))
	assert.Equal(t, "https://cdn.example/y", BuildAbsoluteURL("https://a.example", "https://cdn.example/y"))
	assert.Equal(t, "https://a.example", BuildAbsoluteURL("https://a.example", ""))
}
