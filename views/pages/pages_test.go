package pages

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/lazy"
	"github.com/loganlanou/academy/internal/portal"
	"github.com/loganlanou/academy/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

var now = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestHome_DefersSectionsWithoutFrame(t *testing.T) {
	cat := content.Default()
	out := render(t, context.Background(), Home(HomeProps{Catalog: cat, Plan: lazy.NewPlan(nil), Now: now}))

	assert.Contains(t, out, `data-lazy-src="/fragments/home/events"`)
	assert.Contains(t, out, `data-lazy-src="/fragments/home/news"`)
	assert.NotContains(t, out, "Robotics Team Advances")
	// portal links are always inline
	assert.Contains(t, out, `href="/teacher-portal"`)
}

func TestHome_TallViewportMountsSections(t *testing.T) {
	plan := lazy.NewPlan(viewport.NewFrame(1280, 2000))
	defer plan.Close()

	out := render(t, context.Background(), Home(HomeProps{Catalog: content.Default(), Plan: plan, Now: now}))
	assert.NotContains(t, out, "data-lazy-src")
	assert.Contains(t, out, "Annual Science Fair")
	assert.Contains(t, out, "Robotics Team Advances")
}

func TestHome_EagerRendersInline(t *testing.T) {
	ctx := lazy.WithEager(context.Background())
	out := render(t, ctx, Home(HomeProps{Catalog: content.Default(), Now: now}))

	assert.NotContains(t, out, "data-lazy-src")
	assert.Contains(t, out, "New Library Wing Opens")
}

func TestHome_GuardWrapsSections(t *testing.T) {
	var guarded []string
	guard := func(name string, section templ.Component) templ.Component {
		guarded = append(guarded, name)
		return section
	}
	render(t, lazy.WithEager(context.Background()), Home(HomeProps{Catalog: content.Default(), Now: now, Guard: guard}))
	assert.Equal(t, []string{"home-events", "home-news"}, guarded)
}

func TestHomeEvents_Empty(t *testing.T) {
	out := render(t, context.Background(), HomeEvents(nil))
	assert.Contains(t, out, "No upcoming events")
}

func TestCalendar_GroupsByMonth(t *testing.T) {
	out := render(t, context.Background(), Calendar(content.Default().GroupByMonth()))

	jan := strings.Index(out, "January 2025")
	mar := strings.Index(out, "March 2025")
	require.NotEqual(t, -1, jan)
	require.NotEqual(t, -1, mar)
	assert.Less(t, jan, mar)
	assert.Contains(t, out, "bg-amber-100")
}

func TestEventDetail(t *testing.T) {
	e, err := content.Default().EventByID("1")
	require.NoError(t, err)

	out := render(t, context.Background(), EventDetail(e))
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Annual Science Fair")
	assert.Contains(t, out, `<a class="hover:text-indigo-700" href="/events">Events</a>`)
	assert.Contains(t, out, `datetime="2025-03-15"`)
}

func TestNewsDetail_EscapesBody(t *testing.T) {
	n := content.NewsItem{ID: "9", Title: "T", Body: "first <b>\n\nsecond", Date: now}
	out := render(t, context.Background(), NewsDetail(n))

	assert.Contains(t, out, "<p>first &lt;b&gt;</p>")
	assert.Contains(t, out, "<p>second</p>")
}

func TestStudentLife(t *testing.T) {
	cat := content.Default()
	out := render(t, context.Background(), StudentLife(cat))
	assert.Contains(t, out, `href="/student-life/clubs"`)
	assert.Contains(t, out, `href="/student-life/sports"`)

	out = render(t, context.Background(), StudentEvents(cat.EventsByDate("student-life")))
	assert.Contains(t, out, "Homecoming Game")
	assert.NotContains(t, out, "Spring Concert")

	out = render(t, context.Background(), Clubs(nil))
	assert.Contains(t, out, "No clubs listed yet.")
}

func TestLeadership_DeferredAndFragment(t *testing.T) {
	leaders := content.Default().Leaders
	out := render(t, context.Background(), Leadership(LeadershipProps{Leaders: leaders}))
	assert.Contains(t, out, `data-lazy-src="/fragments/leadership"`)
	assert.NotContains(t, out, "Dr. Sarah Mitchell")

	out = render(t, context.Background(), LeadershipList(leaders))
	assert.Contains(t, out, "Dr. Sarah Mitchell")
}

func TestLeadership_GuardFallback(t *testing.T) {
	guard := func(string, templ.Component) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "fallback")
			return err
		})
	}
	out := render(t, lazy.WithEager(context.Background()), Leadership(LeadershipProps{Guard: guard}))
	assert.Contains(t, out, "fallback")
}

func TestPortalPage(t *testing.T) {
	cfg := portal.Teacher()
	dash, ok := cfg.Page("")
	require.True(t, ok)

	out := render(t, context.Background(), PortalPage(cfg, dash))
	assert.Contains(t, out, `href="/teacher-portal/classes"`)
	assert.Contains(t, out, "<dl")

	classes, ok := cfg.Page("classes")
	require.True(t, ok)
	out = render(t, context.Background(), PortalPage(cfg, classes))
	assert.Contains(t, out, "Algebra II, period 2")
	assert.NotContains(t, out, `aria-label="Portal sections"`)
}

func TestGuard_NilIsIdentity(t *testing.T) {
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })
	var g Guard
	assert.Error(t, g.Wrap("x", failing).Render(context.Background(), io.Discard))
}
