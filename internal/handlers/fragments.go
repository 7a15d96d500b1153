package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/logging"
	"github.com/loganlanou/academy/views/pages"
)

// GuardFunc builds the section guard for one request.
type GuardFunc func(c echo.Context) pages.Guard

// FragmentHandler serves the deferred page sections fetched by the lazy
// loader script.
type FragmentHandler struct {
	source content.Source
	guard  GuardFunc
	now    func() time.Time
}

// NewFragmentHandler creates a fragment handler. A nil guard serves the
// sections unguarded and a nil now uses the wall clock.
func NewFragmentHandler(source content.Source, guard GuardFunc, now func() time.Time) *FragmentHandler {
	if now == nil {
		now = time.Now
	}
	return &FragmentHandler{source: source, guard: guard, now: now}
}

func (h *FragmentHandler) render(c echo.Context, name string, build func(*content.Catalog) templ.Component) error {
	catalog, err := h.source.Catalog(c.Request().Context())
	if err != nil {
		slog.Error("failed to load content", "fragment", name, logging.Err(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Content is unavailable")
	}

	var g pages.Guard
	if h.guard != nil {
		g = h.guard(c)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return Render(c, g.Wrap(name, build(catalog)))
}

// HandleHomeEvents serves the upcoming events section of the home page.
func (h *FragmentHandler) HandleHomeEvents(c echo.Context) error {
	return h.render(c, "home-events", func(cat *content.Catalog) templ.Component {
		return pages.HomeEvents(cat.UpcomingEvents(h.now(), pages.HomeEventsCount))
	})
}

// HandleHomeNews serves the latest news section of the home page.
func (h *FragmentHandler) HandleHomeNews(c echo.Context) error {
	return h.render(c, "home-news", func(cat *content.Catalog) templ.Component {
		return pages.HomeNews(cat.LatestNews(pages.HomeNewsCount))
	})
}

// HandleLeadership serves the leadership profiles.
func (h *FragmentHandler) HandleLeadership(c echo.Context) error {
	return h.render(c, "leadership", func(cat *content.Catalog) templ.Component {
		return pages.LeadershipList(cat.Leaders)
	})
}
