package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/boundary"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/handlers"
	"github.com/loganlanou/academy/internal/logging"
	"github.com/loganlanou/academy/internal/portal"
	"github.com/loganlanou/academy/views/layout"
)

var homeLink = layout.Link{Label: "Go home", Href: "/"}

// notFoundScope picks the not-found presentation for the section of the
// site that owns path.
func notFoundScope(path string) layout.NotFoundScope {
	switch {
	case strings.HasPrefix(path, "/events/"):
		return layout.NotFoundScope{
			Heading: "Event not found",
			Message: "This event may have ended or been removed.",
			Links:   []layout.Link{{Label: "All events", Href: "/events"}, {Label: "School calendar", Href: "/calendar"}, homeLink},
		}
	case strings.HasPrefix(path, "/news/"):
		return layout.NotFoundScope{
			Heading: "Article not found",
			Message: "We couldn't find that news article.",
			Links:   []layout.Link{{Label: "All news", Href: "/news"}, homeLink},
		}
	}
	if cfg, ok := portal.ForPath(path); ok {
		return layout.NotFoundScope{
			Heading: "Page not found",
			Message: "This page does not exist in the " + cfg.Name + ".",
			Links:   []layout.Link{{Label: "Back to dashboard", Href: cfg.Root()}, homeLink},
		}
	}
	return layout.NotFoundScope{
		Heading: "Page not found",
		Message: "The page you are looking for doesn't exist or has moved.",
		Links:   []layout.Link{homeLink, {Label: "Events", Href: "/events"}, {Label: "News", Href: "/news"}},
	}
}

// HTTPErrorHandler renders the scoped not-found page, the runtime error page
// for server errors and recovered panics, and JSON for API paths.
func (s *Service) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message any = http.StatusText(code)

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		if inner, ok := he.Internal.(*echo.HTTPError); ok {
			he = inner
		}
		code = he.Code
		message = he.Message
	case errors.Is(err, content.ErrNotFound):
		code = http.StatusNotFound
		message = http.StatusText(code)
	}

	req := c.Request()
	path := req.URL.Path
	if code >= http.StatusInternalServerError {
		slog.Error("request failed", "method", req.Method, "path", path, "status", code, logging.Err(err))
		if code == http.StatusInternalServerError {
			s.reporter.Report(req.Context(), err, boundary.Info{Name: "route", Path: path})
		}
	}

	if req.Method == http.MethodHead {
		logRenderError(c.NoContent(code))
		return
	}

	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/session") {
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}
		logRenderError(c.JSON(code, message))
		return
	}

	switch {
	case code == http.StatusNotFound:
		logRenderError(s.renderNotFound(c))
	case code >= http.StatusInternalServerError:
		home := "/"
		if cfg, ok := portal.ForPath(path); ok {
			home = cfg.Root()
		}
		meta := s.meta(c).WithTitle("Something went wrong")
		meta.NoIndex = true
		logRenderError(handlers.RenderStatus(c, code, layout.Base(s.page(c, meta), layout.ErrorPage(req.URL.RequestURI(), home))))
	default:
		logRenderError(c.String(code, fmt.Sprint(message)))
	}
}

func (s *Service) renderNotFound(c echo.Context) error {
	path := c.Request().URL.Path
	scope := notFoundScope(path)
	meta := s.meta(c).WithTitle(scope.Heading)
	meta.NoIndex = true

	var page templ.Component
	if cfg, ok := portal.ForPath(path); ok {
		page = layout.Shell(s.page(c, meta), layout.ShellProps{Portal: cfg}, layout.NotFound(scope))
	} else {
		page = layout.Base(s.page(c, meta), layout.NotFound(scope))
	}
	return handlers.RenderStatus(c, http.StatusNotFound, page)
}

func logRenderError(err error) {
	if err != nil {
		slog.Error("failed to write error response", logging.Err(err))
	}
}
