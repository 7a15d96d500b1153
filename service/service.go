package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/loganlanou/academy/internal/boundary"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/handlers"
	"github.com/loganlanou/academy/internal/metrics"
	"github.com/loganlanou/academy/internal/middleware"
	"github.com/loganlanou/academy/internal/portal"
	"github.com/loganlanou/academy/internal/session"
	"github.com/loganlanou/academy/views/layout"
	"github.com/loganlanou/academy/views/pages"
	"golang.org/x/time/rate"
)

const signInBurst = 5

type Service struct {
	config   *Config
	source   content.Source
	sessions *session.Manager
	metrics  *metrics.Metrics
	reporter boundary.Reporter
	site     layout.Site
	now      func() time.Time

	authHandler      *handlers.AuthHandler
	fragmentsHandler *handlers.FragmentHandler
}

// New wires the site handlers. Render failures inside guarded sections are
// sent to reporter and counted; a nil reporter logs them.
func New(config *Config, source content.Source, sessions *session.Manager, m *metrics.Metrics, reporter boundary.Reporter) *Service {
	if reporter == nil {
		reporter = boundary.SlogReporter{}
	}
	s := &Service{
		config:   config,
		source:   source,
		sessions: sessions,
		metrics:  m,
		reporter: boundary.Multi(reporter, boundary.ReporterFunc(func(_ context.Context, _ error, info boundary.Info) {
			m.BoundaryFallback(info.Name)
		})),
		site: layout.Site{
			Name:        layout.DefaultSite.Name,
			URL:         config.BaseURL,
			Description: layout.DefaultSite.Description,
			Dev:         config.IsDevelopment(),
		},
		now:         time.Now,
		authHandler: handlers.NewAuthHandler(m),
	}
	s.fragmentsHandler = handlers.NewFragmentHandler(source, s.guard, func() time.Time { return s.now() })
	return s
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Static files - no session middleware
	e.Static("/public", "public")
	e.GET("/sw.js", s.handleServiceWorker)
	e.GET("/health", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	// All other routes, and unmatched paths, get the session
	withSession := e.Group("")
	withSession.Use(middleware.Session(s.sessions))

	// Auth routes - mock sign-in, rate limited per client
	authGroup := withSession.Group("/auth")
	authGroup.POST("/sign-in", s.authHandler.HandleSignIn, s.signInLimiter())
	authGroup.POST("/sign-out", s.authHandler.HandleSignOut)
	authGroup.GET("/session", s.authHandler.HandleSession)

	// Public pages
	withSession.GET("/", s.handleHome)
	withSession.GET("/calendar", s.handleCalendar)
	withSession.GET("/events", s.handleEvents)
	withSession.GET("/events/:eventId", s.handleEventDetail)
	withSession.GET("/news", s.handleNews)
	withSession.GET("/news/:newsId", s.handleNewsDetail)
	withSession.GET("/student-life", s.handleStudentLife)
	withSession.GET("/student-life/clubs", s.handleClubs)
	withSession.GET("/student-life/events", s.handleStudentEvents)
	withSession.GET("/student-life/sports", s.handleSports)
	withSession.GET("/about/leadership", s.handleLeadership)

	// Deferred sections
	fragments := withSession.Group("/fragments")
	fragments.GET("/home/events", s.fragmentsHandler.HandleHomeEvents)
	fragments.GET("/home/news", s.fragmentsHandler.HandleHomeNews)
	fragments.GET("/leadership", s.fragmentsHandler.HandleLeadership)

	// Role portals share one shell
	for _, cfg := range portal.All() {
		handler := s.handlePortal(cfg)
		withSession.GET(cfg.Root(), handler)
		withSession.GET(cfg.Root()+"/:page", handler)
	}
}

func (s *Service) signInLimiter() echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(s.config.SignInRate),
		Burst:     signInBurst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			slog.Warn("sign in rate limited", "ip", identifier)
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many sign in attempts, try again shortly")
		},
	})
}

// guard isolates each deferred section of a page behind an error boundary
// whose retry action reloads the current URL.
func (s *Service) guard(c echo.Context) pages.Guard {
	path := c.Request().URL.Path
	retry := handlers.RetryTarget(c.Request())
	return func(name string, section templ.Component) templ.Component {
		return boundary.Wrap(name, section, boundary.Options{
			Reporter:  s.reporter,
			Path:      path,
			RetryHref: retry,
		})
	}
}

func (s *Service) handleHealth(c echo.Context) error {
	status := "healthy"
	code := http.StatusOK
	if _, err := s.source.Catalog(c.Request().Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"status":         status,
		"environment":    s.config.Environment,
		"content_source": s.config.ContentSource,
		"session_store":  s.config.SessionStore,
	})
}

func (s *Service) handleServiceWorker(c echo.Context) error {
	h := c.Response().Header()
	h.Set(echo.HeaderCacheControl, "no-cache")
	h.Set("Service-Worker-Allowed", "/")
	return c.File("public/sw.js")
}
