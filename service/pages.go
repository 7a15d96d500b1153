package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/handlers"
	"github.com/loganlanou/academy/internal/lazy"
	"github.com/loganlanou/academy/internal/logging"
	"github.com/loganlanou/academy/internal/portal"
	"github.com/loganlanou/academy/internal/session"
	"github.com/loganlanou/academy/internal/viewport"
	"github.com/loganlanou/academy/views/layout"
	"github.com/loganlanou/academy/views/pages"
)

var errContentUnavailable = echo.NewHTTPError(http.StatusServiceUnavailable, "Content is unavailable")

// page builds the layout values shared by every page of the request.
func (s *Service) page(c echo.Context, meta layout.PageMeta) layout.Page {
	p := layout.Page{Meta: meta, Site: s.site, Path: c.Request().URL.Path}
	if sc, err := session.From(c); err == nil {
		p.User = sc.User()
	}
	return p
}

func (s *Service) meta(c echo.Context) layout.PageMeta {
	return layout.NewPageMeta(c, s.site)
}

func (s *Service) catalog(c echo.Context) (*content.Catalog, error) {
	cat, err := s.source.Catalog(c.Request().Context())
	if err != nil {
		slog.Error("failed to load content", "path", c.Request().URL.Path, logging.Err(err))
		return nil, errContentUnavailable.WithInternal(err)
	}
	return cat, nil
}

// plan lays out the lazy regions against the client hints of the request.
func plan(c echo.Context) *lazy.Plan {
	return lazy.NewPlan(viewport.FromContext(c.Request().Context()))
}

func (s *Service) render(c echo.Context, meta layout.PageMeta, body templ.Component) error {
	return handlers.Render(c, layout.Base(s.page(c, meta), body))
}

func (s *Service) handleHome(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	p := plan(c)
	defer p.Close()

	return s.render(c, s.meta(c).WithOrganizationSchema(), pages.Home(pages.HomeProps{
		Catalog: cat,
		Plan:    p,
		Now:     s.now(),
		Guard:   s.guard(c),
	}))
}

func (s *Service) handleCalendar(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	meta := s.meta(c).WithTitle("School Calendar").WithDescription("Term dates, holidays, exams and events for the school year.")
	return s.render(c, meta, pages.Calendar(cat.GroupByMonth()))
}

func (s *Service) handleEvents(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	meta := s.meta(c).WithTitle("Events").WithDescription("Concerts, fairs, conferences and games open to our community.")
	return s.render(c, meta, pages.Events(cat.EventsByDate("")))
}

func (s *Service) handleEventDetail(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	event, err := cat.EventByID(c.Param("eventId"))
	if err != nil {
		return notFound(err)
	}
	return s.render(c, s.meta(c).FromEvent(event), pages.EventDetail(event))
}

func (s *Service) handleNews(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	meta := s.meta(c).WithTitle("News").WithDescription("Achievements, announcements and campus updates.")
	return s.render(c, meta, pages.News(cat.LatestNews(0)))
}

func (s *Service) handleNewsDetail(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	item, err := cat.NewsByID(c.Param("newsId"))
	if err != nil {
		return notFound(err)
	}
	return s.render(c, s.meta(c).FromNews(item), pages.NewsDetail(item))
}

func (s *Service) handleStudentLife(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	return s.render(c, s.meta(c).WithTitle("Student Life"), pages.StudentLife(cat))
}

func (s *Service) handleClubs(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	return s.render(c, s.meta(c).WithTitle("Clubs"), pages.Clubs(cat.Clubs))
}

func (s *Service) handleSports(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	return s.render(c, s.meta(c).WithTitle("Sports"), pages.Sports(cat.Sports))
}

func (s *Service) handleStudentEvents(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	return s.render(c, s.meta(c).WithTitle("Student Events"), pages.StudentEvents(cat.EventsByDate("student-life")))
}

func (s *Service) handleLeadership(c echo.Context) error {
	cat, err := s.catalog(c)
	if err != nil {
		return err
	}
	p := plan(c)
	defer p.Close()

	meta := s.meta(c).WithTitle("Our Leadership").WithDescription("Meet the people guiding the academy.")
	return s.render(c, meta, pages.Leadership(pages.LeadershipProps{
		Leaders: cat.Leaders,
		Plan:    p,
		Guard:   s.guard(c),
	}))
}

// handlePortal serves the dashboard and the nested pages of one portal.
func (s *Service) handlePortal(cfg portal.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, ok := cfg.Page(c.Param("page"))
		if !ok {
			return echo.ErrNotFound
		}

		frame := viewport.FromContext(c.Request().Context())
		meta := s.meta(c).WithTitle(page.Title + " - " + cfg.Name)
		meta.NoIndex = true

		p := s.page(c, meta)
		props := layout.ShellProps{
			Portal: cfg,
			Active: cfg.Href(page.Slug),
			Mobile: frame != nil && viewport.IsMobile(frame),
			User:   p.User,
		}
		return handlers.Render(c, layout.Shell(p, props, pages.PortalPage(cfg, page)))
	}
}

func notFound(err error) error {
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound.WithInternal(err)
	}
	return err
}
