package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/storage/db"
)

const dateLayout = "2006-01-02"

// ContentSource reads the catalog from the content tables. Every call
// returns a fresh snapshot.
type ContentSource struct {
	queries *db.Queries
}

var _ content.Source = (*ContentSource)(nil)

func NewContentSource(s *Storage) *ContentSource {
	return &ContentSource{queries: s.Queries}
}

func (s *ContentSource) Catalog(ctx context.Context) (*content.Catalog, error) {
	events, err := s.queries.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	news, err := s.queries.ListNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	clubs, err := s.queries.ListClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	sports, err := s.queries.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	leaders, err := s.queries.ListLeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}
	entries, err := s.queries.ListCalendarEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar entries: %w", err)
	}

	c := &content.Catalog{}
	for _, e := range events {
		date, err := parseDate(e.EventDate)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
		c.Events = append(c.Events, content.Event{
			ID:       e.ID,
			Title:    e.Title,
			Summary:  e.Summary,
			Body:     e.Body,
			Date:     date,
			Location: e.Location,
			Category: e.Category,
			Image:    e.ImageUrl,
		})
	}
	for _, n := range news {
		date, err := parseDate(n.PublishedOn)
		if err != nil {
			return nil, fmt.Errorf("news %s: %w", n.ID, err)
		}
		c.News = append(c.News, content.NewsItem{
			ID:       n.ID,
			Title:    n.Title,
			Summary:  n.Summary,
			Body:     n.Body,
			Date:     date,
			Category: n.Category,
			Image:    n.ImageUrl,
		})
	}
	for _, cl := range clubs {
		c.Clubs = append(c.Clubs, content.Club{
			Name:        cl.Name,
			Description: cl.Description,
			Meets:       cl.Meets,
			Advisor:     cl.Advisor,
			Image:       cl.ImageUrl,
		})
	}
	for _, sp := range sports {
		c.Sports = append(c.Sports, content.Sport{
			Name:        sp.Name,
			Season:      sp.Season,
			Coach:       sp.Coach,
			Description: sp.Description,
			Image:       sp.ImageUrl,
		})
	}
	for _, l := range leaders {
		c.Leaders = append(c.Leaders, content.Leader{
			Name:  l.Name,
			Title: l.Title,
			Bio:   l.Bio,
			Image: l.ImageUrl,
		})
	}
	for _, e := range entries {
		date, err := parseDate(e.EntryDate)
		if err != nil {
			return nil, fmt.Errorf("calendar entry %d: %w", e.ID, err)
		}
		c.Calendar = append(c.Calendar, content.CalendarEntry{
			Date:     date,
			Title:    e.Title,
			Category: e.Category,
		})
	}
	return c, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
