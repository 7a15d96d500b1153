// Package content holds the page content of the site and the sources it is
// loaded from.
package content

import (
	"context"
	"errors"
	"sort"
	"time"
)

// ErrNotFound is returned when an item id is not in the catalog.
var ErrNotFound = errors.New("content not found")

type Event struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Summary  string    `yaml:"summary" json:"summary"`
	Body     string    `yaml:"body" json:"body"`
	Date     time.Time `yaml:"date" json:"date"`
	Location string    `yaml:"location" json:"location"`
	Category string    `yaml:"category" json:"category"`
	Image    string    `yaml:"image" json:"image"`
}

type NewsItem struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Summary  string    `yaml:"summary" json:"summary"`
	Body     string    `yaml:"body" json:"body"`
	Date     time.Time `yaml:"date" json:"date"`
	Category string    `yaml:"category" json:"category"`
	Image    string    `yaml:"image" json:"image"`
}

type Club struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Meets       string `yaml:"meets" json:"meets"`
	Advisor     string `yaml:"advisor" json:"advisor"`
	Image       string `yaml:"image" json:"image"`
}

type Sport struct {
	Name        string `yaml:"name" json:"name"`
	Season      string `yaml:"season" json:"season"`
	Coach       string `yaml:"coach" json:"coach"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
}

type Leader struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title" json:"title"`
	Bio   string `yaml:"bio" json:"bio"`
	Image string `yaml:"image" json:"image"`
}

type CalendarEntry struct {
	Date     time.Time `yaml:"date" json:"date"`
	Title    string    `yaml:"title" json:"title"`
	Category string    `yaml:"category" json:"category"`
}

// Catalog is one immutable snapshot of the site content. Sources replace
// the whole catalog on reload; callers must not modify it.
type Catalog struct {
	Events   []Event         `yaml:"events" json:"events"`
	News     []NewsItem      `yaml:"news" json:"news"`
	Clubs    []Club          `yaml:"clubs" json:"clubs"`
	Sports   []Sport         `yaml:"sports" json:"sports"`
	Leaders  []Leader        `yaml:"leaders" json:"leaders"`
	Calendar []CalendarEntry `yaml:"calendar" json:"calendar"`

	// Fixed lists every event as upcoming regardless of its date.
	Fixed bool `yaml:"-" json:"-"`
}

// Source supplies the current catalog.
type Source interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

func (c *Catalog) EventByID(id string) (Event, error) {
	for _, e := range c.Events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrNotFound
}

func (c *Catalog) NewsByID(id string) (NewsItem, error) {
	for _, n := range c.News {
		if n.ID == id {
			return n, nil
		}
	}
	return NewsItem{}, ErrNotFound
}

// EventsByDate returns the events in date order. With category set only
// that category is returned.
func (c *Catalog) EventsByDate(category string) []Event {
	out := make([]Event, 0, len(c.Events))
	for _, e := range c.Events {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// LatestNews returns up to n news items, newest first. n <= 0 returns all.
func (c *Catalog) LatestNews(n int) []NewsItem {
	out := make([]NewsItem, len(c.News))
	copy(out, c.News)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// UpcomingEvents returns up to n events on or after from, soonest first.
// A fixed catalog returns its first n events in date order.
func (c *Catalog) UpcomingEvents(from time.Time, n int) []Event {
	day := from.Truncate(24 * time.Hour)
	var out []Event
	for _, e := range c.EventsByDate("") {
		if !c.Fixed && e.Date.Before(day) {
			continue
		}
		out = append(out, e)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// Month is a calendar month with its entries in date order.
type Month struct {
	Start   time.Time
	Entries []CalendarEntry
}

// GroupByMonth groups the calendar entries by month, months and entries in
// date order.
func (c *Catalog) GroupByMonth() []Month {
	entries := make([]CalendarEntry, len(c.Calendar))
	copy(entries, c.Calendar)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	var months []Month
	for _, e := range entries {
		start := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, e.Date.Location())
		if len(months) == 0 || !months[len(months)-1].Start.Equal(start) {
			months = append(months, Month{Start: start})
		}
		last := &months[len(months)-1]
		last.Entries = append(last.Entries, e)
	}
	return months
}
