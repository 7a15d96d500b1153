// Package pages holds the bodies of the site pages. Layouts are applied by
// the handlers.
package pages

import (
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/lazy"
	"github.com/loganlanou/academy/views/components"
	"github.com/loganlanou/academy/views/helpers"
)

// Guard isolates the render failures of a page section. A nil Guard
// renders sections unguarded.
type Guard func(name string, section templ.Component) templ.Component

func (g Guard) Wrap(name string, section templ.Component) templ.Component {
	if g == nil {
		return section
	}
	return g(name, section)
}

// Crumb is one breadcrumb entry. The last entry has no link.
type Crumb struct {
	Label string
	Href  string
}

// paragraphs splits text on blank lines.
func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Estimated offsets of the page sections, in CSS pixels.
const (
	homeEventsTop    = 620
	homeEventsHeight = 520
	homeNewsTop      = 1180
	homeNewsHeight   = 520

	leadershipTop    = 280
	leadershipHeight = 900
)

// HomeEventsCount and HomeNewsCount size the home page lists.
const (
	HomeEventsCount = 3
	HomeNewsCount   = 3
)

type HomeProps struct {
	Catalog *content.Catalog
	Plan    *lazy.Plan
	Now     time.Time
	Guard   Guard
}

func (p HomeProps) events() components.LazyProps {
	return components.LazyProps{
		Src:              "/fragments/home/events",
		Region:           p.Plan.Region("home-events", homeEventsTop, homeEventsHeight),
		PlaceholderClass: "h-80",
	}
}

func (p HomeProps) news() components.LazyProps {
	return components.LazyProps{
		Src:              "/fragments/home/news",
		Region:           p.Plan.Region("home-news", homeNewsTop, homeNewsHeight),
		PlaceholderClass: "h-80",
	}
}

type LeadershipProps struct {
	Leaders []content.Leader
	Plan    *lazy.Plan
	Guard   Guard
}

func (p LeadershipProps) profiles() components.LazyProps {
	return components.LazyProps{
		Src:              "/fragments/leadership",
		Region:           p.Plan.Region("leadership", leadershipTop, leadershipHeight),
		PlaceholderClass: "h-[36rem]",
	}
}

var categoryBadge = map[string]string{
	"event":   "bg-indigo-100 text-indigo-700",
	"holiday": "bg-green-100 text-green-700",
	"exam":    "bg-amber-100 text-amber-800",
	"term":    "bg-sky-100 text-sky-700",
}

func badgeClass(category string) string {
	return helpers.Class("rounded-full px-2.5 py-0.5 text-xs font-medium bg-gray-100 text-gray-700", categoryBadge[category])
}

var studentLifeCrumb = Crumb{Label: "Student Life", Href: "/student-life"}

func eventCards(events []content.Event) []templ.Component {
	cards := make([]templ.Component, len(events))
	for i, e := range events {
		cards[i] = components.EventCard(e)
	}
	return cards
}

func newsCards(news []content.NewsItem) []templ.Component {
	cards := make([]templ.Component, len(news))
	for i, n := range news {
		cards[i] = components.NewsCard(n)
	}
	return cards
}

func leaderCards(leaders []content.Leader) []templ.Component {
	cards := make([]templ.Component, len(leaders))
	for i, l := range leaders {
		cards[i] = components.LeaderCard(l)
	}
	return cards
}

func clubCards(clubs []content.Club) []templ.Component {
	cards := make([]templ.Component, len(clubs))
	for i, c := range clubs {
		cards[i] = activityCard(c.Image, c.Name, c.Description, "Meets "+c.Meets, "Advisor: "+c.Advisor)
	}
	return cards
}

func sportCards(sports []content.Sport) []templ.Component {
	cards := make([]templ.Component, len(sports))
	for i, s := range sports {
		cards[i] = activityCard(s.Image, s.Name, s.Description, s.Season, "Coach: "+s.Coach)
	}
	return cards
}
