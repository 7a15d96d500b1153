// Package portal describes the role portals that share the portal shell.
package portal

import "strings"

// NavItem is one sidebar link.
type NavItem struct {
	Label string
	Href  string
	Icon  string
}

// Stat is a headline figure on a portal page.
type Stat struct {
	Label  string
	Value  string
	Detail string
}

// Page is a page nested under a portal. The dashboard has an empty slug.
type Page struct {
	Slug    string
	Title   string
	Summary string
	Icon    string
	Stats   []Stat
	Items   []string
}

// Config is the per-role configuration passed to the portal shell.
type Config struct {
	Slug          string
	Name          string
	UserName      string
	RoleLabel     string
	AvatarURL     string
	Notifications int
	Pages         []Page
}

// Root is the path of the portal dashboard.
func (c Config) Root() string {
	return "/" + c.Slug
}

// Href returns the path of the nested page slug.
func (c Config) Href(slug string) string {
	if slug == "" {
		return c.Root()
	}
	return c.Root() + "/" + slug
}

// Nav lists the sidebar links, one per page.
func (c Config) Nav() []NavItem {
	items := make([]NavItem, 0, len(c.Pages))
	for _, p := range c.Pages {
		items = append(items, NavItem{Label: navLabel(p), Href: c.Href(p.Slug), Icon: p.Icon})
	}
	return items
}

func navLabel(p Page) string {
	if p.Slug == "" {
		return "Dashboard"
	}
	return p.Title
}

// Page returns the nested page for slug.
func (c Config) Page(slug string) (Page, bool) {
	for _, p := range c.Pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Active reports whether item is the link for path. The dashboard link is
// only active on the portal root.
func (c Config) Active(item NavItem, path string) bool {
	path = strings.TrimSuffix(path, "/")
	if item.Href == c.Root() {
		return path == c.Root()
	}
	return path == item.Href || strings.HasPrefix(path, item.Href+"/")
}

// Owns reports whether path is inside the portal.
func (c Config) Owns(path string) bool {
	return path == c.Root() || strings.HasPrefix(path, c.Root()+"/")
}

// All returns the portals in display order.
func All() []Config {
	return []Config{Teacher(), Accountant(), AcademicBoard(), Admin()}
}

// BySlug resolves a portal by its root path segment.
func BySlug(slug string) (Config, bool) {
	for _, c := range All() {
		if c.Slug == slug {
			return c, true
		}
	}
	return Config{}, false
}

// ForPath returns the portal owning path.
func ForPath(path string) (Config, bool) {
	for _, c := range All() {
		if c.Owns(path) {
			return c, true
		}
	}
	return Config{}, false
}
