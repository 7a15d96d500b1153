package layout

import (
	"strings"

	"github.com/loganlanou/academy/internal/portal"
	"github.com/loganlanou/academy/internal/session"
	"github.com/loganlanou/academy/views/helpers"
)

// Page carries the per-request values shared by every layout.
type Page struct {
	Meta PageMeta
	Site Site
	// Path is the request path, used for active links and return_to.
	Path string
	// User is the signed in user, nil when unauthenticated.
	User *session.User
}

type Link struct {
	Label string
	Href  string
}

var publicNav = []Link{
	{Label: "Home", Href: "/"},
	{Label: "Calendar", Href: "/calendar"},
	{Label: "Events", Href: "/events"},
	{Label: "News", Href: "/news"},
	{Label: "Student Life", Href: "/student-life"},
	{Label: "Leadership", Href: "/about/leadership"},
}

func isActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func navClass(class string, active bool) string {
	if active {
		return helpers.Class(class, "text-indigo-700")
	}
	return helpers.Class(class, "text-gray-700 hover:text-indigo-700")
}

// ShellProps configures the portal shell for one request.
type ShellProps struct {
	Portal portal.Config
	// Active is the path that selects the sidebar item. Defaults to the
	// page path.
	Active string
	// Mobile drops the desktop sidebar from the markup. The CSS breakpoint
	// hides it below lg either way.
	Mobile bool
	// User replaces the configured identity in the header. Defaults to the
	// page user.
	User *session.User
}

func (s ShellProps) active(p Page) string {
	if s.Active != "" {
		return s.Active
	}
	return p.Path
}

func (s ShellProps) user(p Page) *session.User {
	if s.User != nil {
		return s.User
	}
	return p.User
}

// identity is what the shell header shows for the current user.
type identity struct {
	Name     string
	Role     string
	Avatar   string
	Initials string
	SignedIn bool
}

func (s ShellProps) identity(p Page) identity {
	id := identity{Name: s.Portal.UserName, Role: s.Portal.RoleLabel, Avatar: s.Portal.AvatarURL}
	if u := s.user(p); u != nil {
		id.Name, id.Avatar, id.SignedIn = u.Name, u.AvatarURL, true
	}
	id.Initials = session.User{Name: id.Name}.Initials()
	return id
}

func portalLinks() []Link {
	var links []Link
	for _, c := range portal.All() {
		links = append(links, Link{Label: c.Name, Href: c.Root()})
	}
	return links
}

// NotFoundScope is the not-found presentation for one section of the site.
type NotFoundScope struct {
	Heading string
	Message string
	// Links are the recovery actions, the first one is the primary action.
	Links []Link
}

func actionClass(primary bool) string {
	if primary {
		return "rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700"
	}
	return "rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50"
}
