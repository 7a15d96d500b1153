package layout

import (
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/views/helpers"
)

// Site holds the site-wide values every page needs.
type Site struct {
	Name        string
	URL         string // e.g., "https://www.academy.example"
	Description string
	// Dev suppresses the service worker registration.
	Dev bool
}

// DefaultSite is used when no site is configured.
var DefaultSite = Site{
	Name:        "Academy",
	URL:         "http://localhost:8000",
	Description: "Events, news, student life and staff portals of the Academy.",
}

// PageMeta contains all metadata for a page (SEO, Open Graph, Twitter, Schema.org)
type PageMeta struct {
	// Basic HTML meta
	Title        string
	Description  string
	Keywords     []string
	CanonicalURL string

	// Open Graph
	OGType        string // "website" or "article"
	OGTitle       string
	OGDescription string
	OGImageURL    string // MUST be absolute URL
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	// Twitter Cards
	TwitterCard string // "summary_large_image"

	// NoIndex keeps the page out of search engines.
	NoIndex bool

	// Internal state
	SiteURL string

	// Schema.org JSON-LD (pre-computed)
	SchemaJSON string
}

// NewPageMeta creates a PageMeta with site-wide defaults
// Call this first, then chain .WithTitle() or other modifiers
func NewPageMeta(c echo.Context, site Site) PageMeta {
	canonicalURL := BuildAbsoluteURL(site.URL, c.Request().URL.Path)
	defaultImage := BuildAbsoluteURL(site.URL, "/public/images/social/default-og.jpg")

	return PageMeta{
		Title:        site.Name,
		Description:  site.Description,
		Keywords:     []string{"school", "academy", "events", "news", "student life"},
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       site.Name,
		OGDescription: site.Description,
		OGImageURL:    defaultImage,
		OGURL:         canonicalURL,
		OGSiteName:    site.Name,

		TwitterCard: "summary_large_image",

		SiteURL: site.URL,
	}
}

// WithTitle sets the page title, keeping the site name as suffix
func (pm PageMeta) WithTitle(title string) PageMeta {
	if title == "" {
		return pm
	}
	pm.Title = title + " - " + pm.OGSiteName
	pm.OGTitle = title
	return pm
}

// WithDescription overrides the description fields
func (pm PageMeta) WithDescription(description string) PageMeta {
	if description == "" {
		return pm
	}
	pm.Description = description
	pm.OGDescription = description
	return pm
}

// WithOGImage overrides the OG image URL
func (pm PageMeta) WithOGImage(imageURL string) PageMeta {
	if imageURL == "" {
		return pm
	}
	pm.OGImageURL = BuildAbsoluteURL(pm.SiteURL, imageURL)
	return pm
}

// FromEvent describes an event page
func (pm PageMeta) FromEvent(e content.Event) PageMeta {
	pm = pm.WithTitle(e.Title).WithDescription(e.Summary).WithOGImage(e.Image)
	pm.Keywords = append(pm.Keywords, e.Category, e.Location)
	pm.SchemaJSON = marshalSchema(map[string]interface{}{
		"@context":  "https://schema.org",
		"@type":     "Event",
		"name":      e.Title,
		"startDate": helpers.FormatISODate(e.Date),
		"location": map[string]interface{}{
			"@type": "Place",
			"name":  e.Location,
		},
		"description": e.Summary,
		"image":       pm.OGImageURL,
	})
	return pm
}

// FromNews describes a news article page
func (pm PageMeta) FromNews(n content.NewsItem) PageMeta {
	pm = pm.WithTitle(n.Title).WithDescription(n.Summary).WithOGImage(n.Image)
	pm.OGType = "article"
	pm.SchemaJSON = marshalSchema(map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "NewsArticle",
		"headline":      n.Title,
		"datePublished": helpers.FormatISODate(n.Date),
		"description":   n.Summary,
		"image":         pm.OGImageURL,
		"publisher":     pm.OrganizationSchemaData(),
	})
	return pm
}

// KeywordsString returns keywords as a comma-separated string
func (pm PageMeta) KeywordsString() string {
	var kept []string
	for _, k := range pm.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			kept = append(kept, k)
		}
	}
	return strings.Join(kept, ", ")
}

// OrganizationSchemaData returns site-wide Organization schema
func (pm PageMeta) OrganizationSchemaData() map[string]interface{} {
	return map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "EducationalOrganization",
		"name":     pm.OGSiteName,
		"url":      pm.SiteURL,
		"logo":     BuildAbsoluteURL(pm.SiteURL, "/public/images/logo.png"),
	}
}

// WithOrganizationSchema describes the site itself, for the home page
func (pm PageMeta) WithOrganizationSchema() PageMeta {
	pm.SchemaJSON = marshalSchema(pm.OrganizationSchemaData())
	return pm
}

func marshalSchema(data map[string]interface{}) string {
	bytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(bytes)
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	// Handle empty path
	if path == "" {
		return siteURL
	}

	// Handle already absolute URLs
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	// Remove trailing slash from site URL
	siteURL = strings.TrimRight(siteURL, "/")

	// Ensure path starts with /
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}
