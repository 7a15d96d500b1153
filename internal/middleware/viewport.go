package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/lazy"
	"github.com/loganlanou/academy/internal/viewport"
)

var acceptCH = strings.Join([]string{
	viewport.HeaderViewportWidth,
	viewport.HeaderViewportHeight,
	viewport.HeaderLegacyViewportWidth,
}, ", ")

// crawlerTokens mark user agents that do not run the lazy loader script.
var crawlerTokens = []string{
	"bot",
	"crawler",
	"spider",
	"slurp",
	"facebookexternalhit",
	"lighthouse",
	"headlesschrome",
}

// Viewport attaches a viewport frame built from the client hints to the
// request context and asks browsers to send those hints on later requests.
// Crawlers get every lazy section inline.
func Viewport() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			h := c.Response().Header()
			h.Set("Accept-CH", acceptCH)
			h.Add(echo.HeaderVary, viewport.HeaderViewportWidth)

			ctx := req.Context()
			if f := viewport.FromRequest(req); f != nil {
				ctx = viewport.WithFrame(ctx, f)
			}
			if IsCrawler(req.UserAgent()) {
				ctx = lazy.WithEager(ctx)
			}
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// IsCrawler reports whether ua looks like a search or preview bot.
func IsCrawler(ua string) bool {
	ua = strings.ToLower(ua)
	for _, token := range crawlerTokens {
		if strings.Contains(ua, token) {
			return true
		}
	}
	return false
}
