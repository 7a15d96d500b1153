package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// VersionPrefix is the reserved leading path segment stripped by PathRewrite.
const VersionPrefix = "/@v0"

// rewriteExcluded lists path prefixes (without the leading slash) that are
// never rewritten.
var rewriteExcluded = []string{
	"api",
	"_next/static",
	"_next/image",
	"favicon.ico",
	"public",
}

// PathRewrite strips the reserved version segment so /@v0/events is served
// by /events. Register it with e.Pre so routing sees the rewritten path.
func PathRewrite() echo.MiddlewareFunc {
	return echomw.RewriteWithConfig(echomw.RewriteConfig{
		Skipper: skipRewrite,
		Rules: map[string]string{
			"^" + VersionPrefix + "/*": "/$1",
			"^" + VersionPrefix + "?*": "/?$1",
			"^" + VersionPrefix:        "/",
		},
	})
}

func skipRewrite(c echo.Context) bool {
	p := strings.TrimPrefix(c.Request().URL.Path, "/")
	for _, prefix := range rewriteExcluded {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
