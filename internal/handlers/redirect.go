package handlers

import (
	"net/http"
	"strings"
)

var disallowedReturnTo = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
	"/sw.js":   {},
}

// sanitizeReturnTo accepts only local paths that are safe to redirect to
// after a sign-in or sign-out.
func sanitizeReturnTo(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	if strings.ContainsAny(path, "\r\n\\") {
		return "", false
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "//") {
		return "", false
	}

	if !strings.HasPrefix(path, "/") {
		return "", false
	}

	base := path
	if idx := strings.IndexAny(path, "?#"); idx != -1 {
		base = path[:idx]
	}

	if _, blocked := disallowedReturnTo[base]; blocked {
		return "", false
	}

	for _, prefix := range []string{"/auth/", "/fragments/", "/api/"} {
		if strings.HasPrefix(base, prefix) {
			return "", false
		}
	}

	return path, true
}

// returnTarget picks the sanitized return_to form value, falling back to the
// referring path and then home.
func returnTarget(formValue, referer string) string {
	if p, ok := sanitizeReturnTo(formValue); ok {
		return p
	}
	if p, ok := sanitizeReturnTo(refererPath(referer)); ok {
		return p
	}
	return "/"
}

func refererPath(referer string) string {
	i := strings.Index(referer, "://")
	if i == -1 {
		return ""
	}
	rest := referer[i+3:]
	if j := strings.Index(rest, "/"); j != -1 {
		return rest[j:]
	}
	return "/"
}

// RetryTarget is where the retry action of a failed section leads. Fragment
// requests retry the page that embedded them, read from the Referer, and
// reload in place when there is none.
func RetryTarget(r *http.Request) string {
	if !strings.HasPrefix(r.URL.Path, "/fragments/") {
		return r.URL.RequestURI()
	}
	if p, ok := sanitizeReturnTo(refererPath(r.Referer())); ok {
		return p
	}
	return ""
}
