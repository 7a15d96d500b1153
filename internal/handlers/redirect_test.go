package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeReturnTo(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
		ok   bool
	}{
		{"empty", "", "", false},
		{"local path", "/calendar", "/calendar", true},
		{"query kept", "/news?page=2#top", "/news?page=2#top", true},
		{"absolute url", "https://evil.example/", "", false},
		{"protocol relative", "//evil.example", "", false},
		{"relative", "events", "", false},
		{"header injection", "/ok\r\nSet-Cookie: x", "", false},
		{"backslash", "/\\evil.example", "", false},
		{"auth route", "/auth/sign-in", "", false},
		{"fragment route", "/fragments/home/news", "", false},
		{"health", "/health?x=1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sanitizeReturnTo(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReturnTarget(t *testing.T) {
	assert.Equal(t, "/events", returnTarget("/events", "http://localhost/news"))
	assert.Equal(t, "/news", returnTarget("", "http://localhost/news"))
	assert.Equal(t, "/", returnTarget("", "http://localhost"))
	assert.Equal(t, "/", returnTarget("https://evil.example", ""))
}

func TestRetryTarget(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		referer string
		want    string
	}{
		{name: "page keeps its query", target: "/about/leadership?tab=board", want: "/about/leadership?tab=board"},
		{name: "fragment retries embedding page", target: "/fragments/leadership", referer: "http://localhost:8000/about/leadership", want: "/about/leadership"},
		{name: "fragment without referer reloads", target: "/fragments/leadership", want: ""},
		{name: "fragment referer is a fragment", target: "/fragments/home/news", referer: "http://localhost:8000/fragments/home/events", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			assert.Equal(t, tt.want, RetryTarget(req))
		})
	}
}
