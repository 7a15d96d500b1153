package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/views/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Catalog(context.Context) (*content.Catalog, error) {
	return nil, errors.New("disk on fire")
}

func newFragmentHandler(guard GuardFunc) *FragmentHandler {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return NewFragmentHandler(content.NewStatic(), guard, func() time.Time { return now })
}

func TestFragments(t *testing.T) {
	h := newFragmentHandler(nil)

	tests := []struct {
		name    string
		path    string
		handler echo.HandlerFunc
		want    string
	}{
		{"home events", "/fragments/home/events", h.HandleHomeEvents, "Parent-Teacher Conferences"},
		{"home news", "/fragments/home/news", h.HandleHomeNews, "Scholarship Recipients Announced"},
		{"leadership", "/fragments/leadership", h.HandleLeadership, "Dr. Sarah Mitchell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := NewTestContext(http.MethodGet, tt.path, nil)
			require.NoError(t, tt.handler(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.NotContains(t, rec.Body.String(), "<html")
			assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		})
	}
}

func TestFragments_GuardApplied(t *testing.T) {
	var names []string
	h := newFragmentHandler(func(echo.Context) pages.Guard {
		return func(name string, section templ.Component) templ.Component {
			names = append(names, name)
			return section
		}
	})

	c, _ := NewTestContext(http.MethodGet, "/fragments/leadership", nil)
	require.NoError(t, h.HandleLeadership(c))
	assert.Equal(t, []string{"leadership"}, names)
}

func TestFragments_SourceFailure(t *testing.T) {
	h := NewFragmentHandler(failingSource{}, nil, nil)
	c, _ := NewTestContext(http.MethodGet, "/fragments/home/news", nil)

	err := h.HandleHomeNews(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusServiceUnavailable, he.Code)
}
