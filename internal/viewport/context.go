package viewport

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Client hint headers carrying the layout viewport size.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderViewportHeight      = "Sec-CH-Viewport-Height"
	HeaderLegacyViewportWidth = "Viewport-Width"

	// DefaultHeight is assumed when only the width is hinted.
	DefaultHeight = 800

	// MaxHint is the largest accepted hint, in CSS pixels.
	MaxHint = 1 << 16
)

type contextKey struct{}

// WithFrame stores f in ctx.
func WithFrame(ctx context.Context, f *Frame) context.Context {
	return context.WithValue(ctx, contextKey{}, f)
}

// FromContext returns the request frame, nil when the client sent no hints.
func FromContext(ctx context.Context) *Frame {
	f, _ := ctx.Value(contextKey{}).(*Frame)
	return f
}

// FromRequest builds a frame from client hints. It returns nil when the
// request carries no usable width.
func FromRequest(r *http.Request) *Frame {
	width, ok := headerInt(r, HeaderViewportWidth)
	if !ok {
		width, ok = headerInt(r, HeaderLegacyViewportWidth)
	}
	if !ok {
		return nil
	}

	height, ok := headerInt(r, HeaderViewportHeight)
	if !ok {
		height = DefaultHeight
	}
	return NewFrame(width, height)
}

func headerInt(r *http.Request, name string) (int, bool) {
	raw := strings.TrimSpace(r.Header.Get(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 1 || v > MaxHint {
		return 0, false
	}
	return int(v), true
}
