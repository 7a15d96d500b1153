// Package viewport models the browser viewport on the server: a Frame of a
// given size scrolled to an offset, intersection observation of page regions
// against it, and width breakpoints that follow its resizes.
package viewport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidMargin    = errors.New("invalid root margin")
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")
)

// Rect is an axis aligned rectangle in document coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o and whether they touch at all.
// Edge-adjacent rectangles touch with a zero area overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 < x0 || y1 < y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Length is one CSS length of a root margin, in pixels or percent.
type Length struct {
	Value   float64
	Percent bool
}

func (l Length) resolve(basis float64) float64 {
	if l.Percent {
		return basis * l.Value / 100
	}
	return l.Value
}

// Margin grows (or shrinks, when negative) the root rectangle before
// intersections are computed.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// ParseMargin parses the CSS shorthand used by IntersectionObserver:
// one to four values, each in px or %. A bare 0 is accepted.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("%w: %q", ErrInvalidMargin, s)
	}

	vals := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("%w: %q", ErrInvalidMargin, s)
		}
		vals[i] = l
	}

	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	default:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
}

func parseLength(s string) (Length, error) {
	switch {
	case s == "0":
		return Length{}, nil
	case strings.HasSuffix(s, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		return Length{Value: v}, err
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		return Length{Value: v, Percent: true}, err
	}
	return Length{}, fmt.Errorf("unsupported unit in %q", s)
}

// Expand applies the margin to root.
func (m Margin) Expand(root Rect) Rect {
	top := m.Top.resolve(root.H)
	bottom := m.Bottom.resolve(root.H)
	left := m.Left.resolve(root.W)
	right := m.Right.resolve(root.W)
	return Rect{
		X: root.X - left,
		Y: root.Y - top,
		W: root.W + left + right,
		H: root.H + top + bottom,
	}
}

// ratio is the visible fraction of target inside root, and whether the two
// touch. A zero area target counts as fully visible when it touches root.
func ratio(target, root Rect) (float64, bool) {
	overlap, ok := target.Intersect(root)
	if !ok {
		return 0, false
	}
	area := target.Area()
	if area == 0 {
		return 1, true
	}
	return overlap.Area() / area, true
}
