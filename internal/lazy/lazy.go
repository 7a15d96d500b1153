// Package lazy decides which expensive page sections are rendered inline and
// which are deferred behind a placeholder until they approach the viewport.
package lazy

import (
	"context"
	"log/slog"
	"sync"

	"github.com/loganlanou/academy/internal/viewport"
)

// DefaultMargin prefetches content slightly before it scrolls into view.
const DefaultMargin = "200px"

// Region is a one-way latch over a trigger-once Visibility. Once mounted it
// never reverts to the placeholder.
type Region struct {
	Name string

	vis *viewport.Visibility

	mu      sync.Mutex
	mounted bool
}

// NewRegion returns an unattached region observing with margin.
func NewRegion(name, margin string) *Region {
	if margin == "" {
		margin = DefaultMargin
	}
	r := &Region{
		Name: name,
		vis:  viewport.NewVisibility(viewport.Options{RootMargin: margin, TriggerOnce: true}),
	}
	r.vis.OnChange(func(visible bool) {
		if visible {
			r.latch()
		}
	})
	return r
}

// Attach starts observing target through src.
func (r *Region) Attach(src viewport.IntersectionSource, target viewport.Rect) error {
	if err := r.vis.Attach(src, target); err != nil {
		return err
	}
	if r.vis.Visible() {
		r.latch()
	}
	return nil
}

func (r *Region) latch() {
	r.mu.Lock()
	r.mounted = true
	r.mu.Unlock()
}

// Mounted reports whether the real content should be rendered.
func (r *Region) Mounted() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mounted
}

// Detach releases the observer. A mounted region stays mounted.
func (r *Region) Detach() {
	r.vis.Detach()
}

// Plan lays out the lazy regions of one page against the request frame.
type Plan struct {
	frame   *viewport.Frame
	margin  string
	regions []*Region
}

// NewPlan returns a plan for frame. A nil frame defers every region.
func NewPlan(frame *viewport.Frame) *Plan {
	return &Plan{frame: frame, margin: DefaultMargin}
}

// WithMargin overrides the prefetch margin for regions created afterwards.
func (p *Plan) WithMargin(margin string) *Plan {
	p.margin = margin
	return p
}

// Region registers a full-width section starting at top with an estimated
// height, in CSS pixels from the top of the document.
func (p *Plan) Region(name string, top, height float64) *Region {
	if p == nil {
		return NewRegion(name, "")
	}
	r := NewRegion(name, p.margin)
	p.regions = append(p.regions, r)

	if p.frame == nil {
		return r
	}
	width, _ := p.frame.Width()
	target := viewport.Rect{X: 0, Y: top, W: float64(width), H: height}
	if err := r.Attach(p.frame, target); err != nil {
		slog.Warn("lazy region not attached", "region", name, "error", err)
	}
	return r
}

// Close detaches every region of the plan.
func (p *Plan) Close() {
	if p == nil {
		return
	}
	for _, r := range p.regions {
		r.Detach()
	}
}

type eagerKey struct{}

// WithEager marks ctx so lazy sections render their content inline.
func WithEager(ctx context.Context) context.Context {
	return context.WithValue(ctx, eagerKey{}, true)
}

// Eager reports whether ctx asks for inline rendering of every section.
func Eager(ctx context.Context) bool {
	eager, _ := ctx.Value(eagerKey{}).(bool)
	return eager
}
