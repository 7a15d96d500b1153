package viewport

import "sync"

// Standard width thresholds in CSS pixels.
const (
	SM  = 640
	MD  = 768
	LG  = 1024
	XL  = 1280
	XXL = 1536
)

// Direction selects how a Breakpoint compares the width to its threshold.
type Direction int

const (
	// Below matches widths narrower than the threshold.
	Below Direction = iota
	// Above matches widths at or beyond the threshold.
	Above
)

// Breakpoint follows a ResizeSource and reports whether the width is on the
// configured side of a threshold. Without a viewport it reports false.
type Breakpoint struct {
	threshold int
	dir       Direction

	mu    sync.Mutex
	match bool
	sub   Subscription
}

func NewBreakpoint(threshold int, dir Direction) *Breakpoint {
	return &Breakpoint{threshold: threshold, dir: dir}
}

func (b *Breakpoint) evaluate(width int) bool {
	if b.dir == Above {
		return width >= b.threshold
	}
	return width < b.threshold
}

// Attach reads the current width synchronously and recomputes on every resize.
func (b *Breakpoint) Attach(src ResizeSource) {
	if src == nil {
		return
	}

	if width, ok := src.Width(); ok {
		b.mu.Lock()
		b.match = b.evaluate(width)
		b.mu.Unlock()
	}

	sub := src.OnResize(func(width int) {
		b.mu.Lock()
		b.match = b.evaluate(width)
		b.mu.Unlock()
	})

	b.mu.Lock()
	old := b.sub
	b.sub = sub
	b.mu.Unlock()
	if old != nil {
		old.Unsubscribe()
	}
}

func (b *Breakpoint) Match() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.match
}

// Detach removes the resize listener.
func (b *Breakpoint) Detach() {
	b.mu.Lock()
	sub := b.sub
	b.sub = nil
	b.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// IsMobile reports a width below MD. False without a viewport.
func IsMobile(src ResizeSource) bool {
	return snapshot(src, MD, Below)
}

// AtLeast reports a width at or beyond bp. False without a viewport.
func AtLeast(src ResizeSource, bp int) bool {
	return snapshot(src, bp, Above)
}

func snapshot(src ResizeSource, threshold int, dir Direction) bool {
	b := NewBreakpoint(threshold, dir)
	b.Attach(src)
	defer b.Detach()
	return b.Match()
}
