package viewport

import (
	"fmt"
	"slices"
	"sync"
)

// Options configures a Visibility.
type Options struct {
	Root        *Rect
	RootMargin  string
	Threshold   float64
	TriggerOnce bool
}

// Visibility tracks whether one page region is in view. It stays false until
// attached to a source.
type Visibility struct {
	opts Options

	mu        sync.Mutex
	visible   bool
	attached  bool
	done      bool
	sub       Subscription
	listeners []func(bool)
}

func NewVisibility(opts Options) *Visibility {
	return &Visibility{opts: opts}
}

// Attach starts observing target through src. Attaching twice is a no-op.
func (v *Visibility) Attach(src IntersectionSource, target Rect) error {
	margin, err := ParseMargin(v.opts.RootMargin)
	if err != nil {
		return err
	}
	if v.opts.Threshold < 0 || v.opts.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, v.opts.Threshold)
	}

	v.mu.Lock()
	if v.attached {
		v.mu.Unlock()
		return nil
	}
	v.attached = true
	v.mu.Unlock()

	// The source may deliver the first entry before Observe returns.
	sub := src.Observe(target, Observation{
		Root:      v.opts.Root,
		Margin:    margin,
		Threshold: v.opts.Threshold,
	}, v.handle)

	v.mu.Lock()
	if v.done {
		v.mu.Unlock()
		sub.Unsubscribe()
		return nil
	}
	v.sub = sub
	v.mu.Unlock()
	return nil
}

func (v *Visibility) handle(e Entry) {
	v.mu.Lock()
	if v.done {
		v.mu.Unlock()
		return
	}

	changed := v.visible != e.IsIntersecting
	v.visible = e.IsIntersecting

	var cancel Subscription
	if v.opts.TriggerOnce && e.IsIntersecting {
		v.done = true
		cancel = v.sub
		v.sub = nil
	}
	listeners := slices.Clone(v.listeners)
	v.mu.Unlock()

	if cancel != nil {
		cancel.Unsubscribe()
	}
	if changed {
		for _, fn := range listeners {
			fn(e.IsIntersecting)
		}
	}
}

// Visible returns the current signal.
func (v *Visibility) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Observing reports whether a live subscription exists.
func (v *Visibility) Observing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sub != nil
}

// OnChange registers fn to be called whenever the signal flips.
func (v *Visibility) OnChange(fn func(visible bool)) {
	v.mu.Lock()
	v.listeners = append(v.listeners, fn)
	v.mu.Unlock()
}

// Detach stops observing. The last signal is kept.
func (v *Visibility) Detach() {
	v.mu.Lock()
	sub := v.sub
	v.sub = nil
	v.done = true
	v.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}
