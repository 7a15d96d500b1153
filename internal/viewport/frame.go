package viewport

import (
	"sync"
)

// Entry describes the intersection state of an observed target.
type Entry struct {
	Target         Rect
	Ratio          float64
	IsIntersecting bool
}

// Observation configures one intersection subscription.
type Observation struct {
	// Root scopes the intersection. Nil means the visible part of the frame.
	Root      *Rect
	Margin    Margin
	Threshold float64
}

// Subscription is the teardown handle of an observer or listener.
// Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

type unsubscribeFunc struct {
	once sync.Once
	fn   func()
}

func (u *unsubscribeFunc) Unsubscribe() {
	u.once.Do(u.fn)
}

func newSubscription(fn func()) Subscription {
	return &unsubscribeFunc{fn: fn}
}

var noop = newSubscription(func() {})

// IntersectionSource delivers intersection entries for targets.
type IntersectionSource interface {
	Observe(target Rect, obs Observation, fn func(Entry)) Subscription
}

// ResizeSource reports the viewport width and its changes.
type ResizeSource interface {
	// Width returns the current width; ok is false without a viewport.
	Width() (width int, ok bool)
	OnResize(fn func(width int)) Subscription
}

type observer struct {
	target Rect
	obs    Observation
	fn     func(Entry)
	inView bool
}

// Frame is a viewport of a fixed size scrolled to a vertical offset. It is
// both an IntersectionSource and a ResizeSource. Callbacks run synchronously
// on the goroutine that changed the frame, outside the frame's lock.
type Frame struct {
	mu        sync.Mutex
	width     int
	height    int
	scrollY   float64
	nextID    int
	observers map[int]*observer
	resizers  map[int]func(int)
}

var (
	_ IntersectionSource = (*Frame)(nil)
	_ ResizeSource       = (*Frame)(nil)
)

// NewFrame returns a frame of the given CSS pixel size scrolled to the top.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:     width,
		height:    height,
		observers: make(map[int]*observer),
		resizers:  make(map[int]func(int)),
	}
}

// Width implements ResizeSource. A nil frame has no viewport.
func (f *Frame) Width() (int, bool) {
	if f == nil {
		return 0, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, true
}

// Height returns the frame height, zero for a nil frame.
func (f *Frame) Height() int {
	if f == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.height
}

// Visible is the part of the document currently on screen.
func (f *Frame) Visible() Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visibleLocked()
}

func (f *Frame) visibleLocked() Rect {
	return Rect{X: 0, Y: f.scrollY, W: float64(f.width), H: float64(f.height)}
}

// Observe starts watching target and immediately delivers its current entry.
// Later entries are delivered only when the in-view state flips.
func (f *Frame) Observe(target Rect, obs Observation, fn func(Entry)) Subscription {
	if f == nil {
		return noop
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	o := &observer{target: target, obs: obs, fn: fn}
	entry := f.entryLocked(o)
	o.inView = entry.IsIntersecting
	f.observers[id] = o
	f.mu.Unlock()

	fn(entry)

	return newSubscription(func() {
		f.mu.Lock()
		delete(f.observers, id)
		f.mu.Unlock()
	})
}

// OnResize implements ResizeSource.
func (f *Frame) OnResize(fn func(width int)) Subscription {
	if f == nil {
		return noop
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.resizers[id] = fn
	f.mu.Unlock()

	return newSubscription(func() {
		f.mu.Lock()
		delete(f.resizers, id)
		f.mu.Unlock()
	})
}

// ScrollTo moves the visible window to offset y.
func (f *Frame) ScrollTo(y float64) {
	f.mu.Lock()
	f.scrollY = max(y, 0)
	pending := f.collectLocked()
	f.mu.Unlock()

	deliver(pending)
}

// Resize changes the frame size, notifying resize listeners first and then
// any observer whose state changed.
func (f *Frame) Resize(width, height int) {
	f.mu.Lock()
	f.width = width
	f.height = height
	listeners := make([]func(int), 0, len(f.resizers))
	for _, fn := range f.resizers {
		listeners = append(listeners, fn)
	}
	pending := f.collectLocked()
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(width)
	}
	deliver(pending)
}

type delivery struct {
	fn    func(Entry)
	entry Entry
}

func deliver(pending []delivery) {
	for _, d := range pending {
		d.fn(d.entry)
	}
}

func (f *Frame) collectLocked() []delivery {
	var pending []delivery
	for _, o := range f.observers {
		entry := f.entryLocked(o)
		if entry.IsIntersecting == o.inView {
			continue
		}
		o.inView = entry.IsIntersecting
		pending = append(pending, delivery{fn: o.fn, entry: entry})
	}
	return pending
}

func (f *Frame) entryLocked(o *observer) Entry {
	root := f.visibleLocked()
	if o.obs.Root != nil {
		root = *o.obs.Root
	}
	root = o.obs.Margin.Expand(root)

	r, touching := ratio(o.target, root)
	return Entry{
		Target:         o.target,
		Ratio:          r,
		IsIntersecting: touching && r >= o.obs.Threshold,
	}
}
