// Package debounce delays propagation of rapidly changing values and calls
// until a quiet period has elapsed. Only the last update is delivered.
package debounce

import (
	"sync"
	"time"
)

// Func is a debounced wrapper around a callback taking one argument.
type Func[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// New returns a Func that invokes fn once calls have been quiet for delay.
func New[T any](delay time.Duration, fn func(T)) *Func[T] {
	if delay < 0 {
		delay = 0
	}
	return &Func[T]{delay: delay, fn: fn}
}

// Call cancels any pending invocation and schedules a new one with arg.
// The callback always runs on its own goroutine, even with a zero delay.
func (d *Func[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, arg) })
}

// fire runs the callback unless a newer call or Stop superseded this timer.
// A timer that already fired can still be waiting on the lock when Call
// replaces it, so the generation check is what prevents stale invocations.
func (d *Func[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	fn := d.fn
	d.mu.Unlock()

	if fn != nil {
		fn(arg)
	}
}

// Set replaces the wrapped callback. A pending invocation uses the new one.
func (d *Func[T]) Set(fn func(T)) {
	d.mu.Lock()
	d.fn = fn
	d.mu.Unlock()
}

// Pending reports whether an invocation is scheduled.
func (d *Func[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil && !d.stopped
}

// Cancel drops a pending invocation without disabling future calls.
func (d *Func[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Stop cancels pending work and ignores all further calls.
func (d *Func[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Func[T]) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
