package debounce

import (
	"sync"
	"time"
)

// Value lags behind its input, publishing a new output only after the
// input has been stable for the configured delay.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	nextID  int
	subs    map[int]func(T)
	publish *Func[T]
}

// NewValue returns a Value whose output starts at initial.
func NewValue[T any](initial T, delay time.Duration) *Value[T] {
	v := &Value[T]{
		current: initial,
		subs:    make(map[int]func(T)),
	}
	v.publish = New(delay, v.commit)
	return v
}

// Set feeds a new input. Pending, not yet published inputs are discarded.
func (v *Value[T]) Set(x T) {
	v.publish.Call(x)
}

// Get returns the debounced output.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// OnChange registers fn for every published output and returns its teardown.
func (v *Value[T]) OnChange(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// Stop cancels a pending publish and ignores further input.
func (v *Value[T]) Stop() {
	v.publish.Stop()
}

func (v *Value[T]) commit(x T) {
	v.mu.Lock()
	v.current = x
	subs := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(x)
	}
}
