// Package boundary isolates render failures of a page section. A Boundary
// renders its children into a buffer; when they fail it writes a fallback
// with a retry action instead and reports the cause.
package boundary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"sync"

	"github.com/a-h/templ"
)

// Info describes where a render failure happened.
type Info struct {
	Name string
	Path string
}

// PanicError is a panic recovered while rendering children.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during render: %v", e.Value)
}

// Unwrap exposes a panicked error value to errors.Is.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// FallbackFunc builds the component shown instead of failed children.
// retryHref is where the retry action leads; empty means reload the page.
type FallbackFunc func(err error, retryHref string) templ.Component

type Options struct {
	// Fallback replaces the default message.
	Fallback FallbackFunc
	// Reporter receives the cause. Defaults to SlogReporter.
	Reporter Reporter
	// Path is the request path, reported with the cause.
	Path string
	// RetryHref is the target of the retry action.
	RetryHref string
}

// Boundary is a templ component wrapping children.
type Boundary struct {
	name     string
	children templ.Component
	opts     Options

	mu  sync.Mutex
	err error
}

var _ templ.Component = (*Boundary)(nil)

func New(name string, children templ.Component, opts Options) *Boundary {
	if opts.Reporter == nil {
		opts.Reporter = SlogReporter{}
	}
	if opts.Fallback == nil {
		opts.Fallback = DefaultFallback
	}
	return &Boundary{name: name, children: children, opts: opts}
}

// Render writes the children, or the fallback when they fail or the
// boundary already failed. Child failures are reported and swallowed; only
// a failure to write the fallback is returned.
func (b *Boundary) Render(ctx context.Context, w io.Writer) error {
	if err := b.Err(); err != nil {
		return b.opts.Fallback(err, b.opts.RetryHref).Render(ctx, w)
	}

	var buf bytes.Buffer
	err := renderSafely(ctx, b.children, &buf)
	if err == nil {
		_, err = buf.WriteTo(w)
		return err
	}

	b.mu.Lock()
	b.err = err
	b.mu.Unlock()

	b.opts.Reporter.Report(ctx, err, Info{Name: b.name, Path: b.opts.Path})
	return b.opts.Fallback(err, b.opts.RetryHref).Render(ctx, w)
}

func renderSafely(ctx context.Context, c templ.Component, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}

// Retry resets the boundary so the next Render attempts the children again.
func (b *Boundary) Retry() {
	b.mu.Lock()
	b.err = nil
	b.mu.Unlock()
}

// Failed reports whether the boundary is showing its fallback.
func (b *Boundary) Failed() bool {
	return b.Err() != nil
}

// Err returns the cause of the current failure.
func (b *Boundary) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Wrap renders children inside a fresh boundary.
func Wrap(name string, children templ.Component, opts Options) templ.Component {
	return New(name, children, opts)
}
