package boundary

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	errs  []error
	infos []Info
}

func (r *recorder) Report(_ context.Context, err error, info Info) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
	r.infos = append(r.infos, info)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestBoundary_RendersChildren(t *testing.T) {
	rep := &recorder{}
	b := New("news", text("<p>news</p>"), Options{Reporter: rep})

	assert.Equal(t, "<p>news</p>", render(t, b))
	assert.False(t, b.Failed())
	assert.Zero(t, rep.count())
}

func TestBoundary_ErrorShowsFallbackWithoutPartialOutput(t *testing.T) {
	rep := &recorder{}
	boom := errors.New("boom")
	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		io.WriteString(w, "<p>half")
		return boom
	})

	b := New("events", child, Options{Reporter: rep, Path: "/events"})
	out := render(t, b)

	assert.NotContains(t, out, "half")
	assert.Contains(t, out, "Something went wrong")
	assert.Contains(t, out, "Try again")
	assert.True(t, b.Failed())
	assert.ErrorIs(t, b.Err(), boom)

	require.Equal(t, 1, rep.count())
	assert.ErrorIs(t, rep.errs[0], boom)
	assert.Equal(t, Info{Name: "events", Path: "/events"}, rep.infos[0])
}

func TestBoundary_RecoversPanic(t *testing.T) {
	rep := &recorder{}
	child := templ.ComponentFunc(func(context.Context, io.Writer) error {
		panic("nil catalog")
	})

	b := New("leadership", child, Options{Reporter: rep})
	out := render(t, b)

	assert.Contains(t, out, "Something went wrong")
	var pe *PanicError
	require.ErrorAs(t, b.Err(), &pe)
	assert.Equal(t, "nil catalog", pe.Value)
	assert.NotEmpty(t, pe.Stack)
}

func TestBoundary_RetryRendersChildrenAgain(t *testing.T) {
	rep := &recorder{}
	fail := true
	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if fail {
			return errors.New("flaky")
		}
		_, err := io.WriteString(w, "<p>ok</p>")
		return err
	})
	b := New("flaky", child, Options{Reporter: rep})

	assert.Contains(t, render(t, b), "Something went wrong")

	// still failed until retried, without reporting again
	assert.Contains(t, render(t, b), "Something went wrong")
	assert.Equal(t, 1, rep.count())

	fail = false
	b.Retry()
	assert.False(t, b.Failed())
	assert.Equal(t, "<p>ok</p>", render(t, b))
}

func TestBoundary_RetryFallsBackAgainWhenErrorRecurs(t *testing.T) {
	rep := &recorder{}
	child := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("still broken")
	})
	b := New("broken", child, Options{Reporter: rep})

	render(t, b)
	b.Retry()
	out := render(t, b)

	assert.Contains(t, out, "Something went wrong")
	assert.True(t, b.Failed())
	assert.Equal(t, 2, rep.count())
}

func TestBoundary_CustomFallbackAndRetryHref(t *testing.T) {
	child := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("x")
	})
	custom := func(err error, retryHref string) templ.Component {
		return text("custom:" + err.Error() + ":" + retryHref)
	}

	out := render(t, New("c", child, Options{Fallback: custom, RetryHref: "/news", Reporter: &recorder{}}))
	assert.Equal(t, "custom:x:/news", out)

	out = render(t, New("d", child, Options{RetryHref: "/news", Reporter: &recorder{}}))
	assert.Contains(t, out, `href="/news"`)
	assert.False(t, strings.Contains(out, "location.reload"))
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Multi(a, nil, b).Report(context.Background(), errors.New("x"), Info{Name: "n"})
	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
}

func TestRollbarReporter_DisabledWithoutToken(t *testing.T) {
	r := NewRollbarReporter("", "test", "dev")
	assert.NotPanics(t, func() {
		r.Report(context.Background(), errors.New("x"), Info{Name: "n", Path: "/"})
	})
	assert.NoError(t, r.Close())
}
