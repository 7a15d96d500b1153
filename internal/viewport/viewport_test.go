package viewport

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMargin(t *testing.T) {
	px := func(v float64) Length { return Length{Value: v} }

	tests := []struct {
		name    string
		in      string
		want    Margin
		wantErr bool
	}{
		{"empty", "", Margin{}, false},
		{"single", "100px", Margin{px(100), px(100), px(100), px(100)}, false},
		{"two values", "10px 20px", Margin{px(10), px(20), px(10), px(20)}, false},
		{"three values", "1px 2px 3px", Margin{px(1), px(2), px(3), px(2)}, false},
		{"four values", "1px 2px 3px 4px", Margin{px(1), px(2), px(3), px(4)}, false},
		{"bare zero", "0 50%", Margin{px(0), Length{50, true}, px(0), Length{50, true}}, false},
		{"negative", "-20px", Margin{px(-20), px(-20), px(-20), px(-20)}, false},
		{"bad unit", "10em", Margin{}, true},
		{"too many", "1px 1px 1px 1px 1px", Margin{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMargin(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMargin)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarginExpand_Percent(t *testing.T) {
	m, err := ParseMargin("10% 0px")
	require.NoError(t, err)

	got := m.Expand(Rect{X: 0, Y: 0, W: 1000, H: 500})
	assert.Equal(t, Rect{X: 0, Y: -50, W: 1000, H: 600}, got)
}

func TestVisibility_NeverAttachedStaysFalse(t *testing.T) {
	v := NewVisibility(Options{})
	assert.False(t, v.Visible())
	assert.False(t, v.Observing())
}

func TestVisibility_TracksScrolling(t *testing.T) {
	f := NewFrame(1200, 800)
	v := NewVisibility(Options{})
	require.NoError(t, v.Attach(f, Rect{X: 0, Y: 1500, W: 1200, H: 300}))

	var flips []bool
	v.OnChange(func(visible bool) { flips = append(flips, visible) })

	assert.False(t, v.Visible())

	f.ScrollTo(900)
	assert.True(t, v.Visible())

	f.ScrollTo(0)
	assert.False(t, v.Visible())

	assert.Equal(t, []bool{true, false}, flips)
	assert.True(t, v.Observing())

	v.Detach()
	assert.False(t, v.Observing())
	f.ScrollTo(1500)
	assert.False(t, v.Visible(), "detached visibility must not update")
}

func TestVisibility_TriggerOnceStopsObserving(t *testing.T) {
	f := NewFrame(1200, 800)
	v := NewVisibility(Options{TriggerOnce: true})
	require.NoError(t, v.Attach(f, Rect{Y: 1000, W: 100, H: 100}))

	f.ScrollTo(600)
	assert.True(t, v.Visible())
	assert.False(t, v.Observing())

	f.ScrollTo(0)
	assert.True(t, v.Visible(), "trigger-once keeps the first positive signal")
}

func TestVisibility_TriggerOnceVisibleOnAttach(t *testing.T) {
	f := NewFrame(1200, 800)
	v := NewVisibility(Options{TriggerOnce: true})
	require.NoError(t, v.Attach(f, Rect{Y: 100, W: 100, H: 100}))

	assert.True(t, v.Visible())
	assert.False(t, v.Observing())
}

func TestVisibility_RootMarginPrefetches(t *testing.T) {
	f := NewFrame(1200, 800)
	target := Rect{Y: 950, W: 100, H: 100}

	plain := NewVisibility(Options{})
	require.NoError(t, plain.Attach(f, target))
	ahead := NewVisibility(Options{RootMargin: "200px"})
	require.NoError(t, ahead.Attach(f, target))

	assert.False(t, plain.Visible())
	assert.True(t, ahead.Visible())
}

func TestVisibility_Threshold(t *testing.T) {
	f := NewFrame(1000, 800)
	v := NewVisibility(Options{Threshold: 0.5})
	require.NoError(t, v.Attach(f, Rect{Y: 700, W: 100, H: 400}))

	// 100 of 400 pixels visible
	assert.False(t, v.Visible())

	f.ScrollTo(200)
	// 300 of 400 pixels visible
	assert.True(t, v.Visible())
}

func TestVisibility_InvalidOptions(t *testing.T) {
	f := NewFrame(100, 100)

	err := NewVisibility(Options{RootMargin: "big"}).Attach(f, Rect{})
	assert.ErrorIs(t, err, ErrInvalidMargin)

	err = NewVisibility(Options{Threshold: 1.5}).Attach(f, Rect{})
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestVisibility_ExplicitRoot(t *testing.T) {
	f := NewFrame(1000, 800)
	root := &Rect{X: 0, Y: 0, W: 300, H: 300}
	v := NewVisibility(Options{Root: root})
	require.NoError(t, v.Attach(f, Rect{X: 400, Y: 0, W: 50, H: 50}))

	assert.False(t, v.Visible(), "target is on screen but outside the scoping root")
}

func TestBreakpoint_FlipsAtEachCrossing(t *testing.T) {
	f := NewFrame(600, 800)

	above := NewBreakpoint(MD, Above)
	above.Attach(f)
	defer above.Detach()
	below := NewBreakpoint(MD, Below)
	below.Attach(f)
	defer below.Detach()

	widths := []int{600, 700, 767, 768, 900, 1200, 768, 767, 320}
	for _, w := range widths {
		f.Resize(w, 800)
		assert.Equal(t, w >= MD, above.Match(), "above at width %d", w)
		assert.Equal(t, w < MD, below.Match(), "below at width %d", w)
	}
}

func TestBreakpoint_ReadsInitialWidthSynchronously(t *testing.T) {
	b := NewBreakpoint(LG, Above)
	b.Attach(NewFrame(1440, 900))
	assert.True(t, b.Match())
}

func TestBreakpoint_NoViewportDefaults(t *testing.T) {
	var f *Frame

	assert.False(t, IsMobile(f))
	assert.False(t, AtLeast(f, SM))
	assert.False(t, IsMobile(nil))

	b := NewBreakpoint(MD, Below)
	b.Attach(nil)
	assert.False(t, b.Match())
}

func TestBreakpoint_DetachRemovesListener(t *testing.T) {
	f := NewFrame(1200, 800)
	b := NewBreakpoint(MD, Below)
	b.Attach(f)
	b.Detach()

	f.Resize(320, 800)
	assert.False(t, b.Match())
}

func TestNamedThresholds(t *testing.T) {
	f := NewFrame(1100, 800)

	assert.True(t, AtLeast(f, SM))
	assert.True(t, AtLeast(f, MD))
	assert.True(t, AtLeast(f, LG))
	assert.False(t, AtLeast(f, XL))
	assert.False(t, AtLeast(f, XXL))
	assert.False(t, IsMobile(f))
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, FromRequest(req))

	req.Header.Set(HeaderLegacyViewportWidth, "375")
	f := FromRequest(req)
	require.NotNil(t, f)
	w, ok := f.Width()
	assert.True(t, ok)
	assert.Equal(t, 375, w)
	assert.Equal(t, DefaultHeight, f.Height())

	req.Header.Set(HeaderViewportWidth, "1280")
	req.Header.Set(HeaderViewportHeight, "720")
	f = FromRequest(req)
	require.NotNil(t, f)
	w, _ = f.Width()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, f.Height())

	req.Header.Set(HeaderViewportWidth, "wide")
	req.Header.Del(HeaderLegacyViewportWidth)
	assert.Nil(t, FromRequest(req))
}

func TestVisibility_ListenerAddedDuringChange(t *testing.T) {
	f := NewFrame(1200, 800)
	v := NewVisibility(Options{})
	require.NoError(t, v.Attach(f, Rect{X: 0, Y: 1500, W: 1200, H: 300}))

	var late []bool
	calls := 0
	v.OnChange(func(bool) {
		calls++
		if calls == 1 {
			v.OnChange(func(visible bool) { late = append(late, visible) })
		}
	})

	f.ScrollTo(900)
	assert.Empty(t, late, "listeners added during a change wait for the next one")

	f.ScrollTo(0)
	assert.Equal(t, []bool{false}, late)
	assert.Equal(t, 2, calls)
}

func TestFromRequest_RejectsUnusableHints(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Inf", "1e300", "0.5", "-375", "0"} {
		t.Run(raw, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set(HeaderViewportWidth, raw)
			assert.Nil(t, FromRequest(req))
		})
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderViewportWidth, "390.6")
	req.Header.Set(HeaderViewportHeight, "NaN")
	f := FromRequest(req)
	require.NotNil(t, f)
	w, _ := f.Width()
	assert.Equal(t, 390, w)
	assert.Equal(t, DefaultHeight, f.Height())
}
