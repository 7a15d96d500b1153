package lazy

import (
	"context"
	"testing"

	"github.com/loganlanou/academy/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_LatchesOnFirstIntersection(t *testing.T) {
	f := viewport.NewFrame(1200, 800)
	r := NewRegion("gallery", "0px")
	require.NoError(t, r.Attach(f, viewport.Rect{Y: 2000, W: 1200, H: 400}))

	assert.False(t, r.Mounted())

	f.ScrollTo(1500)
	assert.True(t, r.Mounted())

	// scroll away and back again several times
	for _, y := range []float64{0, 1800, 0, 3000, 0} {
		f.ScrollTo(y)
		assert.True(t, r.Mounted(), "placeholder must never come back (scroll %v)", y)
	}
}

func TestRegion_MarginPrefetches(t *testing.T) {
	f := viewport.NewFrame(1200, 800)

	r := NewRegion("news", "")
	require.NoError(t, r.Attach(f, viewport.Rect{Y: 900, W: 1200, H: 300}))

	assert.True(t, r.Mounted(), "default margin pulls the region in early")
}

func TestRegion_DetachKeepsLatch(t *testing.T) {
	f := viewport.NewFrame(1200, 800)
	r := NewRegion("bios", "0px")
	require.NoError(t, r.Attach(f, viewport.Rect{Y: 100, W: 1200, H: 300}))
	require.True(t, r.Mounted())

	r.Detach()
	f.ScrollTo(5000)
	assert.True(t, r.Mounted())
}

func TestRegion_InvalidMargin(t *testing.T) {
	r := NewRegion("bad", "lots")
	err := r.Attach(viewport.NewFrame(100, 100), viewport.Rect{})
	assert.ErrorIs(t, err, viewport.ErrInvalidMargin)
	assert.False(t, r.Mounted())
}

func TestNilRegionIsNotMounted(t *testing.T) {
	var r *Region
	assert.False(t, r.Mounted())
}

func TestPlan_AboveTheFold(t *testing.T) {
	p := NewPlan(viewport.NewFrame(1280, 720))
	defer p.Close()

	hero := p.Region("hero", 0, 600)
	news := p.Region("news", 800, 500)
	footer := p.Region("footer", 3000, 300)

	assert.True(t, hero.Mounted())
	assert.True(t, news.Mounted(), "within the prefetch margin")
	assert.False(t, footer.Mounted())
}

func TestPlan_WithoutFrameDefersEverything(t *testing.T) {
	p := NewPlan(nil)
	defer p.Close()

	assert.False(t, p.Region("hero", 0, 600).Mounted())
}

func TestPlan_WithMargin(t *testing.T) {
	p := NewPlan(viewport.NewFrame(1280, 720)).WithMargin("0px")
	defer p.Close()

	assert.False(t, p.Region("news", 800, 500).Mounted())
}

func TestEager(t *testing.T) {
	ctx := context.Background()
	assert.False(t, Eager(ctx))
	assert.True(t, Eager(WithEager(ctx)))
}
