package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T, path, title string, mtime time.Time) {
	t.Helper()
	body := "events:\n  - id: \"1\"\n    title: " + title + "\n    date: 2025-05-02\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func firstTitle(t *testing.T, src *content.FileSource) string {
	c, err := src.Catalog(context.Background())
	require.NoError(t, err)
	return c.Events[0].Title
}

func TestContentReloader_ReloadsAfterQuietPeriod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	base := time.Now().Add(-time.Hour)
	writeContent(t, path, "Original", base)

	src, err := content.NewFileSource(path)
	require.NoError(t, err)

	r := NewContentReloader(src, 10*time.Millisecond, 50*time.Millisecond, metrics.New())
	r.Start(context.Background())
	defer r.Stop()

	writeContent(t, path, "Updated", base.Add(time.Minute))

	require.Eventually(t, func() bool { return firstTitle(t, src) == "Updated" },
		2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, r.Reloads())
}

func TestContentReloader_BadFileKeepsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	base := time.Now().Add(-time.Hour)
	writeContent(t, path, "Original", base)

	src, err := content.NewFileSource(path)
	require.NoError(t, err)

	r := NewContentReloader(src, 10*time.Millisecond, 20*time.Millisecond, nil)
	r.Start(context.Background())
	defer r.Stop()

	require.NoError(t, os.WriteFile(path, []byte("events: [broken"), 0o644))
	require.NoError(t, os.Chtimes(path, base.Add(time.Minute), base.Add(time.Minute)))

	assert.Never(t, func() bool { return r.Reloads() > 0 }, 200*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, "Original", firstTitle(t, src))
}

func TestContentReloader_UnchangedFileIsNotReloaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, "Original", time.Now().Add(-time.Hour))

	src, err := content.NewFileSource(path)
	require.NoError(t, err)

	r := NewContentReloader(src, 5*time.Millisecond, 10*time.Millisecond, nil)
	r.Start(context.Background())

	assert.Never(t, func() bool { return r.Reloads() > 0 }, 100*time.Millisecond, 10*time.Millisecond)
	r.Stop()
	r.Stop()
}

func TestContentReloader_StopsWithContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, "Original", time.Now().Add(-time.Hour))

	src, err := content.NewFileSource(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	r := NewContentReloader(src, 5*time.Millisecond, 10*time.Millisecond, nil)
	r.Start(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case <-r.done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestContentReloader_DefersWhileFileStillChanging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	base := time.Now().Add(-time.Hour)
	writeContent(t, path, "Original", base)

	src, err := content.NewFileSource(path)
	require.NoError(t, err)

	// polling is effectively off, the test drives reload directly
	r := NewContentReloader(src, time.Hour, 20*time.Millisecond, nil)
	r.Start(context.Background())
	defer r.Stop()

	writeContent(t, path, "Updated", base.Add(time.Minute))

	// a settle for an older mtime must not load the newer file early
	r.reload(base.Add(30 * time.Second))
	assert.Equal(t, 0, r.Reloads())
	assert.Equal(t, "Original", firstTitle(t, src))

	// the newer mtime gets its own quiet period and then loads
	require.Eventually(t, func() bool { return r.Reloads() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Updated", firstTitle(t, src))
}
