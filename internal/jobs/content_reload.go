package jobs

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/debounce"
	"github.com/loganlanou/academy/internal/logging"
	"github.com/loganlanou/academy/internal/metrics"
)

const (
	// DefaultPollInterval is how often the content file is checked.
	DefaultPollInterval = 2 * time.Second

	// DefaultQuietPeriod is how long after a poll observed a change the
	// reload waits. Writes landing between polls are caught by the mtime
	// re-check before reloading.
	DefaultQuietPeriod = 500 * time.Millisecond
)

// ContentReloader watches the content file and reloads the source once the
// file has settled.
type ContentReloader struct {
	source   *content.FileSource
	interval time.Duration
	quiet    time.Duration
	metrics  *metrics.Metrics

	ticker      *time.Ticker
	done        chan bool
	stopOnce    sync.Once
	stable      *debounce.Value[time.Time]
	unsubscribe func()

	mu       sync.Mutex
	lastSeen time.Time
	loaded   time.Time
	reloads  int
}

func NewContentReloader(source *content.FileSource, interval, quiet time.Duration, m *metrics.Metrics) *ContentReloader {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if quiet < 0 {
		quiet = DefaultQuietPeriod
	}
	return &ContentReloader{
		source:   source,
		interval: interval,
		quiet:    quiet,
		metrics:  m,
		done:     make(chan bool),
	}
}

// Start begins polling. The file as loaded at startup is the baseline.
func (r *ContentReloader) Start(ctx context.Context) {
	slog.Info("starting content reloader", "path", r.source.Path(), "interval", r.interval, "quiet", r.quiet)

	mtime, _ := r.modTime()
	r.mu.Lock()
	r.lastSeen = mtime
	r.loaded = mtime
	r.mu.Unlock()

	r.stable = debounce.NewValue(mtime, r.quiet)
	r.unsubscribe = r.stable.OnChange(r.reload)

	r.ticker = time.NewTicker(r.interval)

	go func() {
		for {
			select {
			case <-r.ticker.C:
				r.poll()
			case <-ctx.Done():
				r.Stop()
				return
			case <-r.done:
				slog.Info("content reloader stopped")
				return
			}
		}
	}()
}

// Stop stops polling and drops a pending reload. Safe to call twice.
func (r *ContentReloader) Stop() {
	r.stopOnce.Do(func() {
		if r.ticker != nil {
			r.ticker.Stop()
		}
		if r.stable != nil {
			r.stable.Stop()
			r.unsubscribe()
		}
		close(r.done)
	})
}

// Reloads returns the number of successful reloads.
func (r *ContentReloader) Reloads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloads
}

func (r *ContentReloader) modTime() (time.Time, error) {
	info, err := os.Stat(r.source.Path())
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (r *ContentReloader) poll() {
	mtime, err := r.modTime()
	if err != nil {
		slog.Debug("content file not readable", "path", r.source.Path(), logging.Err(err))
		return
	}

	r.mu.Lock()
	changed := !mtime.Equal(r.lastSeen)
	r.lastSeen = mtime
	r.mu.Unlock()

	// Feeding an unchanged timestamp would restart the quiet period.
	if changed {
		slog.Debug("content file changed", "path", r.source.Path(), "mtime", mtime)
		r.stable.Set(mtime)
	}
}

func (r *ContentReloader) reload(mtime time.Time) {
	r.mu.Lock()
	if mtime.Equal(r.loaded) {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	// The file may have moved on since the poll that scheduled this reload.
	if cur, err := r.modTime(); err == nil && !cur.Equal(mtime) {
		slog.Debug("content file still changing", "path", r.source.Path(), "mtime", cur)
		r.mu.Lock()
		r.lastSeen = cur
		r.mu.Unlock()
		r.stable.Set(cur)
		return
	}

	err := r.source.Reload()
	r.metrics.ContentReload(err)
	if err != nil {
		slog.Error("failed to reload content", "path", r.source.Path(), logging.Err(err))
		return
	}

	r.mu.Lock()
	r.loaded = mtime
	r.reloads++
	r.mu.Unlock()
}
