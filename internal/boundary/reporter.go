package boundary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loganlanou/academy/internal/logging"
	"github.com/rollbar/rollbar-go"
)

// Reporter receives render failures caught by a boundary.
type Reporter interface {
	Report(ctx context.Context, err error, info Info)
}

type ReporterFunc func(ctx context.Context, err error, info Info)

func (f ReporterFunc) Report(ctx context.Context, err error, info Info) {
	f(ctx, err, info)
}

// Multi fans a report out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(ctx context.Context, err error, info Info) {
		for _, r := range reporters {
			if r != nil {
				r.Report(ctx, err, info)
			}
		}
	})
}

// SlogReporter logs failures with the default logger.
type SlogReporter struct{}

func (SlogReporter) Report(ctx context.Context, err error, info Info) {
	attrs := []any{"boundary", info.Name, "path", info.Path, logging.Err(err)}
	var pe *PanicError
	if errors.As(err, &pe) {
		attrs = append(attrs, "stack", string(pe.Stack))
	}
	slog.ErrorContext(ctx, "render failed, showing fallback", attrs...)
}

// RollbarReporter sends failures to Rollbar.
type RollbarReporter struct {
	client *rollbar.Client
}

// NewRollbarReporter returns a reporter for token. An empty token returns a
// disabled reporter.
func NewRollbarReporter(token, environment, codeVersion string) *RollbarReporter {
	client := rollbar.New(token, environment, codeVersion, "", "")
	client.SetEnabled(token != "")
	return &RollbarReporter{client: client}
}

func (r *RollbarReporter) Report(ctx context.Context, err error, info Info) {
	r.client.ErrorWithExtrasAndContext(ctx, rollbar.ERR, err, map[string]interface{}{
		"boundary": info.Name,
		"path":     info.Path,
	})
}

// Close flushes queued reports.
func (r *RollbarReporter) Close() error {
	return r.client.Close()
}
