// Package logging holds small helpers for structured slog attributes.
package logging

import "log/slog"

// Err returns the "error" attribute for err. The error value is kept so
// handlers such as tint can highlight it. A nil error logs as "<nil>".
//
//	slog.Error("failed to load content", logging.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}
