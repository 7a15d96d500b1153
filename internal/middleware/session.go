package middleware

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/logging"
	"github.com/loganlanou/academy/internal/session"
)

// Session restores the stored user for every request and installs the
// request's session state. Handlers read it with session.From.
func Session(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			user, err := manager.Restore(c)
			switch {
			case err == nil:
				slog.Debug("session restored", "path", path, "user_id", user.ID)
			case errors.Is(err, session.ErrNotFound):
				user = nil
			case errors.Is(err, session.ErrInvalidRecord):
				slog.Warn("discarding unreadable session record", "path", path, logging.Err(err))
				if clearErr := manager.Clear(c); clearErr != nil {
					slog.Error("failed to clear session", "path", path, logging.Err(clearErr))
				}
				user = nil
			default:
				// The store is unreachable. Serve the page unauthenticated.
				slog.Error("failed to restore session", "path", path, logging.Err(err))
				user = nil
			}

			session.Provide(c, session.NewContext(c, manager, user))
			return next(c)
		}
	}
}
