package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/academy/internal/logging"
	"github.com/loganlanou/academy/internal/metrics"
	"github.com/loganlanou/academy/internal/session"
)

// AuthHandler handles the mock sign-in routes. Signing in always yields the
// demo user.
type AuthHandler struct {
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{metrics: m}
}

// SessionResponse is the JSON view of the session state.
type SessionResponse struct {
	State string        `json:"state"`
	User  *session.User `json:"user,omitempty"`
}

// HandleSignIn authenticates the request and redirects back.
func (h *AuthHandler) HandleSignIn(c echo.Context) error {
	sc, err := session.From(c)
	if err != nil {
		return err
	}

	target := returnTarget(c.FormValue("return_to"), c.Request().Referer())
	if err := sc.SignIn(); err != nil {
		slog.Error("sign in failed", logging.Err(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Sign in is unavailable right now")
	}
	h.metrics.SignIn()

	slog.Info("user signed in", "user_id", sc.User().ID, "return_to", target)
	return c.Redirect(http.StatusSeeOther, target)
}

// HandleSignOut clears the session and redirects back.
func (h *AuthHandler) HandleSignOut(c echo.Context) error {
	sc, err := session.From(c)
	if err != nil {
		return err
	}

	target := returnTarget(c.FormValue("return_to"), c.Request().Referer())
	if err := sc.SignOut(); err != nil {
		// The cookie is already gone for this response; the stale record
		// expires on its own.
		slog.Warn("sign out could not clear the stored record", logging.Err(err))
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// HandleSession returns the current session state as JSON.
func (h *AuthHandler) HandleSession(c echo.Context) error {
	sc, err := session.From(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SessionResponse{State: sc.State().String(), User: sc.User()})
}
