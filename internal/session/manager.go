package session

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

const (
	CookieName = "academy_session"
	idKey      = "sid"
)

// Manager ties the browser cookie carrying the session identifier to the
// record held in a Store.
type Manager struct {
	cookies sessions.Store
	store   Store
}

// NewManager creates a manager signing its cookie with secret.
func NewManager(secret string, store Store, secure bool) *Manager {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		cookies: cookies,
		store:   store,
	}
}

// Store returns the backing record store.
func (m *Manager) Store() Store {
	return m.store
}

func (m *Manager) cookie(c echo.Context) *sessions.Session {
	sess, err := m.cookies.Get(c.Request(), CookieName)
	if err != nil {
		// A tampered or stale cookie decodes to a fresh session.
		slog.Debug("session cookie rejected", "error", err)
	}
	return sess
}

// ID returns the session identifier carried by the request cookie.
func (m *Manager) ID(c echo.Context) (string, bool) {
	id, ok := m.cookie(c).Values[idKey].(string)
	return id, ok && id != ""
}

// Restore loads the stored user for the request. It returns ErrNotFound
// when the request has no session.
func (m *Manager) Restore(c echo.Context) (*User, error) {
	id, ok := m.ID(c)
	if !ok {
		return nil, ErrNotFound
	}
	return m.store.Get(c.Request().Context(), id)
}

// Persist stores user under the request's session, issuing a new
// identifier when the request has none.
func (m *Manager) Persist(c echo.Context, user *User) error {
	sess := m.cookie(c)
	id, _ := sess.Values[idKey].(string)
	if id == "" {
		id = ulid.Make().String()
		sess.Values[idKey] = id
	}

	if err := m.store.Set(c.Request().Context(), id, user); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the stored record and expires the cookie.
func (m *Manager) Clear(c echo.Context) error {
	sess := m.cookie(c)
	id, _ := sess.Values[idKey].(string)

	var storeErr error
	if id != "" {
		storeErr = m.store.Clear(c.Request().Context(), id)
	}

	sess.Options.MaxAge = -1
	delete(sess.Values, idKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	if storeErr != nil {
		return fmt.Errorf("failed to clear session: %w", storeErr)
	}
	return nil
}
