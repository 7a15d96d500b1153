package session

import (
	"fmt"
	"sync"

	"github.com/labstack/echo/v4"
)

// ContextKey is where the session middleware stores the request Context.
const ContextKey = "session"

// State of a session.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Context is the session state of one request. The user is either fully
// present or absent.
type Context struct {
	c       echo.Context
	manager *Manager

	mu   sync.Mutex
	user *User
}

// NewContext returns a context holding user, which may be nil.
func NewContext(c echo.Context, manager *Manager, user *User) *Context {
	return &Context{c: c, manager: manager, user: user}
}

// Provide installs sc as the request's session state.
func Provide(c echo.Context, sc *Context) {
	c.Set(ContextKey, sc)
}

// From returns the session state installed by the session middleware.
func From(c echo.Context) (*Context, error) {
	sc, ok := c.Get(ContextKey).(*Context)
	if !ok || sc == nil {
		return nil, ErrNoProvider
	}
	return sc, nil
}

// MustFrom is From that panics outside the provider, surfacing wiring
// mistakes immediately.
func MustFrom(c echo.Context) *Context {
	sc, err := From(c)
	if err != nil {
		panic(err)
	}
	return sc
}

func (s *Context) State() State {
	if s.IsAuthenticated() {
		return Authenticated
	}
	return Unauthenticated
}

func (s *Context) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// User returns a copy of the signed in user, nil when unauthenticated.
func (s *Context) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SignIn authenticates as the demo user and persists the record.
func (s *Context) SignIn() error {
	u := DemoUser()
	if err := s.manager.Persist(s.c, &u); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// SignOut drops the in-memory user and the persisted record. The in-memory
// state is cleared even when the store fails.
func (s *Context) SignOut() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.manager.Clear(s.c); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
