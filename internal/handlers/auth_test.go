package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/loganlanou/academy/internal/metrics"
	"github.com/loganlanou/academy/internal/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSignIn(t *testing.T) {
	m := metrics.New()
	h := NewAuthHandler(m)
	store := session.NewMemoryStore()
	manager := session.NewManager("test-secret", store, false)

	c, rec := NewTestContext(http.MethodPost, "/auth/sign-in", url.Values{"return_to": {"/events?page=2"}})
	sc := SetTestSession(c, manager, nil)

	require.NoError(t, h.HandleSignIn(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events?page=2", rec.Header().Get("Location"))
	assert.True(t, sc.IsAuthenticated())
	assert.Equal(t, 1, store.Len())

	count, err := testutil.GatherAndCount(m.Registry, "academy_sign_ins_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandleSignIn_RejectsForeignReturnTo(t *testing.T) {
	h := NewAuthHandler(nil)
	manager := session.NewManager("test-secret", session.NewMemoryStore(), false)

	c, rec := NewTestContext(http.MethodPost, "/auth/sign-in", url.Values{"return_to": {"https://evil.example/"}})
	SetTestSession(c, manager, nil)

	require.NoError(t, h.HandleSignIn(c))
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestHandleSignOut(t *testing.T) {
	h := NewAuthHandler(nil)
	store := session.NewMemoryStore()
	manager := session.NewManager("test-secret", store, false)
	user := session.DemoUser()

	c, rec := NewTestContext(http.MethodPost, "/auth/sign-out", url.Values{})
	c.Request().Header.Set("Referer", "http://localhost:8000/teacher-portal/classes")
	sc := SetTestSession(c, manager, &user)

	require.NoError(t, h.HandleSignOut(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/teacher-portal/classes", rec.Header().Get("Location"))
	assert.False(t, sc.IsAuthenticated())
}

func TestHandleSession(t *testing.T) {
	h := NewAuthHandler(nil)
	manager := session.NewManager("test-secret", session.NewMemoryStore(), false)

	c, rec := NewTestContext(http.MethodGet, "/auth/session", nil)
	SetTestSession(c, manager, nil)
	require.NoError(t, h.HandleSession(c))

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.Equal(t, "unauthenticated", body["state"])
	assert.NotContains(t, body, "user")

	user := session.DemoUser()
	c, rec = NewTestContext(http.MethodGet, "/auth/session", nil)
	SetTestSession(c, manager, &user)
	require.NoError(t, h.HandleSession(c))

	body, err = AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.Equal(t, "authenticated", body["state"])
	assert.Equal(t, "Demo User", body["user"].(map[string]interface{})["name"])
}

func TestAuthHandlers_RequireSessionMiddleware(t *testing.T) {
	h := NewAuthHandler(nil)
	c, _ := NewTestContext(http.MethodGet, "/auth/session", nil)
	assert.ErrorIs(t, h.HandleSession(c), session.ErrNoProvider)
}
