package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeUser() *User {
	return &User{
		ID:        gofakeit.UUID(),
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		AvatarURL: gofakeit.URL(),
	}
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// followUp builds a second request carrying the cookies set on rec.
func followUp(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	return req
}

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := NewRedisStore(context.Background(), RedisOptions{Addr: mr.Addr(), TTL: time.Hour})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestStores(t *testing.T) {
	redisStore, _ := setupRedisStore(t)

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := fakeUser()

			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "abc", user))
			got, err := store.Get(ctx, "abc")
			require.NoError(t, err)
			assert.Equal(t, user, got)

			require.NoError(t, store.Clear(ctx, "abc"))
			_, err = store.Get(ctx, "abc")
			assert.ErrorIs(t, err, ErrNotFound)

			// clearing twice is fine
			assert.NoError(t, store.Clear(ctx, "abc"))

			assert.ErrorIs(t, store.Set(ctx, "partial", &User{Name: "No ID"}), ErrInvalidRecord)
		})
	}
}

func TestMemoryStore_CorruptRecord(t *testing.T) {
	store := NewMemoryStore()
	store.records["bad"] = []byte("{not json")

	_, err := store.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestRedisStore_CorruptRecordAndTTL(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(KeyPrefix+"bad", `{"name":"no id"}`))
	_, err := store.Get(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidRecord)

	require.NoError(t, store.Set(ctx, "ok", fakeUser()))
	assert.Equal(t, time.Hour, mr.TTL(KeyPrefix+"ok"))

	mr.FastForward(2 * time.Hour)
	_, err = store.Get(ctx, "ok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_GetSlidesTTL(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	u := fakeUser()
	require.NoError(t, store.Set(ctx, "active", u))

	// each read within the TTL pushes the expiry out again
	for range 3 {
		mr.FastForward(45 * time.Minute)
		got, err := store.Get(ctx, "active")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, time.Hour, mr.TTL(KeyPrefix+"active"))
	}

	mr.FastForward(61 * time.Minute)
	_, err := store.Get(ctx, "active")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	store, err := NewRedisStore(context.Background(), RedisOptions{Addr: "127.0.0.1:1"})
	assert.Nil(t, store)
	assert.Error(t, err)
}

func TestManager_PersistAndRestore(t *testing.T) {
	m := NewManager("test-secret", NewMemoryStore(), false)
	user := fakeUser()

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
	_, err := m.Restore(c)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Persist(c, user))

	c2, _ := newContext(followUp(rec))
	got, err := m.Restore(c2)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestManager_ClearExpiresCookieAndRecord(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager("test-secret", store, false)

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
	require.NoError(t, m.Persist(c, fakeUser()))
	require.Equal(t, 1, store.Len())

	c2, rec2 := newContext(followUp(rec))
	require.NoError(t, m.Clear(c2))
	assert.Equal(t, 0, store.Len())

	var expired bool
	for _, ck := range rec2.Result().Cookies() {
		if ck.Name == CookieName && ck.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "cookie should be expired")

	// the old cookie no longer resolves to anything
	c3, _ := newContext(followUp(rec))
	_, err := m.Restore(c3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_ForeignSecretIsIgnored(t *testing.T) {
	store := NewMemoryStore()
	issuer := NewManager("secret-one", store, false)
	reader := NewManager("secret-two", store, false)

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
	require.NoError(t, issuer.Persist(c, fakeUser()))

	c2, _ := newContext(followUp(rec))
	_, err := reader.Restore(c2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFrom_OutsideProvider(t *testing.T) {
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	sc, err := From(c)
	assert.Nil(t, sc)
	assert.ErrorIs(t, err, ErrNoProvider)

	assert.PanicsWithError(t, ErrNoProvider.Error(), func() { MustFrom(c) })
}

func TestContext_SignInSignOut(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager("test-secret", store, false)

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil))
	sc := NewContext(c, m, nil)
	Provide(c, sc)

	assert.Equal(t, Unauthenticated, MustFrom(c).State())
	assert.Nil(t, sc.User())

	require.NoError(t, sc.SignIn())
	assert.Equal(t, Authenticated, sc.State())
	assert.Equal(t, DemoUser(), *sc.User())

	// a later request restores without signing in again
	c2, rec2 := newContext(followUp(rec))
	restored, err := m.Restore(c2)
	require.NoError(t, err)
	assert.Equal(t, DemoUser(), *restored)

	sc2 := NewContext(c2, m, restored)
	require.NoError(t, sc2.SignOut())
	assert.False(t, sc2.IsAuthenticated())
	assert.Equal(t, 0, store.Len())

	c3, _ := newContext(followUp(rec2))
	_, err = m.Restore(c3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserInitials(t *testing.T) {
	assert.Equal(t, "DU", DemoUser().Initials())
	assert.Equal(t, "A", User{Name: "Ada"}.Initials())
	assert.Equal(t, "MJ", User{Name: "  Mary  Jane Watson"}.Initials())
	assert.Equal(t, "", User{}.Initials())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
}
