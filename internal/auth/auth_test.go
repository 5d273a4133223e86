package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallerie/internal/db"
	"gallerie/internal/models"
	"gallerie/internal/store"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, VerifyPassword(hash, "secret123"))
	assert.ErrorIs(t, VerifyPassword(hash, "wrong"), ErrInvalidLogin)
}

func TestPolicy(t *testing.T) {
	res := Resource{Kind: "post", OwnerID: 7}
	assert.True(t, Can(7, res, ActionEdit))
	assert.False(t, Can(8, res, ActionEdit))
	assert.False(t, Can(0, Resource{Kind: "post", OwnerID: 0}, ActionDelete))
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()
	_, ok := UserFrom(ctx)
	assert.False(t, ok)

	ctx = WithUser(ctx, models.SessionUser{ID: 3, Username: "ana"})
	u, ok := UserFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "ana", u.Username)
}

func newSessionFixture(t *testing.T, lifetime time.Duration) (*Manager, int64) {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, db.Migrate(d))

	uid, err := store.New(d).CreateUser(context.Background(), models.User{
		Username:       "ana",
		Email:          "ana@x.com",
		PasswordHash:   "x",
		ProfilePicture: "pic.png",
	})
	require.NoError(t, err)
	return NewManager(d, lifetime), uid
}

func sessionRequest(rec *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestSessionLifecycle(t *testing.T) {
	m, uid := newSessionFixture(t, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Create(rec, uid))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	u, err := m.Identity(sessionRequest(rec))
	require.NoError(t, err)
	assert.Equal(t, uid, u.ID)
	assert.Equal(t, "ana", u.Username)
	assert.Equal(t, "ana@x.com", u.Email)
	assert.Equal(t, "pic.png", u.ProfilePicture)

	// destroy invalidates the server-side row
	destroyRec := httptest.NewRecorder()
	m.Destroy(destroyRec, sessionRequest(rec))
	_, err = m.Identity(sessionRequest(rec))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionExpired(t *testing.T) {
	m, uid := newSessionFixture(t, -time.Minute)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Create(rec, uid))

	_, err := m.Identity(sessionRequest(rec))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionMissingCookie(t *testing.T) {
	m, _ := newSessionFixture(t, time.Hour)
	_, err := m.Identity(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
}
