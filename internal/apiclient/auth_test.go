package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tijaniyah/companion/internal/data"
	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	"github.com/tijaniyah/companion/internal/ports"
)

func loginServer(t *testing.T, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		assert.Equal(t, "amina@example.com", in["email"])
		writeJSON(w, http.StatusOK, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_FullProfileAndToken(t *testing.T) {
	srv := loginServer(t, map[string]any{
		"accessToken": "tok-1",
		"user": map[string]any{
			"id":        "u-1",
			"email":     "amina@example.com",
			"name":      "Amina",
			"role":      "moderator",
			"createdAt": "2025-12-01T08:00:00Z",
			"preferences": map[string]any{
				"prayerMethod":  "ISNA",
				"language":      "ar",
				"notifications": false,
			},
		},
	})
	store := data.NewMemoryKVStore()
	c, _ := newTestClient(t, srv.URL, store)

	p, err := c.Login(context.Background(), ports.LoginInput{Email: "amina@example.com", Password: "pw"})
	require.NoError(t, err)

	full, ok := p.(domainauth.FullProfile)
	require.True(t, ok, "expected full profile, got %T", p)
	assert.Equal(t, "u-1", full.User.ID)
	assert.Equal(t, domainauth.RoleModerator, full.User.Role)
	assert.False(t, full.User.Preferences.Notifications)
	assert.Equal(t, time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC), full.User.CreatedAt)

	assert.Equal(t, "tok-1", c.Tokens().Current())
	raw, err := store.Get(context.Background(), ports.KeyAuthToken)
	require.NoError(t, err)
	assert.JSONEq(t, `"tok-1"`, string(raw))
}

func TestLogin_LegacyNestedShapeIsPartial(t *testing.T) {
	srv := loginServer(t, map[string]any{
		"data": map[string]any{
			"token": "legacy",
			"user":  map[string]any{"email": "amina@example.com", "name": "Amina"},
		},
	})
	c, _ := newTestClient(t, srv.URL, nil)

	p, err := c.Login(context.Background(), ports.LoginInput{Email: "amina@example.com", Password: "pw"})
	require.NoError(t, err)

	partial, ok := p.(domainauth.PartialProfile)
	require.True(t, ok)
	assert.Equal(t, "amina@example.com", partial.Email)
	assert.Equal(t, "Amina", partial.Name)
	assert.Nil(t, partial.Preferences)
	assert.Equal(t, "legacy", c.Tokens().Current())
}

func TestLogin_NoUserNoToken(t *testing.T) {
	srv := loginServer(t, map[string]any{"ok": true})
	c, _ := newTestClient(t, srv.URL, nil)

	p, err := c.Login(context.Background(), ports.LoginInput{Email: "amina@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.PartialProfile{}, p)
	assert.Empty(t, c.Tokens().Current())
}

func TestSignup_SendsNameWhenSet(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL, nil)

	require.NoError(t, c.Signup(context.Background(), ports.SignupInput{Email: "a@b.co", Password: "secret"}))
	assert.Equal(t, map[string]any{"email": "a@b.co", "password": "secret"}, got)
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func seedToken(t *testing.T, store ports.KeyValueStore, tok string) {
	t.Helper()
	b, err := json.Marshal(tok)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), ports.KeyAuthToken, b))
}

func TestTokenHolder_LoadEvictsExpiredJWT(t *testing.T) {
	store := data.NewMemoryKVStore()
	seedToken(t, store, signedJWT(t, time.Now().Add(-time.Hour)))

	h := NewTokenHolder(store, nil)
	h.Load(context.Background())

	assert.Empty(t, h.Current())
	raw, err := store.Get(context.Background(), ports.KeyAuthToken)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestTokenHolder_LoadKeepsValidTokens(t *testing.T) {
	ctx := context.Background()

	store := data.NewMemoryKVStore()
	live := signedJWT(t, time.Now().Add(time.Hour))
	seedToken(t, store, live)
	h := NewTokenHolder(store, nil)
	h.Load(ctx)
	assert.Equal(t, live, h.Current())
	assert.False(t, h.Token().Expiry.IsZero())

	store = data.NewMemoryKVStore()
	seedToken(t, store, "opaque")
	h = NewTokenHolder(store, nil)
	h.Load(ctx)
	assert.Equal(t, "opaque", h.Current())
	assert.True(t, h.Token().Expiry.IsZero())
}

type deleteFailStore struct {
	ports.KeyValueStore
}

func (deleteFailStore) Delete(context.Context, string) error { return errors.New("disk full") }

func TestTokenHolder_ClearAlwaysDropsMemory(t *testing.T) {
	h := NewTokenHolder(deleteFailStore{data.NewMemoryKVStore()}, nil)
	h.Set(context.Background(), "tok")

	err := h.Clear(context.Background())

	assert.EqualError(t, err, "disk full")
	assert.Empty(t, h.Current())
	assert.Nil(t, h.Token())
}
