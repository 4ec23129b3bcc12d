package offline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tijaniyah/companion/internal/data"
	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	apperrors "github.com/tijaniyah/companion/internal/errors"
)

var seedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newDirectory(t *testing.T, seed bool) *Directory {
	t.Helper()
	dir, err := NewDirectory(Config{
		Store:            data.NewAccountRepo(data.NewMemoryKVStore()),
		SeedDemoAccounts: seed,
		Now:              func() time.Time { return seedTime },
	})
	require.NoError(t, err)
	return dir
}

func TestNewDirectory_RequiresStore(t *testing.T) {
	_, err := NewDirectory(Config{})
	require.Error(t, err)
}

func TestDirectory_SeedsDemoAccountsOnce(t *testing.T) {
	dir := newDirectory(t, true)
	ctx := context.Background()

	accounts, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, seedTime, accounts[0].CreatedAt)

	again, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 3)

	roles := map[string]domainauth.Role{}
	for _, a := range accounts {
		roles[a.Email] = a.Role
	}
	assert.Equal(t, domainauth.RoleUser, roles["demo@tijaniyah.com"])
	assert.Equal(t, domainauth.RoleAdmin, roles["admin@tijaniyah.com"])
	assert.Equal(t, domainauth.RoleModerator, roles["moderator@tijaniyah.com"])
}

func TestDirectory_NoSeedWhenDisabled(t *testing.T) {
	accounts, err := newDirectory(t, false).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestDirectory_NoSeedWhenPopulated(t *testing.T) {
	dir := newDirectory(t, true)
	ctx := context.Background()
	require.NoError(t, dir.Add(ctx, domainauth.LocalAccount{User: domainauth.User{ID: "1", Email: "own@x.io"}}))

	accounts, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "own@x.io", accounts[0].Email)
}

func TestFind_CaseInsensitive(t *testing.T) {
	accounts := []domainauth.LocalAccount{
		{User: domainauth.User{ID: "1", Email: "Bilal@Example.com"}},
		{User: domainauth.User{ID: "2", Email: "other@example.com"}},
	}

	got := Find(accounts, "  bilal@EXAMPLE.com")
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)
	assert.Nil(t, Find(accounts, "nobody@example.com"))
}

func TestAuthenticate_DemoPasswords(t *testing.T) {
	tests := []struct {
		email    string
		password string
		wantErr  string
	}{
		{"demo@tijaniyah.com", "demo123", ""},
		{"DEMO@tijaniyah.com", "wrong", "Use: demo123"},
		{"admin@tijaniyah.com", "admin123", ""},
		{"admin@tijaniyah.com", "demo123", "Use: admin123"},
		{"moderator@tijaniyah.com", "moderator123", ""},
		{"moderator@tijaniyah.com", "", "Use: moderator123"},
	}

	for _, tc := range tests {
		t.Run(tc.email+"/"+tc.password, func(t *testing.T) {
			err := Authenticate(domainauth.LocalAccount{User: domainauth.User{Email: tc.email}}, tc.password)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsUnauthorized(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAuthenticate_HashedAccount(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	acct := domainauth.LocalAccount{User: domainauth.User{Email: "h@x.io"}, PasswordHash: hash}

	assert.NoError(t, Authenticate(acct, "s3cret!"))
	err = Authenticate(acct, "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthenticate_UnhashedAccountAcceptsAnyPassword(t *testing.T) {
	acct := domainauth.LocalAccount{User: domainauth.User{Email: "legacy@x.io"}}
	assert.NoError(t, Authenticate(acct, "anything"))
}

type failingStore struct{ err error }

func (f failingStore) List(context.Context) ([]domainauth.LocalAccount, error) { return nil, nil }
func (f failingStore) Add(context.Context, domainauth.LocalAccount) error      { return f.err }

func TestDirectory_SeedFailure(t *testing.T) {
	dir, err := NewDirectory(Config{Store: failingStore{err: errors.New("disk full")}, SeedDemoAccounts: true})
	require.NoError(t, err)

	_, err = dir.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
