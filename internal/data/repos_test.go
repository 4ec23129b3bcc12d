package data

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	"github.com/tijaniyah/companion/internal/domain/model"
	"github.com/tijaniyah/companion/internal/ports"
)

func sampleUser() domainauth.User {
	created := time.Date(2025, 12, 1, 8, 30, 0, 0, time.UTC)
	return domainauth.User{
		ID:       "u-42",
		Email:    "khadija@example.com",
		Name:     "Khadija",
		Phone:    "+221 77 000 0000",
		Picture:  "https://cdn.example.com/k.png",
		Location: "Dakar",
		Role:     domainauth.RoleModerator,
		Preferences: domainauth.Preferences{
			PrayerMethod:  "Makkah",
			Language:      "fr",
			Notifications: false,
		},
		CreatedAt: created,
		LastLogin: created.Add(36 * time.Hour),
	}
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	stores := map[string]ports.KeyValueStore{
		"memory": NewMemoryKVStore(),
		"file":   NewFileKVStore(filepath.Join(t.TempDir(), "state.json")),
	}

	for name, kv := range stores {
		t.Run(name, func(t *testing.T) {
			repo := NewSessionRepo(kv)
			ctx := context.Background()

			none, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, none)

			want := sampleUser()
			require.NoError(t, repo.Save(ctx, want))

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, want, *got)

			// Saving what was loaded is idempotent.
			require.NoError(t, repo.Save(ctx, *got))
			again, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, *again)

			require.NoError(t, repo.Clear(ctx))
			cleared, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, cleared)
		})
	}
}

func TestSessionRepo_CorruptValue(t *testing.T) {
	kv := NewMemoryKVStore()
	require.NoError(t, kv.Set(context.Background(), ports.KeyUser, []byte(`[1,2]`)))

	_, err := NewSessionRepo(kv).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode user")
}

func TestAccountRepo_ListAndAdd(t *testing.T) {
	repo := NewAccountRepo(NewMemoryKVStore())
	ctx := context.Background()

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	first := domainauth.LocalAccount{User: sampleUser(), PasswordHash: "$2a$hash"}
	second := domainauth.LocalAccount{User: domainauth.User{ID: "u-2", Email: "b@example.com"}}
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	accounts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, first, accounts[0])
	assert.Equal(t, "u-2", accounts[1].ID)
}

func TestAccountRepo_FlattensUserFields(t *testing.T) {
	kv := NewMemoryKVStore()
	repo := NewAccountRepo(kv)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, domainauth.LocalAccount{User: domainauth.User{ID: "1", Email: "x@y.io"}}))

	raw, err := kv.Get(ctx, ports.KeyLocalUsers)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"email":"x@y.io"`)
	assert.NotContains(t, string(raw), "password_hash")
}

func TestJSONRepo(t *testing.T) {
	repo := NewJSONRepo(NewMemoryKVStore())
	ctx := context.Background()

	var entries []model.JournalEntry
	ok, err := repo.Get(ctx, ports.KeyJournalEntries, &entries)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []model.JournalEntry{{ID: "j1", Content: "Alhamdulillah"}}
	require.NoError(t, repo.Put(ctx, ports.KeyJournalEntries, want))

	ok, err = repo.Get(ctx, ports.KeyJournalEntries, &entries)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "j1", entries[0].ID)

	require.NoError(t, repo.Delete(ctx, ports.KeyJournalEntries))
	ok, err = repo.Get(ctx, ports.KeyJournalEntries, &entries)
	require.NoError(t, err)
	assert.False(t, ok)
}
