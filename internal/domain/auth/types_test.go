package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_Ordering(t *testing.T) {
	assert.True(t, RoleSuperAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleModerator.AtLeast(RoleUser))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, RoleModerator.AtLeast(RoleAdmin))
	assert.Equal(t, RoleUser, Role("").Normalize())
	assert.Equal(t, RoleUser, Role("owner").Normalize())
	assert.Equal(t, RoleSuperAdmin, Role("SUPER_ADMIN").Normalize())
}

func TestProfileUpdate_ApplyReplacesOnlySetFields(t *testing.T) {
	name := "Aisha"
	prefs := Preferences{PrayerMethod: "ISNA", Language: "ar", Notifications: false}
	orig := User{ID: "1", Email: "a@b.co", Name: "a", Phone: "123", Preferences: DefaultPreferences()}

	got := ProfileUpdate{Name: &name, Preferences: &prefs}.Apply(orig)

	assert.Equal(t, "Aisha", got.Name)
	assert.Equal(t, "123", got.Phone)
	assert.Equal(t, prefs, got.Preferences)
	assert.Equal(t, "a", orig.Name, "original must not be mutated")
}

func TestResolveUser_PartialFillsDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	u := ResolveUser(PartialProfile{}, "  Fatima.Z@Example.COM ", now)

	assert.Equal(t, "fatima.z@example.com", u.Email)
	assert.Equal(t, "fatima.z", u.Name)
	assert.Equal(t, "fatima.z@example.com", u.ID)
	assert.Equal(t, RoleUser, u.Role)
	assert.Equal(t, DefaultPreferences(), u.Preferences)
	assert.Equal(t, now, u.CreatedAt)
	assert.Equal(t, now, u.LastLogin)
}

func TestResolveUser_PartialKeepsServerFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-48 * time.Hour)

	u := ResolveUser(PartialProfile{
		ID:          "srv-9",
		Name:        "Omar",
		Role:        RoleModerator,
		Preferences: &Preferences{Language: "fr"},
		CreatedAt:   created,
	}, "omar@example.com", now)

	assert.Equal(t, "srv-9", u.ID)
	assert.Equal(t, "Omar", u.Name)
	assert.Equal(t, RoleModerator, u.Role)
	assert.Equal(t, "fr", u.Preferences.Language)
	assert.Equal(t, DefaultPrayerMethod, u.Preferences.PrayerMethod)
	assert.Equal(t, created, u.CreatedAt)
}

func TestResolveUser_FullProfileUsedAsIs(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	full := User{ID: "x", Email: "X@Y.io", Name: "X", Role: RoleAdmin, Preferences: Preferences{Language: "ur"}}

	u := ResolveUser(FullProfile{User: full}, "ignored@y.io", now)

	assert.Equal(t, "x@y.io", u.Email)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.Equal(t, "ur", u.Preferences.Language)
	assert.Equal(t, now, u.LastLogin)
}

func TestState_Derivations(t *testing.T) {
	assert.True(t, Initial().IsLoading())
	assert.False(t, Initial().IsAuthenticated())
	assert.True(t, Guest().IsGuest())
	assert.Equal(t, RoleUser, Guest().Role())

	s := Authenticated(User{Email: "m@x.io", Role: RoleModerator})
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsGuest())
	assert.Equal(t, RoleModerator, s.Role())

	so := SignedOut("boom")
	assert.False(t, so.IsAuthenticated())
	assert.Equal(t, "boom", so.Error)
}
