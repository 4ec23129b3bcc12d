package auth

import "time"

// Profile is what the backend told us about a user after authentication.
// It is either a FullProfile, which is used as-is, or a PartialProfile,
// which is completed with defaults by ResolveUser.
type Profile interface {
	isProfile()
}

// FullProfile is a server response carrying every field of the user record.
type FullProfile struct {
	User User
}

// PartialProfile is a legacy or incomplete server response. Empty fields are filled in
// from the login request and the defaults.
type PartialProfile struct {
	ID          string
	Email       string
	Name        string
	Role        Role
	Phone       string
	Picture     string
	Location    string
	Preferences *Preferences
	CreatedAt   time.Time
}

func (FullProfile) isProfile()    {}
func (PartialProfile) isProfile() {}

// ResolveUser turns a Profile into a complete User. email is the address the caller
// authenticated with; now stamps LastLogin (and CreatedAt when the server omitted it).
// A nil profile resolves like an empty PartialProfile.
func ResolveUser(p Profile, email string, now time.Time) User {
	switch v := p.(type) {
	case FullProfile:
		u := v.User
		u.Email = NormalizeEmail(u.Email)
		u.Role = u.Role.Normalize()
		u.LastLogin = now
		return u
	case PartialProfile:
		return resolvePartial(v, email, now)
	default:
		return resolvePartial(PartialProfile{}, email, now)
	}
}

func resolvePartial(p PartialProfile, email string, now time.Time) User {
	addr := NormalizeEmail(p.Email)
	if addr == "" {
		addr = NormalizeEmail(email)
	}
	id := p.ID
	if id == "" {
		id = addr
	}
	name := p.Name
	if name == "" {
		name = NameFromEmail(addr)
	}
	prefs := DefaultPreferences()
	if p.Preferences != nil {
		prefs = *p.Preferences
		if prefs.PrayerMethod == "" {
			prefs.PrayerMethod = DefaultPrayerMethod
		}
		if prefs.Language == "" {
			prefs.Language = DefaultLanguage
		}
	}
	created := p.CreatedAt
	if created.IsZero() {
		created = now
	}
	return User{
		ID:          id,
		Email:       addr,
		Name:        name,
		Phone:       p.Phone,
		Picture:     p.Picture,
		Location:    p.Location,
		Role:        p.Role.Normalize(),
		Preferences: prefs,
		CreatedAt:   created,
		LastLogin:   now,
	}
}
