package auth

// Package auth contains domain-level types for the client session: users, roles, and the
// authentication state exposed to screens. It is pure and free of transport/storage concerns.

import (
	"strings"
	"time"
)

// Role represents a user's privilege level.
// Keep string form for easy persistence; the order of the constants below is the privilege order.
type Role string

const (
	RoleUser       Role = "user"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Rank returns the position of r in the privilege order. Unknown and empty roles rank as RoleUser.
func (r Role) Rank() int {
	switch r {
	case RoleModerator:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r carries at least the privileges of min.
func (r Role) AtLeast(minRole Role) bool { return r.Rank() >= minRole.Rank() }

// Normalize maps empty or unknown roles to RoleUser.
func (r Role) Normalize() Role {
	switch Role(strings.ToLower(string(r))) {
	case RoleModerator:
		return RoleModerator
	case RoleAdmin:
		return RoleAdmin
	case RoleSuperAdmin:
		return RoleSuperAdmin
	default:
		return RoleUser
	}
}

// Preferences holds per-user app preferences.
type Preferences struct {
	PrayerMethod  string `json:"prayer_method"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

// Default preference values used whenever the backend omits them.
const (
	DefaultPrayerMethod = "MWL"
	DefaultLanguage     = "en"
)

// DefaultPreferences returns the preferences applied to newly synthesized users.
func DefaultPreferences() Preferences {
	return Preferences{
		PrayerMethod:  DefaultPrayerMethod,
		Language:      DefaultLanguage,
		Notifications: true,
	}
}

// User is the authenticated-user record held by the session and persisted locally.
// It is replaced wholesale on every update.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone,omitempty"`
	Picture     string      `json:"picture,omitempty"`
	Location    string      `json:"location,omitempty"`
	Role        Role        `json:"role,omitempty"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
	LastLogin   time.Time   `json:"last_login"`
}

// EffectiveRole returns the user's role, defaulting to RoleUser.
func (u User) EffectiveRole() Role { return u.Role.Normalize() }

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Registration carries a sign-up attempt.
type Registration struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
	Phone           string
	Location        string
}

// ProfileUpdate lists the user fields that may be changed. Nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string
	Phone       *string
	Picture     *string
	Location    *string
	Preferences *Preferences
}

// Apply returns a copy of u with the non-nil fields of p merged in.
func (p ProfileUpdate) Apply(u User) User {
	out := u
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Picture != nil {
		out.Picture = *p.Picture
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Preferences != nil {
		out.Preferences = *p.Preferences
	}
	return out
}

// NameFromEmail derives a display name from the local part of an email address.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// NormalizeEmail trims and lowercases an email address for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LocalAccount is an entry of the on-device account directory used when the backend is
// unreachable. PasswordHash is a bcrypt hash and is empty for accounts stored before hashing
// was introduced and for the demo fixtures, whose passwords are checked separately.
type LocalAccount struct {
	User
	PasswordHash string `json:"password_hash,omitempty"`
}
