package offline

// The demo accounts are a test fixture for offline use and screenshots. Their passwords are
// embedded in the client and are not a security boundary.

import (
	"time"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	apperrors "github.com/tijaniyah/companion/internal/errors"
)

type demoAccount struct {
	email    string
	password string
	name     string
	role     domainauth.Role
}

var demoAccounts = []demoAccount{
	{email: "demo@tijaniyah.com", password: "demo123", name: "Demo User", role: domainauth.RoleUser},
	{email: "admin@tijaniyah.com", password: "admin123", name: "Admin User", role: domainauth.RoleAdmin},
	{email: "moderator@tijaniyah.com", password: "moderator123", name: "Moderator User", role: domainauth.RoleModerator},
}

// DemoAccounts returns the directory entries seeded for the demo fixture.
func DemoAccounts(now time.Time) []domainauth.LocalAccount {
	out := make([]domainauth.LocalAccount, 0, len(demoAccounts))
	for _, d := range demoAccounts {
		out = append(out, domainauth.LocalAccount{User: domainauth.User{
			ID:          "demo-" + string(d.role),
			Email:       d.email,
			Name:        d.name,
			Role:        d.role,
			Preferences: domainauth.DefaultPreferences(),
			CreatedAt:   now,
		}})
	}
	return out
}

// IsDemoEmail reports whether email belongs to one of the demo accounts.
func IsDemoEmail(email string) bool {
	_, ok := findDemo(email)
	return ok
}

// CheckDemoPassword verifies the password of a demo account. It returns nil for
// non-demo emails; the caller checks those some other way.
func CheckDemoPassword(email, password string) error {
	d, ok := findDemo(email)
	if !ok || password == d.password {
		return nil
	}
	return apperrors.Unauthorizedf("Invalid password for %s. Use: %s", d.email, d.password)
}

func findDemo(email string) (demoAccount, bool) {
	addr := domainauth.NormalizeEmail(email)
	for _, d := range demoAccounts {
		if d.email == addr {
			return d, true
		}
	}
	return demoAccount{}, false
}
