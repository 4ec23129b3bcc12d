package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmespath-community/go-jmespath"
	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	apperrors "github.com/tijaniyah/companion/internal/errors"
	"github.com/tijaniyah/companion/internal/ports"
)

// Expressions locating the token and user in login responses. Older backends nest both
// under "data" and spell the token differently.
const (
	tokenExpr = "accessToken || access_token || token || data.accessToken || data.access_token || data.token"
	userExpr  = "user || data.user"
)

var _ ports.AuthAPI = (*Client)(nil)

type signupBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// remoteUser is the user object as the backend serializes it.
type remoteUser struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Picture     string             `json:"picture"`
	Location    string             `json:"location"`
	Role        string             `json:"role"`
	Preferences *remotePreferences `json:"preferences"`
	CreatedAt   *time.Time         `json:"createdAt"`
	LastLogin   *time.Time         `json:"lastLogin"`
}

type remotePreferences struct {
	PrayerMethod  string `json:"prayerMethod"`
	Language      string `json:"language"`
	Notifications *bool  `json:"notifications"`
}

// Signup creates a remote account. The response body is ignored.
func (c *Client) Signup(ctx context.Context, in ports.SignupInput) error {
	return c.post(ctx, "/auth/signup", signupBody(in), nil)
}

// Login authenticates and stores the returned access token, when present.
func (c *Client) Login(ctx context.Context, in ports.LoginInput) (domainauth.Profile, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/login", Body: loginBody(in)})
	if err != nil {
		return nil, err
	}

	var doc any
	if resp.IsJSON() && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &doc); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode login response")
		}
	}

	if access := searchString(tokenExpr, doc); access != "" {
		c.tokens.Set(ctx, access)
	} else {
		c.logger.DebugContext(ctx, "login response carried no access token")
	}

	user, err := searchUser(doc)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func searchString(expr string, doc any) string {
	if doc == nil {
		return ""
	}
	v, err := jmespath.Search(expr, doc)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func searchUser(doc any) (*remoteUser, error) {
	if doc == nil {
		return nil, nil
	}
	v, err := jmespath.Search(userExpr, doc)
	if err != nil || v == nil {
		return nil, nil
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode login user")
	}
	var u remoteUser
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode login user")
	}
	return &u, nil
}

// toProfile returns a FullProfile only when every field the session relies on was sent.
func toProfile(u *remoteUser) domainauth.Profile {
	if u == nil {
		return domainauth.PartialProfile{}
	}
	complete := u.ID != "" && u.Email != "" && u.Name != "" && u.Role != "" &&
		u.CreatedAt != nil && u.Preferences != nil &&
		u.Preferences.PrayerMethod != "" && u.Preferences.Language != "" && u.Preferences.Notifications != nil
	if complete {
		user := domainauth.User{
			ID:       u.ID,
			Email:    u.Email,
			Name:     u.Name,
			Phone:    u.Phone,
			Picture:  u.Picture,
			Location: u.Location,
			Role:     domainauth.Role(u.Role),
			Preferences: domainauth.Preferences{
				PrayerMethod:  u.Preferences.PrayerMethod,
				Language:      u.Preferences.Language,
				Notifications: *u.Preferences.Notifications,
			},
			CreatedAt: u.CreatedAt.UTC(),
		}
		return domainauth.FullProfile{User: user}
	}

	p := domainauth.PartialProfile{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     domainauth.Role(u.Role),
		Phone:    u.Phone,
		Picture:  u.Picture,
		Location: u.Location,
	}
	if u.CreatedAt != nil {
		p.CreatedAt = u.CreatedAt.UTC()
	}
	if u.Preferences != nil {
		prefs := domainauth.Preferences{
			PrayerMethod:  u.Preferences.PrayerMethod,
			Language:      u.Preferences.Language,
			Notifications: true,
		}
		if u.Preferences.Notifications != nil {
			prefs.Notifications = *u.Preferences.Notifications
		}
		p.Preferences = &prefs
	}
	return p
}
