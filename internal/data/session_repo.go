package data

import (
	"context"
	"fmt"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	"github.com/tijaniyah/companion/internal/ports"
)

// SessionRepo persists the authenticated-user snapshot under ports.KeyUser.
type SessionRepo struct {
	kv ports.KeyValueStore
}

// NewSessionRepo creates a SessionRepo on kv.
func NewSessionRepo(kv ports.KeyValueStore) *SessionRepo {
	return &SessionRepo{kv: kv}
}

// Load returns the stored user, or nil when none is stored.
func (r *SessionRepo) Load(ctx context.Context) (*domainauth.User, error) {
	var u domainauth.User
	ok, err := getJSON(ctx, r.kv, ports.KeyUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// Save stores user as-is.
func (r *SessionRepo) Save(ctx context.Context, user domainauth.User) error {
	return setJSON(ctx, r.kv, ports.KeyUser, user)
}

// Clear removes the stored user.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, ports.KeyUser); err != nil {
		return fmt.Errorf("delete %s: %w", ports.KeyUser, err)
	}
	return nil
}
