package ports

// Package ports defines interfaces (hexagonal ports) for session-related behavior.
// Implementations live in internal/apiclient and internal/data; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
)

// SignupInput carries inputs for remote account creation.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput carries inputs for remote authentication.
type LoginInput struct {
	Email    string
	Password string
}

// AuthAPI authenticates against the backend. Implementations own the bearer token:
// Login stores the returned token as a side effect and ClearToken discards it.
type AuthAPI interface {
	Signup(ctx context.Context, in SignupInput) error

	// Login authenticates and returns what the backend reported about the user.
	Login(ctx context.Context, in LoginInput) (domainauth.Profile, error)

	// ClearToken discards the in-memory and persisted token.
	ClearToken(ctx context.Context) error
}

// UserSnapshotStore persists the authenticated-user record between runs.
type UserSnapshotStore interface {
	// Load returns nil, nil when no user is stored.
	Load(ctx context.Context) (*domainauth.User, error)
	Save(ctx context.Context, user domainauth.User) error
	Clear(ctx context.Context) error
}

// AccountDirectory is the on-device list of accounts used when the backend is unreachable.
type AccountDirectory interface {
	List(ctx context.Context) ([]domainauth.LocalAccount, error)
	Add(ctx context.Context, account domainauth.LocalAccount) error
}
