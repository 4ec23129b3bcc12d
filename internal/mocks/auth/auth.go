package auth

// Package auth contains simple hand-written test doubles for the session's remote port.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	apperrors "github.com/tijaniyah/companion/internal/errors"
	"github.com/tijaniyah/companion/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI           = (*FakeAuthAPI)(nil)
	_ ports.UserSnapshotStore = (*MemorySnapshotStore)(nil)
)

// ErrUnreachable is the transport failure returned while FakeAuthAPI.Unreachable is set.
var ErrUnreachable = apperrors.Wrap(errors.New("dial tcp: connection refused"), apperrors.ErrCodeTransport, "network request failed")

// FakeAuthAPI simulates the backend auth endpoints with an in-memory account table.
type FakeAuthAPI struct {
	SignupFunc     func(ctx context.Context, in ports.SignupInput) error
	LoginFunc      func(ctx context.Context, in ports.LoginInput) (domainauth.Profile, error)
	ClearTokenFunc func(ctx context.Context) error

	// Unreachable makes every call fail with ErrUnreachable.
	Unreachable bool
	// Profile is returned by a successful default Login; an empty PartialProfile when nil.
	Profile domainauth.Profile

	mu          sync.Mutex
	passwords   map[string]string
	token       string
	signups     int
	logins      int
	tokenClears int
}

// NewFakeAuthAPI creates a FakeAuthAPI with no remote accounts.
func NewFakeAuthAPI() *FakeAuthAPI {
	return &FakeAuthAPI{passwords: make(map[string]string)}
}

// AddAccount registers a remote account.
func (f *FakeAuthAPI) AddAccount(email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.passwords == nil {
		f.passwords = make(map[string]string)
	}
	f.passwords[domainauth.NormalizeEmail(email)] = password
}

func (f *FakeAuthAPI) Signup(ctx context.Context, in ports.SignupInput) error {
	f.mu.Lock()
	f.signups++
	f.mu.Unlock()
	if f.SignupFunc != nil {
		return f.SignupFunc(ctx, in)
	}
	if f.Unreachable {
		return ErrUnreachable
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	addr := domainauth.NormalizeEmail(in.Email)
	if _, ok := f.passwords[addr]; ok {
		return apperrors.Wrap(errors.New("status 409"), apperrors.ErrCodeHTTP, "email already registered")
	}
	if f.passwords == nil {
		f.passwords = make(map[string]string)
	}
	f.passwords[addr] = in.Password
	return nil
}

func (f *FakeAuthAPI) Login(ctx context.Context, in ports.LoginInput) (domainauth.Profile, error) {
	f.mu.Lock()
	f.logins++
	f.mu.Unlock()
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, in)
	}
	if f.Unreachable {
		return nil, ErrUnreachable
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	pw, ok := f.passwords[domainauth.NormalizeEmail(in.Email)]
	if !ok || pw != in.Password {
		return nil, apperrors.Wrap(errors.New("status 401"), apperrors.ErrCodeUnauthorized, "invalid credentials")
	}
	f.token = "fake-token-" + domainauth.NormalizeEmail(in.Email)
	if f.Profile != nil {
		return f.Profile, nil
	}
	return domainauth.PartialProfile{}, nil
}

func (f *FakeAuthAPI) ClearToken(ctx context.Context) error {
	f.mu.Lock()
	f.tokenClears++
	f.token = ""
	f.mu.Unlock()
	if f.ClearTokenFunc != nil {
		return f.ClearTokenFunc(ctx)
	}
	return nil
}

// Token returns the token issued by the last successful default Login.
func (f *FakeAuthAPI) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

// Calls reports how many times each method ran.
func (f *FakeAuthAPI) Calls() (signups, logins, tokenClears int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signups, f.logins, f.tokenClears
}

// MemorySnapshotStore is an in-memory user snapshot for unit tests.
type MemorySnapshotStore struct {
	mu   sync.Mutex
	user *domainauth.User
	// SaveErr and ClearErr, when set, are returned instead of touching the snapshot.
	SaveErr  error
	ClearErr error
}

// NewMemorySnapshotStore creates an empty snapshot store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (m *MemorySnapshotStore) Load(_ context.Context) (*domainauth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *MemorySnapshotStore) Save(_ context.Context, user domainauth.User) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

func (m *MemorySnapshotStore) Clear(_ context.Context) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}
