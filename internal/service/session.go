package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sync"

	"github.com/google/uuid"
	"github.com/tijaniyah/companion/internal/adapters/offline"
	"github.com/tijaniyah/companion/internal/data"
	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	apperrors "github.com/tijaniyah/companion/internal/errors"
	obserrors "github.com/tijaniyah/companion/internal/observability/errors"
	"github.com/tijaniyah/companion/internal/ports"
)

const minPasswordLength = 6

// Displayable messages for session failures.
const (
	msgPasswordMismatch = "Passwords do not match"
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgInvalidEmail     = "Please enter a valid email address"
	msgUserNotFound     = "user not found"
	msgAccountExists    = "An account with this email already exists"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrSessionAPIRequired indicates a session service cannot be constructed without the remote port.
var ErrSessionAPIRequired = errors.New("session service: API is required")

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	API      ports.AuthAPI
	Sessions ports.UserSnapshotStore
	// Accounts is the offline fallback directory. Nil disables the fallback.
	Accounts     ports.AccountDirectory
	TimeProvider data.TimeProvider
	Logger       *slog.Logger
}

// SessionService is the single source of truth for who is using the app. It reconciles the
// remote backend with the local snapshot and the offline account directory.
//
// Mutating operations are serialized; State may be read at any time, including while an
// operation is in flight and the session is loading.
type SessionService struct {
	api          ports.AuthAPI
	sessions     ports.UserSnapshotStore
	accounts     ports.AccountDirectory
	timeProvider data.TimeProvider
	logger       *slog.Logger

	op sync.Mutex

	mu    sync.RWMutex
	state domainauth.State

	subs stateBroadcaster
}

// NewSessionService constructs a SessionService in the loading state.
func NewSessionService(opts SessionServiceOptions) (*SessionService, error) {
	if opts.API == nil {
		return nil, ErrSessionAPIRequired
	}
	if opts.Sessions == nil {
		return nil, errors.New("session service: Sessions is required")
	}
	if opts.TimeProvider == nil {
		opts.TimeProvider = &data.RealTimeProvider{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		api:          opts.API,
		sessions:     opts.Sessions,
		accounts:     opts.Accounts,
		timeProvider: opts.TimeProvider,
		logger:       logger.With("component", "session"),
		state:        domainauth.Initial(),
	}, nil
}

// State returns a snapshot of the current session.
func (s *SessionService) State() domainauth.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Subscribe delivers the latest state after every transition. Slow subscribers only see
// the most recent state.
func (s *SessionService) Subscribe() (func(), <-chan domainauth.State) {
	return s.subs.subscribe()
}

// Restore loads the persisted user snapshot. A missing or unreadable snapshot restores to
// signed-out.
func (s *SessionService) Restore(ctx context.Context) domainauth.State {
	s.op.Lock()
	defer s.op.Unlock()

	s.set(domainauth.Loading())
	u, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "restore session snapshot", "error", err)
		return s.set(domainauth.SignedOut(""))
	}
	if u == nil {
		return s.set(domainauth.SignedOut(""))
	}
	return s.set(domainauth.Authenticated(*u))
}

// Login authenticates remotely and falls back to the offline directory when the backend
// fails. On failure the session is signed out with the error attached; the same error is
// returned.
func (s *SessionService) Login(ctx context.Context, creds domainauth.Credentials) error {
	s.op.Lock()
	defer s.op.Unlock()

	email := domainauth.NormalizeEmail(creds.Email)
	s.set(domainauth.Loading())

	profile, err := s.api.Login(ctx, ports.LoginInput{Email: email, Password: creds.Password})
	if err == nil {
		user := domainauth.ResolveUser(profile, email, s.timeProvider.Now())
		s.persist(ctx, user)
		s.set(domainauth.Authenticated(user))
		s.logger.InfoContext(ctx, "signed in", "user_id", user.ID, "mode", "remote")
		return nil
	}
	s.logger.WarnContext(ctx, "remote login failed", "error", err, "error_class", obserrors.Classify(err))

	if s.accounts == nil {
		return s.fail(err)
	}
	user, err := s.offlineLogin(ctx, email, creds.Password)
	if err != nil {
		return s.fail(err)
	}
	s.persist(ctx, user)
	s.set(domainauth.Authenticated(user))
	s.logger.InfoContext(ctx, "signed in", "user_id", user.ID, "mode", "offline")
	return nil
}

func (s *SessionService) offlineLogin(ctx context.Context, email, password string) (domainauth.User, error) {
	acct := offline.Find(s.listAccounts(ctx), email)
	if acct == nil {
		return domainauth.User{}, apperrors.NotFound(msgUserNotFound)
	}
	if err := offline.Authenticate(*acct, password); err != nil {
		return domainauth.User{}, err
	}
	user := acct.User
	user.Email = domainauth.NormalizeEmail(user.Email)
	user.Role = user.Role.Normalize()
	user.LastLogin = s.timeProvider.Now()
	if user.Preferences == (domainauth.Preferences{}) {
		user.Preferences = domainauth.DefaultPreferences()
	}
	return user, nil
}

// Register validates the input, then signs up and logs in remotely. When the backend fails
// the account is created in the offline directory instead. Validation failures leave the
// session unchanged apart from the error.
func (s *SessionService) Register(ctx context.Context, reg domainauth.Registration) error {
	if err := ValidateRegistration(reg); err != nil {
		s.setError(apperrors.Message(err))
		return err
	}

	s.op.Lock()
	defer s.op.Unlock()

	email := domainauth.NormalizeEmail(reg.Email)
	s.set(domainauth.Loading())

	profile, err := s.remoteRegister(ctx, email, reg)
	if err == nil {
		user := domainauth.ResolveUser(domainauth.PartialProfile{
			ID:       profileID(profile),
			Email:    email,
			Name:     reg.Name,
			Phone:    reg.Phone,
			Location: reg.Location,
		}, email, s.timeProvider.Now())
		s.persist(ctx, user)
		s.set(domainauth.Authenticated(user))
		s.logger.InfoContext(ctx, "registered", "user_id", user.ID, "mode", "remote")
		return nil
	}
	s.logger.WarnContext(ctx, "remote registration failed", "error", err, "error_class", obserrors.Classify(err))

	if s.accounts == nil {
		return s.fail(err)
	}
	user, err := s.offlineRegister(ctx, email, reg)
	if err != nil {
		return s.fail(err)
	}
	s.persist(ctx, user)
	s.set(domainauth.Authenticated(user))
	s.logger.InfoContext(ctx, "registered", "user_id", user.ID, "mode", "offline")
	return nil
}

func (s *SessionService) remoteRegister(ctx context.Context, email string, reg domainauth.Registration) (domainauth.Profile, error) {
	if err := s.api.Signup(ctx, ports.SignupInput{Email: email, Password: reg.Password, Name: reg.Name}); err != nil {
		return nil, err
	}
	return s.api.Login(ctx, ports.LoginInput{Email: email, Password: reg.Password})
}

func (s *SessionService) offlineRegister(ctx context.Context, email string, reg domainauth.Registration) (domainauth.User, error) {
	if offline.Find(s.listAccounts(ctx), email) != nil {
		return domainauth.User{}, apperrors.Conflict(msgAccountExists)
	}
	hash, err := offline.HashPassword(reg.Password)
	if err != nil {
		return domainauth.User{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not create account")
	}
	user := domainauth.ResolveUser(domainauth.PartialProfile{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     reg.Name,
		Phone:    reg.Phone,
		Location: reg.Location,
	}, email, s.timeProvider.Now())

	if err := s.accounts.Add(ctx, domainauth.LocalAccount{User: user, PasswordHash: hash}); err != nil {
		s.logger.WarnContext(ctx, "persist offline account", "error", err)
	}
	return user, nil
}

// ValidateRegistration checks, in order, password confirmation, password length and email format.
func ValidateRegistration(reg domainauth.Registration) error {
	if reg.Password != reg.ConfirmPassword {
		return apperrors.ValidationField("confirm_password", msgPasswordMismatch)
	}
	if len(reg.Password) < minPasswordLength {
		return apperrors.ValidationField("password", msgPasswordTooShort)
	}
	if !emailPattern.MatchString(reg.Email) {
		return apperrors.ValidationField("email", msgInvalidEmail)
	}
	return nil
}

// Logout clears the token and the persisted snapshot, then signs out. Cleanup failures are
// logged and never prevent the transition.
func (s *SessionService) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	if err := s.api.ClearToken(ctx); err != nil {
		s.logger.WarnContext(ctx, "clear token on logout", "error", err)
	}
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "clear session snapshot on logout", "error", err)
	}
	s.set(domainauth.SignedOut(""))
	s.logger.InfoContext(ctx, "signed out")
}

// ContinueAsGuest enters guest mode, dropping any signed-in user.
func (s *SessionService) ContinueAsGuest() domainauth.State {
	s.op.Lock()
	defer s.op.Unlock()
	return s.set(domainauth.Guest())
}

// UpdateProfile merges upd into the signed-in user and persists the result. It is a no-op
// when nobody is signed in.
func (s *SessionService) UpdateProfile(ctx context.Context, upd domainauth.ProfileUpdate) domainauth.State {
	s.op.Lock()
	defer s.op.Unlock()

	cur := s.State()
	if !cur.IsAuthenticated() {
		return cur
	}
	user := upd.Apply(*cur.User)
	s.persist(ctx, user)
	return s.set(domainauth.Authenticated(user))
}

// ResetPassword acknowledges a reset request. No message is sent yet.
func (s *SessionService) ResetPassword(ctx context.Context, email string) error {
	addr := domainauth.NormalizeEmail(email)
	if !emailPattern.MatchString(addr) {
		return apperrors.ValidationField("email", msgInvalidEmail)
	}
	s.logger.InfoContext(ctx, "password reset requested", "email", addr)
	return nil
}

// ClearError drops the error annotation without changing the status.
func (s *SessionService) ClearError() domainauth.State {
	s.mu.Lock()
	s.state.Error = ""
	st := cloneState(s.state)
	s.mu.Unlock()
	s.subs.publish(st)
	return st
}

// UserRole returns the signed-in user's role, or RoleUser.
func (s *SessionService) UserRole() domainauth.Role { return s.State().Role() }

// IsAdmin reports whether the user is an admin or super admin.
func (s *SessionService) IsAdmin() bool { return s.UserRole().AtLeast(domainauth.RoleAdmin) }

// IsSuperAdmin reports whether the user is a super admin.
func (s *SessionService) IsSuperAdmin() bool { return s.UserRole() == domainauth.RoleSuperAdmin }

// IsModerator reports whether the user is a moderator or holds an admin-tier role.
func (s *SessionService) IsModerator() bool { return s.UserRole().AtLeast(domainauth.RoleModerator) }

func (s *SessionService) listAccounts(ctx context.Context) []domainauth.LocalAccount {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "read offline accounts", "error", err)
		return nil
	}
	return accounts
}

func (s *SessionService) persist(ctx context.Context, user domainauth.User) {
	if err := s.sessions.Save(ctx, user); err != nil {
		s.logger.WarnContext(ctx, "persist session snapshot", "error", err)
	}
}

func (s *SessionService) fail(err error) error {
	s.set(domainauth.SignedOut(apperrors.Message(err)))
	return err
}

func (s *SessionService) setError(msg string) {
	s.mu.Lock()
	s.state.Error = msg
	st := cloneState(s.state)
	s.mu.Unlock()
	s.subs.publish(st)
}

func (s *SessionService) set(st domainauth.State) domainauth.State {
	s.mu.Lock()
	s.state = st
	out := cloneState(st)
	s.mu.Unlock()
	s.subs.publish(out)
	return out
}

func cloneState(st domainauth.State) domainauth.State {
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func profileID(p domainauth.Profile) string {
	switch v := p.(type) {
	case domainauth.FullProfile:
		return v.User.ID
	case domainauth.PartialProfile:
		return v.ID
	default:
		return ""
	}
}
