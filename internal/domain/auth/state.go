package auth

// Status is the coarse authentication status of the session.
type Status string

const (
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusGuest         Status = "guest"
	StatusSignedOut     Status = "signed_out"
)

// State is an immutable snapshot of the session.
// User is non-nil iff Status is StatusAuthenticated. Error is a transient annotation.
type State struct {
	Status Status
	User   *User
	Error  string
}

// Initial returns the state every session starts in.
func Initial() State { return State{Status: StatusLoading} }

// IsAuthenticated reports whether a user is signed in.
func (s State) IsAuthenticated() bool { return s.Status == StatusAuthenticated && s.User != nil }

// IsGuest reports whether the session is in guest mode.
func (s State) IsGuest() bool { return s.Status == StatusGuest }

// IsLoading reports whether a transition is in progress.
func (s State) IsLoading() bool { return s.Status == StatusLoading }

// Role returns the current user's role, or RoleUser when nobody is signed in.
func (s State) Role() Role {
	if s.User == nil {
		return RoleUser
	}
	return s.User.EffectiveRole()
}

// Authenticated builds an authenticated state holding a copy of u.
func Authenticated(u User) State {
	cp := u
	return State{Status: StatusAuthenticated, User: &cp}
}

// Guest builds the guest state.
func Guest() State { return State{Status: StatusGuest} }

// SignedOut builds a signed-out state, optionally carrying an error message.
func SignedOut(errMsg string) State { return State{Status: StatusSignedOut, Error: errMsg} }

// Loading builds the loading state.
func Loading() State { return State{Status: StatusLoading} }
