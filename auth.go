package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

// AuthState is the auth manager's lifecycle position.
type AuthState int

const (
	// StateUnauthenticated means no session is held.
	StateUnauthenticated AuthState = iota
	// StateAuthenticating means a login is in flight.
	StateAuthenticating
	// StateAuthenticated means a token and user are held.
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateUnauthenticated:
		return "Unauthenticated"
	case StateAuthenticating:
		return "Authenticating"
	case StateAuthenticated:
		return "Authenticated"
	default:
		return "Unknown"
	}
}

// LoginResult is how login failures reach the caller: as a value, never a
// panic or error, so UI layers can render inline feedback without a
// try/catch equivalent.
type LoginResult struct {
	Success bool
	Error   string
}

// Auth is the single source of truth for "is a user logged in, who are
// they". It wraps the gateway's auth methods and the session store, and is
// long-lived for the process lifetime.
type Auth struct {
	c *Client

	mu       sync.RWMutex
	state    AuthState
	session  types.Session
	onChange []func(AuthState)
}

// NewAuth constructs the auth manager, hydrating synchronously from the
// session store: a previously persisted session renders as logged-in
// without a network round trip. When the backend later refuses the token
// (401/403 on any authenticated call) the gateway clears the store and the
// manager transitions back to Unauthenticated.
func NewAuth(c *Client) *Auth {
	a := &Auth{c: c}
	if s, err := c.store.Load(); err == nil && s.Valid() {
		a.session = s
		a.state = StateAuthenticated
	} else if err != nil {
		log.Warn().Err(err).Msg("auth: could not hydrate session store")
	}
	c.tokenRefused(func() {
		a.transition(StateUnauthenticated, types.Session{})
	})
	return a
}

// OnChange registers a listener fired after every state transition.
// Listeners run synchronously on the transitioning goroutine and must not
// call back into Auth.
func (a *Auth) OnChange(fn func(AuthState)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChange = append(a.onChange, fn)
}

// Login drives the full lifecycle: Unauthenticated -> Authenticating ->
// Authenticated on success. On success the session is persisted before the
// state flips. A failed login from a logged-out start lands back at
// Unauthenticated; a failed re-login restores the prior session, matching
// the untouched store.
func (a *Auth) Login(ctx context.Context, email, password string) LoginResult {
	a.mu.RLock()
	prevState, prevSess := a.state, a.session
	a.mu.RUnlock()

	fail := func(msg string) LoginResult {
		if prevState == StateAuthenticated && prevSess.Valid() {
			a.transition(StateAuthenticated, prevSess)
		} else {
			a.transition(StateUnauthenticated, types.Session{})
		}
		return LoginResult{Error: msg}
	}

	a.transition(StateAuthenticating, types.Session{})

	ld, err := a.c.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return fail(err.Error())
	}
	if ld == nil || ld.Token == "" {
		return fail("Unexpected login response")
	}

	sess := types.Session{Token: ld.Token, User: ld.User}
	if err := a.c.store.Save(sess); err != nil {
		return fail(err.Error())
	}

	a.transition(StateAuthenticated, sess)
	return LoginResult{Success: true}
}

// Logout is synchronous: it clears the store and in-memory state
// immediately and never waits for a server acknowledgment.
func (a *Auth) Logout() {
	if err := a.c.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("auth: could not clear session store")
	}
	a.transition(StateUnauthenticated, types.Session{})
}

// IsAuthenticated reports whether a session is held.
func (a *Auth) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state == StateAuthenticated && a.session.Valid()
}

// State returns the current lifecycle position.
func (a *Auth) State() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// CurrentUser returns a copy of the cached user profile, or nil when
// logged out.
func (a *Auth) CurrentUser() *UserProfile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session.User == nil {
		return nil
	}
	u := *a.session.User
	return &u
}

// Token returns the held bearer token, empty when logged out.
func (a *Auth) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session.Token
}

// transition swaps state and session together, then notifies listeners
// outside the lock.
func (a *Auth) transition(st AuthState, sess types.Session) {
	a.mu.Lock()
	a.state = st
	a.session = sess
	listeners := make([]func(AuthState), len(a.onChange))
	copy(listeners, a.onChange)
	a.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}
