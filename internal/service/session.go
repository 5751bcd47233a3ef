package service

// Package service orchestrates the client core: the session manager owns
// authentication state, and the page services mirror the application's
// pages on top of it.

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
	"github.com/rentaride/rentaride/internal/domain/model"
	apperrors "github.com/rentaride/rentaride/internal/errors"
	"github.com/rentaride/rentaride/internal/ports"
)

// ErrSessionExpired reports that the backend rejected the held token and the
// session was cleared (forced logout). Distinct from rejected credentials so
// the UI can show the right message.
var ErrSessionExpired = errors.New("session expired")

// Manager is the single authority for authentication state. It owns the
// bearer token and the hydrated account record; every credential operation
// funnels through it, and it is the only writer of the durable token store.
type Manager struct {
	backend ports.Backend
	store   ports.TokenStore
	logger  *slog.Logger

	mu    sync.Mutex
	token string
	user  *domainauth.User
	// gen increments on every token transition; a hydration result is only
	// applied if the generation it was fetched under is still current, so a
	// stale response can never resurrect a logged-out user.
	gen  uint64
	subs []func(domainauth.Snapshot)

	hydrates singleflight.Group
}

// Manager doubles as a token source for integrations that speak oauth2.
var _ oauth2.TokenSource = (*Manager)(nil)

// ManagerOptions groups dependencies for Manager.
type ManagerOptions struct {
	Backend ports.Backend
	Store   ports.TokenStore
	Logger  *slog.Logger
}

// NewManager constructs a Manager in the guest state. Call Resume to pick up
// a persisted token.
func NewManager(opts ManagerOptions) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		backend: opts.Backend,
		store:   opts.Store,
		logger:  logger,
	}
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() domainauth.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := domainauth.Snapshot{Token: m.token}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// State derives the current UI authentication state.
func (m *Manager) State() domainauth.State {
	return domainauth.StateFor(m.Snapshot())
}

// Role derives the current effective role.
func (m *Manager) Role() domainauth.Role {
	return domainauth.RoleFor(m.Snapshot())
}

// Subscribe registers fn to be called with a fresh snapshot after every
// state change. Subscribers must not call back into the Manager.
func (m *Manager) Subscribe(fn func(domainauth.Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Token implements oauth2.TokenSource over the current session token.
func (m *Manager) Token() (*oauth2.Token, error) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()
	if token == "" {
		return nil, apperrors.Unauthorized("not logged in")
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// bearer returns the current token, or "" when logged out.
func (m *Manager) bearer() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// current returns the token, a copy of the user record, and the generation
// they were read under, so a caller can tell whether the session moved on
// while one of its calls was in flight.
func (m *Manager) current() (string, *domainauth.User, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var user *domainauth.User
	if m.user != nil {
		u := *m.user
		user = &u
	}
	return m.token, user, m.gen
}

// Resume restores a persisted token at startup and hydrates it. With no
// persisted token the session stays guest and Resume returns nil. A token
// the backend rejects is erased and ErrSessionExpired returned; a
// connectivity failure leaves the token in place for a later retry.
func (m *Manager) Resume(ctx context.Context) error {
	tok, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoToken) {
			return nil
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "load persisted token")
	}

	m.mu.Lock()
	m.token = tok.AccessToken
	m.user = nil
	m.gen++
	m.mu.Unlock()
	m.notify()

	return m.Hydrate(ctx)
}

// Register creates an account. It never mutates session state; registration
// and login are distinct steps, and the caller moves to the login view on
// success.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	in := model.RegisterInput{Username: username, Email: email, Password: password}
	if err := in.Validate(); err != nil {
		return err
	}
	return m.backend.Register(ctx, in)
}

// Login exchanges credentials for a token, persists it, and hydrates the
// account record. On any failure before the token is issued, session state
// is untouched and the backend's message is surfaced to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperrors.Validation("email and password are required")
	}

	token, err := m.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.token = token
	m.user = nil
	m.gen++
	m.mu.Unlock()

	if err := m.store.Save(ctx, &oauth2.Token{AccessToken: token, TokenType: "Bearer"}); err != nil {
		// The in-memory session is live either way; only persistence across
		// restarts is lost.
		m.logger.WarnContext(ctx, "persist token failed", "error", err)
	}
	m.notify()

	return m.Hydrate(ctx)
}

// Hydrate fetches the account record for the held token. A response that
// arrives after the token changed is discarded. A backend verdict that the
// token is invalid clears the whole session (forced logout) and returns
// ErrSessionExpired; a connectivity failure changes nothing.
func (m *Manager) Hydrate(ctx context.Context) error {
	m.mu.Lock()
	token, gen := m.token, m.gen
	m.mu.Unlock()
	if token == "" {
		return nil
	}

	// Concurrent hydrations for the same token share one fetch.
	v, err, _ := m.hydrates.Do(token, func() (any, error) {
		return m.backend.CurrentUser(ctx, token)
	})

	if err != nil {
		if apperrors.IsUnauthorized(err) {
			if m.clearIfCurrent(ctx, gen) {
				return apperrors.Wrap(ErrSessionExpired, apperrors.ErrCodeUnauthorized, err.Error())
			}
			return nil
		}
		return err
	}

	user, ok := v.(domainauth.User)
	if !ok {
		return apperrors.Internal("unexpected hydration result type")
	}

	m.mu.Lock()
	if m.gen != gen || m.token != token {
		// The session moved on while this response was in flight.
		m.mu.Unlock()
		return nil
	}
	m.user = &user
	m.mu.Unlock()
	m.notify()
	return nil
}

// Logout invalidates the token server-side and clears the session. The
// UI-visible state flips to logged out only after confirmed success; a
// connectivity failure leaves the session as it was. A token the backend no
// longer recognizes counts as already logged out. Calling Logout while
// logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	token, _, gen := m.current()
	if token == "" {
		return nil
	}

	err := m.backend.Logout(ctx, token)
	switch {
	case err == nil, apperrors.IsUnauthorized(err):
		// Clear only if no login replaced the token while the call was in
		// flight; a stale logout must not wipe the newer session.
		m.clearIfCurrent(ctx, gen)
		return nil
	default:
		return err
	}
}

// DeleteAccount removes the authenticated account. It hydrates first if
// needed, since the backend addresses users by id. Success ends exactly like
// Logout: token, record, and durable storage all cleared.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	if m.bearer() == "" {
		return apperrors.Unauthorized("not logged in")
	}

	if m.Snapshot().User == nil {
		if err := m.Hydrate(ctx); err != nil {
			return err
		}
	}

	token, user, gen := m.current()
	if user == nil {
		return apperrors.Unauthorized("account record unavailable")
	}

	err := m.backend.DeleteUser(ctx, token, user.ID)
	switch {
	case err == nil:
		m.clearIfCurrent(ctx, gen)
		return nil
	case apperrors.IsUnauthorized(err):
		if m.clearIfCurrent(ctx, gen) {
			return apperrors.Wrap(ErrSessionExpired, apperrors.ErrCodeUnauthorized, err.Error())
		}
		return nil
	default:
		return err
	}
}

// UpdateProfile replaces the account's email and password. On success the
// local record is updated from the accepted fields; the token never changes.
func (m *Manager) UpdateProfile(ctx context.Context, update model.ProfileUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	token, user, gen := m.current()
	if token == "" {
		return apperrors.Unauthorized("not logged in")
	}
	if user == nil {
		if err := m.Hydrate(ctx); err != nil {
			return err
		}
		token, user, gen = m.current()
		if user == nil {
			return apperrors.Unauthorized("account record unavailable")
		}
	}

	err := m.backend.UpdateUser(ctx, token, user.ID, update)
	switch {
	case err == nil:
		m.mu.Lock()
		// The record is only touched if the session it was fetched under is
		// still current.
		if m.gen == gen && m.user != nil {
			u := *m.user
			u.Email = update.Email
			m.user = &u
		}
		m.mu.Unlock()
		m.notify()
		return nil
	case apperrors.IsUnauthorized(err):
		if m.clearIfCurrent(ctx, gen) {
			return apperrors.Wrap(ErrSessionExpired, apperrors.ErrCodeUnauthorized, err.Error())
		}
		return nil
	default:
		return err
	}
}

// clearIfCurrent drops the in-memory session and erases the durable slot,
// but only if no token transition happened since gen was read. Returns
// whether it cleared.
func (m *Manager) clearIfCurrent(ctx context.Context, gen uint64) bool {
	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		return false
	}
	m.token = ""
	m.user = nil
	m.gen++
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.logger.WarnContext(ctx, "clear token store failed", "error", err)
	}
	m.notify()
	return true
}

// notify hands a fresh snapshot to every subscriber, outside the lock.
func (m *Manager) notify() {
	snap := m.Snapshot()
	m.mu.Lock()
	subs := make([]func(domainauth.Snapshot), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
