package auth

// Package auth contains domain-level types for the client-side session.
// It is pure and free of transport/adapter concerns.

import "encoding/json"

// Role represents the application's authorization role.
// Keep string form for easy logging and comparison.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Allows reports whether a holder of this role may use a surface that
// requires the given role. Admin implies user; everyone implies guest.
func (r Role) Allows(required Role) bool {
	switch required {
	case RoleGuest:
		return true
	case RoleUser:
		return r == RoleUser || r == RoleAdmin
	case RoleAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}

// User is the hydrated account record for the credential holder, fetched
// from the backend for a held token.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// rawUser mirrors the backend payload with the admin flag kept raw so a
// missing or malformed value can be told apart from an explicit false.
type rawUser struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	IsAdmin  json.RawMessage `json:"is_admin"`
}

// DecodeUser maps a backend user payload into a typed User.
// The admin flag must be a real JSON boolean; an absent or malformed value
// demotes the account to a regular user rather than guessing either way.
func DecodeUser(data []byte) (User, error) {
	var raw rawUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return User{}, err
	}

	u := User{
		ID:       raw.ID,
		Username: raw.Username,
		Email:    raw.Email,
	}

	if len(raw.IsAdmin) > 0 {
		var isAdmin bool
		if err := json.Unmarshal(raw.IsAdmin, &isAdmin); err == nil {
			u.IsAdmin = isAdmin
		}
	}

	return u, nil
}

// Snapshot is an immutable view of session state handed to readers.
// Token present without a User means hydration has not completed yet.
type Snapshot struct {
	Token string
	User  *User
}

// LoggedIn reports whether a token is held.
func (s Snapshot) LoggedIn() bool { return s.Token != "" }

// State is the derived UI authentication state. It is computed from a
// Snapshot on demand and never stored, so it cannot go stale across a
// session transition.
type State int

const (
	// StateGuest means no token is held.
	StateGuest State = iota
	// StateAuthenticating covers the window between a token being set and
	// hydration completing. Privileged UI must not show in this state.
	StateAuthenticating
	// StateUser means a token is held and the hydrated account is not an admin.
	StateUser
	// StateAdmin means a token is held and the hydrated account is an admin.
	StateAdmin
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateGuest:
		return "guest"
	case StateAuthenticating:
		return "authenticating"
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// StateFor derives the UI state from a session snapshot. Admin is keyed off
// the hydrated IsAdmin flag, never off token presence alone.
func StateFor(s Snapshot) State {
	switch {
	case s.Token == "":
		return StateGuest
	case s.User == nil:
		return StateAuthenticating
	case s.User.IsAdmin:
		return StateAdmin
	default:
		return StateUser
	}
}

// RoleFor derives the effective role from a session snapshot. While
// hydration is in flight the holder counts as a guest, so no privileged
// affordance flashes before the backend confirms the account.
func RoleFor(s Snapshot) Role {
	switch StateFor(s) {
	case StateAdmin:
		return RoleAdmin
	case StateUser:
		return RoleUser
	default:
		return RoleGuest
	}
}
