package memtoken

// Package memtoken keeps the token in process memory only. The session does
// not survive a restart; used for one-shot scripting and tests.

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	"github.com/rentaride/rentaride/internal/ports"
)

// Store is an in-memory single-token slot, safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	tok *oauth2.Token
}

// Ensure compile-time conformance to ports.
var _ ports.TokenStore = (*Store)(nil)

// New creates an empty in-memory token store.
func New() *Store {
	return &Store{}
}

// Save stores a copy of the token.
func (s *Store) Save(_ context.Context, tok *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok == nil {
		s.tok = nil
		return nil
	}
	copied := *tok
	s.tok = &copied
	return nil
}

// Load returns the stored token, or ports.ErrNoToken when empty.
func (s *Store) Load(_ context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tok == nil || s.tok.AccessToken == "" {
		return nil, ports.ErrNoToken
	}
	copied := *s.tok
	return &copied, nil
}

// Clear empties the slot.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = nil
	return nil
}
