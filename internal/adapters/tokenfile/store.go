package tokenfile

// Package tokenfile persists the session bearer token to a local file so a
// session survives a client restart. It is the Go-side analogue of the
// browser's localStorage slot.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"github.com/rentaride/rentaride/internal/ports"
)

// Store persists a single oauth2.Token as JSON at a fixed path.
// The file is created with 0600; the containing directory with 0700.
type Store struct {
	path string
}

// Ensure compile-time conformance to ports.
var _ ports.TokenStore = (*Store)(nil)

// New creates a file-backed token store at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save writes the token, creating the parent directory if needed.
func (s *Store) Save(_ context.Context, tok *oauth2.Token) error {
	if tok == nil || tok.AccessToken == "" {
		return errors.New("token cannot be empty")
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Load reads the persisted token, returning ports.ErrNoToken when the slot
// is empty or unreadable as a token.
func (s *Store) Load(_ context.Context) (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ports.ErrNoToken
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		// A corrupt slot is treated as logged out rather than wedging the
		// client; the next login rewrites it.
		return nil, ports.ErrNoToken
	}
	if tok.AccessToken == "" {
		return nil, ports.ErrNoToken
	}
	return &tok, nil
}

// Clear erases the slot. Clearing an empty slot is a no-op.
func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
