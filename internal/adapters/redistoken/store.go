package redistoken

// Package redistoken provides a Redis-backed durable token slot for shared
// rental-desk terminals, where the session must survive restarts of any one
// client process.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/rentaride/rentaride/internal/ports"
)

const defaultKey = "rentaride:token"

// Store persists a single oauth2.Token as JSON under one key.
type Store struct {
	client redis.UniversalClient
	key    string
}

// Ensure compile-time conformance to ports.
var _ ports.TokenStore = (*Store)(nil)

// New creates a Redis-backed token store under the default key.
func New(client redis.UniversalClient) *Store {
	return &Store{client: client, key: defaultKey}
}

// NewWithKey creates a Redis-backed token store under a custom key, so
// multiple desks on one Redis can hold independent sessions.
func NewWithKey(client redis.UniversalClient, key string) *Store {
	return &Store{client: client, key: key}
}

// Save writes the token. Tokens carry no client-side expiry, so no TTL is
// set; the backend is authoritative for token validity.
func (s *Store) Save(ctx context.Context, tok *oauth2.Token) error {
	if tok == nil || tok.AccessToken == "" {
		return errors.New("token cannot be empty")
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}

	return s.client.Set(ctx, s.key, data, 0).Err()
}

// Load reads the persisted token, returning ports.ErrNoToken when absent.
func (s *Store) Load(ctx context.Context) (*oauth2.Token, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrNoToken
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var tok oauth2.Token
	if unmarshalErr := json.Unmarshal([]byte(data), &tok); unmarshalErr != nil {
		return nil, ports.ErrNoToken
	}
	if tok.AccessToken == "" {
		return nil, ports.ErrNoToken
	}
	return &tok, nil
}

// Clear erases the slot. Clearing an empty slot is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
