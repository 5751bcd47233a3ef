package service

import (
	"context"

	"github.com/rentaride/rentaride/internal/domain/model"
	"github.com/rentaride/rentaride/internal/ports"
)

// UserService mirrors the admin user-management page. Self-service profile
// changes go through the session manager instead, so the token lifecycle
// stays in one place.
type UserService struct {
	api     ports.RentalAPI
	backend ports.Backend
	session *Manager
}

// NewUserService constructs a UserService.
func NewUserService(api ports.RentalAPI, backend ports.Backend, session *Manager) *UserService {
	return &UserService{api: api, backend: backend, session: session}
}

// List fetches the user directory.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.api.ListUsers(ctx, s.session.bearer())
}

// Get fetches one directory entry.
func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	return s.api.GetUser(ctx, s.session.bearer(), id)
}

// Update replaces another account's email and password (admin page). For the
// signed-in account use Manager.UpdateProfile.
func (s *UserService) Update(ctx context.Context, id int64, update model.ProfileUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}
	return s.backend.UpdateUser(ctx, s.session.bearer(), id, update)
}

// Delete removes another account (admin page). Deleting the signed-in
// account goes through Manager.DeleteAccount so the session is cleared too.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.backend.DeleteUser(ctx, s.session.bearer(), id)
}
