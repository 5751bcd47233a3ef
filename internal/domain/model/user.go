package model

import (
	"net/mail"
	"strings"

	apperrors "github.com/rentaride/rentaride/internal/errors"
)

// User is a directory entry from the user listing endpoints. The session's
// own hydrated record lives in the auth package; this shape serves the admin
// pages.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}

// RegisterInput carries the fields for creating an account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields and email shape before any network call.
func (in RegisterInput) Validate() error {
	if strings.TrimSpace(in.Username) == "" {
		return apperrors.ValidationField("username", "username is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if len(in.Password) < 6 {
		return apperrors.ValidationField("password", "password must be at least 6 characters")
	}
	return nil
}

// ProfileUpdate carries the fields for updating an account. The backend
// requires both fields on every update.
type ProfileUpdate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks both fields are present, matching the backend contract.
func (in ProfileUpdate) Validate() error {
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if len(in.Password) < 6 {
		return apperrors.ValidationField("password", "password must be at least 6 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.ValidationField("email", "invalid email address")
	}
	return nil
}
