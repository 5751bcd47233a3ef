package ports

// Package ports defines interfaces (hexagonal ports) for the client core.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
	"github.com/rentaride/rentaride/internal/domain/model"
)

// ErrNoToken is returned by TokenStore.Load when no token is persisted.
var ErrNoToken = errors.New("no token stored")

// TokenStore is the durable slot for the bearer token. The session manager
// is its only writer; absence of a token means logged out.
type TokenStore interface {
	Save(ctx context.Context, tok *oauth2.Token) error
	// Load returns ErrNoToken when the slot is empty.
	Load(ctx context.Context) (*oauth2.Token, error)
	Clear(ctx context.Context) error
}

// Backend is the slice of the rental API the session manager depends on.
// Authenticated calls take the exact token they act for, so a caller can
// detect that the session changed underneath an in-flight request.
type Backend interface {
	// Register creates an account. No token is issued; registration and
	// login are distinct steps.
	Register(ctx context.Context, in model.RegisterInput) error

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (token string, err error)

	// CurrentUser fetches the account record the token belongs to.
	CurrentUser(ctx context.Context, token string) (domainauth.User, error)

	// Logout invalidates the token server-side.
	Logout(ctx context.Context, token string) error

	// DeleteUser removes the account with the given id.
	DeleteUser(ctx context.Context, token string, id int64) error

	// UpdateUser replaces the account's email and password.
	UpdateUser(ctx context.Context, token string, id int64, in model.ProfileUpdate) error
}

// RentalAPI is the catalog, booking, and review surface the page services
// consume. Calls that the backend gates pass a bearer token; an empty token
// sends no Authorization header.
type RentalAPI interface {
	ListCars(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id int64) (model.Car, error)
	CreateCar(ctx context.Context, token string, in model.CarInput) (int64, error)
	UpdateCar(ctx context.Context, token string, id int64, in model.CarInput) error
	DeleteCar(ctx context.Context, token string, id int64) error

	ListBookings(ctx context.Context, token string) ([]model.Booking, error)
	ListBookingsByUser(ctx context.Context, token string, userID int64) ([]model.Booking, error)
	ListBookingsByCar(ctx context.Context, token string, carID int64) ([]model.Booking, error)
	CreateBooking(ctx context.Context, token string, in model.BookingInput) (int64, error)
	SetBookingStatus(ctx context.Context, token string, id int64, status model.BookingStatus) error
	DeleteBooking(ctx context.Context, token string, id int64) error

	ListReviews(ctx context.Context) ([]model.Review, error)
	ListCarReviews(ctx context.Context, carID int64) ([]model.CarReview, error)
	CreateReview(ctx context.Context, token string, in model.ReviewInput) (int64, error)
	DeleteReview(ctx context.Context, token string, id int64) error

	ListUsers(ctx context.Context, token string) ([]model.User, error)
	GetUser(ctx context.Context, token string, id int64) (model.User, error)
}
