package rental

// Package rental contains simple hand-written test doubles for the client
// core's ports. These are lightweight and suitable for unit tests without
// codegen.

import (
	"context"
	"sync"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
	"github.com/rentaride/rentaride/internal/domain/model"
	apperrors "github.com/rentaride/rentaride/internal/errors"
	"github.com/rentaride/rentaride/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Backend   = (*FakeBackend)(nil)
	_ ports.RentalAPI = (*FakeRentalAPI)(nil)
)

// FakeBackend simulates the rental backend's auth surface. Unset func
// fields fall back to a deterministic happy path driven by Token and User.
type FakeBackend struct {
	RegisterFunc    func(ctx context.Context, in model.RegisterInput) error
	LoginFunc       func(ctx context.Context, email, password string) (string, error)
	CurrentUserFunc func(ctx context.Context, token string) (domainauth.User, error)
	LogoutFunc      func(ctx context.Context, token string) error
	DeleteUserFunc  func(ctx context.Context, token string, id int64) error
	UpdateUserFunc  func(ctx context.Context, token string, id int64, in model.ProfileUpdate) error

	// Token is issued by the default Login; User is returned by the default
	// CurrentUser when the presented token matches.
	Token string
	User  domainauth.User

	mu    sync.Mutex
	calls map[string]int
}

// NewFakeBackend creates a FakeBackend with a sensible default identity.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		Token: "tok-1",
		User: domainauth.User{
			ID:       1,
			Username: "alice",
			Email:    "a@x.com",
			IsAdmin:  false,
		},
	}
}

func (f *FakeBackend) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[op]++
}

// Calls returns how many times op was invoked.
func (f *FakeBackend) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FakeBackend) Register(ctx context.Context, in model.RegisterInput) error {
	f.record("Register")
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, in)
	}
	return nil
}

func (f *FakeBackend) Login(ctx context.Context, email, password string) (string, error) {
	f.record("Login")
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, email, password)
	}
	return f.Token, nil
}

func (f *FakeBackend) CurrentUser(ctx context.Context, token string) (domainauth.User, error) {
	f.record("CurrentUser")
	if f.CurrentUserFunc != nil {
		return f.CurrentUserFunc(ctx, token)
	}
	if token != f.Token {
		return domainauth.User{}, apperrors.Unauthorized("token expired")
	}
	return f.User, nil
}

func (f *FakeBackend) Logout(ctx context.Context, token string) error {
	f.record("Logout")
	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx, token)
	}
	return nil
}

func (f *FakeBackend) DeleteUser(ctx context.Context, token string, id int64) error {
	f.record("DeleteUser")
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeBackend) UpdateUser(ctx context.Context, token string, id int64, in model.ProfileUpdate) error {
	f.record("UpdateUser")
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, token, id, in)
	}
	return nil
}

// FakeRentalAPI simulates the catalog/booking/review surface with func
// fields. Unset fields return empty results.
type FakeRentalAPI struct {
	ListCarsFunc  func(ctx context.Context) ([]model.Car, error)
	GetCarFunc    func(ctx context.Context, id int64) (model.Car, error)
	CreateCarFunc func(ctx context.Context, token string, in model.CarInput) (int64, error)
	UpdateCarFunc func(ctx context.Context, token string, id int64, in model.CarInput) error
	DeleteCarFunc func(ctx context.Context, token string, id int64) error

	ListBookingsFunc       func(ctx context.Context, token string) ([]model.Booking, error)
	ListBookingsByUserFunc func(ctx context.Context, token string, userID int64) ([]model.Booking, error)
	ListBookingsByCarFunc  func(ctx context.Context, token string, carID int64) ([]model.Booking, error)
	CreateBookingFunc      func(ctx context.Context, token string, in model.BookingInput) (int64, error)
	SetBookingStatusFunc   func(ctx context.Context, token string, id int64, status model.BookingStatus) error
	DeleteBookingFunc      func(ctx context.Context, token string, id int64) error

	ListReviewsFunc    func(ctx context.Context) ([]model.Review, error)
	ListCarReviewsFunc func(ctx context.Context, carID int64) ([]model.CarReview, error)
	CreateReviewFunc   func(ctx context.Context, token string, in model.ReviewInput) (int64, error)
	DeleteReviewFunc   func(ctx context.Context, token string, id int64) error

	ListUsersFunc func(ctx context.Context, token string) ([]model.User, error)
	GetUserFunc   func(ctx context.Context, token string, id int64) (model.User, error)
}

func (f *FakeRentalAPI) ListCars(ctx context.Context) ([]model.Car, error) {
	if f.ListCarsFunc != nil {
		return f.ListCarsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeRentalAPI) GetCar(ctx context.Context, id int64) (model.Car, error) {
	if f.GetCarFunc != nil {
		return f.GetCarFunc(ctx, id)
	}
	return model.Car{}, nil
}

func (f *FakeRentalAPI) CreateCar(ctx context.Context, token string, in model.CarInput) (int64, error) {
	if f.CreateCarFunc != nil {
		return f.CreateCarFunc(ctx, token, in)
	}
	return 0, nil
}

func (f *FakeRentalAPI) UpdateCar(ctx context.Context, token string, id int64, in model.CarInput) error {
	if f.UpdateCarFunc != nil {
		return f.UpdateCarFunc(ctx, token, id, in)
	}
	return nil
}

func (f *FakeRentalAPI) DeleteCar(ctx context.Context, token string, id int64) error {
	if f.DeleteCarFunc != nil {
		return f.DeleteCarFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeRentalAPI) ListBookings(ctx context.Context, token string) ([]model.Booking, error) {
	if f.ListBookingsFunc != nil {
		return f.ListBookingsFunc(ctx, token)
	}
	return nil, nil
}

func (f *FakeRentalAPI) ListBookingsByUser(ctx context.Context, token string, userID int64) ([]model.Booking, error) {
	if f.ListBookingsByUserFunc != nil {
		return f.ListBookingsByUserFunc(ctx, token, userID)
	}
	return nil, nil
}

func (f *FakeRentalAPI) ListBookingsByCar(ctx context.Context, token string, carID int64) ([]model.Booking, error) {
	if f.ListBookingsByCarFunc != nil {
		return f.ListBookingsByCarFunc(ctx, token, carID)
	}
	return nil, nil
}

func (f *FakeRentalAPI) CreateBooking(ctx context.Context, token string, in model.BookingInput) (int64, error) {
	if f.CreateBookingFunc != nil {
		return f.CreateBookingFunc(ctx, token, in)
	}
	return 0, nil
}

func (f *FakeRentalAPI) SetBookingStatus(ctx context.Context, token string, id int64, status model.BookingStatus) error {
	if f.SetBookingStatusFunc != nil {
		return f.SetBookingStatusFunc(ctx, token, id, status)
	}
	return nil
}

func (f *FakeRentalAPI) DeleteBooking(ctx context.Context, token string, id int64) error {
	if f.DeleteBookingFunc != nil {
		return f.DeleteBookingFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeRentalAPI) ListReviews(ctx context.Context) ([]model.Review, error) {
	if f.ListReviewsFunc != nil {
		return f.ListReviewsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeRentalAPI) ListCarReviews(ctx context.Context, carID int64) ([]model.CarReview, error) {
	if f.ListCarReviewsFunc != nil {
		return f.ListCarReviewsFunc(ctx, carID)
	}
	return nil, nil
}

func (f *FakeRentalAPI) CreateReview(ctx context.Context, token string, in model.ReviewInput) (int64, error) {
	if f.CreateReviewFunc != nil {
		return f.CreateReviewFunc(ctx, token, in)
	}
	return 0, nil
}

func (f *FakeRentalAPI) DeleteReview(ctx context.Context, token string, id int64) error {
	if f.DeleteReviewFunc != nil {
		return f.DeleteReviewFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeRentalAPI) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, token)
	}
	return nil, nil
}

func (f *FakeRentalAPI) GetUser(ctx context.Context, token string, id int64) (model.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, token, id)
	}
	return model.User{}, nil
}
