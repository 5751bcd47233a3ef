package service

import (
	"context"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
	"github.com/rentaride/rentaride/internal/domain/model"
	apperrors "github.com/rentaride/rentaride/internal/errors"
	"github.com/rentaride/rentaride/internal/ports"
)

// BookingService mirrors the booking pages. Date ordering is checked client
// side; availability and overlap rules stay server-side.
type BookingService struct {
	api     ports.RentalAPI
	session *Manager
}

// NewBookingService constructs a BookingService.
func NewBookingService(api ports.RentalAPI, session *Manager) *BookingService {
	return &BookingService{api: api, session: session}
}

// Book reserves a car for the signed-in user. The user id comes from the
// hydrated session record, never from caller input.
func (s *BookingService) Book(ctx context.Context, carID int64, startDate, endDate string) (int64, error) {
	user, err := s.requireUser(ctx)
	if err != nil {
		return 0, err
	}

	in := model.BookingInput{
		UserID:    user.ID,
		CarID:     carID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    model.BookingPending,
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return s.api.CreateBooking(ctx, s.session.bearer(), in)
}

// Mine lists the signed-in user's reservations.
func (s *BookingService) Mine(ctx context.Context) ([]model.Booking, error) {
	user, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.ListBookingsByUser(ctx, s.session.bearer(), user.ID)
}

// All lists every reservation (admin dashboard).
func (s *BookingService) All(ctx context.Context) ([]model.Booking, error) {
	return s.api.ListBookings(ctx, s.session.bearer())
}

// ForCar lists one car's reservations.
func (s *BookingService) ForCar(ctx context.Context, carID int64) ([]model.Booking, error) {
	return s.api.ListBookingsByCar(ctx, s.session.bearer(), carID)
}

// SetStatus transitions a reservation to the given status.
func (s *BookingService) SetStatus(ctx context.Context, id int64, status string) error {
	parsed, err := model.ParseBookingStatus(status)
	if err != nil {
		return err
	}
	return s.api.SetBookingStatus(ctx, s.session.bearer(), id, parsed)
}

// Cancel marks a reservation cancelled.
func (s *BookingService) Cancel(ctx context.Context, id int64) error {
	return s.api.SetBookingStatus(ctx, s.session.bearer(), id, model.BookingCancelled)
}

// Delete removes a reservation; the backend frees the car.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteBooking(ctx, s.session.bearer(), id)
}

// requireUser returns the hydrated session record, hydrating once if the
// token is set but the record has not arrived yet.
func (s *BookingService) requireUser(ctx context.Context) (*domainauth.User, error) {
	snap := s.session.Snapshot()
	if snap.Token == "" {
		return nil, apperrors.Unauthorized("sign in to manage bookings")
	}
	if snap.User == nil {
		if err := s.session.Hydrate(ctx); err != nil {
			return nil, err
		}
		snap = s.session.Snapshot()
		if snap.User == nil {
			return nil, apperrors.Unauthorized("account record unavailable")
		}
	}
	return snap.User, nil
}
