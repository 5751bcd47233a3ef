package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
	"github.com/rentaride/rentaride/internal/domain/model"
	apperrors "github.com/rentaride/rentaride/internal/errors"
	"github.com/rentaride/rentaride/internal/ports"
)

// Overview is the admin dashboard's working set: every collection the page
// renders, fetched in one shot.
type Overview struct {
	Bookings []model.Booking
	Cars     []model.Car
	Reviews  []model.Review
	Users    []model.User
}

// DashboardService assembles the admin dashboard by fetching all four
// collections concurrently.
type DashboardService struct {
	api     ports.RentalAPI
	session *Manager
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(api ports.RentalAPI, session *Manager) *DashboardService {
	return &DashboardService{api: api, session: session}
}

// Overview fetches bookings, cars, reviews, and users in parallel. Any
// failure cancels the remaining fetches and is returned as-is, so an
// expired-token verdict keeps its taxonomy.
func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	token := s.session.bearer()
	if token == "" {
		return nil, apperrors.Unauthorized("sign in as an administrator")
	}
	// Role gate: admin is keyed off the hydrated record, never off token
	// presence, so the dashboard cannot flash before hydration confirms it.
	if !s.session.Role().Allows(domainauth.RoleAdmin) {
		return nil, apperrors.Forbidden("administrator role required")
	}

	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bookings, err := s.api.ListBookings(gctx, token)
		if err != nil {
			return err
		}
		out.Bookings = bookings
		return nil
	})
	g.Go(func() error {
		cars, err := s.api.ListCars(gctx)
		if err != nil {
			return err
		}
		out.Cars = cars
		return nil
	})
	g.Go(func() error {
		reviews, err := s.api.ListReviews(gctx)
		if err != nil {
			return err
		}
		out.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		users, err := s.api.ListUsers(gctx, token)
		if err != nil {
			return err
		}
		out.Users = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
