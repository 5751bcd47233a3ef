package service

import (
	"context"

	"github.com/rentaride/rentaride/internal/domain/model"
	"github.com/rentaride/rentaride/internal/ports"
)

// CarService mirrors the fleet pages: public browsing plus the admin
// add/update/delete affordances. Records are transient view-models; nothing
// is cached across calls.
type CarService struct {
	api     ports.RentalAPI
	session *Manager
}

// NewCarService constructs a CarService.
func NewCarService(api ports.RentalAPI, session *Manager) *CarService {
	return &CarService{api: api, session: session}
}

// List fetches the whole fleet.
func (s *CarService) List(ctx context.Context) ([]model.Car, error) {
	return s.api.ListCars(ctx)
}

// Get fetches one vehicle.
func (s *CarService) Get(ctx context.Context, id int64) (model.Car, error) {
	return s.api.GetCar(ctx, id)
}

// Create adds a vehicle to the fleet after client-side validation.
func (s *CarService) Create(ctx context.Context, in model.CarInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	if in.Status == "" {
		in.Status = model.CarAvailable
	}
	return s.api.CreateCar(ctx, s.session.bearer(), in)
}

// Update replaces a vehicle's fields after client-side validation.
func (s *CarService) Update(ctx context.Context, id int64, in model.CarInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Status == "" {
		in.Status = model.CarAvailable
	}
	return s.api.UpdateCar(ctx, s.session.bearer(), id, in)
}

// Delete removes a vehicle from the fleet.
func (s *CarService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteCar(ctx, s.session.bearer(), id)
}
