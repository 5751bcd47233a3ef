package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
	"github.com/rentaride/rentaride/internal/domain/model"
	apperrors "github.com/rentaride/rentaride/internal/errors"
	mocks "github.com/rentaride/rentaride/internal/mocks/rental"
)

// loggedInManager returns a hydrated session for the fake backend's default
// identity.
func loggedInManager(t *testing.T, backend *mocks.FakeBackend) *Manager {
	t.Helper()
	mgr, _ := newTestManager(backend)
	require.NoError(t, mgr.Login(context.Background(), "a@x.com", "passw0rd"))
	return mgr
}

func guestManager() *Manager {
	mgr, _ := newTestManager(mocks.NewFakeBackend())
	return mgr
}

func TestCarService_Create_DefaultsStatusAvailable(t *testing.T) {
	api := &mocks.FakeRentalAPI{}
	var gotToken string
	var gotInput model.CarInput
	api.CreateCarFunc = func(_ context.Context, token string, in model.CarInput) (int64, error) {
		gotToken = token
		gotInput = in
		return 7, nil
	}
	svc := NewCarService(api, loggedInManager(t, mocks.NewFakeBackend()))

	id, err := svc.Create(context.Background(), model.CarInput{
		Brand: "Kia", Model: "Rio", Image1: "i1", Image2: "i2", PricePerDay: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "tok-1", gotToken)
	assert.Equal(t, model.CarAvailable, gotInput.Status)
}

func TestCarService_Create_InvalidInput_NoNetworkCall(t *testing.T) {
	called := false
	api := &mocks.FakeRentalAPI{}
	api.CreateCarFunc = func(_ context.Context, _ string, _ model.CarInput) (int64, error) {
		called = true
		return 0, nil
	}
	svc := NewCarService(api, loggedInManager(t, mocks.NewFakeBackend()))

	_, err := svc.Create(context.Background(), model.CarInput{Brand: "Kia"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, called)
}

func TestCarService_List_PublicForGuests(t *testing.T) {
	api := &mocks.FakeRentalAPI{}
	api.ListCarsFunc = func(_ context.Context) ([]model.Car, error) {
		return []model.Car{{ID: 1, Brand: "Kia"}}, nil
	}
	svc := NewCarService(api, guestManager())

	cars, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Kia", cars[0].Brand)
}

func TestBookingService_Book_UsesSessionUserID(t *testing.T) {
	api := &mocks.FakeRentalAPI{}
	var gotInput model.BookingInput
	api.CreateBookingFunc = func(_ context.Context, _ string, in model.BookingInput) (int64, error) {
		gotInput = in
		return 11, nil
	}
	svc := NewBookingService(api, loggedInManager(t, mocks.NewFakeBackend()))

	id, err := svc.Book(context.Background(), 4, "2026-09-01", "2026-09-05")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	// The user id comes from the hydrated session record.
	assert.Equal(t, int64(1), gotInput.UserID)
	assert.Equal(t, int64(4), gotInput.CarID)
	assert.Equal(t, model.BookingPending, gotInput.Status)
}

func TestBookingService_Book_GuestRejected(t *testing.T) {
	svc := NewBookingService(&mocks.FakeRentalAPI{}, guestManager())

	_, err := svc.Book(context.Background(), 4, "2026-09-01", "2026-09-05")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBookingService_Book_BadDates(t *testing.T) {
	svc := NewBookingService(&mocks.FakeRentalAPI{}, loggedInManager(t, mocks.NewFakeBackend()))

	_, err := svc.Book(context.Background(), 4, "2026-09-05", "2026-09-01")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "end_date", apperrors.GetField(err))
}

func TestBookingService_Book_HydratesLazyRecord(t *testing.T) {
	backend := mocks.NewFakeBackend()
	mgr, _ := newTestManager(backend)

	// Simulate a resumed session whose first hydration failed on connectivity.
	failOnce := true
	backend.CurrentUserFunc = func(_ context.Context, _ string) (domainauth.User, error) {
		if failOnce {
			failOnce = false
			return domainauth.User{}, apperrors.Unavailable("backend unreachable")
		}
		return backend.User, nil
	}
	_ = mgr.Login(context.Background(), "a@x.com", "passw0rd")
	require.Nil(t, mgr.Snapshot().User)

	api := &mocks.FakeRentalAPI{}
	api.CreateBookingFunc = func(_ context.Context, _ string, in model.BookingInput) (int64, error) {
		return 3, nil
	}
	svc := NewBookingService(api, mgr)

	id, err := svc.Book(context.Background(), 4, "2026-09-01", "2026-09-05")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NotNil(t, mgr.Snapshot().User)
}

func TestBookingService_Mine_ScopedToSessionUser(t *testing.T) {
	api := &mocks.FakeRentalAPI{}
	var gotUserID int64
	api.ListBookingsByUserFunc = func(_ context.Context, _ string, userID int64) ([]model.Booking, error) {
		gotUserID = userID
		return []model.Booking{{ID: 1}}, nil
	}
	svc := NewBookingService(api, loggedInManager(t, mocks.NewFakeBackend()))

	bookings, err := svc.Mine(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, int64(1), gotUserID)
}

func TestBookingService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	called := false
	api := &mocks.FakeRentalAPI{}
	api.SetBookingStatusFunc = func(_ context.Context, _ string, _ int64, _ model.BookingStatus) error {
		called = true
		return nil
	}
	svc := NewBookingService(api, loggedInManager(t, mocks.NewFakeBackend()))

	err := svc.SetStatus(context.Background(), 1, "done")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, called)
}

func TestBookingService_Cancel(t *testing.T) {
	api := &mocks.FakeRentalAPI{}
	var gotStatus model.BookingStatus
	api.SetBookingStatusFunc = func(_ context.Context, _ string, _ int64, status model.BookingStatus) error {
		gotStatus = status
		return nil
	}
	svc := NewBookingService(api, loggedInManager(t, mocks.NewFakeBackend()))

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Equal(t, model.BookingCancelled, gotStatus)
}

func TestReviewService_Add(t *testing.T) {
	api := &mocks.FakeRentalAPI{}
	var gotInput model.ReviewInput
	api.CreateReviewFunc = func(_ context.Context, _ string, in model.ReviewInput) (int64, error) {
		gotInput = in
		return 5, nil
	}
	svc := NewReviewService(api, loggedInManager(t, mocks.NewFakeBackend()))

	id, err := svc.Add(context.Background(), 4, 5, "smooth ride")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, int64(4), gotInput.CarID)
	assert.Equal(t, 5, gotInput.Rating)
}

func TestReviewService_Add_GuestRejected(t *testing.T) {
	svc := NewReviewService(&mocks.FakeRentalAPI{}, guestManager())

	_, err := svc.Add(context.Background(), 4, 5, "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestReviewService_Add_BadRating(t *testing.T) {
	svc := NewReviewService(&mocks.FakeRentalAPI{}, loggedInManager(t, mocks.NewFakeBackend()))

	_, err := svc.Add(context.Background(), 4, 6, "")
	require.Error(t, err)
	assert.Equal(t, "rating", apperrors.GetField(err))
}

func TestReviewService_Delete_GuestRejected(t *testing.T) {
	svc := NewReviewService(&mocks.FakeRentalAPI{}, guestManager())

	err := svc.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUserService_Update_Validates(t *testing.T) {
	backend := mocks.NewFakeBackend()
	svc := NewUserService(&mocks.FakeRentalAPI{}, backend, loggedInManager(t, backend))

	err := svc.Update(context.Background(), 5, model.ProfileUpdate{Email: "bad", Password: "passw0rd"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, backend.Calls("UpdateUser"))
}

func TestUserService_Delete(t *testing.T) {
	backend := mocks.NewFakeBackend()
	var gotID int64
	backend.DeleteUserFunc = func(_ context.Context, token string, id int64) error {
		gotID = id
		return nil
	}
	mgr := loggedInManager(t, backend)
	svc := NewUserService(&mocks.FakeRentalAPI{}, backend, mgr)

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, int64(9), gotID)
	// Deleting another account never touches the session.
	assert.NotNil(t, mgr.Snapshot().User)
}

func TestDashboardService_Overview_GuestRejected(t *testing.T) {
	svc := NewDashboardService(&mocks.FakeRentalAPI{}, guestManager())

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestDashboardService_Overview_NonAdminForbidden(t *testing.T) {
	svc := NewDashboardService(&mocks.FakeRentalAPI{}, loggedInManager(t, mocks.NewFakeBackend()))

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestDashboardService_Overview_FetchesAllCollections(t *testing.T) {
	backend := mocks.NewFakeBackend()
	backend.User.IsAdmin = true

	api := &mocks.FakeRentalAPI{}
	api.ListBookingsFunc = func(_ context.Context, _ string) ([]model.Booking, error) {
		return []model.Booking{{ID: 1}}, nil
	}
	api.ListCarsFunc = func(_ context.Context) ([]model.Car, error) {
		return []model.Car{{ID: 1}, {ID: 2}}, nil
	}
	api.ListReviewsFunc = func(_ context.Context) ([]model.Review, error) {
		return []model.Review{{ID: 1}}, nil
	}
	api.ListUsersFunc = func(_ context.Context, _ string) ([]model.User, error) {
		return []model.User{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	}
	svc := NewDashboardService(api, loggedInManager(t, backend))

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Len(t, overview.Bookings, 1)
	assert.Len(t, overview.Cars, 2)
	assert.Len(t, overview.Reviews, 1)
	assert.Len(t, overview.Users, 3)
}

func TestDashboardService_Overview_PartialFailureSurfaces(t *testing.T) {
	backend := mocks.NewFakeBackend()
	backend.User.IsAdmin = true

	api := &mocks.FakeRentalAPI{}
	api.ListUsersFunc = func(_ context.Context, _ string) ([]model.User, error) {
		return nil, apperrors.Unauthorized("Token has expired")
	}
	svc := NewDashboardService(api, loggedInManager(t, backend))

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}
