package service

import (
	"context"

	"github.com/rentaride/rentaride/internal/domain/model"
	apperrors "github.com/rentaride/rentaride/internal/errors"
	"github.com/rentaride/rentaride/internal/ports"
)

// ReviewService mirrors the review affordances on the car detail page plus
// the admin moderation view.
type ReviewService struct {
	api     ports.RentalAPI
	session *Manager
}

// NewReviewService constructs a ReviewService.
func NewReviewService(api ports.RentalAPI, session *Manager) *ReviewService {
	return &ReviewService{api: api, session: session}
}

// Add leaves a review as the signed-in user. The backend resolves the author
// from the token.
func (s *ReviewService) Add(ctx context.Context, carID int64, rating int, comment string) (int64, error) {
	token := s.session.bearer()
	if token == "" {
		return 0, apperrors.Unauthorized("sign in to leave a review")
	}

	in := model.ReviewInput{CarID: carID, Rating: rating, Comment: comment}
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return s.api.CreateReview(ctx, token, in)
}

// All lists every review (admin moderation).
func (s *ReviewService) All(ctx context.Context) ([]model.Review, error) {
	return s.api.ListReviews(ctx)
}

// ForCar lists one car's reviews with usernames resolved.
func (s *ReviewService) ForCar(ctx context.Context, carID int64) ([]model.CarReview, error) {
	return s.api.ListCarReviews(ctx, carID)
}

// Delete removes a review. The backend enforces that only admins may.
func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	token := s.session.bearer()
	if token == "" {
		return apperrors.Unauthorized("sign in to moderate reviews")
	}
	return s.api.DeleteReview(ctx, token, id)
}
