package model

import (
	"strings"

	apperrors "github.com/rentaride/rentaride/internal/errors"
)

// Review is a vehicle review as returned by the flat listing endpoint.
type Review struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	CarID   int64  `json:"car_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	// Timestamp is kept opaque; the backend emits naive ISO timestamps.
	Timestamp string `json:"timestamp"`
}

// CarReview is the denormalized per-car review shape the backend returns,
// with usernames resolved server-side.
type CarReview struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CarModel  string `json:"car_model"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}

// ReviewInput carries the fields for leaving a review. The author is taken
// from the bearer token server-side, never from the body.
type ReviewInput struct {
	CarID   int64  `json:"car_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Validate checks the car reference and rating bounds before any network call.
func (in ReviewInput) Validate() error {
	if in.CarID <= 0 {
		return apperrors.ValidationField("car_id", "car is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return apperrors.ValidationField("rating", "rating must be between 1 and 5")
	}
	if len(strings.TrimSpace(in.Comment)) > 2000 {
		return apperrors.ValidationField("comment", "comment is too long")
	}
	return nil
}
