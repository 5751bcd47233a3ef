package model

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/rentaride/rentaride/internal/errors"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// BookingStatus is a booking lifecycle status owned by the backend.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a status string from user input.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(strings.ToLower(strings.TrimSpace(s))) {
	case BookingPending:
		return BookingPending, nil
	case BookingConfirmed:
		return BookingConfirmed, nil
	case BookingCancelled:
		return BookingCancelled, nil
	default:
		return "", apperrors.Validationf("invalid booking status %q (valid: pending, confirmed, cancelled)", s)
	}
}

// Booking is a reservation as returned by the backend. The per-user and
// per-car listings omit the redundant foreign key, so UserID or CarID may be
// zero depending on which endpoint produced the record.
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id,omitempty"`
	CarID     int64         `json:"car_id,omitempty"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Status    BookingStatus `json:"status"`
	// CreatedAt is kept opaque; the backend emits naive ISO timestamps.
	CreatedAt string `json:"created_at,omitempty"`
}

// BookingInput carries the fields for creating a reservation.
type BookingInput struct {
	UserID    int64         `json:"user_id"`
	CarID     int64         `json:"car_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Status    BookingStatus `json:"status,omitempty"`
}

// Validate checks identifiers and date ordering before any network call.
// Availability and overlap rules stay server-side.
func (in BookingInput) Validate() error {
	if in.UserID <= 0 {
		return apperrors.ValidationField("user_id", "user is required")
	}
	if in.CarID <= 0 {
		return apperrors.ValidationField("car_id", "car is required")
	}
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", in.EndDate)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return apperrors.ValidationField("end_date", "end date must be after start date")
	}
	return nil
}

func parseDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, apperrors.ValidationField(field, fmt.Sprintf("%s is required", field))
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.ValidationField(field, fmt.Sprintf("invalid date %q, use YYYY-MM-DD", value))
	}
	return t, nil
}
