package model

// Package model contains view-model records for the rental backend's
// resources. They reflect the last successful fetch and carry no client-side
// invariants beyond input validation before a network call.

import (
	"strings"

	apperrors "github.com/rentaride/rentaride/internal/errors"
)

// CarStatus is the fleet status string owned by the backend.
type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarBooked    CarStatus = "booked"
)

// Car is a fleet vehicle as returned by the backend.
type Car struct {
	ID          int64     `json:"id"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Image1      string    `json:"image1"`
	Image2      string    `json:"image2"`
	PricePerDay float64   `json:"price_per_day"`
	Status      CarStatus `json:"status"`
}

// CarInput carries the fields for creating or updating a fleet vehicle.
type CarInput struct {
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Image1      string    `json:"image1"`
	Image2      string    `json:"image2"`
	PricePerDay float64   `json:"price_per_day"`
	Status      CarStatus `json:"status,omitempty"`
}

// Validate checks required fields before any network call, mirroring the
// backend's own checks so obvious mistakes fail fast.
func (in CarInput) Validate() error {
	if strings.TrimSpace(in.Brand) == "" {
		return apperrors.ValidationField("brand", "brand is required")
	}
	if strings.TrimSpace(in.Model) == "" {
		return apperrors.ValidationField("model", "model is required")
	}
	if strings.TrimSpace(in.Image1) == "" {
		return apperrors.ValidationField("image1", "first image URL is required")
	}
	if strings.TrimSpace(in.Image2) == "" {
		return apperrors.ValidationField("image2", "second image URL is required")
	}
	if in.PricePerDay <= 0 {
		return apperrors.ValidationField("price_per_day", "price per day must be greater than 0")
	}
	return nil
}
