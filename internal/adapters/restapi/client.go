package restapi

// Package restapi implements the ports.Backend and ports.RentalAPI
// interfaces against the car-rental REST backend. The backend is external
// and authoritative; this client only shapes requests, decodes responses,
// and maps transport failures onto the application error taxonomy.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/rentaride/rentaride/internal/domain/auth"
	"github.com/rentaride/rentaride/internal/domain/model"
	apperrors "github.com/rentaride/rentaride/internal/errors"
	"github.com/rentaride/rentaride/internal/ports"
)

const defaultTimeout = 15 * time.Second

// Ensure compile-time conformance to ports.
var (
	_ ports.Backend   = (*Client)(nil)
	_ ports.RentalAPI = (*Client)(nil)
)

// Client is a typed HTTP client for the rental backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// Options groups dependencies for Client.
type Options struct {
	// BaseURL is the backend root, e.g. http://127.0.0.1:5000.
	BaseURL string
	// HTTPClient overrides the default client (optional).
	HTTPClient *http.Client
	// Logger receives request/response debug logs (optional).
	Logger *slog.Logger
}

// New constructs a Client.
func New(opts Options) *Client {
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpc:   httpc,
		logger:  logger,
	}
}

// envelope collects the message keys the backend uses across endpoints.
type envelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Msg     string `json:"msg"`
	Success string `json:"success"`
}

// message returns the first populated message field.
func (e envelope) message() string {
	for _, m := range []string{e.Error, e.Message, e.Msg, e.Success} {
		if m != "" {
			return m
		}
	}
	return ""
}

// do performs a request and returns the raw response body. A non-2xx status
// is mapped onto the error taxonomy with the backend's own message kept
// verbatim so the UI can surface it unchanged.
func (c *Client) do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.logger.DebugContext(ctx, "backend request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		// The call never reached the backend; session state must not change.
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "backend unreachable (%s %s)", method, path)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "read response body")
	}

	c.logger.DebugContext(ctx, "backend response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	var env envelope
	_ = json.Unmarshal(respBody, &env)
	msg := env.message()
	if msg == "" {
		msg = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusConflict:
		return nil, apperrors.Conflict(msg)
	case http.StatusUnauthorized, http.StatusUnprocessableEntity:
		// flask-jwt reports malformed/expired tokens as 422 or 401 with a
		// "msg" payload; both mean the credential is no good.
		return nil, apperrors.Unauthorized(msg)
	case http.StatusForbidden:
		return nil, apperrors.Forbidden(msg)
	case http.StatusNotFound:
		return nil, apperrors.NotFound(msg)
	default:
		return nil, apperrors.Internal(msg)
	}
}

// decode unmarshals the payload, mapping malformed output onto the taxonomy.
func decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode backend response")
	}
	return nil
}

// --- ports.Backend ---

type loginRequest struct {
	Email string `json:"email"`
	// The backend reads the raw password from this key; the hash naming is
	// its wire shape, not an instruction to pre-hash.
	Password string `json:"password_hash"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	var out loginResponse
	if err := decode(body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", apperrors.Internal("login response missing access token")
	}
	return out.AccessToken, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, in model.RegisterInput) error {
	_, err := c.do(ctx, http.MethodPost, "/users", "", in)
	return err
}

// CurrentUser fetches the account record the token belongs to.
func (c *Client) CurrentUser(ctx context.Context, token string) (domainauth.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/current_user", token, nil)
	if err != nil {
		return domainauth.User{}, err
	}
	user, err := domainauth.DecodeUser(body)
	if err != nil {
		return domainauth.User{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode current user")
	}
	return user, nil
}

// Logout invalidates the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodDelete, "/logout", token, nil)
	return err
}

// DeleteUser removes the account with the given id.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), token, nil)
	return err
}

// UpdateUser replaces the account's email and password.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, in model.ProfileUpdate) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), token, in)
	return err
}

// --- ports.RentalAPI ---

// createdResponse captures the id key used by the create endpoints.
type createdResponse struct {
	CarID     int64 `json:"car_id"`
	BookingID int64 `json:"booking_id"`
	ReviewID  int64 `json:"review_id"`
	UserID    int64 `json:"user_id"`
}

// ListCars fetches the whole fleet. Public endpoint.
func (c *Client) ListCars(ctx context.Context) ([]model.Car, error) {
	body, err := c.do(ctx, http.MethodGet, "/cars", "", nil)
	if err != nil {
		return nil, err
	}
	var cars []model.Car
	if err := decode(body, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// GetCar fetches one vehicle. Public endpoint.
func (c *Client) GetCar(ctx context.Context, id int64) (model.Car, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cars/%d", id), "", nil)
	if err != nil {
		return model.Car{}, err
	}
	var car model.Car
	if err := decode(body, &car); err != nil {
		return model.Car{}, err
	}
	return car, nil
}

// CreateCar adds a vehicle to the fleet.
func (c *Client) CreateCar(ctx context.Context, token string, in model.CarInput) (int64, error) {
	body, err := c.do(ctx, http.MethodPost, "/cars", token, in)
	if err != nil {
		return 0, err
	}
	var out createdResponse
	if err := decode(body, &out); err != nil {
		return 0, err
	}
	return out.CarID, nil
}

// UpdateCar replaces a vehicle's fields.
func (c *Client) UpdateCar(ctx context.Context, token string, id int64, in model.CarInput) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/cars/%d", id), token, in)
	return err
}

// DeleteCar removes a vehicle from the fleet.
func (c *Client) DeleteCar(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/cars/%d", id), token, nil)
	return err
}

// ListBookings fetches every reservation.
func (c *Client) ListBookings(ctx context.Context, token string) ([]model.Booking, error) {
	return c.listBookings(ctx, token, "/bookings")
}

// ListBookingsByUser fetches one user's reservations. The backend reports an
// empty history as 404; that is normalized to an empty slice here.
func (c *Client) ListBookingsByUser(ctx context.Context, token string, userID int64) ([]model.Booking, error) {
	bookings, err := c.listBookings(ctx, token, fmt.Sprintf("/bookings/user/%d", userID))
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	return bookings, err
}

// ListBookingsByCar fetches one car's reservations, normalizing 404 like
// ListBookingsByUser.
func (c *Client) ListBookingsByCar(ctx context.Context, token string, carID int64) ([]model.Booking, error) {
	bookings, err := c.listBookings(ctx, token, fmt.Sprintf("/bookings/car/%d", carID))
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	return bookings, err
}

func (c *Client) listBookings(ctx context.Context, token, path string) ([]model.Booking, error) {
	body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	if err := decode(body, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking reserves a car for a date range.
func (c *Client) CreateBooking(ctx context.Context, token string, in model.BookingInput) (int64, error) {
	body, err := c.do(ctx, http.MethodPost, "/bookings", token, in)
	if err != nil {
		return 0, err
	}
	var out createdResponse
	if err := decode(body, &out); err != nil {
		return 0, err
	}
	return out.BookingID, nil
}

// SetBookingStatus transitions a reservation's status.
func (c *Client) SetBookingStatus(ctx context.Context, token string, id int64, status model.BookingStatus) error {
	patch := struct {
		Status model.BookingStatus `json:"status"`
	}{Status: status}
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/bookings/%d", id), token, patch)
	return err
}

// DeleteBooking removes a reservation; the backend frees the car.
func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), token, nil)
	return err
}

// ListReviews fetches every review. Public endpoint.
func (c *Client) ListReviews(ctx context.Context) ([]model.Review, error) {
	body, err := c.do(ctx, http.MethodGet, "/reviews", "", nil)
	if err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := decode(body, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListCarReviews fetches one car's reviews. Public endpoint.
func (c *Client) ListCarReviews(ctx context.Context, carID int64) ([]model.CarReview, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/car/%d", carID), "", nil)
	if err != nil {
		return nil, err
	}
	var reviews []model.CarReview
	if err := decode(body, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview leaves a review as the token holder.
func (c *Client) CreateReview(ctx context.Context, token string, in model.ReviewInput) (int64, error) {
	body, err := c.do(ctx, http.MethodPost, "/reviews", token, in)
	if err != nil {
		return 0, err
	}
	var out createdResponse
	if err := decode(body, &out); err != nil {
		return 0, err
	}
	return out.ReviewID, nil
}

// DeleteReview removes a review. Admin only, enforced server-side.
func (c *Client) DeleteReview(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), token, nil)
	return err
}

// ListUsers fetches the user directory.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/users", token, nil)
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := decode(body, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one directory entry.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (model.User, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), token, nil)
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := decode(body, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}
