package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cruisedesk/internal/models"

	"github.com/google/uuid"
)

// Validation failures, rejected before any store call.
var (
	ErrInvalidSeats    = errors.New("booking: seat count must be at least 1")
	ErrMissingCustomer = errors.New("booking: customer name is required")
	ErrMissingContact  = errors.New("booking: contact is required")
)

type DBLayer interface {
	GetCruiseByID(ctx context.Context, id int64) (*models.Cruise, error)
	BookSeats(ctx context.Context, booking *models.Booking) error
	CancelBooking(ctx context.Context, id int64) error
	GetBookingByID(ctx context.Context, id int64) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error)
}

// Service keeps cruise seat counts consistent with the set of active
// bookings. All mutations of available_seats go through it.
type Service struct {
	DB  DBLayer
	now func() time.Time
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db, now: time.Now}
}

// NewServiceWithClock allows tests to pin booking timestamps.
func NewServiceWithClock(db DBLayer, now func() time.Time) *Service {
	return &Service{DB: db, now: now}
}

// Book validates the request, snapshots the cruise price and reserves the
// seats atomically. On rejection nothing is written: no booking row, no
// seat change.
func (s *Service) Book(ctx context.Context, req models.BookRequest) (*models.Booking, error) {
	if req.Seats < 1 {
		return nil, ErrInvalidSeats
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, ErrMissingCustomer
	}
	if strings.TrimSpace(req.Contact) == "" {
		return nil, ErrMissingContact
	}

	cruise, err := s.DB.GetCruiseByID(ctx, req.CruiseID)
	if err != nil {
		return nil, fmt.Errorf("cruise %d: %w", req.CruiseID, err)
	}

	booking := &models.Booking{
		UserID:         req.UserID,
		CruiseID:       cruise.ID,
		Reference:      uuid.New().String(),
		CustomerName:   strings.TrimSpace(req.CustomerName),
		Seats:          req.Seats,
		Contact:        strings.TrimSpace(req.Contact),
		PriceAtBooking: cruise.PricePerPerson,
		BookedAt:       s.now(),
	}

	if err := s.DB.BookSeats(ctx, booking); err != nil {
		return nil, fmt.Errorf("book %d seats on cruise %d: %w", req.Seats, cruise.ID, err)
	}
	return booking, nil
}

// Cancel returns the booked seats to the cruise and removes the booking.
// If the cruise was deleted in the interim only the row is removed.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	if err := s.DB.CancelBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking %d: %w", bookingID, err)
	}
	return nil
}

// ListForUser returns the user's bookings joined with cruise data, newest
// first.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	return s.DB.ListBookingsByUser(ctx, userID)
}
