package store

import (
	"context"
	"database/sql"
	"errors"

	"cruisedesk/internal/models"

	"github.com/uptrace/bun"
)

// ---------------- BOOKINGS ----------------

func (d *DB) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("booking.id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookingsByUser returns the user's bookings joined with their cruise,
// newest first.
func (d *DB) ListBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Relation("Cruise").
		Where("booking.user_id = ?", userID).
		Order("booking.booked_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBookingsForExport returns every booking joined with its user and
// cruise, newest first.
func (d *DB) ListBookingsForExport(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Relation("User").
		Relation("Cruise").
		Order("booking.booked_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookSeats reserves booking.Seats on the cruise and inserts the booking
// row in one transaction. The decrement is conditional on enough seats
// remaining, so a rejected booking leaves no state change at all.
func (d *DB) BookSeats(ctx context.Context, booking *models.Booking) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Cruise)(nil)).
			Where("id = ?", booking.CruiseID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		res, err := tx.NewUpdate().
			Model((*models.Cruise)(nil)).
			Set("available_seats = available_seats - ?", booking.Seats).
			Where("id = ?", booking.CruiseID).
			Where("available_seats >= ?", booking.Seats).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientSeats
		}

		res, err = tx.NewInsert().Model(booking).Exec(ctx)
		if err != nil {
			return err
		}
		if id, err := res.LastInsertId(); err == nil {
			booking.ID = id
		}
		return nil
	})
}

// CancelBooking returns the booked seats to the cruise and deletes the
// booking row in one transaction. If the cruise was deleted in the
// interim the seat return is skipped and only the row is removed.
func (d *DB) CancelBooking(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var booking models.Booking
		err := tx.NewSelect().
			Model(&booking).
			Where("booking.id = ?", id).
			Limit(1).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		// Affects zero rows when the cruise no longer exists; that is fine.
		if _, err := tx.NewUpdate().
			Model((*models.Cruise)(nil)).
			Set("available_seats = available_seats + ?", booking.Seats).
			Where("id = ?", booking.CruiseID).
			Exec(ctx); err != nil {
			return err
		}

		_, err = tx.NewDelete().
			Model((*models.Booking)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}
