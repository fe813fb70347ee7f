package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cruisedesk/internal/models"

	"github.com/uptrace/bun"
)

// ---------------- CRUISES ----------------

// ListCruises returns all cruises ordered by departure date ascending.
func (d *DB) ListCruises(ctx context.Context) ([]models.Cruise, error) {
	var cruises []models.Cruise
	err := d.Bun.NewSelect().
		Model(&cruises).
		Order("departure ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return cruises, nil
}

// SearchCruises filters by case-insensitive destination substring and an
// inclusive price range. MaxPrice = 0 leaves the upper bound open.
func (d *DB) SearchCruises(ctx context.Context, filter models.CruiseFilter) ([]models.Cruise, error) {
	q := d.Bun.NewSelect().
		Model((*models.Cruise)(nil)).
		Order("departure ASC")

	if dest := strings.TrimSpace(filter.Destination); dest != "" {
		q = q.Where("lower(destination) LIKE ?", "%"+strings.ToLower(dest)+"%")
	}
	if filter.MinPrice > 0 {
		q = q.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price <= ?", filter.MaxPrice)
	}

	var cruises []models.Cruise
	if err := q.Scan(ctx, &cruises); err != nil {
		return nil, err
	}
	return cruises, nil
}

func (d *DB) GetCruiseByID(ctx context.Context, id int64) (*models.Cruise, error) {
	var cruise models.Cruise
	err := d.Bun.NewSelect().
		Model(&cruise).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cruise, nil
}

// InsertCruise inserts a new cruise and fills in the assigned ID.
func (d *DB) InsertCruise(ctx context.Context, cruise *models.Cruise) error {
	res, err := d.Bun.NewInsert().Model(cruise).Exec(ctx)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		cruise.ID = id
	}
	return nil
}

// UpdateCruise overwrites every editable field, seat count included. Only
// administrators reach this path; seat edits reset the cruise capacity.
func (d *DB) UpdateCruise(ctx context.Context, cruise *models.Cruise) error {
	_, err := d.Bun.NewUpdate().
		Model(cruise).
		Column("destination", "departure", "duration_days", "price", "available_seats").
		Where("id = ?", cruise.ID).
		Exec(ctx)
	return err
}

// DeleteCruise removes the cruise and cascades to its bookings. No seat
// reconciliation: the cruise row the seats belong to is gone.
func (d *DB) DeleteCruise(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Booking)(nil)).
			Where("cruise_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.Cruise)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}
