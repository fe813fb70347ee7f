package store

import (
	"context"
	"time"

	"cruisedesk/internal/models"
)

// AdminSeed is the bootstrap administrator account. The digest is supplied
// by the caller so the store never handles a plaintext password.
type AdminSeed struct {
	Username       string
	PasswordDigest string
	Fullname       string
}

// Init creates the schema if it does not exist yet.
func (d *DB) Init(ctx context.Context) error {
	for _, model := range []interface{}{
		(*models.User)(nil),
		(*models.Cruise)(nil),
		(*models.Booking)(nil),
	} {
		if _, err := d.Bun.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Bootstrap creates the admin account when no user with that username
// exists, and seeds the sample cruise catalog when the cruises table is
// empty and seeding is enabled.
func (d *DB) Bootstrap(ctx context.Context, admin AdminSeed, seedCruises bool) error {
	taken, err := d.Bun.NewSelect().
		Model((*models.User)(nil)).
		Where("username = ?", admin.Username).
		Exists(ctx)
	if err != nil {
		return err
	}
	if !taken {
		user := models.User{
			Username:       admin.Username,
			PasswordDigest: admin.PasswordDigest,
			Fullname:       admin.Fullname,
			IsAdmin:        true,
		}
		if _, err := d.Bun.NewInsert().Model(&user).Exec(ctx); err != nil {
			return err
		}
	}

	if !seedCruises {
		return nil
	}

	count, err := d.Bun.NewSelect().
		Model((*models.Cruise)(nil)).
		Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cruises := sampleCruises()
	_, err = d.Bun.NewInsert().Model(&cruises).Exec(ctx)
	return err
}

func sampleCruises() []models.Cruise {
	departure := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	return []models.Cruise{
		{
			Destination:    "Mediterranean (Italy, France, Spain)",
			Departure:      departure(2026, time.June, 15),
			DurationDays:   10,
			PricePerPerson: 145000,
			AvailableSeats: 150,
		},
		{
			Destination:    "Baltic Sea (St. Petersburg, Tallinn, Stockholm)",
			Departure:      departure(2026, time.July, 1),
			DurationDays:   7,
			PricePerPerson: 89000,
			AvailableSeats: 80,
		},
		{
			Destination:    "Norwegian Fjords",
			Departure:      departure(2026, time.August, 10),
			DurationDays:   8,
			PricePerPerson: 156000,
			AvailableSeats: 60,
		},
		{
			Destination:    "Caribbean",
			Departure:      departure(2026, time.December, 20),
			DurationDays:   12,
			PricePerPerson: 234000,
			AvailableSeats: 200,
		},
		{
			Destination:    "Alaska Glaciers",
			Departure:      departure(2026, time.September, 5),
			DurationDays:   9,
			PricePerPerson: 189000,
			AvailableSeats: 45,
		},
		{
			Destination:    "Japan (Tokyo, Osaka, Hokkaido)",
			Departure:      departure(2026, time.October, 10),
			DurationDays:   11,
			PricePerPerson: 278000,
			AvailableSeats: 120,
		},
	}
}
