package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BookRequest struct {
	CruiseID     int64  `json:"cruise_id"`
	UserID       int64  `json:"user_id"`
	Seats        int    `json:"seats"`
	CustomerName string `json:"customer_name"`
	Contact      string `json:"contact"`
}

type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID             int64     `bun:"id,pk,autoincrement"`
	UserID         int64     `bun:"user_id,notnull"`
	CruiseID       int64     `bun:"cruise_id,notnull"`
	Reference      string    `bun:"reference"`
	CustomerName   string    `bun:"customer_name"`
	Seats          int       `bun:"seats,notnull"`
	Contact        string    `bun:"contact,notnull"`
	PriceAtBooking float64   `bun:"price_at_booking,notnull"`
	BookedAt       time.Time `bun:"booked_at,notnull"`

	// Relations
	User   *User   `bun:"rel:belongs-to,join:user_id=id"`
	Cruise *Cruise `bun:"rel:belongs-to,join:cruise_id=id"`
}

// Total is the amount owed for the booking, computed from the price
// snapshot taken when the booking was made. Later cruise price edits do
// not change it.
func (b *Booking) Total() float64 {
	return float64(b.Seats) * b.PriceAtBooking
}
