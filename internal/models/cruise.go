package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Cruise struct {
	bun.BaseModel `bun:"table:cruises"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Destination    string    `bun:"destination,notnull"`
	Departure      time.Time `bun:"departure,notnull"`
	DurationDays   int       `bun:"duration_days,notnull"`
	PricePerPerson float64   `bun:"price,notnull"`
	AvailableSeats int       `bun:"available_seats,notnull"`
}

// SoldOut reports whether no seats remain on the cruise.
func (c *Cruise) SoldOut() bool {
	return c.AvailableSeats <= 0
}

// CruiseFilter narrows cruise listings by destination substring and an
// inclusive price range. Zero values leave the corresponding bound open.
type CruiseFilter struct {
	Destination string  `json:"destination"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
}
