package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"cruisedesk/internal/models"
)

const (
	dateLayout     = "02.01.2006"
	dateTimeLayout = "02.01.2006 15:04:05"
)

var header = []string{
	"ID", "Username", "Fullname", "Destination", "Departure",
	"Customer", "Seats", "Contact", "BookedAt", "Total",
}

type BookingSource interface {
	ListBookingsForExport(ctx context.Context) ([]models.Booking, error)
}

// BookingsCSV writes every booking joined with user and cruise data as
// semicolon-delimited text, newest booking first. Returns the number of
// data rows written.
func BookingsCSV(ctx context.Context, src BookingSource, w io.Writer) (int, error) {
	bookings, err := src.ListBookingsForExport(ctx)
	if err != nil {
		return 0, fmt.Errorf("load bookings: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return 0, err
	}

	for _, b := range bookings {
		var username, fullname, destination, departure string
		if b.User != nil {
			username = b.User.Username
			fullname = b.User.Fullname
		}
		if b.Cruise != nil {
			destination = b.Cruise.Destination
			departure = b.Cruise.Departure.Format(dateLayout)
		}

		record := []string{
			strconv.FormatInt(b.ID, 10),
			username,
			fullname,
			destination,
			departure,
			b.CustomerName,
			strconv.Itoa(b.Seats),
			b.Contact,
			b.BookedAt.Format(dateTimeLayout),
			strconv.FormatFloat(b.Total(), 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(bookings), nil
}

// BookingsCSVFile exports to a file path, creating or truncating it.
func BookingsCSVFile(ctx context.Context, src BookingSource, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := BookingsCSV(ctx, src, f)
	if err != nil {
		return n, err
	}
	return n, f.Sync()
}
