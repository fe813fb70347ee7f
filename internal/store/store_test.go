package store_test

import (
	"context"
	"testing"
	"time"

	"cruisedesk/internal/models"
	"cruisedesk/internal/store"
)

func setupTestDB(t *testing.T) *store.DB {
	t.Helper()

	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Init(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func testCruise(destination string, departure time.Time, price float64, seats int) *models.Cruise {
	return &models.Cruise{
		Destination:    destination,
		Departure:      departure,
		DurationDays:   7,
		PricePerPerson: price,
		AvailableSeats: seats,
	}
}

func mustInsertCruise(t *testing.T, db *store.DB, cruise *models.Cruise) *models.Cruise {
	t.Helper()
	if err := db.InsertCruise(context.Background(), cruise); err != nil {
		t.Fatalf("Failed to insert cruise: %v", err)
	}
	return cruise
}
