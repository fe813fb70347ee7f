package booking_test

import (
	"context"
	"testing"
	"time"

	"cruisedesk/internal/booking"
	"cruisedesk/internal/models"
	"cruisedesk/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock implementations
type MockDBLayer struct {
	mock.Mock
}

func (m *MockDBLayer) GetCruiseByID(ctx context.Context, id int64) (*models.Cruise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cruise), args.Error(1)
}

func (m *MockDBLayer) BookSeats(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockDBLayer) CancelBooking(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDBLayer) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockDBLayer) ListBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func validRequest() models.BookRequest {
	return models.BookRequest{
		CruiseID:     1,
		UserID:       7,
		Seats:        2,
		CustomerName: "Ivan Petrov",
		Contact:      "ivan@example.com",
	}
}

func TestBookValidationRejectsBeforeStore(t *testing.T) {
	mockDB := new(MockDBLayer)
	svc := booking.NewService(mockDB)
	ctx := context.Background()

	req := validRequest()
	req.Seats = 0
	_, err := svc.Book(ctx, req)
	assert.ErrorIs(t, err, booking.ErrInvalidSeats)

	req = validRequest()
	req.CustomerName = "   "
	_, err = svc.Book(ctx, req)
	assert.ErrorIs(t, err, booking.ErrMissingCustomer)

	req = validRequest()
	req.Contact = ""
	_, err = svc.Book(ctx, req)
	assert.ErrorIs(t, err, booking.ErrMissingContact)

	// No store call was made for any rejected request
	mockDB.AssertNotCalled(t, "GetCruiseByID", mock.Anything, mock.Anything)
	mockDB.AssertNotCalled(t, "BookSeats", mock.Anything, mock.Anything)
}

func TestBookUnknownCruise(t *testing.T) {
	mockDB := new(MockDBLayer)
	svc := booking.NewService(mockDB)

	mockDB.On("GetCruiseByID", mock.Anything, int64(1)).Return(nil, store.ErrNotFound)

	_, err := svc.Book(context.Background(), validRequest())
	assert.ErrorIs(t, err, store.ErrNotFound)
	mockDB.AssertNotCalled(t, "BookSeats", mock.Anything, mock.Anything)
}

func TestBookSnapshotsPriceAndTimestamp(t *testing.T) {
	mockDB := new(MockDBLayer)
	bookedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := booking.NewServiceWithClock(mockDB, func() time.Time { return bookedAt })

	cruise := &models.Cruise{
		ID:             1,
		Destination:    "Baltic Sea",
		PricePerPerson: 89000,
		AvailableSeats: 50,
	}
	mockDB.On("GetCruiseByID", mock.Anything, int64(1)).Return(cruise, nil)
	mockDB.On("BookSeats", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	got, err := svc.Book(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Equal(t, 89000.0, got.PriceAtBooking)
	assert.Equal(t, 178000.0, got.Total())
	assert.Equal(t, bookedAt, got.BookedAt)
	assert.NotEmpty(t, got.Reference)
	assert.Equal(t, int64(7), got.UserID)

	mockDB.AssertExpectations(t)
}

func TestBookInsufficientSeatsPassesThrough(t *testing.T) {
	mockDB := new(MockDBLayer)
	svc := booking.NewService(mockDB)

	cruise := &models.Cruise{ID: 1, PricePerPerson: 89000, AvailableSeats: 1}
	mockDB.On("GetCruiseByID", mock.Anything, int64(1)).Return(cruise, nil)
	mockDB.On("BookSeats", mock.Anything, mock.Anything).Return(store.ErrInsufficientSeats)

	_, err := svc.Book(context.Background(), validRequest())
	assert.ErrorIs(t, err, store.ErrInsufficientSeats)
}

func TestCancelUnknownBooking(t *testing.T) {
	mockDB := new(MockDBLayer)
	svc := booking.NewService(mockDB)

	mockDB.On("CancelBooking", mock.Anything, int64(42)).Return(store.ErrNotFound)

	err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// Full book/cancel cycle against a real in-memory store.
func TestBookAndCancelAgainstStore(t *testing.T) {
	db, err := store.Open(":memory:")
	assert.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	assert.NoError(t, db.Init(ctx))

	user, err := db.RegisterUser(ctx, "ivan", "digest", "Ivan Petrov")
	assert.NoError(t, err)

	cruise := &models.Cruise{
		Destination:    "Baltic Sea",
		Departure:      time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		DurationDays:   7,
		PricePerPerson: 89000,
		AvailableSeats: 50,
	}
	assert.NoError(t, db.InsertCruise(ctx, cruise))

	svc := booking.NewService(db)

	b, err := svc.Book(ctx, models.BookRequest{
		CruiseID:     cruise.ID,
		UserID:       user.ID,
		Seats:        2,
		CustomerName: "Ivan Petrov",
		Contact:      "+7 900 000-00-00",
	})
	assert.NoError(t, err)
	assert.Equal(t, 178000.0, b.Total())

	got, err := db.GetCruiseByID(ctx, cruise.ID)
	assert.NoError(t, err)
	assert.Equal(t, 48, got.AvailableSeats)

	// A later price edit must not change the booking total.
	got.PricePerPerson = 99000
	assert.NoError(t, db.UpdateCruise(ctx, got))

	mine, err := svc.ListForUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, 178000.0, mine[0].Total())

	assert.NoError(t, svc.Cancel(ctx, b.ID))

	got, err = db.GetCruiseByID(ctx, cruise.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50, got.AvailableSeats)
}
