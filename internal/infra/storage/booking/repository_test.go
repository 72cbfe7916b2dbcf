package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		BookingRef:      "7XK3MNPQ",
		CustomerID:      "customer-1",
		ProviderID:      "provider-1",
		PriceCardID:     "card-1",
		AddressID:       "address-1",
		ScheduledAt:     time.Date(2025, 10, 7, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		AddOns:          []domain.AddOn{{Name: "deep clean", Price: 2500}},
		Subtotal:        8500,
		Tax:             0,
		Total:           8500,
		Currency:        "CAD",
		Status:          domain.BookingStatusPending,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), sampleBooking())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID, "id must be assigned before insert")
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRefConflict(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: refConstraint})

	_, err := repo.Create(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrRefConflict)
}

func TestCreateSlotTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: slotConstraint})

	_, err := repo.Create(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateUnknownConstraint(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "bookings_pkey"})

	_, err := repo.Create(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func bookingRow(id string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(bookingColumns).AddRow(
		id,
		"7XK3MNPQ",
		"customer-1",
		"provider-1",
		"card-1",
		"address-1",
		time.Date(2025, 10, 7, 10, 0, 0, 0, time.UTC),
		60,
		[]byte(`[{"name":"deep clean","price":2500}]`),
		8500,
		0,
		8500,
		"CAD",
		"pending",
		nil,
		now,
		now,
	)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("booking-1").
		WillReturnRows(bookingRow("booking-1"))

	booking, err := repo.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, "booking-1", booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	require.Len(t, booking.AddOns, 1)
	assert.Equal(t, int64(2500), booking.AddOns[0].Price)
	assert.Nil(t, booking.Notes)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	repo, mock := newMock(t)

	providerID := "provider-1"
	date := time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnRows(bookingRow("booking-1"))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		ProviderID:    &providerID,
		Date:          &date,
		OnlyOccupying: true,
	})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "booking-1", bookings[0].ID)
}

func TestListEmpty(t *testing.T) {
	repo, mock := newMock(t)

	customerID := "customer-1"

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{CustomerID: &customerID})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "booking-1", domain.BookingStatusPending, domain.BookingStatusAccepted)
	assert.NoError(t, err)
}

func TestUpdateStatusGuard(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "booking-1", domain.BookingStatusPending, domain.BookingStatusAccepted)
	assert.ErrorIs(t, err, ErrStatusGuard)
}
