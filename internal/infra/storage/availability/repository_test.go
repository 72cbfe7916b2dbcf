package availability

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestGetByProviderID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "provider_id", "weekly", "exceptions", "updated_at"}).
		AddRow(
			"availability-1",
			"provider-1",
			[]byte(`[{"day":2,"slots":[{"start":"09:00","end":"12:00"}]}]`),
			[]byte(`[{"date":"2025-10-21","slots":[]}]`),
			now,
		)

	mock.ExpectQuery("SELECT (.+) FROM availability").
		WithArgs("provider-1").
		WillReturnRows(rows)

	availability, err := repo.GetByProviderID(context.Background(), "provider-1")
	require.NoError(t, err)

	require.Len(t, availability.Weekly, 1)
	assert.Equal(t, 2, availability.Weekly[0].Day)
	assert.Equal(t, types.TimeString("09:00"), availability.Weekly[0].Slots[0].Start)
	require.Len(t, availability.Exceptions, 1)
	assert.Empty(t, availability.Exceptions[0].Slots)
}

func TestGetByProviderIDNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM availability").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "weekly", "exceptions", "updated_at"}))

	_, err := repo.GetByProviderID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestReplace(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO availability").
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow("availability-1", now))

	saved, err := repo.Replace(context.Background(), &domain.Availability{
		ProviderID: "provider-1",
		Weekly: []domain.WeeklyRule{
			{Day: 2, Slots: []domain.TimeRange{{Start: types.TimeString("09:00"), End: types.TimeString("12:00")}}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "availability-1", saved.ID)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
