package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/internal/domain"
	availabilityRepo "github.com/svcmarket/booking-engine/internal/infra/storage/availability"
	pricecardRepo "github.com/svcmarket/booking-engine/internal/infra/storage/pricecard"
)

type fakePriceCardRepo struct {
	card *domain.PriceCard
	err  error
}

func (f *fakePriceCardRepo) GetByID(_ context.Context, _ string) (*domain.PriceCard, error) {
	return f.card, f.err
}

type fakeAvailabilityRepo struct {
	availability *domain.Availability
	err          error
}

func (f *fakeAvailabilityRepo) GetByProviderID(_ context.Context, _ string) (*domain.Availability, error) {
	return f.availability, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeCard() *domain.PriceCard {
	return &domain.PriceCard{
		ID:              "card-1",
		ProviderID:      "provider-1",
		BasePrice:       6000,
		DurationMinutes: 60,
		IsActive:        true,
	}
}

func weeklyAvailability() *domain.Availability {
	return &domain.Availability{
		ProviderID: "provider-1",
		Weekly: []domain.WeeklyRule{
			{Day: 2, Slots: []domain.TimeRange{rng("09:00", "12:00")}},
		},
	}
}

func TestExecuteHappyPath(t *testing.T) {
	uc := NewUseCase(
		&fakePriceCardRepo{card: activeCard()},
		&fakeAvailabilityRepo{availability: weeklyAvailability()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:  "provider-1",
		PriceCardID: "card-1",
		Date:        tuesday,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slotStrings(resp.Slots))
	assert.True(t, resp.HasOpenHours)
}

func TestExecutePriceCardNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakePriceCardRepo{err: pricecardRepo.ErrPriceCardNotFound},
		&fakeAvailabilityRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:  "provider-1",
		PriceCardID: "missing",
		Date:        tuesday,
	})
	assert.ErrorIs(t, err, ErrPriceCardNotFound)
}

func TestExecuteForeignProviderCard(t *testing.T) {
	card := activeCard()
	card.ProviderID = "someone-else"

	uc := NewUseCase(&fakePriceCardRepo{card: card}, &fakeAvailabilityRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:  "provider-1",
		PriceCardID: "card-1",
		Date:        tuesday,
	})
	assert.ErrorIs(t, err, ErrPriceCardNotFound, "card of another provider must look like a missing card")
}

func TestExecuteInactiveCard(t *testing.T) {
	card := activeCard()
	card.IsActive = false

	uc := NewUseCase(&fakePriceCardRepo{card: card}, &fakeAvailabilityRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:  "provider-1",
		PriceCardID: "card-1",
		Date:        tuesday,
	})
	assert.ErrorIs(t, err, ErrPriceCardInactive)
}

func TestExecuteNoAvailability(t *testing.T) {
	uc := NewUseCase(
		&fakePriceCardRepo{card: activeCard()},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:  "provider-1",
		PriceCardID: "card-1",
		Date:        tuesday,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.False(t, resp.HasOpenHours)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakePriceCardRepo{card: activeCard()}, &fakeAvailabilityRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PriceCardID: "card-1", Date: tuesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: "provider-1", Date: tuesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: "provider-1", PriceCardID: "card-1", Date: time.Time{}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
