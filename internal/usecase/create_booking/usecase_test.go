package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/internal/domain"
	availabilitystorage "github.com/svcmarket/booking-engine/internal/infra/storage/availability"
	bookingstorage "github.com/svcmarket/booking-engine/internal/infra/storage/booking"
	"github.com/svcmarket/booking-engine/internal/pricing"
	"github.com/svcmarket/booking-engine/pkg/types"
)

// вторник
var tuesday = time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	existing   []*domain.Booking
	createErrs []error // очередь ошибок Create, nil = успех
	created    []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var err error
	if len(f.createErrs) > 0 {
		err, f.createErrs = f.createErrs[0], f.createErrs[1:]
	}
	if err != nil {
		return nil, err
	}
	saved := *booking
	saved.ID = "booking-1"
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.created = append(f.created, &saved)
	return &saved, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

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

type fakeAddressRepo struct {
	address *domain.Address
	err     error
}

func (f *fakeAddressRepo) GetByID(_ context.Context, _ string) (*domain.Address, error) {
	return f.address, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	created []*domain.Booking
}

func (f *fakeNotifier) BookingCreated(_ context.Context, booking *domain.Booking) {
	f.created = append(f.created, booking)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func staticRef(ref string) RefGenerator {
	return func() (string, error) { return ref, nil }
}

func testCard() *domain.PriceCard {
	return &domain.PriceCard{
		ID:         "card-1",
		ProviderID: "provider-1",
		Title:      "Deep clean",
		BasePrice:  6000,
		AddOns: []domain.AddOn{
			{Name: "windows", Price: 2500},
		},
		DurationMinutes: 60,
		IsActive:        true,
	}
}

func testAvailability() *domain.Availability {
	return &domain.Availability{
		ProviderID: "provider-1",
		Weekly: []domain.WeeklyRule{
			{Day: 2, Slots: []domain.TimeRange{
				{Start: types.TimeString("09:00"), End: types.TimeString("12:00")},
			}},
		},
	}
}

func testAddress() *domain.Address {
	return &domain.Address{ID: "address-1", UserID: "customer-1"}
}

func validRequest() *Request {
	return &Request{
		CustomerID:  "customer-1",
		PriceCardID: "card-1",
		AddressID:   "address-1",
		Date:        tuesday,
		StartTime:   types.TimeString("10:00"),
		AddOnNames:  []string{"windows"},
	}
}

type deps struct {
	bookings     *fakeBookingRepo
	cards        *fakePriceCardRepo
	availability *fakeAvailabilityRepo
	addresses    *fakeAddressRepo
	notifier     *fakeNotifier
	newRef       RefGenerator
}

func defaultDeps() *deps {
	return &deps{
		bookings:     &fakeBookingRepo{},
		cards:        &fakePriceCardRepo{card: testCard()},
		availability: &fakeAvailabilityRepo{availability: testAvailability()},
		addresses:    &fakeAddressRepo{address: testAddress()},
		notifier:     &fakeNotifier{},
		newRef:       staticRef("AB23CD45"),
	}
}

func newTestUseCase(d *deps) *UseCase {
	return NewUseCase(
		d.bookings,
		d.cards,
		d.availability,
		d.addresses,
		fakeTxManager{},
		pricing.NewEngine(),
		d.notifier,
		d.newRef,
		nopLogger{},
	)
}

func TestCreateBookingHappyPath(t *testing.T) {
	d := defaultDeps()
	uc := newTestUseCase(d)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "AB23CD45", resp.BookingRef)
	assert.Equal(t, "provider-1", resp.ProviderID)
	assert.Equal(t, domain.BookingStatusPending, resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, time.Date(2025, 10, 7, 10, 0, 0, 0, time.UTC), resp.ScheduledAt)

	// снимок цены на момент создания
	assert.Equal(t, int64(8500), resp.Subtotal)
	assert.Equal(t, int64(0), resp.Tax)
	assert.Equal(t, int64(8500), resp.Total)
	assert.Equal(t, domain.DefaultCurrency, resp.Currency)
	require.Len(t, resp.AddOns, 1)
	assert.Equal(t, "windows", resp.AddOns[0].Name)

	require.Len(t, d.notifier.created, 1)
}

func TestCreateBookingUnknownAddOnIgnored(t *testing.T) {
	d := defaultDeps()
	uc := newTestUseCase(d)

	req := validRequest()
	req.AddOnNames = []string{"windows", "gold plating"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(8500), resp.Total)
	assert.Len(t, resp.AddOns, 1)
}

func TestCreateBookingInactiveCard(t *testing.T) {
	d := defaultDeps()
	d.cards.card.IsActive = false
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPriceCardInactive)
}

func TestCreateBookingForeignAddress(t *testing.T) {
	d := defaultDeps()
	d.addresses.address.UserID = "someone-else"
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAddressNotFound, "foreign address must look like a missing address")
}

func TestCreateBookingSlotNotInSchedule(t *testing.T) {
	d := defaultDeps()
	uc := newTestUseCase(d)

	req := validRequest()
	req.StartTime = types.TimeString("11:30") // не помещается до 12:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCreateBookingNoSchedule(t *testing.T) {
	d := defaultDeps()
	d.availability.availability = nil
	d.availability.err = availabilitystorage.ErrAvailabilityNotFound
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	d := defaultDeps()
	d.bookings.existing = []*domain.Booking{{
		ID:              "existing-1",
		ProviderID:      "provider-1",
		ScheduledAt:     time.Date(2025, 10, 7, 9, 30, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.BookingStatusAccepted,
	}}
	uc := newTestUseCase(d)

	// [10:00, 11:00) пересекается с [09:30, 10:30)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateBookingOverlapConflictNonUTCRead(t *testing.T) {
	d := defaultDeps()
	// тот же момент 09:30 UTC, но прочитанный в поясе сессии БД
	toronto := time.FixedZone("America/Toronto", -4*60*60)
	d.bookings.existing = []*domain.Booking{{
		ID:              "existing-1",
		ProviderID:      "provider-1",
		ScheduledAt:     time.Date(2025, 10, 7, 9, 30, 0, 0, time.UTC).In(toronto),
		DurationMinutes: 60,
		Status:          domain.BookingStatusAccepted,
	}}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateBookingAbuttingBookingAllowed(t *testing.T) {
	d := defaultDeps()
	d.bookings.existing = []*domain.Booking{{
		ID:              "existing-1",
		ProviderID:      "provider-1",
		ScheduledAt:     time.Date(2025, 10, 7, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.BookingStatusAccepted,
	}}
	uc := newTestUseCase(d)

	// [10:00, 11:00) стыкуется с [09:00, 10:00) без пересечения
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
}

func TestCreateBookingUniqueIndexConflict(t *testing.T) {
	d := defaultDeps()
	d.bookings.createErrs = []error{bookingstorage.ErrSlotTaken}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateBookingRefCollisionRetries(t *testing.T) {
	d := defaultDeps()
	d.bookings.createErrs = []error{bookingstorage.ErrRefConflict, bookingstorage.ErrRefConflict, nil}
	uc := newTestUseCase(d)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Len(t, d.bookings.created, 1)
}

func TestCreateBookingRefCollisionExhausted(t *testing.T) {
	d := defaultDeps()
	for i := 0; i < maxRefAttempts; i++ {
		d.bookings.createErrs = append(d.bookings.createErrs, bookingstorage.ErrRefConflict)
	}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, d.notifier.created)
}

func TestCreateBookingValidation(t *testing.T) {
	uc := newTestUseCase(defaultDeps())

	req := validRequest()
	req.CustomerID = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = types.TimeString("25:00")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	notes := string(long)
	req = validRequest()
	req.Notes = &notes
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
