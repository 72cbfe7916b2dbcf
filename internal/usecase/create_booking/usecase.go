package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/svcmarket/booking-engine/internal/domain"
	addressstorage "github.com/svcmarket/booking-engine/internal/infra/storage/address"
	availabilitystorage "github.com/svcmarket/booking-engine/internal/infra/storage/availability"
	bookingstorage "github.com/svcmarket/booking-engine/internal/infra/storage/booking"
	pricecardstorage "github.com/svcmarket/booking-engine/internal/infra/storage/pricecard"
	"github.com/svcmarket/booking-engine/internal/pricing"
	"github.com/svcmarket/booking-engine/internal/usecase/get_available_slots"
	"github.com/svcmarket/booking-engine/pkg/types"
)

// maxRefAttempts ограничивает количество повторов генерации кода
// бронирования при коллизии по уникальному индексу
const maxRefAttempts = 5

// UseCase создание бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	priceCardRepo    PriceCardRepository
	availabilityRepo AvailabilityRepository
	addressRepo      AddressRepository
	txManager        TransactionManager
	pricer           *pricing.Engine
	notifier         Notifier
	newRef           RefGenerator
	logger           Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	priceCardRepo PriceCardRepository,
	availabilityRepo AvailabilityRepository,
	addressRepo AddressRepository,
	txManager TransactionManager,
	pricer *pricing.Engine,
	notifier Notifier,
	newRef RefGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		priceCardRepo:    priceCardRepo,
		availabilityRepo: availabilityRepo,
		addressRepo:      addressRepo,
		txManager:        txManager,
		pricer:           pricer,
		notifier:         notifier,
		newRef:           newRef,
		logger:           logger,
	}
}

// Execute создаёт бронирование со статусом pending.
//
// Проверка занятости и вставка выполняются в одной serializable-транзакции:
// список занятых бронирований читается с блокировкой строк, поэтому два
// параллельных запроса на один слот не могут пройти проверку одновременно.
// Частичный уникальный индекс в БД остаётся страховкой на уровне хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	card, err := uc.priceCardRepo.GetByID(ctx, req.PriceCardID)
	if err != nil {
		if errors.Is(err, pricecardstorage.ErrPriceCardNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrPriceCardNotFound, req.PriceCardID)
		}
		uc.logger.Error("create_booking: failed to get price card %s: %v", req.PriceCardID, err)
		return nil, fmt.Errorf("%w: failed to get price card: %v", ErrInternal, err)
	}
	if !card.IsActive {
		return nil, fmt.Errorf("%w: id %s", ErrPriceCardInactive, card.ID)
	}

	address, err := uc.addressRepo.GetByID(ctx, req.AddressID)
	if err != nil {
		if errors.Is(err, addressstorage.ErrAddressNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrAddressNotFound, req.AddressID)
		}
		uc.logger.Error("create_booking: failed to get address %s: %v", req.AddressID, err)
		return nil, fmt.Errorf("%w: failed to get address: %v", ErrInternal, err)
	}
	// чужой адрес не раскрываем, отвечаем как на несуществующий
	if address.UserID != req.CustomerID {
		return nil, fmt.Errorf("%w: id %s", ErrAddressNotFound, req.AddressID)
	}

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	scheduledAt := time.Date(
		req.Date.Year(), req.Date.Month(), req.Date.Day(),
		startMinutes/60, startMinutes%60, 0, 0, time.UTC,
	)

	quote := uc.pricer.Quote(card, req.AddOnNames)

	booking := &domain.Booking{
		CustomerID:      req.CustomerID,
		ProviderID:      card.ProviderID,
		PriceCardID:     card.ID,
		AddressID:       address.ID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: card.DurationMinutes,
		AddOns:          quote.AddOns,
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		Total:           quote.Total,
		Currency:        quote.Currency,
		Status:          domain.BookingStatusPending,
		Notes:           req.Notes,
	}

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkSlotAvailable(txCtx, card, req.Date, req.StartTime, startMinutes); err != nil {
			return err
		}
		var txErr error
		created, txErr = uc.insertWithRef(txCtx, booking)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("create_booking: booking %s (%s) created for provider %s at %s",
		created.ID, created.BookingRef, created.ProviderID, created.ScheduledAt.Format(time.RFC3339))
	uc.notifier.BookingCreated(ctx, created)

	return newResponse(created), nil
}

// checkSlotAvailable перепроверяет запрошенное время внутри транзакции:
// слот должен существовать в актуальном расписании и не пересекаться
// с занятыми бронированиями исполнителя на эту дату
func (uc *UseCase) checkSlotAvailable(
	ctx context.Context,
	card *domain.PriceCard,
	date time.Time,
	startTime types.TimeString,
	startMinutes int,
) error {
	availability, err := uc.availabilityRepo.GetByProviderID(ctx, card.ProviderID)
	if err != nil {
		if errors.Is(err, availabilitystorage.ErrAvailabilityNotFound) {
			return fmt.Errorf("%w: provider has no schedule", ErrInvalidSlot)
		}
		uc.logger.Error("create_booking: failed to get availability for provider %s: %v", card.ProviderID, err)
		return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	if !get_available_slots.ContainsSlot(availability, date, card.DurationMinutes, startTime) {
		return fmt.Errorf("%w: %s is not offered on %s", ErrInvalidSlot, startTime, date.Format(domain.DateFormat))
	}

	occupying, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		ProviderID:    &card.ProviderID,
		Date:          &date,
		OnlyOccupying: true,
	})
	if err != nil {
		uc.logger.Error("create_booking: failed to list bookings for provider %s: %v", card.ProviderID, err)
		return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	reqStart := startMinutes
	reqEnd := startMinutes + card.DurationMinutes
	for _, existing := range occupying {
		// timestamptz из БД может прийти в часовом поясе сессии,
		// минуты от начала суток считаем только в UTC
		existingAt := existing.ScheduledAt.In(time.UTC)
		existingStart := existingAt.Hour()*60 + existingAt.Minute()
		existingEnd := existingStart + existing.DurationMinutes
		// строгие неравенства: стыкующиеся интервалы не конфликтуют
		if reqStart < existingEnd && existingStart < reqEnd {
			return fmt.Errorf("%w: overlaps booking %s", ErrSlotConflict, existing.ID)
		}
	}
	return nil
}

// insertWithRef вставляет бронирование, повторяя генерацию кода
// при коллизии по уникальному ключу booking_ref
func (uc *UseCase) insertWithRef(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	for attempt := 1; attempt <= maxRefAttempts; attempt++ {
		ref, err := uc.newRef()
		if err != nil {
			uc.logger.Error("create_booking: failed to generate booking ref: %v", err)
			return nil, fmt.Errorf("%w: failed to generate booking ref: %v", ErrInternal, err)
		}
		booking.BookingRef = ref

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}
		if errors.Is(err, bookingstorage.ErrSlotTaken) {
			return nil, fmt.Errorf("%w: slot taken", ErrSlotConflict)
		}
		if errors.Is(err, bookingstorage.ErrRefConflict) {
			uc.logger.Warn("create_booking: booking ref collision on attempt %d, retrying", attempt)
			continue
		}
		uc.logger.Error("create_booking: failed to insert booking: %v", err)
		return nil, fmt.Errorf("%w: failed to insert booking: %v", ErrInternal, err)
	}
	return nil, fmt.Errorf("%w: booking ref collisions exhausted %d attempts", ErrInternal, maxRefAttempts)
}
