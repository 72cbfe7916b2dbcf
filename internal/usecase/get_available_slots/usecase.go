package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/svcmarket/booking-engine/internal/domain"
	availabilityRepo "github.com/svcmarket/booking-engine/internal/infra/storage/availability"
	pricecardRepo "github.com/svcmarket/booking-engine/internal/infra/storage/pricecard"
	"github.com/svcmarket/booking-engine/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	priceCardRepo    PriceCardRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	priceCardRepo PriceCardRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		priceCardRepo:    priceCardRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат пересчитывается на каждый вызов: список конечен и
// не подлежит переиспользованию между запросами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, card=%s, date=%s",
		req.ProviderID, req.PriceCardID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем карточку — источник длительности услуги
	card, err := uc.priceCardRepo.GetByID(ctx, req.PriceCardID)
	if err != nil {
		if errors.Is(err, pricecardRepo.ErrPriceCardNotFound) {
			uc.logger.Warn("GetAvailableSlots: price card id=%s not found", req.PriceCardID)
			return nil, ErrPriceCardNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get price card id=%s: %v", req.PriceCardID, err)
		return nil, fmt.Errorf("%w: failed to get price card: %v", ErrInternal, err)
	}

	// Карточка другого провайдера — для вызывающей стороны её нет
	if card.ProviderID != req.ProviderID {
		uc.logger.Warn("GetAvailableSlots: price card id=%s does not belong to provider id=%s",
			req.PriceCardID, req.ProviderID)
		return nil, ErrPriceCardNotFound
	}

	if !card.IsActive {
		uc.logger.Warn("GetAvailableSlots: price card id=%s is not active", req.PriceCardID)
		return nil, ErrPriceCardInactive
	}

	// 3. Получаем расписание провайдера
	// Отсутствие расписания — не ошибка, а пустой список слотов
	availability, err := uc.availabilityRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil && !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get availability for provider id=%s: %v",
			req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	if availability == nil {
		uc.logger.Info("GetAvailableSlots: provider id=%s has no availability", req.ProviderID)
		return &Response{
			ProviderID:      req.ProviderID,
			PriceCardID:     req.PriceCardID,
			Date:            req.Date,
			DurationMinutes: card.DurationMinutes,
			Slots:           []types.TimeString{},
			HasOpenHours:    false,
		}, nil
	}

	// 4. Генерируем слоты
	slots := GenerateSlots(availability, req.Date, card.DurationMinutes)

	uc.logger.Info("GetAvailableSlots: generated %d slots for provider=%s, card=%s, date=%s",
		len(slots), req.ProviderID, req.PriceCardID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProviderID:      req.ProviderID,
		PriceCardID:     req.PriceCardID,
		Date:            req.Date,
		DurationMinutes: card.DurationMinutes,
		Slots:           slots,
		// Приближение для календаря: непустой список интервалов
		// еще не гарантирует валидный старт для этой длительности
		HasOpenHours: availability.HasOpenHours(req.Date),
	}, nil
}
