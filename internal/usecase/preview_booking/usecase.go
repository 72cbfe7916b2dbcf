package preview_booking

import (
	"context"
	"errors"
	"fmt"

	pricecardstorage "github.com/svcmarket/booking-engine/internal/infra/storage/pricecard"
	"github.com/svcmarket/booking-engine/internal/pricing"
)

// UseCase расчёт стоимости бронирования без его создания
type UseCase struct {
	priceCardRepo PriceCardRepository
	pricer        *pricing.Engine
	logger        Logger
}

func NewUseCase(priceCardRepo PriceCardRepository, pricer *pricing.Engine, logger Logger) *UseCase {
	return &UseCase{
		priceCardRepo: priceCardRepo,
		pricer:        pricer,
		logger:        logger,
	}
}

// Execute считает стоимость по тем же правилам, что и создание
// бронирования, поэтому предпросмотр совпадает с итоговой ценой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.PriceCardID == "" {
		return nil, fmt.Errorf("%w: price card id is required", ErrInvalidInput)
	}

	card, err := uc.priceCardRepo.GetByID(ctx, req.PriceCardID)
	if err != nil {
		if errors.Is(err, pricecardstorage.ErrPriceCardNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrPriceCardNotFound, req.PriceCardID)
		}
		uc.logger.Error("preview_booking: failed to get price card %s: %v", req.PriceCardID, err)
		return nil, fmt.Errorf("%w: failed to get price card: %v", ErrInternal, err)
	}
	if !card.IsActive {
		return nil, fmt.Errorf("%w: id %s", ErrPriceCardInactive, card.ID)
	}

	quote := uc.pricer.Quote(card, req.AddOnNames)

	return &Response{
		PriceCardID:     card.ID,
		ProviderID:      card.ProviderID,
		Title:           card.Title,
		DurationMinutes: card.DurationMinutes,
		BasePrice:       quote.BasePrice,
		AddOns:          quote.AddOns,
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		Total:           quote.Total,
		Currency:        quote.Currency,
	}, nil
}
