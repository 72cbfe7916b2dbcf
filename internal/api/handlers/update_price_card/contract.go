package update_price_card

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
)

type PriceCardsService interface {
	Update(ctx context.Context, id string, req *models.UpdatePriceCardRequest) (*models.PriceCardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
