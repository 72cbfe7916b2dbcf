package create_price_card

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
)

type PriceCardsService interface {
	Create(ctx context.Context, req *models.CreatePriceCardRequest) (*models.PriceCardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
