package list_price_cards

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
)

type PriceCardsService interface {
	ListPublic(ctx context.Context, req *models.ListPriceCardsRequest) (*models.PriceCardListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
