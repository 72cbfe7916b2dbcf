package list_my_price_cards

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
)

type PriceCardsService interface {
	ListMine(ctx context.Context, userID string) (*models.PriceCardListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
