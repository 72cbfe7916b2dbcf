package preview_booking

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// PriceCardRepository интерфейс репозитория карточек каталога
type PriceCardRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PriceCard, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
