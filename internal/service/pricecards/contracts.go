package pricecards

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// PriceCardRepository интерфейс репозитория карточек каталога
type PriceCardRepository interface {
	Create(ctx context.Context, card *domain.PriceCard) (*domain.PriceCard, error)
	GetByID(ctx context.Context, id string) (*domain.PriceCard, error)
	List(ctx context.Context, filter domain.PriceCardsFilter) ([]*domain.PriceCard, error)
	Update(ctx context.Context, card *domain.PriceCard) error
	Delete(ctx context.Context, id string) error
}

// ProviderRepository интерфейс репозитория исполнителей
type ProviderRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
