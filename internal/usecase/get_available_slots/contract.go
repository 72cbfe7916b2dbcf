package get_available_slots

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// PriceCardRepository интерфейс репозитория карточек каталога
type PriceCardRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PriceCard, error)
}

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetByProviderID(ctx context.Context, providerID string) (*domain.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
