package availability

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetByProviderID(ctx context.Context, providerID string) (*domain.Availability, error)
	Replace(ctx context.Context, availability *domain.Availability) (*domain.Availability, error)
}

// ProviderRepository интерфейс репозитория исполнителей
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Provider, error)
}

// Cache кеш публичных расписаний
type Cache interface {
	Get(ctx context.Context, providerID string) (*domain.Availability, error)
	Set(ctx context.Context, availability *domain.Availability) error
	Invalidate(ctx context.Context, providerID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
