package create_booking

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// PriceCardRepository интерфейс репозитория карточек каталога
type PriceCardRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PriceCard, error)
}

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetByProviderID(ctx context.Context, providerID string) (*domain.Availability, error)
}

// AddressRepository интерфейс репозитория адресов
type AddressRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Address, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier получает событие о созданном бронировании
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
}

// RefGenerator генерирует код бронирования
// Отдельный интерфейс, чтобы тесты могли подставить детерминированные коды
type RefGenerator func() (string, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
