package bookings

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
}

// ProviderRepository интерфейс репозитория исполнителей
type ProviderRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Provider, error)
}

// Notifier получает события об изменении статусов бронирований
type Notifier interface {
	BookingStatusChanged(ctx context.Context, booking *domain.Booking, previous domain.BookingStatus)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
