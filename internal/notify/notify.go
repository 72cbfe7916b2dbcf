// Package notify передает события движка внешним потребителям
// (UI, сервис уведомлений). Доставка — ответственность внешнего
// сервиса, движок только публикует события.
package notify

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// Notifier получает события жизненного цикла бронирований
// События несут полный снимок бронирования
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
	BookingStatusChanged(ctx context.Context, booking *domain.Booking, previous domain.BookingStatus)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// LogNotifier пишет события в лог; применяется, пока внешний
// сервис уведомлений не подключен
type LogNotifier struct {
	logger Logger
}

// NewLogNotifier создает notifier, пишущий события в лог
func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) BookingCreated(_ context.Context, booking *domain.Booking) {
	n.logger.Info("event booking.created: id=%s ref=%s provider=%s customer=%s scheduled_at=%s total=%d",
		booking.ID, booking.BookingRef, booking.ProviderID, booking.CustomerID,
		booking.ScheduledAt.Format("2006-01-02 15:04"), booking.Total)
}

func (n *LogNotifier) BookingStatusChanged(_ context.Context, booking *domain.Booking, previous domain.BookingStatus) {
	n.logger.Info("event booking.status_changed: id=%s ref=%s %s -> %s",
		booking.ID, booking.BookingRef, previous, booking.Status)
}
