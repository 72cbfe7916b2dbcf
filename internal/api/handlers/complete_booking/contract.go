package complete_booking

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/bookings/models"
)

type BookingsService interface {
	Complete(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
