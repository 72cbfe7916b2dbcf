package respond_booking

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/bookings/models"
)

type BookingsService interface {
	Accept(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error)
	Decline(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
