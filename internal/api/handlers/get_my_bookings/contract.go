package get_my_bookings

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/bookings/models"
)

type BookingsService interface {
	GetMine(ctx context.Context, req *models.GetMyBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
