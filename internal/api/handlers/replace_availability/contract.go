package replace_availability

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/service/availability/models"
)

type AvailabilityService interface {
	Replace(ctx context.Context, req *models.ReplaceAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
