package create_booking

import (
	"time"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	CustomerID  string
	PriceCardID string
	AddressID   string
	Date        time.Time
	StartTime   types.TimeString
	AddOnNames  []string
	Notes       *string
}

// Response созданное бронирование
type Response struct {
	ID              string
	BookingRef      string
	ProviderID      string
	PriceCardID     string
	AddressID       string
	ScheduledAt     time.Time
	DurationMinutes int
	AddOns          []domain.AddOn
	Subtotal        int64
	Tax             int64
	Total           int64
	Currency        string
	Status          domain.BookingStatus
	CreatedAt       time.Time
}

func newResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		BookingRef:      b.BookingRef,
		ProviderID:      b.ProviderID,
		PriceCardID:     b.PriceCardID,
		AddressID:       b.AddressID,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		AddOns:          b.AddOns,
		Subtotal:        b.Subtotal,
		Tax:             b.Tax,
		Total:           b.Total,
		Currency:        b.Currency,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}
