package preview_booking

import "github.com/svcmarket/booking-engine/internal/domain"

// Request запрос расчёта стоимости без создания бронирования
type Request struct {
	PriceCardID string
	AddOnNames  []string
}

// Response детализация стоимости
type Response struct {
	PriceCardID     string
	ProviderID      string
	Title           string
	DurationMinutes int
	BasePrice       int64
	AddOns          []domain.AddOn
	Subtotal        int64
	Tax             int64
	Total           int64
	Currency        string
}
