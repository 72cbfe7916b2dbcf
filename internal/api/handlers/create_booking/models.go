package create_booking

import (
	"time"

	"github.com/svcmarket/booking-engine/internal/domain"
	createBooking "github.com/svcmarket/booking-engine/internal/usecase/create_booking"
	"github.com/svcmarket/booking-engine/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PriceCardID string   `json:"priceCardId"`
	AddressID   string   `json:"addressId"`
	Date        string   `json:"date"`      // "2025-10-15"
	StartTime   string   `json:"startTime"` // "10:00"
	AddOns      []string `json:"addOns,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// AddOnResponse зафиксированная доп. услуга
type AddOnResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string          `json:"id"`
	BookingRef      string          `json:"bookingRef"`
	ProviderID      string          `json:"providerId"`
	PriceCardID     string          `json:"priceCardId"`
	AddressID       string          `json:"addressId"`
	Date            string          `json:"date"`
	StartTime       string          `json:"startTime"`
	DurationMinutes int             `json:"durationMinutes"`
	AddOns          []AddOnResponse `json:"addOns"`
	Subtotal        int64           `json:"subtotal"`
	Tax             int64           `json:"tax"`
	Total           int64           `json:"total"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:  userID,
		PriceCardID: r.PriceCardID,
		AddressID:   r.AddressID,
		Date:        bookingDate,
		StartTime:   startTime,
		AddOnNames:  r.AddOns,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	addOns := make([]AddOnResponse, len(resp.AddOns))
	for i, a := range resp.AddOns {
		addOns[i] = AddOnResponse{Name: a.Name, Price: a.Price}
	}

	return &BookingResponse{
		ID:              resp.ID,
		BookingRef:      resp.BookingRef,
		ProviderID:      resp.ProviderID,
		PriceCardID:     resp.PriceCardID,
		AddressID:       resp.AddressID,
		Date:            resp.ScheduledAt.Format(domain.DateFormat),
		StartTime:       resp.ScheduledAt.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		AddOns:          addOns,
		Subtotal:        resp.Subtotal,
		Tax:             resp.Tax,
		Total:           resp.Total,
		Currency:        resp.Currency,
		Status:          string(resp.Status),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
