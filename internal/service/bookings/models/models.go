package models

import (
	"errors"
	"time"

	"github.com/svcmarket/booking-engine/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetMyBookingsRequest запрос на получение бронирований пользователя
// Возвращает бронирования, где пользователь - клиент или исполнитель
type GetMyBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// AddOnResponse зафиксированная в бронировании доп. услуга
type AddOnResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string          `json:"id"`
	BookingRef      string          `json:"bookingRef"`
	CustomerID      string          `json:"customerId"`
	ProviderID      string          `json:"providerId"`
	PriceCardID     string          `json:"priceCardId"`
	AddressID       string          `json:"addressId"`
	ScheduledAt     time.Time       `json:"scheduledAt"`
	DurationMinutes int             `json:"durationMinutes"`
	AddOns          []AddOnResponse `json:"addOns"`
	Subtotal        int64           `json:"subtotal"`
	Tax             int64           `json:"tax"`
	Total           int64           `json:"total"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	addOns := make([]AddOnResponse, len(b.AddOns))
	for i, a := range b.AddOns {
		addOns[i] = AddOnResponse{Name: a.Name, Price: a.Price}
	}

	return &BookingResponse{
		ID:              b.ID,
		BookingRef:      b.BookingRef,
		CustomerID:      b.CustomerID,
		ProviderID:      b.ProviderID,
		PriceCardID:     b.PriceCardID,
		AddressID:       b.AddressID,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		AddOns:          addOns,
		Subtotal:        b.Subtotal,
		Tax:             b.Tax,
		Total:           b.Total,
		Currency:        b.Currency,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, err := domain.ParseBookingStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}
