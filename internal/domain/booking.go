package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusDeclined   BookingStatus = "declined"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
)

// ErrInvalidBookingStatus возвращается для строки вне набора статусов
var ErrInvalidBookingStatus = errors.New("invalid booking status")

// allStatuses закрытый набор допустимых статусов
var allStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusDeclined,
	BookingStatusCancelled,
	BookingStatusInProgress,
	BookingStatusCompleted,
}

// transitions таблица допустимых переходов статуса
// Проверяется централизованно через CanTransition, а не на каждом call site
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusAccepted, BookingStatusDeclined, BookingStatusCancelled},
	BookingStatusAccepted:   {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	for _, valid := range allStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrInvalidBookingStatus
}

// CanTransition возвращает true, если переход from -> to разрешён таблицей
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal возвращает true для статусов, из которых нет переходов
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// OccupyingStatuses статусы, при которых бронирование занимает слот
// Используется при проверке конфликтов во время создания
var OccupyingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusInProgress,
}

// Booking represents a confirmed-price, time-boxed service booking
type Booking struct {
	ID         string
	BookingRef string // короткий код для пользователя, уникален
	CustomerID string
	ProviderID string

	PriceCardID string
	AddressID   string

	ScheduledAt     time.Time
	DurationMinutes int // копия из price card на момент создания

	// Снимок выбранных дополнений и итогов на момент создания
	// Изменения каталога задним числом не влияют на бронирование
	AddOns   []AddOn
	Subtotal int64
	Tax      int64
	Total    int64
	Currency string

	Status BookingStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupies returns true if the booking still holds its time slot
func (b *Booking) Occupies() bool {
	for _, s := range OccupyingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the customer may still cancel the booking
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusAccepted
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CustomerID    *string
	ProviderID    *string
	Date          *time.Time // бронирования, начинающиеся в этот календарный день
	Status        *BookingStatus
	OnlyOccupying bool // только бронирования, занимающие слот (pending/accepted/in_progress)
}
