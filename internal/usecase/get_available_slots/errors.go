package get_available_slots

import "errors"

var (
	// ErrPriceCardNotFound возвращается, когда карточка не найдена
	ErrPriceCardNotFound = errors.New("get_available_slots: price card not found")

	// ErrPriceCardInactive возвращается для деактивированной карточки
	// Карточка существует, но недоступна для бронирования
	ErrPriceCardInactive = errors.New("get_available_slots: price card is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
