package create_booking

import "errors"

var (
	ErrInvalidInput      = errors.New("create_booking: invalid input")
	ErrPriceCardNotFound = errors.New("create_booking: price card not found")
	ErrPriceCardInactive = errors.New("create_booking: price card is inactive")
	ErrAddressNotFound   = errors.New("create_booking: address not found")
	ErrInvalidSlot       = errors.New("create_booking: requested time is not an available slot")
	ErrSlotConflict      = errors.New("create_booking: slot already booked")
	ErrInternal          = errors.New("create_booking: internal error")
)
