package preview_booking

import "errors"

var (
	ErrInvalidInput      = errors.New("preview_booking: invalid input")
	ErrPriceCardNotFound = errors.New("preview_booking: price card not found")
	ErrPriceCardInactive = errors.New("preview_booking: price card is inactive")
	ErrInternal          = errors.New("preview_booking: internal error")
)
