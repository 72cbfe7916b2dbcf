package pricecards

import "errors"

var (
	ErrPriceCardNotFound = errors.New("pricecards: price card not found")
	ErrPriceCardInUse    = errors.New("pricecards: price card has bookings, deactivate it instead")
	ErrAccessDenied      = errors.New("pricecards: access denied")
	ErrInvalidInput      = errors.New("pricecards: invalid input")
	ErrInternal          = errors.New("pricecards: internal error")
)
