package bookings

import "errors"

var (
	ErrBookingNotFound   = errors.New("bookings: booking not found")
	ErrAccessDenied      = errors.New("bookings: access denied")
	ErrInvalidTransition = errors.New("bookings: invalid status transition")
	ErrInvalidInput      = errors.New("bookings: invalid input")
	ErrInternal          = errors.New("bookings: internal error")
)
