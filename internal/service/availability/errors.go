package availability

import "errors"

var (
	ErrProviderNotFound = errors.New("availability: provider not found")
	ErrInvalidSchedule  = errors.New("availability: invalid schedule")
	ErrAccessDenied     = errors.New("availability: access denied")
	ErrInternal         = errors.New("availability: internal error")
)
