package create_booking

import (
	"fmt"

	"github.com/svcmarket/booking-engine/internal/domain"
)

func validateRequest(req *Request) error {
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	if req.PriceCardID == "" {
		return fmt.Errorf("%w: price card id is required", ErrInvalidInput)
	}
	if req.AddressID == "" {
		return fmt.Errorf("%w: address id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
