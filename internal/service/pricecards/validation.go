package pricecards

import (
	"fmt"

	"github.com/svcmarket/booking-engine/internal/domain"
)

func validateCard(card *domain.PriceCard) error {
	if card.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(card.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if card.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if card.BasePrice < 0 {
		return fmt.Errorf("%w: base price must be non-negative", ErrInvalidInput)
	}
	if card.DurationMinutes < domain.MinDurationMinutes {
		return fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinDurationMinutes)
	}
	if len(card.AddOns) > domain.MaxAddOnsPerCard {
		return fmt.Errorf("%w: at most %d add-ons per card", ErrInvalidInput, domain.MaxAddOnsPerCard)
	}

	seen := make(map[string]struct{}, len(card.AddOns))
	for _, addOn := range card.AddOns {
		if addOn.Name == "" {
			return fmt.Errorf("%w: add-on name is required", ErrInvalidInput)
		}
		if addOn.Price < 0 {
			return fmt.Errorf("%w: add-on %q price must be non-negative", ErrInvalidInput, addOn.Name)
		}
		if _, ok := seen[addOn.Name]; ok {
			return fmt.Errorf("%w: duplicate add-on %q", ErrInvalidInput, addOn.Name)
		}
		seen[addOn.Name] = struct{}{}
	}
	return nil
}
