package domain

import "time"

// AddOn дополнительная опция с фиксированной ценой (в минорных единицах валюты)
type AddOn struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// PriceCard represents a provider's fixed-price, fixed-duration offering
type PriceCard struct {
	ID          string
	ProviderID  string
	Title       string
	Category    string
	City        *string
	Description string

	BasePrice       int64 // минорные единицы валюты (центы)
	AddOns          []AddOn
	DurationMinutes int

	// Деактивация скрывает карточку из публичного поиска,
	// исторические бронирования продолжают на неё ссылаться
	IsActive bool

	CreatedAt time.Time
}

// PriceCardsFilter фильтр публичного каталога
type PriceCardsFilter struct {
	Category   *string
	City       *string
	ProviderID *string
	OnlyActive bool
}
