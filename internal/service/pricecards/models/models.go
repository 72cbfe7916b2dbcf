package models

import (
	"time"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// Request модели

// AddOnRequest дополнительная опция карточки
type AddOnRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CreatePriceCardRequest запрос на создание карточки услуги
type CreatePriceCardRequest struct {
	UserID          string         `json:"-"`
	Title           string         `json:"title"`
	Category        string         `json:"category"`
	City            *string        `json:"city,omitempty"`
	Description     string         `json:"description"`
	BasePrice       int64          `json:"basePrice"`
	AddOns          []AddOnRequest `json:"addOns"`
	DurationMinutes int            `json:"durationMinutes"`
}

// UpdatePriceCardRequest запрос на обновление карточки услуги
type UpdatePriceCardRequest struct {
	UserID          string         `json:"-"`
	Title           string         `json:"title"`
	Category        string         `json:"category"`
	City            *string        `json:"city,omitempty"`
	Description     string         `json:"description"`
	BasePrice       int64          `json:"basePrice"`
	AddOns          []AddOnRequest `json:"addOns"`
	DurationMinutes int            `json:"durationMinutes"`
	IsActive        bool           `json:"isActive"`
}

// ListPriceCardsRequest фильтры публичного каталога
type ListPriceCardsRequest struct {
	Category *string `json:"category,omitempty"`
	City     *string `json:"city,omitempty"`
}

// ToDomainAddOns конвертирует список опций в domain модели
func ToDomainAddOns(addOns []AddOnRequest) []domain.AddOn {
	result := make([]domain.AddOn, len(addOns))
	for i, a := range addOns {
		result[i] = domain.AddOn{Name: a.Name, Price: a.Price}
	}
	return result
}

// Response модели

// AddOnResponse дополнительная опция карточки
type AddOnResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// PriceCardResponse карточка услуги
type PriceCardResponse struct {
	ID              string          `json:"id"`
	ProviderID      string          `json:"providerId"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	City            *string         `json:"city,omitempty"`
	Description     string          `json:"description"`
	BasePrice       int64           `json:"basePrice"`
	AddOns          []AddOnResponse `json:"addOns"`
	DurationMinutes int             `json:"durationMinutes"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// PriceCardListResponse список карточек
type PriceCardListResponse struct {
	PriceCards []PriceCardResponse `json:"priceCards"`
}

// FromDomainPriceCard конвертирует domain модель в DTO
func FromDomainPriceCard(c *domain.PriceCard) *PriceCardResponse {
	if c == nil {
		return nil
	}

	addOns := make([]AddOnResponse, len(c.AddOns))
	for i, a := range c.AddOns {
		addOns[i] = AddOnResponse{Name: a.Name, Price: a.Price}
	}

	return &PriceCardResponse{
		ID:              c.ID,
		ProviderID:      c.ProviderID,
		Title:           c.Title,
		Category:        c.Category,
		City:            c.City,
		Description:     c.Description,
		BasePrice:       c.BasePrice,
		AddOns:          addOns,
		DurationMinutes: c.DurationMinutes,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}

// FromDomainPriceCardList конвертирует список domain моделей в DTO
func FromDomainPriceCardList(cards []*domain.PriceCard) *PriceCardListResponse {
	if cards == nil {
		return &PriceCardListResponse{
			PriceCards: []PriceCardResponse{},
		}
	}

	resp := &PriceCardListResponse{
		PriceCards: make([]PriceCardResponse, len(cards)),
	}
	for i, card := range cards {
		if cardResp := FromDomainPriceCard(card); cardResp != nil {
			resp.PriceCards[i] = *cardResp
		}
	}
	return resp
}
