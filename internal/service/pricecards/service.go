package pricecards

import (
	"context"
	"errors"
	"fmt"

	"github.com/svcmarket/booking-engine/internal/domain"
	pricecardRepo "github.com/svcmarket/booking-engine/internal/infra/storage/pricecard"
	providerRepo "github.com/svcmarket/booking-engine/internal/infra/storage/provider"
	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
)

// Service сервис карточек каталога услуг
type Service struct {
	priceCardRepo PriceCardRepository
	providerRepo  ProviderRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса карточек
func NewService(
	priceCardRepo PriceCardRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *Service {
	return &Service{
		priceCardRepo: priceCardRepo,
		providerRepo:  providerRepo,
		logger:        logger,
	}
}

// Create создаёт карточку услуги для профиля исполнителя пользователя
func (s *Service) Create(ctx context.Context, req *models.CreatePriceCardRequest) (*models.PriceCardResponse, error) {
	s.logger.Info("Create: creating price card %q for user=%s", req.Title, req.UserID)

	provider, err := s.resolveProvider(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	card := &domain.PriceCard{
		ProviderID:      provider.ID,
		Title:           req.Title,
		Category:        req.Category,
		City:            req.City,
		Description:     req.Description,
		BasePrice:       req.BasePrice,
		AddOns:          models.ToDomainAddOns(req.AddOns),
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	if err := validateCard(card); err != nil {
		s.logger.Warn("Create: invalid price card for provider=%s: %v", provider.ID, err)
		return nil, err
	}

	created, err := s.priceCardRepo.Create(ctx, card)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%s: %v", provider.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: price card id=%s created for provider=%s", created.ID, provider.ID)
	return models.FromDomainPriceCard(created), nil
}

// GetByID получает карточку по ID
// Неактивные карточки видит только их владелец
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.PriceCardResponse, error) {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if !card.IsActive {
		provider, resolveErr := s.providerRepo.GetByUserID(ctx, userID)
		if resolveErr != nil || provider.ID != card.ProviderID {
			// скрытую карточку не раскрываем
			return nil, ErrPriceCardNotFound
		}
	}

	return models.FromDomainPriceCard(card), nil
}

// ListPublic возвращает активные карточки каталога с фильтрами
func (s *Service) ListPublic(ctx context.Context, req *models.ListPriceCardsRequest) (*models.PriceCardListResponse, error) {
	cards, err := s.priceCardRepo.List(ctx, domain.PriceCardsFilter{
		Category:   req.Category,
		City:       req.City,
		OnlyActive: true,
	})
	if err != nil {
		s.logger.Error("ListPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPriceCardList(cards), nil
}

// ListMine возвращает все карточки исполнителя, включая неактивные
func (s *Service) ListMine(ctx context.Context, userID string) (*models.PriceCardListResponse, error) {
	provider, err := s.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}

	cards, err := s.priceCardRepo.List(ctx, domain.PriceCardsFilter{
		ProviderID: &provider.ID,
	})
	if err != nil {
		s.logger.Error("ListMine: repository error for provider=%s: %v", provider.ID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPriceCardList(cards), nil
}

// Update обновляет карточку услуги
// Доступно только владельцу карточки
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePriceCardRequest) (*models.PriceCardResponse, error) {
	s.logger.Info("Update: updating price card id=%s by user=%s", id, req.UserID)

	card, err := s.getOwnedCard(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	card.Title = req.Title
	card.Category = req.Category
	card.City = req.City
	card.Description = req.Description
	card.BasePrice = req.BasePrice
	card.AddOns = models.ToDomainAddOns(req.AddOns)
	card.DurationMinutes = req.DurationMinutes
	card.IsActive = req.IsActive

	if err := validateCard(card); err != nil {
		s.logger.Warn("Update: invalid price card id=%s: %v", id, err)
		return nil, err
	}

	if err := s.priceCardRepo.Update(ctx, card); err != nil {
		if errors.Is(err, pricecardRepo.ErrPriceCardNotFound) {
			return nil, ErrPriceCardNotFound
		}
		s.logger.Error("Update: repository error for price card id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: price card id=%s updated", id)
	return models.FromDomainPriceCard(card), nil
}

// Delete удаляет карточку услуги
// Доступно только владельцу; снимки цены в бронированиях не затрагиваются
func (s *Service) Delete(ctx context.Context, id string, userID string) error {
	s.logger.Info("Delete: deleting price card id=%s by user=%s", id, userID)

	if _, err := s.getOwnedCard(ctx, id, userID); err != nil {
		return err
	}

	if err := s.priceCardRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pricecardRepo.ErrPriceCardNotFound) {
			return ErrPriceCardNotFound
		}
		if errors.Is(err, pricecardRepo.ErrPriceCardInUse) {
			s.logger.Warn("Delete: price card id=%s is referenced by bookings", id)
			return ErrPriceCardInUse
		}
		s.logger.Error("Delete: repository error for price card id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: price card id=%s deleted", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getCard(ctx context.Context, id string) (*domain.PriceCard, error) {
	card, err := s.priceCardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pricecardRepo.ErrPriceCardNotFound) {
			return nil, ErrPriceCardNotFound
		}
		s.logger.Error("getCard: repository error for price card id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: getCard - repository error: %v", ErrInternal, err)
	}
	return card, nil
}

// getOwnedCard получает карточку и проверяет, что она принадлежит
// профилю исполнителя пользователя
func (s *Service) getOwnedCard(ctx context.Context, id string, userID string) (*domain.PriceCard, error) {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, err
	}

	provider, err := s.resolveProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	if card.ProviderID != provider.ID {
		s.logger.Warn("getOwnedCard: user=%s is not the owner of price card id=%s", userID, id)
		return nil, ErrAccessDenied
	}
	return card, nil
}

func (s *Service) resolveProvider(ctx context.Context, userID string) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("resolveProvider: user=%s has no provider profile", userID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("resolveProvider: failed to resolve provider for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: resolveProvider - failed to resolve provider: %v", ErrInternal, err)
	}
	return provider, nil
}
