package availability

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "github.com/svcmarket/booking-engine/internal/infra/storage/availability"
	providerRepo "github.com/svcmarket/booking-engine/internal/infra/storage/provider"
	"github.com/svcmarket/booking-engine/internal/service/availability/models"
)

// Service сервис расписаний исполнителей
type Service struct {
	availabilityRepo AvailabilityRepository
	providerRepo     ProviderRepository
	cache            Cache
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	availabilityRepo AvailabilityRepository,
	providerRepo ProviderRepository,
	cache Cache,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		providerRepo:     providerRepo,
		cache:            cache,
		logger:           logger,
	}
}

// Replace полностью заменяет расписание исполнителя
// Доступно только самому исполнителю; после записи кеш инвалидируется
func (s *Service) Replace(ctx context.Context, req *models.ReplaceAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Replace: replacing availability for user=%s", req.UserID)

	provider, err := s.providerRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Replace: user=%s has no provider profile", req.UserID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("Replace: failed to resolve provider for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Replace - failed to resolve provider: %v", ErrInternal, err)
	}

	availability := req.ToDomain()
	availability.ProviderID = provider.ID

	if err := availability.Validate(); err != nil {
		s.logger.Warn("Replace: invalid schedule for provider=%s: %v", provider.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	saved, err := s.availabilityRepo.Replace(ctx, availability)
	if err != nil {
		s.logger.Error("Replace: repository error for provider=%s: %v", provider.ID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Invalidate(ctx, provider.ID); err != nil {
		// кеш с TTL, устаревшая запись исчезнет сама
		s.logger.Warn("Replace: failed to invalidate cache for provider=%s: %v", provider.ID, err)
	}

	s.logger.Info("Replace: availability replaced for provider=%s", provider.ID)
	return models.FromDomainAvailability(saved), nil
}

// GetPublic отдаёт публичное расписание исполнителя
// Исполнитель без сохранённого расписания показывается как закрытый
func (s *Service) GetPublic(ctx context.Context, providerID string) (*models.AvailabilityResponse, error) {
	if cached, err := s.cache.Get(ctx, providerID); err == nil {
		return models.FromDomainAvailability(cached), nil
	}

	if _, err := s.providerRepo.GetByID(ctx, providerID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetPublic: failed to get provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetPublic - failed to get provider: %v", ErrInternal, err)
	}

	availability, err := s.availabilityRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			return models.EmptyAvailability(providerID), nil
		}
		s.logger.Error("GetPublic: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetPublic - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Set(ctx, availability); err != nil {
		s.logger.Warn("GetPublic: failed to cache availability for provider=%s: %v", providerID, err)
	}

	return models.FromDomainAvailability(availability), nil
}
