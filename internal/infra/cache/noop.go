package cache

import (
	"context"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// NoopCache заглушка на случай выключенного redis: каждый Get - промах
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(context.Context, string) (*domain.Availability, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, *domain.Availability) error {
	return nil
}

func (NoopCache) Invalidate(context.Context, string) error {
	return nil
}
