// Package cache кеширует публичный документ расписания в Redis.
// Документ читается на каждый просмотр календаря, а меняется
// только при полной замене расписания провайдером.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/svcmarket/booking-engine/internal/domain"
)

// ErrCacheMiss возвращается, когда документа нет в кеше
var ErrCacheMiss = errors.New("cache: availability not cached")

// AvailabilityCache read-through кеш расписаний поверх Redis
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache создает кеш с заданным TTL
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(providerID string) string {
	return fmt.Sprintf("availability:%s", providerID)
}

// Get возвращает закешированное расписание провайдера
func (c *AvailabilityCache) Get(ctx context.Context, providerID string) (*domain.Availability, error) {
	payload, err := c.client.Get(ctx, availabilityKey(providerID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get availability: %w", err)
	}

	var availability domain.Availability
	if err := json.Unmarshal(payload, &availability); err != nil {
		// Битую запись выбрасываем и считаем промахом
		_ = c.client.Del(ctx, availabilityKey(providerID)).Err()
		return nil, ErrCacheMiss
	}

	return &availability, nil
}

// Set кладет расписание провайдера в кеш
func (c *AvailabilityCache) Set(ctx context.Context, availability *domain.Availability) error {
	payload, err := json.Marshal(availability)
	if err != nil {
		return fmt.Errorf("cache: marshal availability: %w", err)
	}

	if err := c.client.Set(ctx, availabilityKey(availability.ProviderID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set availability: %w", err)
	}

	return nil
}

// Invalidate удаляет расписание провайдера из кеша
// Вызывается после каждой замены расписания
func (c *AvailabilityCache) Invalidate(ctx context.Context, providerID string) error {
	if err := c.client.Del(ctx, availabilityKey(providerID)).Err(); err != nil {
		return fmt.Errorf("cache: invalidate availability: %w", err)
	}
	return nil
}
