package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/types"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAvailabilityCache(client, time.Minute), server
}

func sampleAvailability() *domain.Availability {
	return &domain.Availability{
		ID:         "availability-1",
		ProviderID: "provider-1",
		Weekly: []domain.WeeklyRule{
			{Day: 2, Slots: []domain.TimeRange{{Start: types.TimeString("09:00"), End: types.TimeString("12:00")}}},
		},
		Exceptions: []domain.DateException{
			{Date: "2025-10-21", Slots: []domain.TimeRange{}},
		},
	}
}

func TestSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleAvailability()))

	got, err := c.Get(ctx, "provider-1")
	require.NoError(t, err)

	assert.Equal(t, "provider-1", got.ProviderID)
	require.Len(t, got.Weekly, 1)
	assert.Equal(t, types.TimeString("09:00"), got.Weekly[0].Slots[0].Start)
	require.Len(t, got.Exceptions, 1)
	assert.Equal(t, "2025-10-21", got.Exceptions[0].Date)
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), "provider-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestGetCorruptedEntry(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, server.Set("availability:provider-1", "{not json"))

	_, err := c.Get(ctx, "provider-1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// битая запись должна быть удалена
	assert.False(t, server.Exists("availability:provider-1"))
}

func TestInvalidate(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleAvailability()))
	require.True(t, server.Exists("availability:provider-1"))

	require.NoError(t, c.Invalidate(ctx, "provider-1"))

	_, err := c.Get(ctx, "provider-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestEntryExpires(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleAvailability()))

	server.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "provider-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
