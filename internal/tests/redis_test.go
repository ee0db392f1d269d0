package tests

import (
	"context"
	"testing"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisCache_cartRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	cache := storage.NewRedisCache(client, time.Hour)

	filled := domain.Cart{
		Items: []domain.OrderItem{{Food: pizza, Pieces: 2, Price: money("30.00")}},
		Price: money("30.00"),
	}
	require.NoError(t, cache.SaveCart(ctx, 1, filled))

	loaded, err := cache.GetCart(ctx, 1)

	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Pizza", loaded.Items[0].Food.Name)
	assert.Equal(t, 2, loaded.Items[0].Pieces)
	assert.True(t, loaded.Price.Equal(money("30.00")))
}

func TestRedisCache_missingCartIsEmpty(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	cache := storage.NewRedisCache(client, time.Hour)

	loaded, err := cache.GetCart(ctx, 99)

	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
	assert.True(t, loaded.Price.Equal(money("0")))
}

func TestRedisCache_clearCart(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	cache := storage.NewRedisCache(client, time.Hour)

	require.NoError(t, cache.SaveCart(ctx, 1, domain.Cart{
		Items: []domain.OrderItem{{Food: pizza, Pieces: 1, Price: money("15.00")}},
		Price: money("15.00"),
	}))
	require.NoError(t, cache.ClearCart(ctx, 1))

	loaded, err := cache.GetCart(ctx, 1)

	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestRedisCache_cartExpires(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	cache := storage.NewRedisCache(client, time.Minute)

	require.NoError(t, cache.SaveCart(ctx, 1, domain.Cart{
		Items: []domain.OrderItem{{Food: pizza, Pieces: 1, Price: money("15.00")}},
		Price: money("15.00"),
	}))

	mr.FastForward(2 * time.Minute)

	loaded, err := cache.GetCart(ctx, 1)

	require.NoError(t, err)
	assert.Empty(t, loaded.Items, "expired cart must read as empty")
}

func TestSessionStore_createAndResolve(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	sessions := storage.NewSessionStore(client, time.Hour)

	token, err := sessions.CreateSession(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	customerID, err := sessions.ResolveSession(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, int64(1), customerID)
}

func TestSessionStore_unknownTokenResolvesToZero(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	sessions := storage.NewSessionStore(client, time.Hour)

	customerID, err := sessions.ResolveSession(ctx, "no-such-token")

	require.NoError(t, err)
	assert.Equal(t, int64(0), customerID)
}

func TestSessionStore_sessionExpires(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	sessions := storage.NewSessionStore(client, time.Minute)

	token, err := sessions.CreateSession(ctx, 1)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	customerID, err := sessions.ResolveSession(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, int64(0), customerID, "expired session must behave like an unknown token")
}

func TestSpendStore_RecordOrder(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	store := storage.NewSpendStore(client)

	day := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	first := domain.OrderMessage{
		Type: "order_created", OrderID: 1, CustomerID: 1,
		Total: money("15.00"), ItemCount: 1, Timestamp: day,
	}
	second := domain.OrderMessage{
		Type: "order_created", OrderID: 2, CustomerID: 1,
		Total: money("4.50"), ItemCount: 1, Timestamp: day,
	}

	require.NoError(t, store.RecordOrder(first))
	require.NoError(t, store.RecordOrder(second))

	score, err := client.ZScore(ctx, "spend:alltime", "1").Result()
	require.NoError(t, err)
	assert.InDelta(t, 19.5, score, 0.001)

	count, err := client.Get(ctx, "orders:daily:2026-03-14").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ttl, err := client.TTL(ctx, "orders:daily:2026-03-14").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0), "daily counter must carry an expiry")
}

func TestSpendStore_ranksCustomersBySpend(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	store := storage.NewSpendStore(client)

	now := time.Now()
	require.NoError(t, store.RecordOrder(domain.OrderMessage{
		Type: "order_created", CustomerID: 1, Total: money("10.00"), Timestamp: now,
	}))
	require.NoError(t, store.RecordOrder(domain.OrderMessage{
		Type: "order_created", CustomerID: 2, Total: money("50.00"), Timestamp: now,
	}))

	top, err := client.ZRevRange(ctx, "spend:alltime", 0, 0).Result()

	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "2", top[0])
}
